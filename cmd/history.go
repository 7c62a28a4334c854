package cmd

import (
	"fmt"

	"debt-planner/cli"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved strategy comparisons",
	Long:  "List saved strategy comparisons. Plans are only kept when store.driver is sqlite or postgres.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum plans to show (default 20)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Logging, true)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	a, err := newApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(logger)

	plans, err := a.service.History(cmd.Context(), flagLimit)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(plans)
	}

	if len(plans) == 0 {
		fmt.Println("\n  No saved plans.")
		if cfg.Store.Driver == "memory" {
			fmt.Println("  Set store.driver to sqlite or postgres to keep comparisons between runs.")
		}
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderHistory(plans))
	return nil
}
