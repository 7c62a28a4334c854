package cmd

import (
	"fmt"

	"debt-planner/cli"

	"github.com/spf13/cobra"
)

var flagShowOrder bool

var compareCmd = &cobra.Command{
	Use:     "compare",
	Short:   "Compare snowball and avalanche and recommend one",
	Example: `  debt-planner compare --budget 800 --debt card:4200:21.99% --debt car:2500:6.9% --debt medical:900`,
	RunE:    runCompare,
}

func init() {
	addPortfolioFlags(compareCmd)
	compareCmd.Flags().BoolVar(&flagShowOrder, "order", false, "Also print the payoff order of each strategy")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	input, err := planInputFromFlags()
	if err != nil {
		return err
	}

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

	comparison, err := a.service.Compare(cmd.Context(), input)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(comparison)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%d DEBTS  %s/month", len(input.Debts), cli.FormatMoney(input.MonthlyBudget))))
	fmt.Println(cli.RenderComparison(comparison))
	if flagShowOrder {
		fmt.Println(cli.RenderStrategy(comparison.Snowball))
		fmt.Println(cli.RenderStrategy(comparison.Avalanche))
	}
	return nil
}
