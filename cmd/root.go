package cmd

import (
	"fmt"
	"os"

	"debt-planner/config"
	"debt-planner/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig  string
	flagVerbose bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:           "debt-planner",
	Short:         "Debt payoff planner",
	Long:          "Project loan payoffs and compare snowball and avalanche repayment strategies.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log service activity to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print JSON instead of tables")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the configured logger. One-shot commands stay quiet
// below warnings unless --verbose is set.
func newLogger(cfg config.LoggingConfig, oneShot bool) (*zap.SugaredLogger, error) {
	if oneShot && !flagVerbose {
		cfg.Level = "warn"
		cfg.Development = false
	}
	return logger.New(cfg)
}
