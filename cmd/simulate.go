package cmd

import (
	"fmt"

	"debt-planner/cli"
	"debt-planner/domain"

	"github.com/spf13/cobra"
)

var (
	flagDebts    []string
	flagBudget   string
	flagStrategy string
)

var simulateCmd = &cobra.Command{
	Use:     "simulate",
	Short:   "Simulate one repayment strategy over several debts",
	Example: `  debt-planner simulate --strategy snowball --budget 800 --debt card:4200:21.99% --debt car:2500:6.9%`,
	RunE:    runSimulate,
}

func init() {
	addPortfolioFlags(simulateCmd)
	simulateCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", string(domain.StrategyAvalanche), "snowball or avalanche")
	rootCmd.AddCommand(simulateCmd)
}

func addPortfolioFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&flagDebts, "debt", nil, "Debt as id:balance[:rate], repeatable")
	cmd.Flags().StringVar(&flagBudget, "budget", "", "Total monthly budget across all debts")
	_ = cmd.MarkFlagRequired("budget")
}

func planInputFromFlags() (domain.PlanInput, error) {
	debts, err := parseDebts(flagDebts)
	if err != nil {
		return domain.PlanInput{}, err
	}
	budget, err := parseAmount(flagBudget)
	if err != nil {
		return domain.PlanInput{}, fmt.Errorf("--budget: %w", err)
	}
	return domain.PlanInput{Debts: debts, MonthlyBudget: budget}, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	input, err := planInputFromFlags()
	if err != nil {
		return err
	}
	input.Strategy = domain.Strategy(flagStrategy)

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

	result, err := a.service.Simulate(input)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(result)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%d DEBTS  %s/month", len(input.Debts), cli.FormatMoney(input.MonthlyBudget))))
	fmt.Println(cli.RenderStrategy(result))
	return nil
}
