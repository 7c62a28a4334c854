package cmd

import (
	"fmt"
	"time"

	"debt-planner/cli"
	"debt-planner/domain"

	"github.com/spf13/cobra"
)

var (
	flagBalance   string
	flagPayment   string
	flagRate      string
	flagExtra     string
	flagSkip      float64
	flagMaxMonths int
	flagStart     string
	flagSchedule  bool
	flagWhatIf    bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the payoff of a single debt",
	Example: `  debt-planner project --balance 10000 --payment 470.74 --rate 12%
  debt-planner project --balance 10000 --payment 400 --rate 0.12 --extra 1000 --what-if`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVar(&flagBalance, "balance", "", "Current balance")
	projectCmd.Flags().StringVar(&flagPayment, "payment", "", "Fixed monthly payment")
	projectCmd.Flags().StringVar(&flagRate, "rate", "0", "Annual rate as a fraction (0.12) or percentage (12%)")
	projectCmd.Flags().StringVar(&flagExtra, "extra", "0", "One-time extra payment applied up front")
	projectCmd.Flags().Float64Var(&flagSkip, "skip", 0, "Months to skip before payments start")
	projectCmd.Flags().IntVar(&flagMaxMonths, "max-months", 0, "Projection horizon in months (default 600)")
	projectCmd.Flags().StringVar(&flagStart, "start", "", "Start date, YYYY-MM-DD (default today)")
	projectCmd.Flags().BoolVar(&flagSchedule, "schedule", false, "Print the month-by-month schedule")
	projectCmd.Flags().BoolVar(&flagWhatIf, "what-if", false, "Compare against the plan without extra payment or skipped months")
	_ = projectCmd.MarkFlagRequired("balance")
	_ = projectCmd.MarkFlagRequired("payment")
	rootCmd.AddCommand(projectCmd)
}

func projectionInputFromFlags() (domain.ProjectionInput, error) {
	var input domain.ProjectionInput
	var err error

	if input.Balance, err = parseAmount(flagBalance); err != nil {
		return input, fmt.Errorf("--balance: %w", err)
	}
	if input.MonthlyPayment, err = parseAmount(flagPayment); err != nil {
		return input, fmt.Errorf("--payment: %w", err)
	}
	if input.AnnualInterestRate, err = parseRate(flagRate); err != nil {
		return input, fmt.Errorf("--rate: %w", err)
	}
	if input.ExtraPayment, err = parseAmount(flagExtra); err != nil {
		return input, fmt.Errorf("--extra: %w", err)
	}
	input.SkipMonths = flagSkip
	input.MaxMonths = flagMaxMonths

	if flagStart != "" {
		start, err := time.ParseInLocation("2006-01-02", flagStart, time.Local)
		if err != nil {
			return input, fmt.Errorf("--start: %w", err)
		}
		input.StartDate = &start
	}
	return input, nil
}

func runProject(cmd *cobra.Command, _ []string) error {
	input, err := projectionInputFromFlags()
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

	if flagWhatIf {
		result, err := a.service.WhatIf(input)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(result)
		}
		fmt.Println()
		fmt.Println(cli.RenderTitle("WHAT IF"))
		fmt.Println(cli.RenderProjection(domain.ProjectionResponse{PayoffResult: *result.Baseline}, false))
		fmt.Println(cli.RenderProjection(domain.ProjectionResponse{PayoffResult: *result.Scenario}, flagSchedule))
		if result.MonthsDelta != nil && result.InterestDelta != nil {
			fmt.Printf("  Months saved: %d   Interest saved: %s\n",
				*result.MonthsDelta, cli.FormatMoney(*result.InterestDelta))
		}
		return nil
	}

	result, err := a.service.Project(input)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(result)
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT PROJECTION"))
	fmt.Println(cli.RenderProjection(result, flagSchedule))
	return nil
}
