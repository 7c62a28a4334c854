package cmd

import (
	"fmt"

	"debt-planner/cli"
	"debt-planner/domain"

	"github.com/spf13/cobra"
)

var (
	flagMinTerm    int
	flagMaxTerm    int
	flagMaxPayment string
	flagPreference string
	flagTop        int
)

var termsCmd = &cobra.Command{
	Use:     "terms",
	Short:   "Rank payoff terms that fit a monthly payment limit",
	Example: `  debt-planner terms --balance 10000 --rate 12% --min-term 12 --max-term 60 --max-payment 400`,
	RunE:    runTerms,
}

func init() {
	termsCmd.Flags().StringVar(&flagBalance, "balance", "", "Current balance")
	termsCmd.Flags().StringVar(&flagRate, "rate", "0", "Annual rate as a fraction (0.12) or percentage (12%)")
	termsCmd.Flags().IntVar(&flagMinTerm, "min-term", 12, "Shortest term in months")
	termsCmd.Flags().IntVar(&flagMaxTerm, "max-term", 60, "Longest term in months")
	termsCmd.Flags().StringVar(&flagMaxPayment, "max-payment", "", "Highest affordable monthly payment")
	termsCmd.Flags().StringVar(&flagPreference, "prefer", string(domain.PreferBalanced), "minimize_interest, minimize_payment or balanced")
	termsCmd.Flags().IntVar(&flagTop, "top", 5, "Number of terms to list")
	_ = termsCmd.MarkFlagRequired("balance")
	_ = termsCmd.MarkFlagRequired("max-payment")
	rootCmd.AddCommand(termsCmd)
}

func runTerms(cmd *cobra.Command, _ []string) error {
	balance, err := parseAmount(flagBalance)
	if err != nil {
		return fmt.Errorf("--balance: %w", err)
	}
	rate, err := parseRate(flagRate)
	if err != nil {
		return fmt.Errorf("--rate: %w", err)
	}
	maxPayment, err := parseAmount(flagMaxPayment)
	if err != nil {
		return fmt.Errorf("--max-payment: %w", err)
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

	result, err := a.terms.RecommendTerm(domain.TermRecommendationInput{
		Balance:            balance,
		AnnualInterestRate: rate,
		MinTermMonths:      flagMinTerm,
		MaxTermMonths:      flagMaxTerm,
		MaxMonthlyPayment:  maxPayment,
		Preference:         domain.TermPreference(flagPreference),
	})
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(result)
	}

	recs := result.Recommendations
	if flagTop > 0 && len(recs) > flagTop {
		recs = recs[:flagTop]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TERMS FOR %s AT %s", cli.FormatMoney(balance), cli.FormatRate(rate))))
	fmt.Println(cli.RenderTerms(recs))
	fmt.Printf("  Recommended: %s\n", cli.FormatMonths(result.RecommendedTerm))
	return nil
}
