package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"debt-planner/domain"
)

// parseDebt reads "id:balance:rate". The rate is a fraction ("0.2199") or
// a percentage with a trailing % ("21.99%"). Omitting it means 0.
func parseDebt(arg string) (domain.Debt, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.Debt{}, fmt.Errorf("debt %q: want id:balance[:rate]", arg)
	}

	id := strings.TrimSpace(parts[0])
	if id == "" {
		return domain.Debt{}, fmt.Errorf("debt %q: id is empty", arg)
	}

	balance, err := parseAmount(parts[1])
	if err != nil {
		return domain.Debt{}, fmt.Errorf("debt %q: balance: %w", arg, err)
	}

	rate := 0.0
	if len(parts) == 3 {
		rate, err = parseRate(parts[2])
		if err != nil {
			return domain.Debt{}, fmt.Errorf("debt %q: rate: %w", arg, err)
		}
	}

	return domain.Debt{ID: id, Balance: balance, AnnualInterestRate: rate}, nil
}

func parseDebts(raw []string) ([]domain.Debt, error) {
	debts := make([]domain.Debt, 0, len(raw))
	for _, s := range raw {
		d, err := parseDebt(s)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, nil
}

// parseAmount accepts "4200", "4,200.50" and "$4200".
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	return strconv.ParseFloat(s, 64)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
