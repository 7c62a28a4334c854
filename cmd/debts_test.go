package cmd

import (
	"testing"

	"debt-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDebt(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Debt
	}{
		{"card:4200:0.2199", domain.Debt{ID: "card", Balance: 4200, AnnualInterestRate: 0.2199}},
		{"card:4200:21.99%", domain.Debt{ID: "card", Balance: 4200, AnnualInterestRate: 0.2199}},
		{"medical:$1,250.50", domain.Debt{ID: "medical", Balance: 1250.5}},
		{" car : 900 : 6.9 % ", domain.Debt{ID: "car", Balance: 900, AnnualInterestRate: 0.069}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDebt(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.InDelta(t, tt.want.Balance, got.Balance, 1e-9)
			assert.InDelta(t, tt.want.AnnualInterestRate, got.AnnualInterestRate, 1e-9)
		})
	}
}

func TestParseDebt_Errors(t *testing.T) {
	for _, in := range []string{"card", ":100", "card:abc", "card:100:high", "a:1:2:3"} {
		_, err := parseDebt(in)
		assert.Error(t, err, in)
	}
}

func TestParseDebts(t *testing.T) {
	debts, err := parseDebts([]string{"a:100", "b:200:5%"})
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.Equal(t, "b", debts[1].ID)

	_, err = parseDebts([]string{"a:100", "broken"})
	assert.Error(t, err)
}
