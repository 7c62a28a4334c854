package payoff

import (
	"testing"

	"debt-planner/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCompare_FasterStrategyWins(t *testing.T) {
	debts := []domain.Debt{
		{ID: "small", Balance: 500},
		{ID: "big", Balance: 600, AnnualInterestRate: 0.12},
	}
	c := Compare(debts, 554, testNow)

	require.Equal(t, 3, *c.Snowball.Months)
	require.Equal(t, 2, *c.Avalanche.Months)
	assert.InDelta(t, 6.52, c.Avalanche.TotalInterest, 0.001)

	assert.Equal(t, domain.StrategyAvalanche, c.Recommendation)
	assert.Equal(t, domain.ReasonTime, c.Reason)
	require.NotNil(t, c.MonthsSaved)
	assert.Equal(t, 1, *c.MonthsSaved)
	assert.InDelta(t, 5.04, c.InterestSaved, 0.001)
}

func TestCompare_SameMonthsFallsBackToInterest(t *testing.T) {
	debts := []domain.Debt{
		{ID: "small", Balance: 500},
		{ID: "big", Balance: 600, AnnualInterestRate: 0.12},
	}
	c := Compare(debts, 600, testNow)

	require.Equal(t, 2, *c.Snowball.Months)
	require.Equal(t, 2, *c.Avalanche.Months)

	assert.Equal(t, domain.StrategyAvalanche, c.Recommendation)
	assert.Equal(t, domain.ReasonInterest, c.Reason)
	assert.Equal(t, 0, *c.MonthsSaved)
	assert.InDelta(t, 5.00, c.InterestSaved, 0.001)
}

func TestCompare_OnlyOneSucceeds(t *testing.T) {
	// Snowball spends month one on the zero-rate debt. By month two the
	// loan's interest swallows the whole budget.
	debts := []domain.Debt{
		{ID: "store-card", Balance: 100},
		{ID: "loan", Balance: 10000, AnnualInterestRate: 0.12},
	}
	c := Compare(debts, 101, testNow)

	require.False(t, c.Snowball.IsSuccessful)
	assert.Equal(t, domain.FailurePaymentTooLow, c.Snowball.FailureReason)
	require.True(t, c.Avalanche.IsSuccessful)
	assert.Equal(t, 465, *c.Avalanche.Months)

	assert.Equal(t, domain.StrategyAvalanche, c.Recommendation)
	assert.Equal(t, domain.ReasonTime, c.Reason)
	assert.Nil(t, c.MonthsSaved)
	assert.Equal(t, 0.0, c.InterestSaved)
}

func TestCompare_NoRecommendation(t *testing.T) {
	t.Run("both fail", func(t *testing.T) {
		c := Compare([]domain.Debt{{ID: "a", Balance: 100}}, 0, testNow)
		assert.Empty(t, c.Recommendation)
		assert.Empty(t, c.Reason)
		assert.Nil(t, c.MonthsSaved)
		assert.Equal(t, 0.0, c.InterestSaved)
	})

	t.Run("full tie", func(t *testing.T) {
		debts := []domain.Debt{{ID: "a", Balance: 300}, {ID: "b", Balance: 200}}
		c := Compare(debts, 100, testNow)
		assert.Empty(t, c.Recommendation)
		assert.Empty(t, c.Reason)
		require.NotNil(t, c.MonthsSaved)
		assert.Equal(t, 0, *c.MonthsSaved)
	})

	t.Run("no debts", func(t *testing.T) {
		c := Compare(nil, 100, testNow)
		assert.True(t, c.Snowball.IsSuccessful)
		assert.True(t, c.Avalanche.IsSuccessful)
		assert.Empty(t, c.Recommendation)
	})
}

func TestCompare_InterestSavedNeverNegative(t *testing.T) {
	c := domain.StrategyComparison{
		Snowball:  domain.StrategyResult{Months: intPtr(10), TotalInterest: 500, IsSuccessful: true},
		Avalanche: domain.StrategyResult{Months: intPtr(11), TotalInterest: 400, IsSuccessful: true},
	}
	compareSuccessful(&c)

	assert.Equal(t, domain.StrategySnowball, c.Recommendation)
	assert.Equal(t, domain.ReasonTime, c.Reason)
	assert.Equal(t, 1, *c.MonthsSaved)
	assert.Equal(t, 0.0, c.InterestSaved)
}

func TestCompare_InterestWithinEpsilonIsTie(t *testing.T) {
	c := domain.StrategyComparison{
		Snowball:  domain.StrategyResult{Months: intPtr(10), TotalInterest: 400.01, IsSuccessful: true},
		Avalanche: domain.StrategyResult{Months: intPtr(10), TotalInterest: 400, IsSuccessful: true},
	}
	compareSuccessful(&c)
	assert.Empty(t, c.Recommendation)
}

func TestCompare_Deterministic(t *testing.T) {
	debts := []domain.Debt{
		{ID: "card", Balance: 4200, AnnualInterestRate: 0.2199},
		{ID: "car", Balance: 11000, AnnualInterestRate: 0.069},
		{ID: "medical", Balance: 900, AnnualInterestRate: 0},
	}
	first := Compare(debts, 750, testNow)
	second := Compare(debts, 750, testNow)
	assert.Equal(t, "", cmp.Diff(first, second))
}
