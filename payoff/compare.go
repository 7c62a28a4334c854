package payoff

import (
	"time"

	"debt-planner/domain"

	"github.com/shopspring/decimal"
)

// Compare simulates both strategies and recommends one. A strategy that
// finishes wins over one that does not; between two finishers the sooner
// payoff wins, then the lower interest. No recommendation is made when
// both fail or both tie on months and interest.
func Compare(debts []domain.Debt, monthlyBudget float64, now time.Time) domain.StrategyComparison {
	comparison := domain.StrategyComparison{
		Snowball:  Simulate(debts, monthlyBudget, domain.StrategySnowball, now),
		Avalanche: Simulate(debts, monthlyBudget, domain.StrategyAvalanche, now),
	}
	snowball, avalanche := comparison.Snowball, comparison.Avalanche

	switch {
	case snowball.IsSuccessful && !avalanche.IsSuccessful:
		comparison.Recommendation = domain.StrategySnowball
		comparison.Reason = domain.ReasonTime
	case avalanche.IsSuccessful && !snowball.IsSuccessful:
		comparison.Recommendation = domain.StrategyAvalanche
		comparison.Reason = domain.ReasonTime
	case snowball.IsSuccessful && avalanche.IsSuccessful:
		compareSuccessful(&comparison)
	}
	return comparison
}

func compareSuccessful(c *domain.StrategyComparison) {
	snowballMonths, avalancheMonths := *c.Snowball.Months, *c.Avalanche.Months
	snowballInterest := toMoney(c.Snowball.TotalInterest)
	avalancheInterest := toMoney(c.Avalanche.TotalInterest)

	if snowballMonths != avalancheMonths {
		winner := domain.StrategySnowball
		saved := avalancheInterest.Sub(snowballInterest)
		monthsSaved := avalancheMonths - snowballMonths
		if avalancheMonths < snowballMonths {
			winner = domain.StrategyAvalanche
			saved = saved.Neg()
			monthsSaved = -monthsSaved
		}
		c.Recommendation = winner
		c.Reason = domain.ReasonTime
		c.MonthsSaved = &monthsSaved
		c.InterestSaved = toFloat(decimal.Max(saved, decimal.Zero))
		return
	}

	monthsSaved := 0
	c.MonthsSaved = &monthsSaved
	diff := avalancheInterest.Sub(snowballInterest)
	if diff.Abs().LessThanOrEqual(epsilon) {
		return
	}
	c.Reason = domain.ReasonInterest
	c.InterestSaved = toFloat(diff.Abs())
	if diff.IsPositive() {
		c.Recommendation = domain.StrategySnowball
	} else {
		c.Recommendation = domain.StrategyAvalanche
	}
}
