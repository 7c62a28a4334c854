package payoff

import (
	"sort"
	"time"

	"debt-planner/domain"

	"github.com/shopspring/decimal"
)

type workingDebt struct {
	id      string
	balance decimal.Decimal
	rate    float64
	paidAt  int
}

// Simulate pays down every debt month by month with one shared budget. The
// payment priority is fixed before the first month: snowball orders by
// ascending balance, avalanche by descending rate. Unknown strategies use
// avalanche ordering.
func Simulate(
	debts []domain.Debt,
	monthlyBudget float64,
	strategy domain.Strategy,
	now time.Time,
) domain.StrategyResult {
	if strategy != domain.StrategySnowball {
		strategy = domain.StrategyAvalanche
	}
	result := domain.StrategyResult{Strategy: strategy}

	active := make([]*workingDebt, 0, len(debts))
	for _, d := range debts {
		if !isFinite(d.Balance) {
			continue
		}
		bal := toMoney(d.Balance)
		if bal.LessThanOrEqual(epsilon) {
			continue
		}
		active = append(active, &workingDebt{
			id:      d.ID,
			balance: bal,
			rate:    normalizeRate(d.AnnualInterestRate),
		})
	}

	if len(active) == 0 {
		months := 0
		payoffDate := now
		result.Months = &months
		result.PayoffDate = &payoffDate
		result.IsSuccessful = true
		result.FailureReason = domain.FailureNoDebts
		return result
	}
	if !isFinite(monthlyBudget) || monthlyBudget <= 0 {
		result.FailureReason = domain.FailureNoBudget
		return result
	}

	order := priorityOrder(active, strategy)
	budget := toMoney(monthlyBudget)
	totalInterest := decimal.Zero

	for month := 1; month <= MaxMonths; month++ {
		monthInterest := decimal.Zero
		for _, d := range active {
			if d.rate <= 0 || d.balance.LessThanOrEqual(epsilon) {
				continue
			}
			interest := accrueInterest(d.balance, d.rate)
			d.balance = d.balance.Add(interest).Round(2)
			monthInterest = monthInterest.Add(interest)
		}
		totalInterest = totalInterest.Add(monthInterest)

		remaining := budget
		paid := decimal.Zero
		for _, d := range order {
			if !remaining.IsPositive() {
				break
			}
			if !d.balance.IsPositive() {
				continue
			}
			pay := minDecimal(remaining, d.balance)
			d.balance = d.balance.Sub(pay).Round(2)
			remaining = remaining.Sub(pay)
			paid = paid.Add(pay)
		}

		cleared := true
		for _, d := range order {
			if d.balance.GreaterThan(epsilon) {
				cleared = false
				continue
			}
			if d.paidAt == 0 {
				d.paidAt = month
				result.PayoffOrder = append(result.PayoffOrder, domain.DebtPayoff{DebtID: d.id, Month: month})
			}
		}
		result.TotalInterest = toFloat(totalInterest)

		if cleared {
			months := month
			payoffDate := now.AddDate(0, month, 0)
			result.Months = &months
			result.PayoffDate = &payoffDate
			result.IsSuccessful = true
			return result
		}
		// No net principal progress: the budget only covers the interest.
		if paid.LessThanOrEqual(monthInterest.Add(epsilon)) {
			result.FailureReason = domain.FailurePaymentTooLow
			return result
		}
	}

	result.FailureReason = domain.FailureMaxMonthsExceeded
	return result
}

// priorityOrder returns the payment priority for strategy. Ties are broken
// by the secondary key and then by input position, so equal debts keep a
// deterministic order.
func priorityOrder(debts []*workingDebt, strategy domain.Strategy) []*workingDebt {
	order := make([]*workingDebt, len(debts))
	copy(order, debts)

	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(order, func(i, j int) bool {
			if c := order[i].balance.Cmp(order[j].balance); c != 0 {
				return c < 0
			}
			return order[i].rate < order[j].rate
		})
	default:
		sort.SliceStable(order, func(i, j int) bool {
			if order[i].rate != order[j].rate {
				return order[i].rate > order[j].rate
			}
			return order[i].balance.GreaterThan(order[j].balance)
		})
	}
	return order
}
