package payoff

import (
	"math"
	"time"

	"debt-planner/domain"

	"github.com/shopspring/decimal"
)

// Project builds the month-by-month payoff schedule of a single debt paid
// with a fixed monthly payment. It returns nil when balance or payment is
// not a positive finite number; unreachable payoffs come back as a result
// with FailureReason set.
func Project(
	balance float64,
	monthlyPayment float64,
	annualInterestRate float64,
	opts domain.ProjectionOptions,
	now time.Time,
) *domain.PayoffResult {
	if !isFinite(balance) || !isFinite(monthlyPayment) || balance <= 0 || monthlyPayment <= 0 {
		return nil
	}

	startDate := opts.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	maxMonths := opts.MaxMonths
	if maxMonths <= 0 {
		maxMonths = MaxMonths
	}
	extra := decimal.Zero
	if isFinite(opts.ExtraPayment) && opts.ExtraPayment > 0 {
		extra = toMoney(opts.ExtraPayment)
	}
	skipMonths := 0
	if isFinite(opts.SkipMonths) && opts.SkipMonths > 0 {
		skipMonths = int(math.Min(math.Trunc(opts.SkipMonths), float64(maxMonths)))
	}

	bal := toMoney(balance)
	payment := toMoney(monthlyPayment)
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero
	schedule := []domain.ScheduleEntry{}

	if extra.IsPositive() && bal.IsPositive() {
		applied := minDecimal(extra, bal)
		bal = bal.Sub(applied).Round(2)
		totalPaid = totalPaid.Add(applied)
		schedule = append(schedule, domain.ScheduleEntry{
			Month:            0,
			Type:             domain.EntryExtra,
			Payment:          toFloat(applied),
			Principal:        toFloat(applied),
			RemainingBalance: toFloat(bal),
		})
	}

	month := 0

	// Skipped months capitalize interest onto the balance.
	for i := 0; i < skipMonths && bal.IsPositive() && month < maxMonths; i++ {
		interest := accrueInterest(bal, annualInterestRate)
		bal = bal.Add(interest).Round(2)
		totalInterest = totalInterest.Add(interest)
		month++
		schedule = append(schedule, domain.ScheduleEntry{
			Month:            month,
			Type:             domain.EntrySkip,
			Interest:         toFloat(interest),
			RemainingBalance: toFloat(bal),
		})
	}

	var failure domain.FailureReason
	for bal.IsPositive() && month < maxMonths {
		interest := accrueInterest(bal, annualInterestRate)
		available := payment.Sub(interest)
		if !available.IsPositive() {
			failure = domain.FailurePaymentTooLow
			break
		}
		principal := minDecimal(available, bal)
		paid := interest.Add(principal)
		bal = bal.Sub(principal).Round(2)
		totalInterest = totalInterest.Add(interest)
		totalPaid = totalPaid.Add(paid)
		month++
		schedule = append(schedule, domain.ScheduleEntry{
			Month:            month,
			Type:             domain.EntryPayment,
			Payment:          toFloat(paid),
			Interest:         toFloat(interest),
			Principal:        toFloat(principal),
			RemainingBalance: toFloat(bal),
		})
	}

	if bal.IsPositive() && failure == "" {
		failure = domain.FailureMaxMonthsExceeded
	}

	result := &domain.PayoffResult{
		TotalInterest: toFloat(totalInterest),
		TotalPaid:     toFloat(totalPaid),
		Months:        month,
		Schedule:      schedule,
		IsComplete:    !bal.IsPositive() && failure == "",
		FailureReason: failure,
	}
	if result.IsComplete {
		payoffDate := startDate.AddDate(0, month, 0)
		result.PayoffDate = &payoffDate
	}
	return result
}
