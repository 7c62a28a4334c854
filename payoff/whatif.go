package payoff

import (
	"math"
	"time"

	"debt-planner/domain"

	"github.com/shopspring/decimal"
)

// WhatIf projects the debt twice: once as-is and once with the extra
// payment and skipped months from opts. StartDate and MaxMonths apply to
// both runs.
func WhatIf(
	balance float64,
	monthlyPayment float64,
	annualInterestRate float64,
	opts domain.ProjectionOptions,
	now time.Time,
) *domain.WhatIfResult {
	baselineOpts := domain.ProjectionOptions{StartDate: opts.StartDate, MaxMonths: opts.MaxMonths}
	baseline := Project(balance, monthlyPayment, annualInterestRate, baselineOpts, now)
	if baseline == nil {
		return nil
	}
	scenario := Project(balance, monthlyPayment, annualInterestRate, opts, now)

	result := &domain.WhatIfResult{Baseline: baseline, Scenario: scenario}
	if baseline.IsComplete && scenario.IsComplete {
		months := baseline.Months - scenario.Months
		interest := toFloat(toMoney(baseline.TotalInterest).Sub(toMoney(scenario.TotalInterest)))
		result.MonthsDelta = &months
		result.InterestDelta = &interest
	}
	return result
}

// RequiredPayment returns the fixed monthly payment, rounded up to the next
// cent, that retires balance within termMonths. ok is false when the inputs
// cannot produce a payment.
func RequiredPayment(balance, annualInterestRate float64, termMonths int) (payment float64, ok bool) {
	if !isFinite(balance) || balance <= 0 || termMonths <= 0 {
		return 0, false
	}

	rate := normalizeRate(annualInterestRate) / 12
	var raw float64
	if rate == 0 {
		raw = balance / float64(termMonths)
	} else {
		raw = balance * (rate / (1 - math.Pow(1+rate, -float64(termMonths))))
	}
	if !isFinite(raw) {
		return 0, false
	}

	d := decimal.NewFromFloat(raw)
	if !d.Equal(d.Round(2)) {
		d = d.Truncate(2).Add(cent)
	}
	return toFloat(d), true
}
