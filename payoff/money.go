// Package payoff holds the debt payoff engine: the single-debt amortization
// projector and the snowball/avalanche strategy simulator. Every function is
// pure; the caller supplies the "now" reference.
package payoff

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// MaxMonths is the payoff horizon shared by the projector and the
	// simulator.
	MaxMonths = 600

	// BalanceEpsilon is the balance at or below which a debt counts as paid.
	BalanceEpsilon = 0.01
)

var (
	epsilon      = decimal.NewFromFloat(BalanceEpsilon)
	cent         = decimal.New(1, -2)
	monthsInYear = decimal.NewFromInt(12)
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// toMoney converts an amount to cents precision.
func toMoney(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// normalizeRate treats negative or non-finite rates as zero.
func normalizeRate(annualRate float64) float64 {
	if !isFinite(annualRate) || annualRate < 0 {
		return 0
	}
	return annualRate
}

func monthlyRate(annualRate float64) decimal.Decimal {
	return decimal.NewFromFloat(normalizeRate(annualRate)).Div(monthsInYear)
}

// accrueInterest returns one month of interest on balance, rounded to cents.
// Both the projector and the simulator accrue through here.
func accrueInterest(balance decimal.Decimal, annualRate float64) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	return balance.Mul(monthlyRate(annualRate)).Round(2)
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
