// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"debt-planner/domain"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats a dollar amount with thousands separators and cents.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatMonths formats a month count as years and months.
// e.g., 27 -> "2y 3m", 11 -> "11m"
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rest)
	}
}

func formatMonthsPtr(months *int) string {
	if months == nil {
		return "-"
	}
	return FormatMonths(*months)
}

// FormatDate renders a payoff date as "Jan 2027".
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("Jan 2006")
}

// FormatRate formats an annual rate fraction as a percentage.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatFailure explains why a plan did not finish.
func FormatFailure(reason domain.FailureReason) string {
	switch reason {
	case domain.FailureNoDebts:
		return "no debts to pay"
	case domain.FailureNoBudget:
		return "no monthly budget"
	case domain.FailurePaymentTooLow:
		return "payment does not cover interest"
	case domain.FailureMaxMonthsExceeded:
		return "not paid off within the horizon"
	case "":
		return ""
	default:
		return string(reason)
	}
}
