package domain

import "time"

type Strategy string

const (
	StrategySnowball  Strategy = "snowball"  // smallest balance first
	StrategyAvalanche Strategy = "avalanche" // highest APR first
)

func (s Strategy) Valid() bool {
	return s == StrategySnowball || s == StrategyAvalanche
}

// FailureReason explains why a projection or simulation did not reach payoff.
// The empty value means no failure.
type FailureReason string

const (
	FailureNoDebts           FailureReason = "noDebts"
	FailureNoBudget          FailureReason = "noBudget"
	FailurePaymentTooLow     FailureReason = "paymentTooLow"
	FailureMaxMonthsExceeded FailureReason = "maxMonthsExceeded"
)

type ComparisonReason string

const (
	ReasonTime     ComparisonReason = "time"
	ReasonInterest ComparisonReason = "interest"
)

type Debt struct {
	ID                 string  `json:"id"`
	Balance            float64 `json:"balance"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
}

type DebtPayoff struct {
	DebtID string `json:"debtId"`
	Month  int    `json:"month"`
}

type StrategyResult struct {
	Strategy      Strategy      `json:"strategy"`
	Months        *int          `json:"months"`
	PayoffDate    *time.Time    `json:"payoffDate"`
	TotalInterest float64       `json:"totalInterest"`
	IsSuccessful  bool          `json:"isSuccessful"`
	FailureReason FailureReason `json:"failureReason,omitempty"`
	PayoffOrder   []DebtPayoff  `json:"payoffOrder,omitempty"`
}

type StrategyComparison struct {
	Snowball       StrategyResult   `json:"snowball"`
	Avalanche      StrategyResult   `json:"avalanche"`
	Recommendation Strategy         `json:"recommendation,omitempty"`
	MonthsSaved    *int             `json:"monthsSaved"`
	InterestSaved  float64          `json:"interestSaved"`
	Reason         ComparisonReason `json:"reason,omitempty"`
}

type PlanInput struct {
	Debts         []Debt   `json:"debts"`
	MonthlyBudget float64  `json:"monthlyBudget"`
	Strategy      Strategy `json:"strategy,omitempty"` // ignored by compare
}

// PlanSnapshot is a stored comparison, kept so users can look back at
// earlier plans.
type PlanSnapshot struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"createdAt"`
	Input      PlanInput          `json:"input"`
	Comparison StrategyComparison `json:"comparison"`
}
