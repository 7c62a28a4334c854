package domain

// TermPreference weighs what a borrower cares about when choosing a payoff term.
type TermPreference string

const (
	PreferMinimizeInterest TermPreference = "minimize_interest"
	PreferMinimizePayment  TermPreference = "minimize_payment"
	PreferBalanced         TermPreference = "balanced"
)

func (p TermPreference) Valid() bool {
	return p == PreferMinimizeInterest || p == PreferMinimizePayment || p == PreferBalanced
}

type TermRecommendationInput struct {
	Balance            float64        `json:"balance"`
	AnnualInterestRate float64        `json:"annualInterestRate"`
	MinTermMonths      int            `json:"minTermMonths"`
	MaxTermMonths      int            `json:"maxTermMonths"`
	MaxMonthlyPayment  float64        `json:"maxMonthlyPayment"`
	Preference         TermPreference `json:"preference,omitempty"`
}

type TermRecommendation struct {
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommendedTerm"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
