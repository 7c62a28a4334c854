package domain

import "time"

type EntryType string

const (
	EntryExtra   EntryType = "extra"
	EntrySkip    EntryType = "skip"
	EntryPayment EntryType = "payment"
)

type ScheduleEntry struct {
	Month            int       `json:"month"`
	Type             EntryType `json:"type"`
	Payment          float64   `json:"payment"`
	Interest         float64   `json:"interest"`
	Principal        float64   `json:"principal"`
	RemainingBalance float64   `json:"remainingBalance"`
}

type PayoffResult struct {
	PayoffDate    *time.Time      `json:"payoffDate"`
	TotalInterest float64         `json:"totalInterest"`
	TotalPaid     float64         `json:"totalPaid"`
	Months        int             `json:"months"`
	Schedule      []ScheduleEntry `json:"schedule"`
	IsComplete    bool            `json:"isComplete"`
	FailureReason FailureReason   `json:"failureReason,omitempty"`
}

// ProjectionOptions zero values select the defaults: StartDate = now,
// MaxMonths = 600, no extra payment and no skipped months.
type ProjectionOptions struct {
	StartDate    time.Time
	MaxMonths    int
	ExtraPayment float64
	SkipMonths   float64
}

type ProjectionInput struct {
	Balance            float64    `json:"balance"`
	MonthlyPayment     float64    `json:"monthlyPayment"`
	AnnualInterestRate float64    `json:"annualInterestRate"`
	StartDate          *time.Time `json:"startDate,omitempty"`
	MaxMonths          int        `json:"maxMonths,omitempty"`
	ExtraPayment       float64    `json:"extraPayment,omitempty"`
	SkipMonths         float64    `json:"skipMonths,omitempty"`
}

func (in ProjectionInput) Options() ProjectionOptions {
	opts := ProjectionOptions{
		MaxMonths:    in.MaxMonths,
		ExtraPayment: in.ExtraPayment,
		SkipMonths:   in.SkipMonths,
	}
	if in.StartDate != nil {
		opts.StartDate = *in.StartDate
	}
	return opts
}

type ProjectionResponse struct {
	PayoffResult
	SuggestedPayment *float64 `json:"suggestedPayment,omitempty"`
}

// WhatIfResult contrasts a plain projection with one that applies the
// extra payment and skipped months. Deltas are baseline minus scenario and
// are only set when both projections complete.
type WhatIfResult struct {
	Baseline      *PayoffResult `json:"baseline"`
	Scenario      *PayoffResult `json:"scenario"`
	MonthsDelta   *int          `json:"monthsDelta"`
	InterestDelta *float64      `json:"interestDelta"`
}

type PaymentTargetInput struct {
	Balance            float64 `json:"balance"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
	TermMonths         int     `json:"termMonths"`
}

type PaymentTarget struct {
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPaid      float64 `json:"totalPaid"`
}
