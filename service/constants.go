package service

import "time"

const (
	MaxDebtAmount        = 100_000_000.0 // 100 million
	MaxInterestRate      = 10.0          // 1000% APR, as a fraction
	MaxDebtsPerRequest   = 50            // max debts per request
	MaxTermMonths        = 600           // 50 years
	MaxTermRangeMonths   = 120           // widest term range priced per request
	MaxProjectionMonths  = 1200          // cap on a client supplied maxMonths
	DefaultHistoryLimit  = 20
	MaxHistoryLimit      = 100
	DefaultComparisonTTL = 6 * time.Hour

	comparisonCachePrefix = "compare"
)
