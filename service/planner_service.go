package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"debt-planner/domain"
	"debt-planner/payoff"
	"debt-planner/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidInput marks requests rejected before reaching the engine.
var ErrInvalidInput = errors.New("invalid input")

type Clock func() time.Time

type PlannerService struct {
	plans    repository.PlanRepository
	cache    repository.CacheRepository
	logger   *zap.SugaredLogger
	now      Clock
	cacheTTL time.Duration
}

type Option func(*PlannerService)

func WithClock(clock Clock) Option {
	return func(s *PlannerService) { s.now = clock }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *PlannerService) { s.cacheTTL = ttl }
}

// NewPlannerService creates a PlannerService backed by the given plan store
// and cache.
func NewPlannerService(
	plans repository.PlanRepository,
	cache repository.CacheRepository,
	logger *zap.SugaredLogger,
	opts ...Option,
) *PlannerService {
	s := &PlannerService{
		plans:    plans,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
		cacheTTL: DefaultComparisonTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project builds the payoff schedule of a single debt. Projections that
// cannot finish carry a suggested payment that would.
func (s *PlannerService) Project(input domain.ProjectionInput) (domain.ProjectionResponse, error) {
	if err := validateProjection(input); err != nil {
		return domain.ProjectionResponse{}, err
	}

	opts := input.Options()
	result := payoff.Project(input.Balance, input.MonthlyPayment, input.AnnualInterestRate, opts, s.now())
	if result == nil {
		return domain.ProjectionResponse{}, fmt.Errorf("%w: balance and monthly payment must be positive", ErrInvalidInput)
	}

	resp := domain.ProjectionResponse{PayoffResult: *result}
	if !result.IsComplete {
		resp.SuggestedPayment = suggestPayment(input)
	}

	s.logger.Debugw("projected debt",
		"months", result.Months,
		"complete", result.IsComplete,
		"failure", result.FailureReason,
	)
	return resp, nil
}

// WhatIf compares the plain projection against one with the requested
// extra payment and skipped months.
func (s *PlannerService) WhatIf(input domain.ProjectionInput) (domain.WhatIfResult, error) {
	if err := validateProjection(input); err != nil {
		return domain.WhatIfResult{}, err
	}

	result := payoff.WhatIf(input.Balance, input.MonthlyPayment, input.AnnualInterestRate, input.Options(), s.now())
	if result == nil {
		return domain.WhatIfResult{}, fmt.Errorf("%w: balance and monthly payment must be positive", ErrInvalidInput)
	}
	return *result, nil
}

func (s *PlannerService) Simulate(input domain.PlanInput) (domain.StrategyResult, error) {
	if !input.Strategy.Valid() {
		return domain.StrategyResult{}, fmt.Errorf("%w: strategy must be %q or %q",
			ErrInvalidInput, domain.StrategySnowball, domain.StrategyAvalanche)
	}
	if err := validateDebts(input.Debts); err != nil {
		return domain.StrategyResult{}, err
	}

	result := payoff.Simulate(input.Debts, input.MonthlyBudget, input.Strategy, s.now())
	s.logger.Debugw("simulated strategy",
		"strategy", result.Strategy,
		"debts", len(input.Debts),
		"successful", result.IsSuccessful,
		"failure", result.FailureReason,
	)
	return result, nil
}

// Compare runs both strategies and recommends one. Results are cached per
// request and calendar day, and every freshly computed comparison is saved
// to the plan history. Neither the cache nor the store can fail the call.
func (s *PlannerService) Compare(ctx context.Context, input domain.PlanInput) (domain.StrategyComparison, error) {
	if err := validateDebts(input.Debts); err != nil {
		return domain.StrategyComparison{}, err
	}
	input.Strategy = ""

	now := s.now()
	key, err := comparisonKey(input, now)
	if err != nil {
		s.logger.Warnw("failed to build comparison cache key", "error", err)
	}

	if key != "" {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var comparison domain.StrategyComparison
			if err := json.Unmarshal([]byte(cached), &comparison); err == nil {
				s.logger.Debugw("comparison cache hit", "key", key)
				rebasePayoffDate(&comparison.Snowball, now)
				rebasePayoffDate(&comparison.Avalanche, now)
				return comparison, nil
			}
			s.logger.Warnw("discarding unreadable cached comparison", "key", key)
		}
	}

	comparison := payoff.Compare(input.Debts, input.MonthlyBudget, now)

	if key != "" {
		if encoded, err := json.Marshal(comparison); err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
				s.logger.Warnw("failed to cache comparison", "key", key, "error", err)
			}
		}
	}

	snapshot := domain.PlanSnapshot{
		ID:         uuid.NewString(),
		CreatedAt:  now.UTC(),
		Input:      input,
		Comparison: comparison,
	}
	if err := s.plans.Save(ctx, snapshot); err != nil {
		s.logger.Warnw("failed to save plan snapshot", "id", snapshot.ID, "error", err)
	}

	s.logger.Infow("compared strategies",
		"debts", len(input.Debts),
		"recommendation", comparison.Recommendation,
		"reason", comparison.Reason,
		"interestSaved", comparison.InterestSaved,
	)
	return comparison, nil
}

// rebasePayoffDate moves a cached result's payoff date onto now. Cached
// results are shared for the whole day, and earlier callers saw an earlier
// "now".
func rebasePayoffDate(result *domain.StrategyResult, now time.Time) {
	if result.Months == nil || result.PayoffDate == nil {
		return
	}
	payoffDate := now.AddDate(0, *result.Months, 0)
	result.PayoffDate = &payoffDate
}

// RequiredPayment finds the fixed monthly payment that clears a debt within
// the requested term, with the totals that payment produces.
func (s *PlannerService) RequiredPayment(input domain.PaymentTargetInput) (domain.PaymentTarget, error) {
	if input.Balance <= 0 || math.IsNaN(input.Balance) || math.IsInf(input.Balance, 0) {
		return domain.PaymentTarget{}, fmt.Errorf("%w: balance must be positive", ErrInvalidInput)
	}
	if input.Balance > MaxDebtAmount {
		return domain.PaymentTarget{}, fmt.Errorf("%w: balance exceeds the maximum of $%.2f", ErrInvalidInput, MaxDebtAmount)
	}
	if err := validateRate(input.AnnualInterestRate); err != nil {
		return domain.PaymentTarget{}, err
	}
	if input.TermMonths <= 0 || input.TermMonths > MaxTermMonths {
		return domain.PaymentTarget{}, fmt.Errorf("%w: term must be between 1 and %d months", ErrInvalidInput, MaxTermMonths)
	}

	payment, ok := payoff.RequiredPayment(input.Balance, input.AnnualInterestRate, input.TermMonths)
	if !ok {
		return domain.PaymentTarget{}, fmt.Errorf("%w: no payment retires this balance", ErrInvalidInput)
	}

	target := domain.PaymentTarget{TermMonths: input.TermMonths, MonthlyPayment: payment}
	projection := payoff.Project(input.Balance, payment, input.AnnualInterestRate,
		domain.ProjectionOptions{MaxMonths: input.TermMonths}, s.now())
	if projection != nil {
		target.TotalInterest = projection.TotalInterest
		target.TotalPaid = projection.TotalPaid
		if !projection.IsComplete {
			s.logger.Warnw("required payment did not clear balance within term",
				"term", input.TermMonths, "payment", payment)
		}
	}
	return target, nil
}

// History lists saved comparisons, newest first.
func (s *PlannerService) History(ctx context.Context, limit int) ([]domain.PlanSnapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	plans, err := s.plans.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan history: %w", err)
	}
	return plans, nil
}

// suggestPayment returns the payment that would finish inside the horizon
// left after skipped months, if there is one. Interest capitalized during
// skipped months is added to the balance first.
func suggestPayment(input domain.ProjectionInput) *float64 {
	horizon := input.MaxMonths
	if horizon <= 0 {
		horizon = payoff.MaxMonths
	}
	skipped := 0
	if input.SkipMonths > 0 {
		skipped = int(math.Min(math.Trunc(input.SkipMonths), float64(horizon)))
	}
	horizon -= skipped
	if horizon <= 0 {
		return nil
	}

	balance := input.Balance
	if input.ExtraPayment > 0 {
		balance -= input.ExtraPayment
	}
	if input.AnnualInterestRate > 0 {
		balance *= math.Pow(1+input.AnnualInterestRate/12, float64(skipped))
	}
	payment, ok := payoff.RequiredPayment(balance, input.AnnualInterestRate, horizon)
	if !ok {
		return nil
	}
	return &payment
}
