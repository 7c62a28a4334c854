package service

import (
	"fmt"
	"math"
	"sort"

	"debt-planner/domain"

	"go.uber.org/zap"
)

type TermRecommendationService struct {
	planner *PlannerService
	logger  *zap.SugaredLogger
}

func NewTermRecommendationService(planner *PlannerService, logger *zap.SugaredLogger) *TermRecommendationService {
	return &TermRecommendationService{
		planner: planner,
		logger:  logger,
	}
}

// RecommendTerm prices every term in the requested range, drops the ones
// whose payment exceeds the borrower's limit and ranks the rest by the
// chosen preference.
func (s *TermRecommendationService) RecommendTerm(
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	if input.Preference == "" {
		input.Preference = domain.PreferBalanced
	}
	if err := validateTermRange(input); err != nil {
		return domain.TermRecommendationResult{}, err
	}

	candidates := []domain.TermRecommendation{}
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		target, err := s.planner.RequiredPayment(domain.PaymentTargetInput{
			Balance:            input.Balance,
			AnnualInterestRate: input.AnnualInterestRate,
			TermMonths:         term,
		})
		if err != nil {
			s.logger.Warnw("failed to price term", "term", term, "error", err)
			continue
		}
		if target.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}
		candidates = append(candidates, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: target.MonthlyPayment,
			TotalInterest:  target.TotalInterest,
		})
	}

	if len(candidates) == 0 {
		return domain.TermRecommendationResult{}, fmt.Errorf(
			"%w: no term between %d and %d months fits a payment of %.2f",
			ErrInvalidInput, input.MinTermMonths, input.MaxTermMonths, input.MaxMonthlyPayment)
	}

	scoreTerms(candidates, input)

	// Candidates are built in term order, so equal scores favour the shorter term.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return domain.TermRecommendationResult{
		RecommendedTerm: candidates[0].TermMonths,
		Recommendations: candidates,
	}, nil
}

func validateTermRange(input domain.TermRecommendationInput) error {
	if input.Balance <= 0 || math.IsNaN(input.Balance) || math.IsInf(input.Balance, 0) {
		return fmt.Errorf("%w: balance must be positive", ErrInvalidInput)
	}
	if input.Balance > MaxDebtAmount {
		return fmt.Errorf("%w: balance exceeds the maximum of $%.2f", ErrInvalidInput, MaxDebtAmount)
	}
	if err := validateRate(input.AnnualInterestRate); err != nil {
		return err
	}
	if input.MinTermMonths <= 0 || input.MaxTermMonths <= 0 {
		return fmt.Errorf("%w: terms must be positive", ErrInvalidInput)
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return fmt.Errorf("%w: minimum term is longer than maximum term", ErrInvalidInput)
	}
	if input.MaxTermMonths > MaxTermMonths {
		return fmt.Errorf("%w: maximum term exceeds %d months", ErrInvalidInput, MaxTermMonths)
	}
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return fmt.Errorf("%w: term range exceeds %d months", ErrInvalidInput, MaxTermRangeMonths)
	}
	if input.MaxMonthlyPayment <= 0 || math.IsNaN(input.MaxMonthlyPayment) {
		return fmt.Errorf("%w: maximum monthly payment must be positive", ErrInvalidInput)
	}
	if !input.Preference.Valid() {
		return fmt.Errorf("%w: unknown preference %q", ErrInvalidInput, input.Preference)
	}
	return nil
}

// scoreTerms rates each candidate 0-10 on interest, payment and term length,
// each normalized across the candidates, and weights them by preference.
func scoreTerms(candidates []domain.TermRecommendation, input domain.TermRecommendationInput) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minPayment, maxPayment := math.Inf(1), math.Inf(-1)
	for _, c := range candidates {
		minInterest = math.Min(minInterest, c.TotalInterest)
		maxInterest = math.Max(maxInterest, c.TotalInterest)
		minPayment = math.Min(minPayment, c.MonthlyPayment)
		maxPayment = math.Max(maxPayment, c.MonthlyPayment)
	}
	termRange := float64(input.MaxTermMonths - input.MinTermMonths)

	normalize := func(v, lo, hi float64) float64 {
		if hi-lo <= 0 {
			return 10
		}
		return 10 * (1 - (v-lo)/(hi-lo))
	}

	for i := range candidates {
		c := &candidates[i]
		interestScore := normalize(c.TotalInterest, minInterest, maxInterest)
		paymentScore := normalize(c.MonthlyPayment, minPayment, maxPayment)
		termScore := 10.0
		if termRange > 0 {
			termScore = 10 * (1 - float64(c.TermMonths-input.MinTermMonths)/termRange)
		}

		var score float64
		switch input.Preference {
		case domain.PreferMinimizeInterest:
			score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
			c.Reason = "Term chosen to minimize total interest"
		case domain.PreferMinimizePayment:
			score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
			c.Reason = "Term chosen to minimize the monthly payment"
		default:
			score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
			c.Reason = "Balance between monthly payment and total cost"
		}
		c.Score = math.Round(score*100) / 100
	}
}
