package service

import (
	"testing"

	"debt-planner/domain"
	"debt-planner/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTermService(t *testing.T) *TermRecommendationService {
	t.Helper()
	now := fixedNow
	planner := newTestService(&stubPlanRepository{}, repository.NewMemoryCache(), &now)
	return NewTermRecommendationService(planner, zap.NewNop().Sugar())
}

func TestRecommendTerm_MinimizeInterestPicksShortestTerm(t *testing.T) {
	svc := newTermService(t)

	result, err := svc.RecommendTerm(domain.TermRecommendationInput{
		Balance:            10000,
		AnnualInterestRate: 0.12,
		MinTermMonths:      12,
		MaxTermMonths:      36,
		MaxMonthlyPayment:  1000,
		Preference:         domain.PreferMinimizeInterest,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, result.RecommendedTerm)
	require.Len(t, result.Recommendations, 25)
	top := result.Recommendations[0]
	assert.Equal(t, 888.49, top.MonthlyPayment)
	assert.Equal(t, 8.0, top.Score)
	assert.NotEmpty(t, top.Reason)

	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t, result.Recommendations[i-1].Score, result.Recommendations[i].Score)
	}
}

func TestRecommendTerm_PaymentCapFiltersTerms(t *testing.T) {
	svc := newTermService(t)

	result, err := svc.RecommendTerm(domain.TermRecommendationInput{
		Balance:            10000,
		AnnualInterestRate: 0.12,
		MinTermMonths:      12,
		MaxTermMonths:      36,
		MaxMonthlyPayment:  500,
		Preference:         domain.PreferMinimizeInterest,
	})
	require.NoError(t, err)

	assert.Equal(t, 23, result.RecommendedTerm)
	assert.Len(t, result.Recommendations, 14)
	for _, r := range result.Recommendations {
		assert.LessOrEqual(t, r.MonthlyPayment, 500.0)
	}
}

func TestRecommendTerm_DefaultsToBalanced(t *testing.T) {
	svc := newTermService(t)

	result, err := svc.RecommendTerm(domain.TermRecommendationInput{
		Balance:           1200,
		MinTermMonths:     10,
		MaxTermMonths:     12,
		MaxMonthlyPayment: 150,
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, 12, result.RecommendedTerm)
	assert.Equal(t, "Balance between monthly payment and total cost", result.Recommendations[0].Reason)
}

func TestRecommendTerm_Errors(t *testing.T) {
	svc := newTermService(t)
	valid := domain.TermRecommendationInput{
		Balance:           10000,
		MinTermMonths:     12,
		MaxTermMonths:     24,
		MaxMonthlyPayment: 1000,
	}

	tests := []struct {
		name   string
		mutate func(*domain.TermRecommendationInput)
	}{
		{"balance", func(in *domain.TermRecommendationInput) { in.Balance = 0 }},
		{"inverted range", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 30 }},
		{"range too wide", func(in *domain.TermRecommendationInput) {
			in.MinTermMonths = 1
			in.MaxTermMonths = 200
		}},
		{"term too long", func(in *domain.TermRecommendationInput) { in.MaxTermMonths = 700 }},
		{"payment cap", func(in *domain.TermRecommendationInput) { in.MaxMonthlyPayment = 0 }},
		{"preference", func(in *domain.TermRecommendationInput) { in.Preference = "cheapest" }},
		{"nothing affordable", func(in *domain.TermRecommendationInput) { in.MaxMonthlyPayment = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.RecommendTerm(in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
