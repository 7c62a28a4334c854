package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"debt-planner/domain"
	"debt-planner/repository"
	"debt-planner/service"

	"go.uber.org/zap"
)

func newTermHandler() *TermRecommendationHandler {
	logger := zap.NewNop().Sugar()
	planner := service.NewPlannerService(repository.NewPlanRepositoryMemory(), repository.NewMemoryCache(), logger,
		service.WithClock(func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }),
	)
	return NewTermRecommendationHandler(service.NewTermRecommendationService(planner, logger), logger)
}

func TestRecommendTermHandler_OK(t *testing.T) {
	handler := newTermHandler()

	w := httptest.NewRecorder()
	handler.RecommendTerm(w, post("/debt/recommend-term", `{
		"balance": 10000,
		"annualInterestRate": 0.12,
		"minTermMonths": 12,
		"maxTermMonths": 36,
		"maxMonthlyPayment": 500,
		"preference": "minimize_interest"
	}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.TermRecommendationResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.RecommendedTerm != 23 {
		t.Errorf("expected term 23, got %d", resp.RecommendedTerm)
	}
}

func TestRecommendTermHandler_NoAffordableTerm(t *testing.T) {
	handler := newTermHandler()

	w := httptest.NewRecorder()
	handler.RecommendTerm(w, post("/debt/recommend-term", `{
		"balance": 10000,
		"minTermMonths": 12,
		"maxTermMonths": 24,
		"maxMonthlyPayment": 10
	}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
