package http

import (
	"bytes"
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

func newTestHandler(t *testing.T) (*PlanHandler, *repository.PlanRepositoryMemory) {
	t.Helper()
	plans := repository.NewPlanRepositoryMemory()
	svc := service.NewPlannerService(plans, repository.NewMemoryCache(), zap.NewNop().Sugar(),
		service.WithClock(func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }),
	)
	return NewPlanHandler(svc, zap.NewNop().Sugar()), plans
}

func post(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestProjectHandler_OK(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Project(w, post("/debt/project", `{
		"balance": 1200,
		"monthlyPayment": 100,
		"annualInterestRate": 0
	}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var resp domain.ProjectionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.IsComplete || resp.Months != 12 {
		t.Errorf("expected complete 12 month payoff, got complete=%v months=%d", resp.IsComplete, resp.Months)
	}
	if len(resp.Schedule) != 12 {
		t.Errorf("expected 12 schedule entries, got %d", len(resp.Schedule))
	}
}

func TestProjectHandler_MethodNotAllowed(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Project(w, httptest.NewRequest(http.MethodGet, "/debt/project", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("expected Allow: POST, got %q", allow)
	}
}

func TestProjectHandler_UnsupportedMediaType(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/debt/project", bytes.NewBufferString(`{"balance": 100, "monthlyPayment": 10}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	handler.Project(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestProjectHandler_BadRequest(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Project(w, post("/debt/project", `{invalid-json}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.Project(w, post("/debt/project", `{"balance": -10, "monthlyPayment": 100}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative balance, got %d", w.Code)
	}
}

func TestWhatIfHandler_OK(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.WhatIf(w, post("/debt/what-if", `{"balance": 1000, "monthlyPayment": 100, "extraPayment": 200}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.WhatIfResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.MonthsDelta == nil || *resp.MonthsDelta != 2 {
		t.Errorf("expected months delta 2, got %v", resp.MonthsDelta)
	}
}

func TestSimulateHandler(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Simulate(w, post("/debt/simulate", `{
		"debts": [
			{"id": "small", "balance": 500, "annualInterestRate": 0},
			{"id": "big", "balance": 600, "annualInterestRate": 0.12}
		],
		"monthlyBudget": 554,
		"strategy": "snowball"
	}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.StrategyResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Months == nil || *resp.Months != 3 {
		t.Errorf("expected 3 months, got %v", resp.Months)
	}

	w = httptest.NewRecorder()
	handler.Simulate(w, post("/debt/simulate", `{"debts": [], "monthlyBudget": 100, "strategy": "random"}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown strategy, got %d", w.Code)
	}
}

func TestCompareHandler_RecordsHistory(t *testing.T) {
	handler, plans := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Compare(w, post("/debt/compare", `{
		"debts": [
			{"id": "small", "balance": 500, "annualInterestRate": 0},
			{"id": "big", "balance": 600, "annualInterestRate": 0.12}
		],
		"monthlyBudget": 554
	}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.StrategyComparison
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Recommendation != domain.StrategyAvalanche || resp.Reason != domain.ReasonTime {
		t.Errorf("expected avalanche by time, got %q by %q", resp.Recommendation, resp.Reason)
	}

	w = httptest.NewRecorder()
	handler.History(w, httptest.NewRequest(http.MethodGet, "/debt/plans?limit=5", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var history struct {
		Plans []domain.PlanSnapshot `json:"plans"`
	}
	if err := json.NewDecoder(w.Body).Decode(&history); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(history.Plans) != 1 || plans.Len() != 1 {
		t.Errorf("expected one saved plan, got %d", len(history.Plans))
	}
}

func TestHistoryHandler_BadLimit(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.History(w, httptest.NewRequest(http.MethodGet, "/debt/plans?limit=ten", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.History(w, httptest.NewRequest(http.MethodPost, "/debt/plans", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestRequiredPaymentHandler(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.RequiredPayment(w, post("/debt/required-payment", `{"balance": 1200, "annualInterestRate": 0, "termMonths": 12}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.PaymentTarget
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.MonthlyPayment != 100 {
		t.Errorf("expected 100, got %v", resp.MonthlyPayment)
	}

	w = httptest.NewRecorder()
	handler.RequiredPayment(w, post("/debt/required-payment", `{"balance": 1200, "termMonths": 0}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
