package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"debt-planner/domain"
	"debt-planner/service"

	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

type PlanHandler struct {
	service *service.PlannerService
	logger  *zap.SugaredLogger
}

func NewPlanHandler(service *service.PlannerService, logger *zap.SugaredLogger) *PlanHandler {
	return &PlanHandler{service: service, logger: logger}
}

func (h *PlanHandler) Project(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodePost(w, r, &input) {
		return
	}

	result, err := h.service.Project(input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PlanHandler) WhatIf(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodePost(w, r, &input) {
		return
	}

	result, err := h.service.WhatIf(input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PlanHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if !decodePost(w, r, &input) {
		return
	}

	result, err := h.service.Simulate(input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PlanHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if !decodePost(w, r, &input) {
		return
	}

	result, err := h.service.Compare(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PlanHandler) RequiredPayment(w http.ResponseWriter, r *http.Request) {
	var input domain.PaymentTargetInput
	if !decodePost(w, r, &input) {
		return
	}

	result, err := h.service.RequiredPayment(input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// History lists saved comparisons. An optional ?limit= caps the result.
func (h *PlanHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	plans, err := h.service.History(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

func decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
