package http

import (
	"net/http"

	"debt-planner/domain"
	"debt-planner/service"

	"go.uber.org/zap"
)

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
	logger  *zap.SugaredLogger
}

func NewTermRecommendationHandler(service *service.TermRecommendationService, logger *zap.SugaredLogger) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service, logger: logger}
}

func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	var input domain.TermRecommendationInput
	if !decodePost(w, r, &input) {
		return
	}

	result, err := h.service.RecommendTerm(input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
