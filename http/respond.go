package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"debt-planner/service"

	"go.uber.org/zap"
)

// writeJSON encodes into a buffer before any header is written.
func writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeServiceError maps rejected input to 400 and anything else to 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Errorw("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
