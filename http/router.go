package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything the health check can probe, such as the cache or the
// plan store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Plans       *PlanHandler
	Terms       *TermRecommendationHandler
	RateLimiter *RateLimiter
	Health      map[string]Pinger
}

// NewRouter wires the planner routes. Every /debt route shares one rate
// limiter; /healthz is not limited.
func NewRouter(logger *zap.SugaredLogger, deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := map[string]string{}
		for name, p := range deps.Health {
			if err := p.Ping(ctx); err != nil {
				logger.Errorw("health probe failed", "dependency", name, "error", err)
				status = http.StatusServiceUnavailable
				checks[name] = err.Error()
				continue
			}
			checks[name] = "ok"
		}

		payload := map[string]any{"status": "ok", "checks": checks}
		if status != http.StatusOK {
			payload["status"] = "degraded"
		}
		writeJSON(w, status, payload)
	})

	limited := func(h http.HandlerFunc) http.Handler {
		if deps.RateLimiter == nil {
			return h
		}
		return RateLimitMiddleware(deps.RateLimiter, h)
	}

	if deps.Plans != nil {
		mux.Handle("/debt/project", limited(deps.Plans.Project))
		mux.Handle("/debt/what-if", limited(deps.Plans.WhatIf))
		mux.Handle("/debt/simulate", limited(deps.Plans.Simulate))
		mux.Handle("/debt/compare", limited(deps.Plans.Compare))
		mux.Handle("/debt/required-payment", limited(deps.Plans.RequiredPayment))
		mux.Handle("/debt/plans", limited(deps.Plans.History))
	}
	if deps.Terms != nil {
		mux.Handle("/debt/recommend-term", limited(deps.Terms.RecommendTerm))
	}

	return loggingMiddleware(logger, mux)
}

func loggingMiddleware(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Infow("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
