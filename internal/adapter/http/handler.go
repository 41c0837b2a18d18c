package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-planner/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP over the planner use case.
type Handler struct {
	svc    port.PlannerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. A non-nil
// metrics handler is mounted at /metrics.
func NewHandler(svc port.PlannerUseCase, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", h.handlePlan)
		r.Post("/plans/preflight", h.handlePreflight)
		r.Get("/plans/{traceId}", h.handleGetPlan)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
