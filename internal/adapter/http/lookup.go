package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-planner/internal/core/domain"
)

// handleGetPlan returns a stored report by its {traceId} path parameter.
// Unknown plans, and every lookup when persistence is disabled, result in
// HTTP 404.
func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	traceID := chi.URLParam(r, "traceId")
	if traceID == "" {
		http.Error(w, "missing trace id", http.StatusBadRequest)
		return
	}
	report, err := h.svc.GetPlan(r.Context(), traceID)
	if errors.Is(err, domain.ErrPlanNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("get plan error", slog.String("trace_id", traceID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
