package httpadapter

import (
	"encoding/json"
	"net/http"

	"mesa-planner/internal/core/domain"
)

const maxBriefBytes = 1 << 20

func decodeBrief(w http.ResponseWriter, r *http.Request) (domain.CampaignBrief, bool) {
	var brief domain.CampaignBrief
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBriefBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&brief); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return brief, false
	}
	return brief, true
}

// handlePlan runs the planner for the brief in the request body. A report
// is returned with HTTP 200; a run that ended in the failed state is
// returned as {"errors": [...]} with HTTP 422. Malformed JSON produces
// HTTP 400.
func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	brief, ok := decodeBrief(w, r)
	if !ok {
		return
	}
	out := h.svc.Plan(r.Context(), brief)
	status := http.StatusOK
	if out.Failed() {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, out)
}

// handlePreflight returns the advisory warnings for a brief.
func (h *Handler) handlePreflight(w http.ResponseWriter, r *http.Request) {
	brief, ok := decodeBrief(w, r)
	if !ok {
		return
	}
	warnings := h.svc.Preflight(r.Context(), brief)
	if warnings == nil {
		warnings = []domain.Warning{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"warnings": warnings})
}
