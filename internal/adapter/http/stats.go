package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"mesa-planner/internal/core/port"
)

// handleStatsOverview returns aggregated statistics over stored plans. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `industry` query
// parameters. Without a period it covers the last 30 days. Invalid
// parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = req.To.Add(-30 * 24 * time.Hour)
	}

	if req.To.Before(req.From) {
		http.Error(w, "'to' is before 'from'", http.StatusBadRequest)
		return
	}

	if industry := q.Get("industry"); industry != "" {
		req.Industry = &industry
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
