package port

import (
	"context"

	"mesa-planner/internal/core/domain"
)

// PlanRepository persists finished reports. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe.
type PlanRepository interface {
	// SavePlan stores a report under its trace id.
	SavePlan(ctx context.Context, brief domain.CampaignBrief, report *domain.Report) error
	// GetPlan returns a report by trace id, or domain.ErrPlanNotFound.
	GetPlan(ctx context.Context, traceID string) (*domain.Report, error)
	// GetStats returns aggregated statistics for plans in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
