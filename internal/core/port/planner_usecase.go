package port

import (
	"context"
	"time"

	"mesa-planner/internal/core/domain"
)

// PlannerUseCase defines the business operations exposed by the planner.
// This interface is the primary port into the application domain.
type PlannerUseCase interface {
	// Plan runs the full modelling pipeline for a brief. It never returns
	// an error: fatal failures are reported in PlanOutcome.Errors.
	Plan(ctx context.Context, brief domain.CampaignBrief) domain.PlanOutcome

	// Preflight returns advisory warnings for a brief without running the
	// pipeline.
	Preflight(ctx context.Context, brief domain.CampaignBrief) []domain.Warning

	// GetPlan returns a previously stored report by trace id. It returns
	// domain.ErrPlanNotFound when the plan is unknown or persistence is
	// disabled.
	GetPlan(ctx context.Context, traceID string) (*domain.Report, error)

	// GetStats returns aggregated statistics over stored plans.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq filters stored plans by creation time and, optionally, industry.
type StatsReq struct {
	From     time.Time
	To       time.Time
	Industry *string
}

// StatsResp contains aggregated figures over stored plans.
type StatsResp struct {
	Plans        int64   `json:"plans"`
	TotalBudget  float64 `json:"totalBudget"`
	TotalRevenue float64 `json:"totalRevenue"`
	AverageROAS  float64 `json:"averageRoas"`
}
