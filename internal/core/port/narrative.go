package port

import (
	"context"

	"mesa-planner/internal/core/domain"
)

// NarrativeGenerator produces insight text for computed KPIs. It is an
// unreliable external collaborator: any error makes the planner fall back
// to a narrative built from the numbers.
type NarrativeGenerator interface {
	GenerateContent(ctx context.Context, payload domain.NarrativePayload) (*domain.NarrativeContent, error)
}

// CompetitorSummarizer writes a short text comparing the plan with the
// typical competitor platform split of an industry.
type CompetitorSummarizer interface {
	Summarize(ctx context.Context, industry string, split map[string]float64, kpis domain.KpiReport) (string, error)
}
