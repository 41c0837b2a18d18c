package modeling

import (
	"math"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// Projector derives per-platform KPIs from a budget and the benchmark
// tables.
type Projector struct {
	repo port.BenchmarkRepository
	caps CapTable
}

// NewProjector creates a projector. A nil caps table selects
// DefaultCapTable.
func NewProjector(repo port.BenchmarkRepository, caps CapTable) *Projector {
	if caps == nil {
		caps = DefaultCapTable()
	}
	return &Projector{repo: repo, caps: caps}
}

// Modifiers composes the bounded CPM, CTR and CVR multipliers of a
// platform for a scenario.
func (p *Projector) Modifiers(platform string, s Scenario) domain.ComposedModifiers {
	f := collectFactors(p.repo, platform, s)
	return domain.ComposedModifiers{
		CPM: Combine(f.cpm(), p.caps.Policy(domain.KPICPM)),
		CTR: Combine(f.ctr(), p.caps.Policy(domain.KPICTR)),
		CVR: Combine(f.cvr(), p.caps.Policy(domain.KPICVR)),
	}
}

// Project computes the KPI set of one platform. An unknown platform yields
// a result carrying a *domain.ProjectionError and a zero KPI set.
func (p *Projector) Project(platform string, budget float64, s Scenario) domain.ProjectionResult {
	base, ok := p.repo.Platform(platform)
	if !ok {
		return domain.ProjectionResult{
			Platform: platform,
			Err:      &domain.ProjectionError{Platform: platform, Err: domain.ErrUnknownPlatform},
		}
	}
	mods := p.Modifiers(platform, s)

	cpm := base.BaseCPM * mods.CPM
	ctr := base.BaseCTR * mods.CTR
	cvr := base.BaseCVR * mods.CVR

	k := domain.KpiSet{Budget: budget, CPM: cpm, CTR: ctr, CVR: cvr}
	if cpm > 0 {
		k.Impressions = int64(math.Round(budget / cpm * 1000))
	}
	k.Clicks = int64(math.Round(float64(k.Impressions) * ctr / 100))
	k.Conversions = int64(math.Round(float64(k.Clicks) * cvr / 100))
	if ctr > 0 {
		// clicks per mille is ctr*10
		k.CPC = cpm / (ctr * 10)
	}
	k.Revenue = float64(k.Conversions) * s.AvgOrderValue
	if budget > 0 {
		k.ROAS = k.Revenue / budget
	}
	if k.Conversions > 0 {
		k.CAC = budget / float64(k.Conversions)
	}
	return domain.ProjectionResult{Platform: platform, Kpis: k, Modifiers: mods}
}

// ProjectAll projects every platform of an allocation in allocation order.
// Failures are isolated per platform.
func (p *Projector) ProjectAll(alloc domain.Allocation, s Scenario) []domain.ProjectionResult {
	out := make([]domain.ProjectionResult, 0, len(alloc))
	for _, pb := range alloc {
		out = append(out, p.Project(pb.Platform, pb.Amount, s))
	}
	return out
}
