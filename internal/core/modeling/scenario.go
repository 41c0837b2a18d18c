package modeling

import (
	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// Scenario is the brief-level context shared by every platform projection
// of one run: the resolved industry, the active seasons and the audience.
type Scenario struct {
	IndustryKey   string
	Industry      domain.IndustryBenchmark
	Seasons       []string
	Creative      string
	Competition   string
	Audience      domain.Audience
	AvgOrderValue float64
}

// NewScenario resolves the industry and order value of a brief. A brief
// level average order value overrides the industry benchmark.
func NewScenario(repo port.BenchmarkRepository, brief domain.CampaignBrief, seasons domain.SeasonResolution) Scenario {
	key, ind, _ := ResolveIndustry(repo, brief.Industry)
	aov := ind.AvgOrderValue
	if brief.AverageOrderValue > 0 {
		aov = brief.AverageOrderValue
	}
	return Scenario{
		IndustryKey:   key,
		Industry:      ind,
		Seasons:       seasons.Active,
		Creative:      domain.NormalizeKey(brief.CreativeType),
		Competition:   domain.NormalizeKey(brief.Competition),
		Audience:      brief.Audience,
		AvgOrderValue: aov,
	}
}

// ResolveIndustry looks up an industry, falling back to the default
// industry. The boolean reports whether the requested industry was found.
func ResolveIndustry(repo port.BenchmarkRepository, industry string) (string, domain.IndustryBenchmark, bool) {
	key := domain.NormalizeKey(industry)
	if ind, ok := repo.Industry(key); ok && key != "" {
		return key, ind, true
	}
	ind, _ := repo.Industry(domain.DefaultIndustry)
	return domain.DefaultIndustry, ind, false
}
