package modeling

import (
	"fmt"
	"math"
	"slices"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// Warning codes produced by Preflight.
const (
	WarnInvalidBudget      = "invalid_budget"
	WarnIndustryUnknown    = "industry_unknown"
	WarnBudgetBelowMin     = "budget_below_minimum"
	WarnSeasonOverflow     = "season_overflow"
	WarnSeasonUnknown      = "season_unknown"
	WarnPlatformsDefault   = "platforms_defaulted"
	WarnPlatformUnknown    = "platform_unknown"
	WarnPlatformMismatch   = "platform_incompatible"
	WarnBelowPlatformFloor = "budget_below_platform_floor"
	WarnMarginClamped      = "profit_margin_clamped"
)

// Preflight returns advisory warnings for a brief. It never blocks and never
// fails; the caller decides whether to confirm with the user before
// running the pipeline.
func Preflight(repo port.BenchmarkRepository, brief domain.CampaignBrief, maxSeasons int) []domain.Warning {
	warnings := []domain.Warning{}

	budget := brief.Budget
	if budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		warnings = append(warnings, domain.Warning{
			Code:     WarnInvalidBudget,
			Severity: domain.SeverityCritical,
			Message:  "Budget must be a positive amount",
			Context:  map[string]any{"budget": budget},
		})
	}

	industryKey, industry, found := ResolveIndustry(repo, brief.Industry)
	if !found {
		warnings = append(warnings, domain.Warning{
			Code:     WarnIndustryUnknown,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("No benchmarks for industry %q; default benchmarks are used", brief.Industry),
			Context:  map[string]any{"industry": brief.Industry},
		})
	}
	if industry.MinBudget > 0 && budget > 0 && budget < industry.MinBudget {
		warnings = append(warnings, domain.Warning{
			Code:     WarnBudgetBelowMin,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Budget is below the recommended minimum for %s", industryKey),
			Context:  map[string]any{"budget": budget, "minimum": industry.MinBudget, "industry": industryKey},
		})
	}

	seasons := ResolveSeasons(brief.Seasons, maxSeasons)
	if len(seasons.Dropped) > 0 {
		warnings = append(warnings, domain.Warning{
			Code:     WarnSeasonOverflow,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Only %d seasons can be modelled at once; the rest are ignored", len(seasons.Active)),
			Context:  map[string]any{"active": seasons.Active, "dropped": seasons.Dropped},
		})
	}
	for _, s := range seasons.Active {
		if _, ok := repo.Season(s); !ok {
			warnings = append(warnings, domain.Warning{
				Code:     WarnSeasonUnknown,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("Season %q has no benchmarks and is treated as neutral", s),
				Context:  map[string]any{"season": s},
			})
		}
	}

	platforms := domain.NormalizeKeys(brief.Platforms)
	if len(platforms) == 0 {
		warnings = append(warnings, domain.Warning{
			Code:     WarnPlatformsDefault,
			Severity: domain.SeverityInfo,
			Message:  fmt.Sprintf("No platforms selected; the recommended platforms for %s will be used", industryKey),
			Context:  map[string]any{"recommended": industry.RecommendedPlatforms},
		})
		platforms = industry.RecommendedPlatforms
	}
	for _, p := range platforms {
		if _, ok := repo.Platform(p); !ok {
			warnings = append(warnings, domain.Warning{
				Code:     WarnPlatformUnknown,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("Platform %q is not supported and will be projected as zero", p),
				Context:  map[string]any{"platform": p},
			})
		}
	}
	warnings = append(warnings, CompatibilityWarnings(industryKey, industry, platforms)...)

	if n := len(platforms); n > 0 && budget > 0 {
		share := budget / float64(n)
		for _, p := range platforms {
			pl, ok := repo.Platform(p)
			if !ok || pl.MinBudget <= 0 || share >= pl.MinBudget {
				continue
			}
			warnings = append(warnings, domain.Warning{
				Code:     WarnBelowPlatformFloor,
				Severity: domain.SeverityInfo,
				Message:  fmt.Sprintf("An even split leaves %s below its minimum spend", p),
				Context:  map[string]any{"platform": p, "evenShare": share, "floor": pl.MinBudget},
			})
		}
	}

	if brief.ProfitMargin < 0 || brief.ProfitMargin > 100 {
		warnings = append(warnings, domain.Warning{
			Code:     WarnMarginClamped,
			Severity: domain.SeverityInfo,
			Message:  "Profit margin must be between 0 and 100 percent and was clamped",
			Context:  map[string]any{"profitMargin": brief.ProfitMargin},
		})
	}
	return warnings
}

// CompatibilityWarnings flags selected platforms the industry considers a
// poor fit. The check is advisory only.
func CompatibilityWarnings(industryKey string, industry domain.IndustryBenchmark, platforms []string) []domain.Warning {
	var out []domain.Warning
	for _, p := range platforms {
		if slices.Contains(industry.IncompatiblePlatforms, p) {
			out = append(out, domain.Warning{
				Code:     WarnPlatformMismatch,
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("%s is rarely effective for %s", p, industryKey),
				Context:  map[string]any{"platform": p, "industry": industryKey},
			})
		}
	}
	return out
}
