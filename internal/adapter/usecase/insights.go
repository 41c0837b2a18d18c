package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/modeling"
)

func buildInsights(seasons domain.SeasonResolution, alloc domain.AllocationResult, results []domain.ProjectionResult, rec modeling.Reconciliation) domain.AdvancedInsights {
	ins := domain.AdvancedInsights{
		Seasons:            seasons,
		OriginalAllocation: alloc.Original,
		Modifiers:          make(map[string]domain.ComposedModifiers, len(results)),
		BudgetShare:        make(map[string]float64, len(alloc.Allocation)),
		FailedPlatforms:    rec.Failed,
	}
	for _, res := range results {
		if res.OK() {
			ins.Modifiers[res.Platform] = res.Modifiers
		}
	}
	if total := alloc.Allocation.Total(); total > 0 {
		for _, pb := range alloc.Allocation {
			ins.BudgetShare[pb.Platform] = math.Round(pb.Amount/total*10000) / 100
		}
	}

	bestROAS, lowestCAC := 0.0, math.Inf(1)
	for _, p := range rec.PerPlatform {
		if p.ROAS > bestROAS {
			bestROAS = p.ROAS
			ins.BestROASPlatform = p.Platform
		}
		if p.CAC > 0 && p.CAC < lowestCAC {
			lowestCAC = p.CAC
			ins.LowestCACPlatform = p.Platform
		}
	}
	return ins
}

// fallbackNarrative builds report text from the numbers alone. Confidence
// starts at 0.5 and drops by 0.1 per critical anomaly, never below 0.1.
func fallbackNarrative(brief domain.CampaignBrief, p domain.NarrativePayload, ins domain.AdvancedInsights, currency string) *domain.NarrativeContent {
	t := p.Kpis.Totals
	money := func(v float64) string {
		return currency + " " + strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}

	narrative := fmt.Sprintf(
		"A budget of %s across %d platform(s) is projected to deliver %d impressions, %d clicks and %d conversions, returning %s in revenue at a ROAS of %.2f.",
		money(t.Budget), len(p.Allocation), t.Impressions, t.Clicks, t.Conversions, money(t.Revenue), t.ROAS,
	)
	if len(p.Seasons.Active) > 0 {
		narrative += fmt.Sprintf(" Seasonality reflects %s.", strings.Join(p.Seasons.Active, " and "))
	}

	recs := []string{}
	if ins.BestROASPlatform != "" {
		recs = append(recs, fmt.Sprintf("Prioritise %s, which has the highest projected ROAS.", ins.BestROASPlatform))
	}
	if ins.LowestCACPlatform != "" && ins.LowestCACPlatform != ins.BestROASPlatform {
		recs = append(recs, fmt.Sprintf("%s acquires customers at the lowest projected cost.", ins.LowestCACPlatform))
	}
	if len(ins.FailedPlatforms) > 0 {
		recs = append(recs, fmt.Sprintf("Review %s: no benchmark data was available, so it was projected at zero.",
			strings.Join(ins.FailedPlatforms, ", ")))
	}
	if t.BreakEvenROAS > 0 && t.ROAS < t.BreakEvenROAS {
		recs = append(recs, fmt.Sprintf("Projected ROAS %.2f is below the break-even ROAS of %.2f at a %.0f%% margin.",
			t.ROAS, t.BreakEvenROAS, brief.ProfitMargin))
	}

	explain := make([]string, 0, len(p.Allocation))
	for _, pb := range p.Allocation {
		m, ok := ins.Modifiers[pb.Platform]
		if !ok {
			continue
		}
		explain = append(explain, fmt.Sprintf("%s: CPM x%.2f, CTR x%.2f, CVR x%.2f against the platform baseline",
			pb.Platform, m.CPM, m.CTR, m.CVR))
	}

	confidence := 0.5
	for _, f := range p.Anomalies {
		if f.Severity == domain.SeverityCritical {
			confidence -= 0.1
		}
	}
	return &domain.NarrativeContent{
		Narrative:       narrative,
		Recommendations: recs,
		Explainability:  explain,
		Confidence:      math.Max(0.1, confidence),
	}
}
