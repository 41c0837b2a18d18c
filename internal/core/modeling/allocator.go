package modeling

import (
	"fmt"
	"math"
	"strings"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// Allocator splits a brief's budget across platforms using industry
// weights adjusted by the primary goal, then hands the split to the
// tactical reallocator.
type Allocator struct {
	repo        port.BenchmarkRepository
	reallocator *Reallocator
}

// NewAllocator creates an allocator. A nil reallocator skips tactical
// reallocation.
func NewAllocator(repo port.BenchmarkRepository, reallocator *Reallocator) *Allocator {
	return &Allocator{repo: repo, reallocator: reallocator}
}

// Allocate returns the final split, the split before reallocation and the
// trace explaining both. The amounts always sum to brief.Budget: every
// platform but the last gets its rounded weighted share and the last one
// absorbs the remainder. Shares are capped by what is left so that the
// remainder is never negative. A non-positive budget is allocated as is to
// the last platform.
func (a *Allocator) Allocate(brief domain.CampaignBrief) domain.AllocationResult {
	trace := []string{}

	industryKey, industry, found := ResolveIndustry(a.repo, brief.Industry)
	if !found && brief.Industry != "" {
		trace = append(trace, fmt.Sprintf("Industry %q has no benchmarks; using default platform weights", brief.Industry))
	}

	platforms := domain.NormalizeKeys(brief.Platforms)
	if len(platforms) == 0 {
		platforms = industry.RecommendedPlatforms
		if len(platforms) == 0 {
			_, def, _ := ResolveIndustry(a.repo, domain.DefaultIndustry)
			platforms = def.RecommendedPlatforms
		}
		trace = append(trace, fmt.Sprintf("No platforms selected; using recommended platforms for %s: %s",
			industryKey, strings.Join(platforms, ", ")))
	}
	if len(platforms) == 0 {
		return domain.AllocationResult{Allocation: domain.Allocation{}, Original: domain.Allocation{}, Trace: trace}
	}

	goal := brief.PrimaryGoal()
	goalWeights, hasGoal := a.repo.GoalWeights(goal)
	if hasGoal {
		trace = append(trace, fmt.Sprintf("Applied %q goal weights", goal))
	}

	weights := make([]float64, len(platforms))
	var total float64
	for i, p := range platforms {
		w, ok := industry.PlatformWeights[p]
		if !ok {
			w = 1
		}
		if hasGoal {
			if gw, ok := goalWeights[p]; ok {
				w *= gw
			}
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	budget := brief.Budget
	alloc := make(domain.Allocation, len(platforms))
	var assigned float64
	for i, p := range platforms {
		if i == len(platforms)-1 {
			alloc[i] = domain.PlatformBudget{Platform: p, Amount: budget - assigned}
			break
		}
		amount := math.Round(weights[i] / total * budget)
		amount = math.Max(0, math.Min(amount, budget-assigned))
		alloc[i] = domain.PlatformBudget{Platform: p, Amount: amount}
		assigned += amount
	}

	original := alloc.Clone()
	if a.reallocator != nil {
		var rtrace []string
		alloc, rtrace = a.reallocator.Rebalance(alloc, industry)
		trace = append(trace, rtrace...)
	}
	return domain.AllocationResult{Allocation: alloc, Original: original, Trace: trace}
}
