package db

import (
	"context"
	"fmt"
	"math/rand"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

var (
	seedIndustries = []string{"ecommerce", "real_estate", "healthcare", "education", "restaurants", "fashion", "technology", "automotive", "finance"}
	seedGoals      = []string{"awareness", "traffic", "leads", "sales", "conversions"}
	seedSeasons    = []string{"ramadan", "white_friday", "back_to_school", "national_day", "regular"}
	seedPlatforms  = []string{"meta", "instagram", "snapchat", "tiktok", "google_ads", "youtube", "linkedin"}
)

// Seed runs n demo briefs through the planner so that a fresh plan store
// has data for the stats endpoint. Plans are persisted by the planner
// itself. The seed value makes the briefs reproducible. It returns the
// number of runs that failed.
func Seed(ctx context.Context, planner port.PlannerUseCase, n int, seed int64) (int, error) {
	r := rand.New(rand.NewSource(seed))
	failed := 0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		out := planner.Plan(ctx, demoBrief(r))
		if out.Failed() {
			failed++
		}
	}
	if failed == n && n > 0 {
		return failed, fmt.Errorf("all %d seed runs failed", n)
	}
	return failed, nil
}

func demoBrief(r *rand.Rand) domain.CampaignBrief {
	pick := func(from []string, k int) []string {
		idx := r.Perm(len(from))[:k]
		out := make([]string, 0, k)
		for _, i := range idx {
			out = append(out, from[i])
		}
		return out
	}
	return domain.CampaignBrief{
		Industry:     seedIndustries[r.Intn(len(seedIndustries))],
		Budget:       float64(10+r.Intn(191)) * 500, // 5,000 to 100,000
		Goals:        pick(seedGoals, 1),
		Seasons:      pick(seedSeasons, 1+r.Intn(2)),
		Platforms:    pick(seedPlatforms, 2+r.Intn(3)),
		ProfitMargin: float64(15 + r.Intn(40)),
		Audience: domain.Audience{
			AgeGroups: pick([]string{"18-24", "25-34", "35-44", "45-54"}, 1+r.Intn(2)),
			Gender:    []string{"all", "male", "female"}[r.Intn(3)],
			Locations: pick([]string{"riyadh", "jeddah", "dammam"}, 1),
			Devices:   pick([]string{"mobile", "desktop"}, 1),
		},
	}
}
