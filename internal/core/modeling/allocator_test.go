package modeling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-planner/internal/adapter/benchmark"
	"mesa-planner/internal/core/domain"
)

func newAllocator(repo *benchmark.Repository) *Allocator {
	return NewAllocator(repo, NewReallocator(repo, "SAR"))
}

func TestAllocateIndustryWeights(t *testing.T) {
	repo := fixtureRepo(t)
	res := newAllocator(repo).Allocate(domain.CampaignBrief{
		Industry:  "Retail",
		Budget:    10000,
		Platforms: []string{"meta", "google_ads", "snapchat"},
	})

	assert.Equal(t, domain.Allocation{
		{Platform: "meta", Amount: 6000},
		{Platform: "google_ads", Amount: 2000},
		{Platform: "snapchat", Amount: 2000},
	}, res.Original)
	assert.Equal(t, domain.Allocation{
		{Platform: "meta", Amount: 5000},
		{Platform: "google_ads", Amount: 3000},
		{Platform: "snapchat", Amount: 2000},
	}, res.Allocation)
	assert.Contains(t, res.Trace, "Moved SAR 1000 from meta to google_ads to reach its SAR 3000 minimum")
	assert.Contains(t, res.Trace, "Advisory: google_ads has SAR 3000, below the recommended SAR 5000; search needs volume")
}

func TestAllocatePrimaryGoalOnly(t *testing.T) {
	repo := fixtureRepo(t)
	res := NewAllocator(repo, nil).Allocate(domain.CampaignBrief{
		Industry:  "retail",
		Budget:    10000,
		Goals:     []string{"sales", "awareness"},
		Platforms: []string{"meta", "google_ads", "snapchat"},
	})

	assert.Equal(t, domain.Allocation{
		{Platform: "meta", Amount: 4286},
		{Platform: "google_ads", Amount: 4286},
		{Platform: "snapchat", Amount: 1428},
	}, res.Allocation)
	assert.Equal(t, res.Original, res.Allocation, "no reallocator configured")
}

func TestAllocateGoalThenReallocate(t *testing.T) {
	repo := fixtureRepo(t)
	res := newAllocator(repo).Allocate(domain.CampaignBrief{
		Industry:  "retail",
		Budget:    10000,
		Goals:     []string{"sales"},
		Platforms: []string{"meta", "google_ads", "snapchat"},
	})
	assert.Equal(t, domain.Allocation{
		{Platform: "meta", Amount: 3714},
		{Platform: "google_ads", Amount: 4286},
		{Platform: "snapchat", Amount: 2000},
	}, res.Allocation)
}

func TestAllocateFallsBackToRecommendedPlatforms(t *testing.T) {
	repo := fixtureRepo(t)
	res := newAllocator(repo).Allocate(domain.CampaignBrief{Industry: "retail", Budget: 10000})

	assert.Equal(t, []string{"meta", "google_ads", "snapchat"}, res.Allocation.Platforms())
	assert.Equal(t, 10000.0, res.Allocation.Total())
	assert.Contains(t, res.Trace[0], "No platforms selected")
}

func TestAllocateUnknownIndustryUsesDefault(t *testing.T) {
	repo := fixtureRepo(t)
	res := NewAllocator(repo, nil).Allocate(domain.CampaignBrief{Industry: "space tourism", Budget: 9000})

	assert.Equal(t, domain.Allocation{
		{Platform: "meta", Amount: 4500},
		{Platform: "google_ads", Amount: 4500},
	}, res.Allocation)
	assert.Contains(t, res.Trace[0], "has no benchmarks")
}

func TestAllocateDeduplicatesPlatforms(t *testing.T) {
	repo := fixtureRepo(t)
	res := NewAllocator(repo, nil).Allocate(domain.CampaignBrief{
		Industry:  "retail",
		Budget:    4000,
		Platforms: []string{"Meta", "meta", "Google Ads"},
	})
	assert.Equal(t, []string{"meta", "google_ads"}, res.Allocation.Platforms())
}

func TestAllocateRemainderNeverNegative(t *testing.T) {
	repo := benchmark.New(domain.BenchmarkTables{
		Industries: map[string]domain.IndustryBenchmark{
			"lopsided": {PlatformWeights: map[string]float64{"a": 13, "b": 13, "c": 13, "d": 1}},
		},
	})
	res := NewAllocator(repo, nil).Allocate(domain.CampaignBrief{
		Industry:  "lopsided",
		Budget:    8,
		Platforms: []string{"a", "b", "c", "d"},
	})
	assert.Equal(t, domain.Allocation{
		{Platform: "a", Amount: 3},
		{Platform: "b", Amount: 3},
		{Platform: "c", Amount: 2},
		{Platform: "d", Amount: 0},
	}, res.Allocation)
}

func TestAllocateSumInvariant(t *testing.T) {
	repo := defaultRepo(t)
	alloc := newAllocator(repo)
	r := rand.New(rand.NewSource(3))

	platforms := []string{"meta", "instagram", "google_ads", "tiktok", "snapchat", "linkedin", "x", "youtube", "myspace"}
	industries := []string{"ecommerce", "real estate", "restaurants", "technology", "nope", ""}
	goals := []string{"sales", "awareness", "leads", "unknown"}

	for i := 0; i < 1000; i++ {
		var selected []string
		for _, p := range platforms {
			if r.Intn(3) == 0 {
				selected = append(selected, p)
			}
		}
		brief := domain.CampaignBrief{
			Industry:  industries[r.Intn(len(industries))],
			Budget:    float64(r.Intn(500000) + 1),
			Goals:     []string{goals[r.Intn(len(goals))]},
			Platforms: selected,
		}
		res := alloc.Allocate(brief)
		require.NotEmpty(t, res.Allocation)
		require.Equal(t, brief.Budget, res.Allocation.Total(), "brief %+v", brief)
		require.Equal(t, brief.Budget, res.Original.Total(), "brief %+v", brief)
		for _, pb := range res.Allocation {
			require.GreaterOrEqual(t, pb.Amount, 0.0)
		}
	}
}

func TestAllocateFractionalBudget(t *testing.T) {
	repo := defaultRepo(t)
	res := newAllocator(repo).Allocate(domain.CampaignBrief{
		Industry:  "ecommerce",
		Budget:    12345.67,
		Platforms: []string{"meta", "google_ads", "tiktok"},
	})
	assert.InDelta(t, 12345.67, res.Allocation.Total(), 1e-9)
}
