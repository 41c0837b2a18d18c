package modeling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mesa-planner/internal/adapter/benchmark"
	"mesa-planner/internal/core/domain"
)

// fixtureTables is a small, hand-checkable table set.
func fixtureTables() domain.BenchmarkTables {
	return domain.BenchmarkTables{
		Platforms: map[string]domain.PlatformBenchmark{
			"meta":       {BaseCPM: 20, BaseCTR: 1, BaseCVR: 2, MinBudget: 1500},
			"google_ads": {BaseCPM: 40, BaseCTR: 4, BaseCVR: 5, MinBudget: 3000},
			"snapchat":   {BaseCPM: 10, BaseCTR: 0.5, BaseCVR: 1, MinBudget: 2000},
			"linkedin":   {BaseCPM: 100, BaseCTR: 0.5, BaseCVR: 3, MinBudget: 5000},
		},
		Industries: map[string]domain.IndustryBenchmark{
			"default": {
				CPMMod: 1, CTRMod: 1, CVRMod: 1, AvgOrderValue: 100, MinBudget: 1000,
				RecommendedPlatforms: []string{"meta", "google_ads"},
			},
			"retail": {
				CPMMod: 1, CTRMod: 1, CVRMod: 1, AvgOrderValue: 200, MinBudget: 10000,
				PlatformWeights:       map[string]float64{"meta": 3, "google_ads": 1, "snapchat": 1},
				RecommendedPlatforms:  []string{"meta", "google_ads", "snapchat"},
				IncompatiblePlatforms: []string{"linkedin"},
				Advisories: []domain.Advisory{
					{Platform: "google_ads", MinSpend: 5000, Message: "search needs volume"},
				},
			},
		},
		Seasons: map[string]domain.SeasonalBenchmark{
			"ramadan":      {CPMMult: 1.5, CTRMult: 1.2, CVRMult: 1.4},
			"white_friday": {CPMMult: 1.5, CTRMult: 1.0, CVRMult: 1.6},
			"end_of_year":  {CPMMult: 1.1, CTRMult: 1.0, CVRMult: 1.0},
		},
		Creatives:   map[string]domain.Modifier{"video": {CPM: 1.2, CTR: 1.5, CVR: 1.0}},
		Competition: map[string]domain.Modifier{"high": {CPM: 1.5, CTR: 0.8, CVR: 0.8}},
		Demographics: map[string]domain.DemographicPerformance{
			"meta": {
				Ages:    map[string]domain.Modifier{"18-24": {CPM: 0.8, CTR: 1.2, CVR: 1.0}, "25-34": {CPM: 1.2, CTR: 1.0, CVR: 1.2}},
				Genders: map[string]domain.Modifier{"female": {CPM: 1.1, CTR: 1.1, CVR: 1.1}},
			},
		},
		Locations: map[string]domain.LocationPerformance{"riyadh": {CPMMod: 1.2, CVRMod: 1.1}},
		Devices: map[string]map[string]domain.DeviceModifier{
			"meta": {"mobile": {CTRMod: 1.1, CVRMod: 0.9}, "desktop": {CTRMod: 0.9, CVRMod: 1.3}},
		},
		Targeting: map[string]domain.Modifier{"luxury": {CPM: 1.3, CTR: 1.0, CVR: 1.2}},
		GoalWeights: map[string]map[string]float64{
			"sales": {"google_ads": 3},
		},
	}
}

func fixtureRepo(t *testing.T) *benchmark.Repository {
	t.Helper()
	return benchmark.New(fixtureTables())
}

func defaultRepo(t *testing.T) *benchmark.Repository {
	t.Helper()
	repo, err := benchmark.Default()
	require.NoError(t, err)
	return repo
}
