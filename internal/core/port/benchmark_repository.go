package port

import "mesa-planner/internal/core/domain"

// BenchmarkRepository is the read-only lookup layer over benchmark tables.
// Implementations are built once and shared by concurrent planner runs
// without locking, so they must not mutate state after construction. Keys
// are normalized with domain.NormalizeKey before lookup. A false second
// return value means "no entry"; callers treat it as neutral.
type BenchmarkRepository interface {
	Platform(id string) (domain.PlatformBenchmark, bool)
	Industry(key string) (domain.IndustryBenchmark, bool)
	Season(key string) (domain.SeasonalBenchmark, bool)
	Creative(key string) (domain.Modifier, bool)
	Competition(level string) (domain.Modifier, bool)
	Demographics(platform string) (domain.DemographicPerformance, bool)
	Location(key string) (domain.LocationPerformance, bool)
	Device(platform, device string) (domain.DeviceModifier, bool)
	Targeting(tag string) (domain.Modifier, bool)
	GoalWeights(goal string) (map[string]float64, bool)
	Guardrails() []domain.RangeRule
}
