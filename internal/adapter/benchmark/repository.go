package benchmark

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mesa-planner/internal/core/domain"
)

//go:embed data/benchmarks.yaml
var defaultTables []byte

// Repository implements port.BenchmarkRepository over in-memory tables. It
// is immutable after construction and safe for concurrent use.
type Repository struct {
	t domain.BenchmarkTables
}

// New wraps tables in a repository. Every key is normalized so lookups are
// insensitive to case, spaces and hyphens. The input is not retained.
func New(t domain.BenchmarkTables) *Repository {
	n := domain.BenchmarkTables{
		Platforms:    normalizeMap(t.Platforms),
		Industries:   make(map[string]domain.IndustryBenchmark, len(t.Industries)),
		Seasons:      normalizeMap(t.Seasons),
		Creatives:    normalizeMap(t.Creatives),
		Competition:  normalizeMap(t.Competition),
		Demographics: make(map[string]domain.DemographicPerformance, len(t.Demographics)),
		Locations:    normalizeMap(t.Locations),
		Devices:      make(map[string]map[string]domain.DeviceModifier, len(t.Devices)),
		Targeting:    normalizeMap(t.Targeting),
		GoalWeights:  make(map[string]map[string]float64, len(t.GoalWeights)),
		Guardrails:   append([]domain.RangeRule(nil), t.Guardrails...),
	}
	for k, ind := range t.Industries {
		ind.PlatformWeights = normalizeMap(ind.PlatformWeights)
		ind.CompetitorSplit = normalizeMap(ind.CompetitorSplit)
		ind.RecommendedPlatforms = domain.NormalizeKeys(ind.RecommendedPlatforms)
		ind.IncompatiblePlatforms = domain.NormalizeKeys(ind.IncompatiblePlatforms)
		advisories := make([]domain.Advisory, len(ind.Advisories))
		for i, a := range ind.Advisories {
			a.Platform = domain.NormalizeKey(a.Platform)
			advisories[i] = a
		}
		ind.Advisories = advisories
		n.Industries[domain.NormalizeKey(k)] = ind
	}
	for k, d := range t.Demographics {
		n.Demographics[domain.NormalizeKey(k)] = domain.DemographicPerformance{
			Ages:    normalizeMap(d.Ages),
			Genders: normalizeMap(d.Genders),
		}
	}
	for k, d := range t.Devices {
		n.Devices[domain.NormalizeKey(k)] = normalizeMap(d)
	}
	for k, w := range t.GoalWeights {
		n.GoalWeights[domain.NormalizeKey(k)] = normalizeMap(w)
	}
	return &Repository{t: n}
}

// Load decodes YAML tables from r.
func Load(r io.Reader) (*Repository, error) {
	var t domain.BenchmarkTables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode benchmark tables: %w", err)
	}
	if len(t.Platforms) == 0 {
		return nil, fmt.Errorf("decode benchmark tables: no platforms defined")
	}
	return New(t), nil
}

// LoadFile decodes YAML tables from the file at path.
func LoadFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns a repository over the embedded Saudi market tables.
func Default() (*Repository, error) {
	return Load(bytes.NewReader(defaultTables))
}

// Platform returns the base benchmark of a platform.
func (r *Repository) Platform(id string) (domain.PlatformBenchmark, bool) {
	v, ok := r.t.Platforms[domain.NormalizeKey(id)]
	return v, ok
}

// Industry returns the benchmark of an industry. It does not fall back to
// the default industry; callers decide on fallbacks.
func (r *Repository) Industry(key string) (domain.IndustryBenchmark, bool) {
	v, ok := r.t.Industries[domain.NormalizeKey(key)]
	return v, ok
}

func (r *Repository) Season(key string) (domain.SeasonalBenchmark, bool) {
	v, ok := r.t.Seasons[domain.NormalizeKey(key)]
	return v, ok
}

func (r *Repository) Creative(key string) (domain.Modifier, bool) {
	v, ok := r.t.Creatives[domain.NormalizeKey(key)]
	return v, ok
}

func (r *Repository) Competition(level string) (domain.Modifier, bool) {
	v, ok := r.t.Competition[domain.NormalizeKey(level)]
	return v, ok
}

func (r *Repository) Demographics(platform string) (domain.DemographicPerformance, bool) {
	v, ok := r.t.Demographics[domain.NormalizeKey(platform)]
	return v, ok
}

func (r *Repository) Location(key string) (domain.LocationPerformance, bool) {
	v, ok := r.t.Locations[domain.NormalizeKey(key)]
	return v, ok
}

func (r *Repository) Device(platform, device string) (domain.DeviceModifier, bool) {
	v, ok := r.t.Devices[domain.NormalizeKey(platform)][domain.NormalizeKey(device)]
	return v, ok
}

func (r *Repository) Targeting(tag string) (domain.Modifier, bool) {
	v, ok := r.t.Targeting[domain.NormalizeKey(tag)]
	return v, ok
}

// GoalWeights returns the per-platform weight factors of a goal. The map is
// shared and must not be modified.
func (r *Repository) GoalWeights(goal string) (map[string]float64, bool) {
	v, ok := r.t.GoalWeights[domain.NormalizeKey(goal)]
	return v, ok
}

// Guardrails returns a copy of the plausible range rules.
func (r *Repository) Guardrails() []domain.RangeRule {
	return append([]domain.RangeRule(nil), r.t.Guardrails...)
}

func normalizeMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[domain.NormalizeKey(k)] = v
	}
	return out
}
