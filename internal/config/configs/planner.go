package configs

// Planner tunes the modelling pipeline.
type Planner struct {
	// MaxActiveSeasons caps how many seasons shape one projection; the
	// rest are reported as dropped.
	MaxActiveSeasons int `env:"MAX_ACTIVE_SEASONS" envDefault:"2"`
	// CompositionMethod is "log-sum" or "product".
	CompositionMethod string `env:"COMPOSITION_METHOD" envDefault:"log-sum"`
	// RatioMode is "weighted" or "summed" and selects how ratio KPIs are
	// computed for the campaign totals.
	RatioMode string `env:"RATIO_MODE" envDefault:"weighted"`
	// BenchmarksPath optionally replaces the embedded benchmark tables
	// with a YAML file.
	BenchmarksPath string `env:"BENCHMARKS_PATH"`
	Currency       string `env:"CURRENCY" envDefault:"SAR"`
	// ConcurrentExternal issues the narrative and competitor calls in
	// parallel.
	ConcurrentExternal bool `env:"CONCURRENT_EXTERNAL" envDefault:"true"`
}
