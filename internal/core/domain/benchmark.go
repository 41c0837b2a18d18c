package domain

// PlatformBenchmark holds base rates for a platform. CTR and CVR are
// percentages. MinBudget is the tactical floor below which the platform
// rarely exits its learning phase.
type PlatformBenchmark struct {
	BaseCPM   float64 `yaml:"baseCPM" json:"baseCPM"`
	BaseCTR   float64 `yaml:"baseCTR" json:"baseCTR"`
	BaseCVR   float64 `yaml:"baseCVR" json:"baseCVR"`
	MinBudget float64 `yaml:"minBudget" json:"minBudget"`
}

// Advisory recommends a minimum spend on a platform for an industry. It is
// only ever reported, never enforced.
type Advisory struct {
	Platform string  `yaml:"platform" json:"platform"`
	MinSpend float64 `yaml:"minSpend" json:"minSpend"`
	Message  string  `yaml:"message" json:"message"`
}

// IndustryBenchmark holds industry level modifiers and defaults.
type IndustryBenchmark struct {
	CPMMod                float64            `yaml:"cpmMod"`
	CTRMod                float64            `yaml:"ctrMod"`
	CVRMod                float64            `yaml:"cvrMod"`
	AvgOrderValue         float64            `yaml:"avgOrderValue"`
	MinBudget             float64            `yaml:"minBudget"`
	PlatformWeights       map[string]float64 `yaml:"platformWeights"`
	RecommendedPlatforms  []string           `yaml:"recommendedPlatforms"`
	IncompatiblePlatforms []string           `yaml:"incompatiblePlatforms"`
	Advisories            []Advisory         `yaml:"advisories"`
	CompetitorSplit       map[string]float64 `yaml:"competitorSplit"`
}

// SeasonalBenchmark holds the multipliers of a season.
type SeasonalBenchmark struct {
	CPMMult float64 `yaml:"cpmMult"`
	CTRMult float64 `yaml:"ctrMult"`
	CVRMult float64 `yaml:"cvrMult"`
}

// Modifier is a generic cpm/ctr/cvr multiplier triple. It backs the
// creative, competition, demographic and targeting tables. A zero field
// means "not set" and is read as neutral.
type Modifier struct {
	CPM float64 `yaml:"cpm" json:"cpm"`
	CTR float64 `yaml:"ctr" json:"ctr"`
	CVR float64 `yaml:"cvr" json:"cvr"`
}

// DemographicPerformance is the per-platform table of age bucket and
// gender modifiers.
type DemographicPerformance struct {
	Ages    map[string]Modifier `yaml:"ages"`
	Genders map[string]Modifier `yaml:"genders"`
}

// LocationPerformance modifies cost and conversion for a location.
type LocationPerformance struct {
	CPMMod float64 `yaml:"cpmMod"`
	CVRMod float64 `yaml:"cvrMod"`
}

// DeviceModifier modifies engagement and conversion for a device class.
type DeviceModifier struct {
	CTRMod float64 `yaml:"ctrMod"`
	CVRMod float64 `yaml:"cvrMod"`
}

// RangeRule flags a KPI outside [Min, Max]. A zero bound is open. When Clamp
// is set the value is rewritten to the violated bound.
type RangeRule struct {
	KPI      string  `yaml:"kpi" json:"kpi"`
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	Severity string  `yaml:"severity" json:"severity"`
	Clamp    bool    `yaml:"clamp" json:"clamp"`
}

// BenchmarkTables is the raw, serializable form of every lookup table the
// planner reads. It is loaded once and wrapped by a read-only repository.
type BenchmarkTables struct {
	Platforms    map[string]PlatformBenchmark         `yaml:"platforms"`
	Industries   map[string]IndustryBenchmark         `yaml:"industries"`
	Seasons      map[string]SeasonalBenchmark         `yaml:"seasons"`
	Creatives    map[string]Modifier                  `yaml:"creatives"`
	Competition  map[string]Modifier                  `yaml:"competition"`
	Demographics map[string]DemographicPerformance    `yaml:"demographics"`
	Locations    map[string]LocationPerformance       `yaml:"locations"`
	Devices      map[string]map[string]DeviceModifier `yaml:"devices"`
	Targeting    map[string]Modifier                  `yaml:"targeting"`
	GoalWeights  map[string]map[string]float64        `yaml:"goalWeights"`
	Guardrails   []RangeRule                          `yaml:"guardrails"`
}

// DefaultIndustry is the industry key used when a brief names an industry
// without benchmarks.
const DefaultIndustry = "default"
