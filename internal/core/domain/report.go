package domain

// Severity levels shared by preflight warnings and validation flags.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning is an advisory produced by preflight checks. Callers usually show
// it to the user before running the pipeline; the planner never blocks on it.
type Warning struct {
	Code     string         `json:"code"`
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
}

// ValidationFlag describes a KPI that fell outside its plausible range.
type ValidationFlag struct {
	Scope    string  `json:"scope"` // platform id or "totals"
	KPI      string  `json:"kpi"`
	Issue    string  `json:"issue"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
	Expected string  `json:"expected"`
	Actual   float64 `json:"actual"`
}

// Correction records a value rewritten by a guardrail rule.
type Correction struct {
	Scope string  `json:"scope"`
	Field string  `json:"field"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Rule  string  `json:"rule"`
}

// SeasonResolution splits requested seasons into the active ones used for
// modelling and the ones dropped by the cap.
type SeasonResolution struct {
	Active  []string `json:"active"`
	Dropped []string `json:"dropped"`
}

// NarrativeContent is what the narrative collaborator contributes to a
// report.
type NarrativeContent struct {
	Narrative       string           `json:"narrative"`
	Recommendations []string         `json:"recommendations"`
	Explainability  []string         `json:"explainability"`
	Anomalies       []ValidationFlag `json:"anomalies"`
	UIWarnings      []string         `json:"uiWarnings"`
	Confidence      float64          `json:"confidence"`
}

// NarrativePayload is the numeric context handed to the narrative
// collaborator.
type NarrativePayload struct {
	Brief       CampaignBrief    `json:"brief"`
	Seasons     SeasonResolution `json:"seasons"`
	Allocation  Allocation       `json:"budgetAllocation"`
	Kpis        KpiReport        `json:"kpis"`
	Anomalies   []ValidationFlag `json:"anomalies"`
	Corrections []Correction     `json:"corrections"`
	Trace       []string         `json:"trace"`
	Currency    string           `json:"currency"`
}

// AdvancedInsights are derived, deterministic observations about a plan.
type AdvancedInsights struct {
	Seasons            SeasonResolution             `json:"seasons"`
	OriginalAllocation Allocation                   `json:"originalAllocation"`
	Modifiers          map[string]ComposedModifiers `json:"modifiers"`
	BudgetShare        map[string]float64           `json:"budgetShare"`
	BestROASPlatform   string                       `json:"bestRoasPlatform,omitempty"`
	LowestCACPlatform  string                       `json:"lowestCacPlatform,omitempty"`
	FailedPlatforms    []string                     `json:"failedPlatforms,omitempty"`
	NarrativeFallback  bool                         `json:"narrativeFallback"`
}

// Report is the final, read-only result of a planner run.
type Report struct {
	TraceID          string           `json:"traceId"`
	Industry         string           `json:"industry"`
	Goals            []string         `json:"goals"`
	FunnelStage      string           `json:"funnelStage,omitempty"`
	Currency         string           `json:"currency"`
	Narrative        string           `json:"narrative"`
	Recommendations  []string         `json:"recommendations"`
	Explainability   []string         `json:"explainability"`
	Confidence       float64          `json:"confidence"`
	BudgetAllocation Allocation       `json:"budgetAllocation"`
	Kpis             KpiReport        `json:"kpis"`
	AdvancedInsights AdvancedInsights `json:"advancedInsights"`
	Anomalies        []ValidationFlag `json:"anomalies"`
	Corrections      []Correction     `json:"corrections"`
	UIWarnings       []Warning        `json:"uiWarnings"`
	Trace            []string         `json:"trace"`
	CompetitorMirror string           `json:"competitorMirror,omitempty"`
}

// PlanOutcome is what the orchestrator hands back. Either Report is set or
// Errors is non-empty.
type PlanOutcome struct {
	Report *Report  `json:"report,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// Failed reports whether the run ended in the fatal terminal state.
func (o PlanOutcome) Failed() bool { return len(o.Errors) > 0 }
