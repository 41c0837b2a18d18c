package domain

import "strings"

// CampaignBrief describes the campaign a client wants planned. Budgets are
// expressed in the configured currency (SAR by default). The brief is
// owned by the caller and is never mutated by the planner.
type CampaignBrief struct {
	Industry          string   `json:"industry" yaml:"industry"`
	SubIndustry       string   `json:"subIndustry,omitempty" yaml:"subIndustry"`
	Budget            float64  `json:"budget" yaml:"budget"`
	Duration          string   `json:"duration,omitempty" yaml:"duration"` // e.g. 1_week, 1_month, 3_months
	Audience          Audience `json:"audience" yaml:"audience"`
	Goals             []string `json:"goals,omitempty" yaml:"goals"`
	Seasons           []string `json:"seasons,omitempty" yaml:"seasons"`
	Platforms         []string `json:"platforms,omitempty" yaml:"platforms"`
	CreativeType      string   `json:"creativeType,omitempty" yaml:"creativeType"`
	Competition       string   `json:"competition,omitempty" yaml:"competition"`
	ProfitMargin      float64  `json:"profitMargin,omitempty" yaml:"profitMargin"` // percent
	ConversionDef     string   `json:"conversionDefinition,omitempty" yaml:"conversionDefinition"`
	FunnelStage       string   `json:"funnelStage,omitempty" yaml:"funnelStage"`
	AverageOrderValue float64  `json:"averageOrderValue,omitempty" yaml:"averageOrderValue"`
}

// Audience is the targeting part of a brief.
type Audience struct {
	AgeGroups []string `json:"ageGroups,omitempty" yaml:"ageGroups"`
	Gender    string   `json:"gender,omitempty" yaml:"gender"`
	Locations []string `json:"locations,omitempty" yaml:"locations"`
	Interests []string `json:"interests,omitempty" yaml:"interests"`
	Behaviors []string `json:"behaviors,omitempty" yaml:"behaviors"`
	Devices   []string `json:"devices,omitempty" yaml:"devices"`
}

// PrimaryGoal returns the first goal of the brief or an empty string.
func (b CampaignBrief) PrimaryGoal() string {
	if len(b.Goals) == 0 {
		return ""
	}
	return NormalizeKey(b.Goals[0])
}

// NormalizeKey lowercases s and folds spaces and hyphens into underscores so
// that "Real Estate" and "real-estate" both resolve to "real_estate".
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

// NormalizeKeys applies NormalizeKey to every element, dropping empty values
// and duplicates while keeping the first occurrence order.
func NormalizeKeys(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		k := NormalizeKey(v)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
