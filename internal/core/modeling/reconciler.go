package modeling

import (
	"fmt"
	"strconv"

	"mesa-planner/internal/core/domain"
)

// RatioMode selects how ratio KPIs are computed at the totals scope.
type RatioMode string

const (
	// RatioWeighted recomputes totals ratios from summed counts, which
	// weights every platform by its volume.
	RatioWeighted RatioMode = "weighted"
	// RatioSummed adds per-platform ratios together. Kept for parity with
	// reports produced before weighted totals existed.
	RatioSummed RatioMode = "summed"
)

// ParseRatioMode maps a configuration value onto a RatioMode. Empty selects
// weighted.
func ParseRatioMode(s string) (RatioMode, error) {
	switch RatioMode(s) {
	case "", RatioWeighted:
		return RatioWeighted, nil
	case RatioSummed:
		return RatioSummed, nil
	}
	return "", fmt.Errorf("unknown ratio mode %q", s)
}

// TotalsScope is the scope name of the aggregated KPI set.
const TotalsScope = "totals"

// Reconciliation is the output of the guardrail reconciler.
type Reconciliation struct {
	Totals      domain.KpiSet
	PerPlatform []domain.PlatformKpis
	Flags       []domain.ValidationFlag
	Corrections []domain.Correction
	Failed      []string
}

// Reconciler aggregates per-platform projections into totals and checks
// every KPI set against pluggable range rules.
type Reconciler struct {
	rules []domain.RangeRule
	mode  RatioMode
}

// NewReconciler creates a reconciler. Rules may be empty.
func NewReconciler(rules []domain.RangeRule, mode RatioMode) *Reconciler {
	if mode == "" {
		mode = RatioWeighted
	}
	return &Reconciler{rules: rules, mode: mode}
}

// Reconcile aggregates results. Failed projections contribute a zero KPI
// set and are listed in Failed. budget is the allocated total and becomes
// totals.Budget; profitMargin is a percentage.
func (r *Reconciler) Reconcile(results []domain.ProjectionResult, budget, profitMargin float64) Reconciliation {
	rec := Reconciliation{
		PerPlatform: make([]domain.PlatformKpis, 0, len(results)),
		Flags:       []domain.ValidationFlag{},
		Corrections: []domain.Correction{},
		Failed:      []string{},
	}
	for _, res := range results {
		k := res.Kpis
		if !res.OK() {
			k = domain.KpiSet{}
			rec.Failed = append(rec.Failed, res.Platform)
		} else {
			r.check(res.Platform, &k, &rec)
		}
		rec.PerPlatform = append(rec.PerPlatform, domain.PlatformKpis{Platform: res.Platform, KpiSet: k})
	}

	rec.Totals = r.aggregate(rec.PerPlatform, budget, profitMargin)
	r.check(TotalsScope, &rec.Totals, &rec)
	return rec
}

func (r *Reconciler) aggregate(per []domain.PlatformKpis, budget, profitMargin float64) domain.KpiSet {
	t := domain.KpiSet{Budget: budget}
	for _, p := range per {
		t.Impressions += p.Impressions
		t.Clicks += p.Clicks
		t.Conversions += p.Conversions
		t.Revenue += p.Revenue
	}

	switch r.mode {
	case RatioSummed:
		for _, p := range per {
			t.CPM += p.CPM
			t.CTR += p.CTR
			t.CPC += p.CPC
			t.CVR += p.CVR
			t.ROAS += p.ROAS
			t.CAC += p.CAC
		}
	default:
		t.CPM = ratio(budget*1000, float64(t.Impressions))
		t.CTR = ratio(float64(t.Clicks)*100, float64(t.Impressions))
		t.CPC = ratio(budget, float64(t.Clicks))
		t.CVR = ratio(float64(t.Conversions)*100, float64(t.Clicks))
		t.ROAS = ratio(t.Revenue, budget)
		t.CAC = ratio(budget, float64(t.Conversions))
	}

	t.ARPU = ratio(t.Revenue, float64(t.Conversions))
	t.CPA = ratio(budget, float64(t.Conversions))
	if profitMargin > 0 {
		t.BreakEvenROAS = 1 / (profitMargin / 100)
	}
	return t
}

// check applies every rule to k. Zero values are undefined ratios and are
// not checked against lower bounds.
func (r *Reconciler) check(scope string, k *domain.KpiSet, rec *Reconciliation) {
	for _, rule := range r.rules {
		v, ok := k.Field(rule.KPI)
		if !ok {
			continue
		}
		var issue string
		var bound float64
		switch {
		case rule.Min > 0 && v != 0 && v < rule.Min:
			issue, bound = "below_range", rule.Min
		case rule.Max > 0 && v > rule.Max:
			issue, bound = "above_range", rule.Max
		default:
			continue
		}
		severity := rule.Severity
		if severity == "" {
			severity = domain.SeverityWarning
		}
		expected := describeRange(rule)
		rec.Flags = append(rec.Flags, domain.ValidationFlag{
			Scope:    scope,
			KPI:      rule.KPI,
			Issue:    issue,
			Severity: severity,
			Message:  fmt.Sprintf("%s %s is %.2f, outside the plausible range %s", scope, rule.KPI, v, expected),
			Expected: expected,
			Actual:   v,
		})
		if rule.Clamp && k.SetField(rule.KPI, bound) {
			rec.Corrections = append(rec.Corrections, domain.Correction{
				Scope: scope,
				Field: rule.KPI,
				From:  v,
				To:    bound,
				Rule:  "range " + expected,
			})
		}
	}
}

func describeRange(rule domain.RangeRule) string {
	switch {
	case rule.Min > 0 && rule.Max > 0:
		return formatFloat(rule.Min) + ".." + formatFloat(rule.Max)
	case rule.Min > 0:
		return ">= " + formatFloat(rule.Min)
	default:
		return "<= " + formatFloat(rule.Max)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
