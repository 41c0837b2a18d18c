package domain

// KPI names used by cap policies, guardrail rules and KpiSet field access.
const (
	KPIImpressions   = "impressions"
	KPIClicks        = "clicks"
	KPIConversions   = "conversions"
	KPIBudget        = "budget"
	KPICPM           = "cpm"
	KPICTR           = "ctr"
	KPICPC           = "cpc"
	KPICVR           = "cvr"
	KPIROAS          = "roas"
	KPIRevenue       = "revenue"
	KPICAC           = "cac"
	KPIARPU          = "arpu"
	KPICPA           = "cpa"
	KPIBreakEvenROAS = "breakEvenRoas"
)

// KpiSet is the projected performance of one platform or of the whole
// campaign. CTR and CVR are percentages. ARPU, CPA and BreakEvenROAS are
// only populated at the totals scope.
type KpiSet struct {
	Budget        float64 `json:"budget"`
	Impressions   int64   `json:"impressions"`
	Clicks        int64   `json:"clicks"`
	Conversions   int64   `json:"conversions"`
	CPM           float64 `json:"cpm"`
	CTR           float64 `json:"ctr"`
	CPC           float64 `json:"cpc"`
	CVR           float64 `json:"cvr"`
	ROAS          float64 `json:"roas"`
	Revenue       float64 `json:"revenue"`
	CAC           float64 `json:"cac"`
	ARPU          float64 `json:"arpu,omitempty"`
	CPA           float64 `json:"cpa,omitempty"`
	BreakEvenROAS float64 `json:"breakEvenRoas,omitempty"`
}

// Field returns the named metric as a float.
func (k KpiSet) Field(name string) (float64, bool) {
	switch name {
	case KPIBudget:
		return k.Budget, true
	case KPIImpressions:
		return float64(k.Impressions), true
	case KPIClicks:
		return float64(k.Clicks), true
	case KPIConversions:
		return float64(k.Conversions), true
	case KPICPM:
		return k.CPM, true
	case KPICTR:
		return k.CTR, true
	case KPICPC:
		return k.CPC, true
	case KPICVR:
		return k.CVR, true
	case KPIROAS:
		return k.ROAS, true
	case KPIRevenue:
		return k.Revenue, true
	case KPICAC:
		return k.CAC, true
	case KPIARPU:
		return k.ARPU, true
	case KPICPA:
		return k.CPA, true
	case KPIBreakEvenROAS:
		return k.BreakEvenROAS, true
	}
	return 0, false
}

// SetField overwrites the named ratio metric. Count fields and the budget
// are not writable and report false.
func (k *KpiSet) SetField(name string, v float64) bool {
	switch name {
	case KPICPM:
		k.CPM = v
	case KPICTR:
		k.CTR = v
	case KPICPC:
		k.CPC = v
	case KPICVR:
		k.CVR = v
	case KPIROAS:
		k.ROAS = v
	case KPICAC:
		k.CAC = v
	case KPIARPU:
		k.ARPU = v
	case KPICPA:
		k.CPA = v
	default:
		return false
	}
	return true
}

// PlatformKpis pairs a platform with its projection.
type PlatformKpis struct {
	Platform string `json:"platform"`
	KpiSet
}

// KpiReport is the kpis section of a report.
type KpiReport struct {
	Totals      KpiSet         `json:"totals"`
	PerPlatform []PlatformKpis `json:"perPlatform"`
}

// ComposedModifiers records the bounded multipliers applied to a platform's
// base benchmarks.
type ComposedModifiers struct {
	CPM float64 `json:"cpm"`
	CTR float64 `json:"ctr"`
	CVR float64 `json:"cvr"`
}
