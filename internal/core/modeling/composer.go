package modeling

import (
	"fmt"
	"math"

	"mesa-planner/internal/core/domain"
)

// Method selects how multipliers are folded into one.
type Method string

const (
	// MethodLogSum sums natural logs and exponentiates. It matches the
	// product but stays stable over long chains.
	MethodLogSum Method = "log-sum"
	// MethodProduct multiplies directly.
	MethodProduct Method = "product"
)

// ParseMethod maps a configuration value onto a Method. Empty selects
// log-sum.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodLogSum:
		return MethodLogSum, nil
	case MethodProduct:
		return MethodProduct, nil
	}
	return "", fmt.Errorf("unknown composition method %q", s)
}

// minMultiplier keeps zero and negative inputs away from the logarithm.
const minMultiplier = 0.01

// CapPolicy bounds a composed multiplier. Anything above SoftCap only
// passes through at half weight; HardCap is the absolute ceiling.
type CapPolicy struct {
	SoftCap float64
	HardCap float64
	Method  Method
}

// CapTable holds the cap policy of every composed KPI.
type CapTable map[string]CapPolicy

// DefaultCapTable returns the composition policy for CPM, CTR and CVR.
func DefaultCapTable() CapTable {
	return CapTable{
		domain.KPICPM: {SoftCap: 2.0, HardCap: 3.0, Method: MethodLogSum},
		domain.KPICTR: {SoftCap: 1.8, HardCap: 2.5, Method: MethodLogSum},
		domain.KPICVR: {SoftCap: 2.0, HardCap: 3.0, Method: MethodLogSum},
	}
}

// WithMethod returns a copy of the table using m for every KPI.
func (t CapTable) WithMethod(m Method) CapTable {
	out := make(CapTable, len(t))
	for k, p := range t {
		p.Method = m
		out[k] = p
	}
	return out
}

// Policy returns the policy for kpi. Unknown KPIs get an uncapped policy.
func (t CapTable) Policy(kpi string) CapPolicy {
	if p, ok := t[kpi]; ok {
		return p
	}
	return CapPolicy{SoftCap: math.Inf(1), HardCap: math.Inf(1), Method: MethodLogSum}
}

// Combine folds multipliers into a single bounded multiplier. Each input is
// floored at 0.01, the inputs are combined with the policy's method, the
// excess above SoftCap is halved and the result is clamped to
// [0, HardCap]. An empty or all-ones input yields exactly 1.
func Combine(multipliers []float64, p CapPolicy) float64 {
	combined := 1.0
	switch p.Method {
	case MethodProduct:
		for _, m := range multipliers {
			combined *= floorMultiplier(m)
		}
	default:
		var sum float64
		for _, m := range multipliers {
			sum += math.Log(floorMultiplier(m))
		}
		combined = math.Exp(sum)
	}

	if combined > p.SoftCap {
		combined = p.SoftCap + 0.5*(combined-p.SoftCap)
	}
	combined = math.Min(combined, p.HardCap)
	return math.Max(combined, 0)
}

func floorMultiplier(m float64) float64 {
	if math.IsNaN(m) {
		return 1
	}
	return math.Max(m, minMultiplier)
}
