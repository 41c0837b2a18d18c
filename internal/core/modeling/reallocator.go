package modeling

import (
	"fmt"
	"sort"
	"strconv"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// minShare is the budget share below which a platform gets a warning.
const minShare = 0.05

// Reallocator moves budget from well funded platforms to platforms below
// their minimum spend floor.
type Reallocator struct {
	repo     port.BenchmarkRepository
	currency string
}

// NewReallocator creates a reallocator that formats amounts in currency.
func NewReallocator(repo port.BenchmarkRepository, currency string) *Reallocator {
	if currency == "" {
		currency = "SAR"
	}
	return &Reallocator{repo: repo, currency: currency}
}

type donor struct {
	index int
	floor float64
}

// Rebalance returns a new allocation in which under-floor platforms pulled
// their shortfall from platforms funded above twice their floor, largest
// surplus first. Donors never drop below their own floor, so the total is
// unchanged and no amount goes negative. Platforms without a known floor
// are left alone. When the budget cannot cover every floor some platforms
// stay short; that is reported, not fixed. Industry advisories only add
// trace lines.
func (r *Reallocator) Rebalance(alloc domain.Allocation, industry domain.IndustryBenchmark) (domain.Allocation, []string) {
	out := alloc.Clone()
	trace := []string{}

	floors := make([]float64, len(out))
	var under []int
	var donors []donor
	for i, pb := range out {
		pl, ok := r.repo.Platform(pb.Platform)
		if !ok || pl.MinBudget <= 0 {
			continue
		}
		floors[i] = pl.MinBudget
		switch {
		case pb.Amount < pl.MinBudget:
			under = append(under, i)
		case pb.Amount > 2*pl.MinBudget:
			donors = append(donors, donor{index: i, floor: pl.MinBudget})
		}
	}

	surplus := func(d donor) float64 { return out[d.index].Amount - d.floor }

	for _, u := range under {
		shortfall := floors[u] - out[u].Amount
		sort.SliceStable(donors, func(i, j int) bool { return surplus(donors[i]) > surplus(donors[j]) })
		for _, d := range donors {
			if shortfall <= 0 {
				break
			}
			available := surplus(d)
			if available <= 0 {
				continue
			}
			moved := min(available, shortfall)
			out[d.index].Amount -= moved
			out[u].Amount += moved
			shortfall -= moved
			trace = append(trace, fmt.Sprintf("Moved %s from %s to %s to reach its %s minimum",
				r.money(moved), out[d.index].Platform, out[u].Platform, r.money(floors[u])))
		}
		if shortfall > 0 {
			trace = append(trace, fmt.Sprintf("%s remains %s below its %s minimum; the total budget cannot cover every platform floor",
				out[u].Platform, r.money(shortfall), r.money(floors[u])))
		}
	}

	total := out.Total()
	if total > 0 {
		for _, pb := range out {
			if share := pb.Amount / total; share < minShare {
				trace = append(trace, fmt.Sprintf("Warning: %s receives only %.1f%% of the budget (%s); consider consolidating",
					pb.Platform, share*100, r.money(pb.Amount)))
			}
		}
	}

	for _, adv := range industry.Advisories {
		amount, selected := 0.0, false
		for _, pb := range out {
			if pb.Platform == adv.Platform {
				amount, selected = pb.Amount, true
				break
			}
		}
		switch {
		case !selected:
			trace = append(trace, fmt.Sprintf("Advisory: consider adding %s; %s", adv.Platform, adv.Message))
		case amount < adv.MinSpend:
			trace = append(trace, fmt.Sprintf("Advisory: %s has %s, below the recommended %s; %s",
				adv.Platform, r.money(amount), r.money(adv.MinSpend), adv.Message))
		}
	}
	return out, trace
}

func (r *Reallocator) money(v float64) string {
	return r.currency + " " + strconv.FormatFloat(v, 'f', -1, 64)
}
