package domain

// PlatformBudget is a single line of a budget split.
type PlatformBudget struct {
	Platform string  `json:"platform"`
	Amount   float64 `json:"amount"`
}

// Allocation is an ordered platform budget split. Order matters: the last
// platform absorbs the rounding remainder so that Total equals the brief
// budget exactly.
type Allocation []PlatformBudget

// Total sums the allocated amounts.
func (a Allocation) Total() float64 {
	var sum float64
	for _, pb := range a {
		sum += pb.Amount
	}
	return sum
}

// Amount returns the amount allocated to platform, or 0.
func (a Allocation) Amount(platform string) float64 {
	for _, pb := range a {
		if pb.Platform == platform {
			return pb.Amount
		}
	}
	return 0
}

// Platforms lists the platform ids in allocation order.
func (a Allocation) Platforms() []string {
	out := make([]string, len(a))
	for i, pb := range a {
		out[i] = pb.Platform
	}
	return out
}

// Clone returns an independent copy.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	copy(out, a)
	return out
}

// AllocationResult is the output of the budget allocator: the final split
// after tactical reallocation, the split before it, and the trace lines
// explaining every transfer and advisory.
type AllocationResult struct {
	Allocation Allocation `json:"budgetAllocation"`
	Original   Allocation `json:"originalAllocation"`
	Trace      []string   `json:"reallocationDetails"`
}
