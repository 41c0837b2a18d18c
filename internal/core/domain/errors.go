package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPlatform is returned when no benchmark exists for a platform id.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrInvalidBrief marks briefs the pipeline cannot model at all.
	ErrInvalidBrief = errors.New("invalid brief")
	// ErrPlanNotFound is returned by plan lookups for unknown trace ids.
	ErrPlanNotFound = errors.New("plan not found")
)

// ProjectionError reports a failed KPI projection for a single platform.
type ProjectionError struct {
	Platform string
	Err      error
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("project %s: %v", e.Platform, e.Err)
}

func (e *ProjectionError) Unwrap() error { return e.Err }

// ProjectionResult is the per-platform outcome of the KPI projector. Exactly
// one of Kpis and Err is meaningful: when Err is set, Kpis is the zero set.
type ProjectionResult struct {
	Platform  string
	Kpis      KpiSet
	Modifiers ComposedModifiers
	Err       error
}

// OK reports whether the projection succeeded.
func (r ProjectionResult) OK() bool { return r.Err == nil }
