package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/modeling"
	"mesa-planner/internal/core/port"
	"mesa-planner/internal/metrics"
)

// Settings tune a PlannerUseCase. Zero fields fall back to defaults.
type Settings struct {
	MaxActiveSeasons   int
	Currency           string
	ConcurrentExternal bool
	ExternalTimeout    time.Duration
	Method             modeling.Method
	RatioMode          modeling.RatioMode
}

// DefaultSettings returns the settings used when none are supplied.
func DefaultSettings() Settings {
	return Settings{
		MaxActiveSeasons:   modeling.DefaultMaxActiveSeasons,
		Currency:           "SAR",
		ConcurrentExternal: true,
		ExternalTimeout:    20 * time.Second,
		Method:             modeling.MethodLogSum,
		RatioMode:          modeling.RatioWeighted,
	}
}

// Option configures a PlannerUseCase.
type Option func(*PlannerUseCase)

// WithNarrative sets the narrative collaborator.
func WithNarrative(g port.NarrativeGenerator) Option {
	return func(u *PlannerUseCase) { u.narrative = g }
}

// WithCompetitor sets the competitor-summary collaborator.
func WithCompetitor(c port.CompetitorSummarizer) Option {
	return func(u *PlannerUseCase) { u.competitor = c }
}

// WithPlanRepository enables persistence of finished reports.
func WithPlanRepository(r port.PlanRepository) Option {
	return func(u *PlannerUseCase) { u.plans = r }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(u *PlannerUseCase) { u.metrics = m }
}

// WithSettings overrides the default settings.
func WithSettings(s Settings) Option {
	return func(u *PlannerUseCase) { u.settings = s }
}

// PlannerUseCase is the campaign orchestrator. It sequences the numeric
// engine, merges the result with external narrative content and never
// fails past its own boundary.
type PlannerUseCase struct {
	repo       port.BenchmarkRepository
	log        *slog.Logger
	narrative  port.NarrativeGenerator
	competitor port.CompetitorSummarizer
	plans      port.PlanRepository
	metrics    *metrics.Recorder
	settings   Settings

	allocator  *modeling.Allocator
	projector  *modeling.Projector
	reconciler *modeling.Reconciler
	newTraceID func() string
}

var _ port.PlannerUseCase = (*PlannerUseCase)(nil)

// NewPlannerUseCase creates an orchestrator over a benchmark repository.
func NewPlannerUseCase(repo port.BenchmarkRepository, log *slog.Logger, opts ...Option) *PlannerUseCase {
	u := &PlannerUseCase{
		repo:       repo,
		log:        log,
		settings:   DefaultSettings(),
		newTraceID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.log == nil {
		u.log = slog.Default()
	}
	if u.settings.MaxActiveSeasons <= 0 {
		u.settings.MaxActiveSeasons = modeling.DefaultMaxActiveSeasons
	}
	if u.settings.Currency == "" {
		u.settings.Currency = "SAR"
	}

	u.allocator = modeling.NewAllocator(repo, modeling.NewReallocator(repo, u.settings.Currency))
	u.projector = modeling.NewProjector(repo, modeling.DefaultCapTable().WithMethod(u.settings.Method))
	u.reconciler = modeling.NewReconciler(repo.Guardrails(), u.settings.RatioMode)
	return u
}

// Plan runs the whole pipeline for a brief. Errors and panics inside the
// pipeline end the run in the failed state; Plan itself never panics.
func (u *PlannerUseCase) Plan(ctx context.Context, brief domain.CampaignBrief) (out domain.PlanOutcome) {
	start := time.Now()
	traceID := u.newTraceID()
	log := u.log.With(slog.String("trace_id", traceID))

	defer func() {
		if r := recover(); r != nil {
			log.Error("planner run panicked", slog.Any("panic", r))
			out = domain.PlanOutcome{Errors: []string{fmt.Sprintf("internal error: %v", r)}}
		}
		u.metrics.ObserveRun(out.Failed(), time.Since(start))
	}()

	log.Info("planner run started",
		slog.String("industry", brief.Industry),
		slog.Float64("budget", brief.Budget),
		slog.Int("platforms", len(brief.Platforms)),
	)

	report, err := u.run(ctx, traceID, brief, log)
	if err != nil {
		log.Error("planner run failed", slog.String("error", err.Error()))
		return domain.PlanOutcome{Errors: []string{err.Error()}}
	}

	if u.plans != nil {
		if err := u.plans.SavePlan(ctx, brief, report); err != nil {
			log.Warn("failed to save plan", slog.String("error", err.Error()))
		}
	}

	log.Info("planner run finished",
		slog.Float64("roas", report.Kpis.Totals.ROAS),
		slog.Duration("elapsed", time.Since(start)),
	)
	return domain.PlanOutcome{Report: report}
}

func (u *PlannerUseCase) run(ctx context.Context, traceID string, brief domain.CampaignBrief, log *slog.Logger) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// preflight sees the brief as submitted, before the margin is clamped
	warnings := modeling.Preflight(u.repo, brief, u.settings.MaxActiveSeasons)
	brief, err := validateBrief(brief)
	if err != nil {
		return nil, err
	}

	seasons := modeling.ResolveSeasons(brief.Seasons, u.settings.MaxActiveSeasons)

	alloc := u.allocator.Allocate(brief)
	if len(alloc.Allocation) == 0 {
		return nil, fmt.Errorf("%w: no platforms available for allocation", domain.ErrInvalidBrief)
	}

	scenario := modeling.NewScenario(u.repo, brief, seasons)
	results := u.projector.ProjectAll(alloc.Allocation, scenario)
	for _, res := range results {
		if !res.OK() {
			log.Warn("platform projection failed",
				slog.String("platform", res.Platform),
				slog.String("error", res.Err.Error()),
			)
			u.metrics.ProjectionFailed(res.Platform)
		}
	}

	rec := u.reconciler.Reconcile(results, alloc.Allocation.Total(), brief.ProfitMargin)
	kpis := domain.KpiReport{Totals: rec.Totals, PerPlatform: rec.PerPlatform}

	payload := domain.NarrativePayload{
		Brief:       brief,
		Seasons:     seasons,
		Allocation:  alloc.Allocation,
		Kpis:        kpis,
		Anomalies:   rec.Flags,
		Corrections: rec.Corrections,
		Trace:       alloc.Trace,
		Currency:    u.settings.Currency,
	}
	insights := buildInsights(seasons, alloc, results, rec)

	content, mirror := u.external(ctx, payload, scenario, log)
	if content == nil {
		insights.NarrativeFallback = true
		content = fallbackNarrative(brief, payload, insights, u.settings.Currency)
		warnings = append(warnings, domain.Warning{
			Code:     warnNarrativeUnavailable,
			Severity: domain.SeverityInfo,
			Message:  "Narrative service unavailable; insights were generated from the computed KPIs",
		})
	}
	for _, note := range content.UIWarnings {
		warnings = append(warnings, domain.Warning{Code: warnNarrativeNote, Severity: domain.SeverityInfo, Message: note})
	}

	anomalies := make([]domain.ValidationFlag, 0, len(rec.Flags)+len(content.Anomalies))
	anomalies = append(anomalies, rec.Flags...)
	anomalies = append(anomalies, content.Anomalies...)

	goals := brief.Goals
	if goals == nil {
		goals = []string{}
	}

	return &domain.Report{
		TraceID:          traceID,
		Industry:         brief.Industry,
		Goals:            goals,
		FunnelStage:      brief.FunnelStage,
		Currency:         u.settings.Currency,
		Narrative:        content.Narrative,
		Recommendations:  nonNil(content.Recommendations),
		Explainability:   nonNil(content.Explainability),
		Confidence:       clamp(content.Confidence, 0, 1),
		BudgetAllocation: alloc.Allocation,
		Kpis:             kpis,
		AdvancedInsights: insights,
		Anomalies:        anomalies,
		Corrections:      rec.Corrections,
		UIWarnings:       warnings,
		Trace:            alloc.Trace,
		CompetitorMirror: mirror,
	}, nil
}

// Preflight returns advisory warnings for a brief.
func (u *PlannerUseCase) Preflight(_ context.Context, brief domain.CampaignBrief) []domain.Warning {
	return modeling.Preflight(u.repo, brief, u.settings.MaxActiveSeasons)
}

// GetPlan returns a stored report.
func (u *PlannerUseCase) GetPlan(ctx context.Context, traceID string) (*domain.Report, error) {
	if u.plans == nil || traceID == "" {
		return nil, domain.ErrPlanNotFound
	}
	return u.plans.GetPlan(ctx, traceID)
}

// GetStats returns aggregated figures over stored plans. Without a plan
// repository every figure is zero.
func (u *PlannerUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if u.plans == nil {
		return &port.StatsResp{}, nil
	}
	if !req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From) {
		return nil, errors.New("stats period ends before it starts")
	}
	return u.plans.GetStats(ctx, req)
}

func validateBrief(brief domain.CampaignBrief) (domain.CampaignBrief, error) {
	b := brief.Budget
	if b <= 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		return brief, fmt.Errorf("%w: budget must be a positive amount, got %v", domain.ErrInvalidBrief, b)
	}
	if math.IsNaN(brief.ProfitMargin) {
		brief.ProfitMargin = 0
	}
	brief.ProfitMargin = clamp(brief.ProfitMargin, 0, 100)
	return brief, nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
