package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mesa-planner/internal/adapter/benchmark"
	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
	"mesa-planner/internal/core/port/mocks"
	"mesa-planner/internal/metrics"
)

func newTestPlanner(t *testing.T, opts ...Option) *PlannerUseCase {
	t.Helper()
	repo, err := benchmark.Default()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPlannerUseCase(repo, logger, opts...)
}

func warningCodes(ws []domain.Warning) []string {
	codes := make([]string, 0, len(ws))
	for _, w := range ws {
		codes = append(codes, w.Code)
	}
	return codes
}

func narrativeContent() *domain.NarrativeContent {
	return &domain.NarrativeContent{
		Narrative:       "Search carries the plan.",
		Recommendations: []string{"Keep Google Ads above the floor."},
		Explainability:  []string{"Ramadan lifts CPM."},
		Anomalies: []domain.ValidationFlag{{
			Scope: "totals", KPI: "ctr", Issue: "model_note", Severity: domain.SeverityInfo, Message: "CTR looks optimistic",
		}},
		UIWarnings: []string{"Creative fatigue is likely after four weeks."},
		Confidence: 0.8,
	}
}

// TestPlanDefaultsToRecommendedPlatforms runs a brief without platforms.
func TestPlanDefaultsToRecommendedPlatforms(t *testing.T) {
	u := newTestPlanner(t)

	out := u.Plan(context.Background(), domain.CampaignBrief{Industry: "ecommerce", Budget: 10000})
	require.False(t, out.Failed(), out.Errors)
	require.NotNil(t, out.Report)

	r := out.Report
	assert.Equal(t, []string{"google_ads", "meta", "instagram", "snapchat"}, r.BudgetAllocation.Platforms())
	assert.Equal(t, 10000.0, r.BudgetAllocation.Total())
	assert.Len(t, r.Kpis.PerPlatform, 4)
	assert.NotEmpty(t, r.TraceID)
	assert.True(t, r.AdvancedInsights.NarrativeFallback)
	assert.NotEmpty(t, r.Narrative)
	assert.Contains(t, warningCodes(r.UIWarnings), "platforms_defaulted")
	assert.Contains(t, warningCodes(r.UIWarnings), warnNarrativeUnavailable)
	// ecommerce has a competitor split but no summarizer is configured
	assert.Equal(t, fallbackMirror("ecommerce"), r.CompetitorMirror)
}

// TestPlanTwoPlatformsOneSeason checks the per-platform and totals shape.
func TestPlanTwoPlatformsOneSeason(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	competitor := mocks.NewMockCompetitorSummarizer(t)
	narrative.EXPECT().
		GenerateContent(mock.Anything, mock.AnythingOfType("domain.NarrativePayload")).
		Return(narrativeContent(), nil)

	u := newTestPlanner(t, WithNarrative(narrative), WithCompetitor(competitor))
	out := u.Plan(context.Background(), domain.CampaignBrief{
		Budget:    80000,
		Platforms: []string{"meta", "google_ads"},
		Seasons:   []string{"ramadan"},
	})
	require.False(t, out.Failed(), out.Errors)

	r := out.Report
	require.Len(t, r.Kpis.PerPlatform, 2)
	assert.Equal(t, 80000.0, r.Kpis.Totals.Budget)
	assert.GreaterOrEqual(t, r.Kpis.Totals.ROAS, 0.0)
	assert.Equal(t, "Search carries the plan.", r.Narrative)
	assert.Equal(t, 0.8, r.Confidence)
	assert.False(t, r.AdvancedInsights.NarrativeFallback)
	assert.Equal(t, []string{"ramadan"}, r.AdvancedInsights.Seasons.Active)
	assert.Contains(t, warningCodes(r.UIWarnings), warnNarrativeNote)
	// the default industry has no competitor split, so the summarizer is skipped
	assert.Empty(t, r.CompetitorMirror)

	var collaboratorFlag bool
	for _, f := range r.Anomalies {
		if f.Issue == "model_note" {
			collaboratorFlag = true
		}
	}
	assert.True(t, collaboratorFlag)

	for _, p := range r.Kpis.PerPlatform {
		if p.Budget > 0 {
			assert.InDelta(t, p.Revenue/p.Budget, p.ROAS, 1e-9)
		}
		if p.Conversions > 0 {
			assert.InDelta(t, p.Budget/float64(p.Conversions), p.CAC, 1e-9)
		}
	}
}

// TestPlanIsolatesUnknownPlatform ensures one bad platform id does not
// affect its siblings.
func TestPlanIsolatesUnknownPlatform(t *testing.T) {
	u := newTestPlanner(t, WithMetrics(metrics.NewRecorder()))

	out := u.Plan(context.Background(), domain.CampaignBrief{
		Industry:  "ecommerce",
		Budget:    30000,
		Platforms: []string{"meta", "myspace", "google_ads"},
	})
	require.False(t, out.Failed(), out.Errors)

	r := out.Report
	require.Len(t, r.Kpis.PerPlatform, 3)
	for _, p := range r.Kpis.PerPlatform {
		if p.Platform == "myspace" {
			assert.Equal(t, domain.KpiSet{}, p.KpiSet)
			continue
		}
		assert.Positive(t, p.Impressions, p.Platform)
	}
	assert.Equal(t, []string{"myspace"}, r.AdvancedInsights.FailedPlatforms)
	assert.NotContains(t, r.AdvancedInsights.Modifiers, "myspace")
	assert.Equal(t, 30000.0, r.BudgetAllocation.Total())
	assert.Contains(t, warningCodes(r.UIWarnings), "platform_unknown")
}

// TestPlanNarrativeFailure falls back to a narrative built from the totals.
func TestPlanNarrativeFailure(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	narrative.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded"))

	u := newTestPlanner(t, WithNarrative(narrative))
	out := u.Plan(context.Background(), domain.CampaignBrief{
		Budget:       20000,
		Platforms:    []string{"meta", "google_ads"},
		ProfitMargin: 30,
	})
	require.False(t, out.Failed(), out.Errors)

	r := out.Report
	assert.True(t, r.AdvancedInsights.NarrativeFallback)
	assert.Contains(t, r.Narrative, "A budget of SAR 20000")
	assert.NotEmpty(t, r.Explainability)
	assert.GreaterOrEqual(t, r.Confidence, 0.1)
	assert.LessOrEqual(t, r.Confidence, 0.5)
	assert.Contains(t, warningCodes(r.UIWarnings), warnNarrativeUnavailable)
	assert.InDelta(t, 1/0.3, r.Kpis.Totals.BreakEvenROAS, 1e-9)
}

// TestPlanNarrativePanic ensures a panicking collaborator is contained.
func TestPlanNarrativePanic(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	narrative.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.NarrativePayload) (*domain.NarrativeContent, error) {
			panic("boom")
		})

	u := newTestPlanner(t, WithNarrative(narrative))
	var out domain.PlanOutcome
	require.NotPanics(t, func() {
		out = u.Plan(context.Background(), domain.CampaignBrief{Budget: 15000})
	})
	require.False(t, out.Failed(), out.Errors)
	assert.True(t, out.Report.AdvancedInsights.NarrativeFallback)
}

// TestPlanNarrativeTimeout ensures a slow collaborator is cut off.
func TestPlanNarrativeTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	narrative := mocks.NewMockNarrativeGenerator(t)
	narrative.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.NarrativePayload) (*domain.NarrativeContent, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	s := DefaultSettings()
	s.ExternalTimeout = 10 * time.Millisecond
	u := newTestPlanner(t, WithNarrative(narrative), WithSettings(s))

	out := u.Plan(context.Background(), domain.CampaignBrief{Budget: 15000})
	require.False(t, out.Failed(), out.Errors)
	assert.True(t, out.Report.AdvancedInsights.NarrativeFallback)
}

// TestPlanCompetitorMirror checks the competitor summary and its fallback.
func TestPlanCompetitorMirror(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		competitor := mocks.NewMockCompetitorSummarizer(t)
		competitor.EXPECT().
			Summarize(mock.Anything, "ecommerce", mock.Anything, mock.Anything).
			Return("Competitors lean on Google Ads.", nil)

		u := newTestPlanner(t, WithCompetitor(competitor))
		out := u.Plan(context.Background(), domain.CampaignBrief{Industry: "ecommerce", Budget: 40000})
		require.False(t, out.Failed(), out.Errors)
		assert.Equal(t, "Competitors lean on Google Ads.", out.Report.CompetitorMirror)
	})

	t.Run("failure", func(t *testing.T) {
		competitor := mocks.NewMockCompetitorSummarizer(t)
		competitor.EXPECT().
			Summarize(mock.Anything, "ecommerce", mock.Anything, mock.Anything).
			Return("", errors.New("unavailable"))

		u := newTestPlanner(t, WithCompetitor(competitor))
		out := u.Plan(context.Background(), domain.CampaignBrief{Industry: "ecommerce", Budget: 40000})
		require.False(t, out.Failed(), out.Errors)
		assert.Equal(t, fallbackMirror("ecommerce"), out.Report.CompetitorMirror)
	})
}

// TestPlanConcurrentMatchesSequential ensures the external fan-out does not
// change the report and leaks no goroutines.
func TestPlanConcurrentMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	brief := domain.CampaignBrief{
		Industry:  "ecommerce",
		Budget:    60000,
		Platforms: []string{"meta", "google_ads", "snapchat"},
		Seasons:   []string{"white_friday"},
		Goals:     []string{"sales"},
	}
	run := func(concurrent bool) *domain.Report {
		narrative := mocks.NewMockNarrativeGenerator(t)
		narrative.EXPECT().GenerateContent(mock.Anything, mock.Anything).Return(narrativeContent(), nil)
		competitor := mocks.NewMockCompetitorSummarizer(t)
		competitor.EXPECT().Summarize(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("mirror", nil)

		s := DefaultSettings()
		s.ConcurrentExternal = concurrent
		u := newTestPlanner(t, WithNarrative(narrative), WithCompetitor(competitor), WithSettings(s))
		u.newTraceID = func() string { return "trace-1" }

		out := u.Plan(context.Background(), brief)
		require.False(t, out.Failed(), out.Errors)
		return out.Report
	}

	if diff := cmp.Diff(run(false), run(true)); diff != "" {
		t.Fatalf("concurrent run differs from sequential run (-seq +conc):\n%s", diff)
	}
}

// TestPlanFatal checks the failed terminal state.
func TestPlanFatal(t *testing.T) {
	plans := mocks.NewMockPlanRepository(t)
	u := newTestPlanner(t, WithPlanRepository(plans))

	for name, budget := range map[string]float64{"zero": 0, "negative": -100} {
		t.Run(name, func(t *testing.T) {
			out := u.Plan(context.Background(), domain.CampaignBrief{Budget: budget})
			require.True(t, out.Failed())
			assert.Nil(t, out.Report)
			assert.Contains(t, out.Errors[0], "budget")
		})
	}

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out := u.Plan(ctx, domain.CampaignBrief{Budget: 1000})
		require.True(t, out.Failed())
	})
}

// TestPlanPersistence saves reports and ignores save failures.
func TestPlanPersistence(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		plans := mocks.NewMockPlanRepository(t)
		plans.EXPECT().
			SavePlan(mock.Anything, mock.Anything, mock.AnythingOfType("*domain.Report")).
			Return(nil).
			Once()

		u := newTestPlanner(t, WithPlanRepository(plans))
		out := u.Plan(context.Background(), domain.CampaignBrief{Budget: 12000})
		require.False(t, out.Failed(), out.Errors)
	})

	t.Run("save failure", func(t *testing.T) {
		plans := mocks.NewMockPlanRepository(t)
		plans.EXPECT().
			SavePlan(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		u := newTestPlanner(t, WithPlanRepository(plans))
		out := u.Plan(context.Background(), domain.CampaignBrief{Budget: 12000})
		require.False(t, out.Failed(), out.Errors)
		assert.NotNil(t, out.Report)
	})
}

// TestPlanClampsMargin keeps the margin inside [0,100].
func TestPlanClampsMargin(t *testing.T) {
	u := newTestPlanner(t)
	out := u.Plan(context.Background(), domain.CampaignBrief{Budget: 12000, ProfitMargin: 250})
	require.False(t, out.Failed(), out.Errors)
	assert.InDelta(t, 1.0, out.Report.Kpis.Totals.BreakEvenROAS, 1e-9)
	assert.Contains(t, warningCodes(out.Report.UIWarnings), "profit_margin_clamped")
}

func TestPreflight(t *testing.T) {
	u := newTestPlanner(t)
	ws := u.Preflight(context.Background(), domain.CampaignBrief{
		Industry:  "real estate",
		Budget:    50000,
		Platforms: []string{"google_ads"},
	})
	assert.NotContains(t, warningCodes(ws), "budget_below_minimum")
}

func TestGetPlanAndStats(t *testing.T) {
	t.Run("no repository", func(t *testing.T) {
		u := newTestPlanner(t)
		_, err := u.GetPlan(context.Background(), "abc")
		assert.ErrorIs(t, err, domain.ErrPlanNotFound)

		stats, err := u.GetStats(context.Background(), port.StatsReq{})
		require.NoError(t, err)
		assert.Equal(t, &port.StatsResp{}, stats)
	})

	t.Run("repository", func(t *testing.T) {
		plans := mocks.NewMockPlanRepository(t)
		report := &domain.Report{TraceID: "abc"}
		plans.EXPECT().GetPlan(mock.Anything, "abc").Return(report, nil)
		plans.EXPECT().GetStats(mock.Anything, mock.Anything).Return(&port.StatsResp{Plans: 3}, nil)

		u := newTestPlanner(t, WithPlanRepository(plans))
		got, err := u.GetPlan(context.Background(), "abc")
		require.NoError(t, err)
		assert.Same(t, report, got)

		stats, err := u.GetStats(context.Background(), port.StatsReq{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, stats.Plans)
	})

	t.Run("inverted period", func(t *testing.T) {
		plans := mocks.NewMockPlanRepository(t)
		u := newTestPlanner(t, WithPlanRepository(plans))
		now := time.Now()
		_, err := u.GetStats(context.Background(), port.StatsReq{From: now, To: now.Add(-time.Hour)})
		assert.Error(t, err)
	})
}
