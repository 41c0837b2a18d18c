package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/modeling"
)

const (
	serviceNarrative  = "narrative"
	serviceCompetitor = "competitor"

	warnNarrativeUnavailable = "narrative_unavailable"
	warnNarrativeNote        = "narrative_note"
)

var errCollaboratorDisabled = errors.New("collaborator not configured")

// external asks the narrative and competitor collaborators for content.
// A nil content means the narrative call failed and the caller must fall
// back. The competitor call only happens when the industry carries a
// competitor split; its failure yields a generic sentence.
func (u *PlannerUseCase) external(ctx context.Context, payload domain.NarrativePayload, s modeling.Scenario, log *slog.Logger) (*domain.NarrativeContent, string) {
	var (
		content *domain.NarrativeContent
		mirror  string
	)
	split := s.Industry.CompetitorSplit

	narrate := func(ctx context.Context) {
		c, err := call(ctx, u.settings.ExternalTimeout, func(ctx context.Context) (*domain.NarrativeContent, error) {
			if u.narrative == nil {
				return nil, errCollaboratorDisabled
			}
			c, err := u.narrative.GenerateContent(ctx, payload)
			if err == nil && c == nil {
				err = errors.New("empty narrative")
			}
			return c, err
		})
		if err != nil {
			u.fallback(log, serviceNarrative, err)
			return
		}
		content = c
	}
	summarize := func(ctx context.Context) {
		text, err := call(ctx, u.settings.ExternalTimeout, func(ctx context.Context) (string, error) {
			if u.competitor == nil {
				return "", errCollaboratorDisabled
			}
			return u.competitor.Summarize(ctx, s.IndustryKey, split, payload.Kpis)
		})
		if err != nil || text == "" {
			if err == nil {
				err = errors.New("empty summary")
			}
			u.fallback(log, serviceCompetitor, err)
			text = fallbackMirror(s.IndustryKey)
		}
		mirror = text
	}

	if !u.settings.ConcurrentExternal {
		narrate(ctx)
		if len(split) > 0 {
			summarize(ctx)
		}
		return content, mirror
	}

	// both calls only read the computed KPIs, so they can run side by side
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		narrate(gctx)
		return nil
	})
	if len(split) > 0 {
		g.Go(func() error {
			summarize(gctx)
			return nil
		})
	}
	_ = g.Wait()
	return content, mirror
}

func (u *PlannerUseCase) fallback(log *slog.Logger, service string, err error) {
	if errors.Is(err, errCollaboratorDisabled) {
		log.Debug("collaborator disabled, using fallback", slog.String("service", service))
		return
	}
	log.Warn("external service failed, using fallback",
		slog.String("service", service),
		slog.String("error", err.Error()),
	)
	u.metrics.ExternalFallback(service)
}

// call runs fn under an optional timeout and turns a panic into an error.
func call[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (res T, err error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collaborator panic: %v", r)
		}
	}()
	return fn(ctx)
}

func fallbackMirror(industry string) string {
	return fmt.Sprintf("Competitor benchmarks for %s are unavailable right now; compare the split above with your usual channel mix.", industry)
}
