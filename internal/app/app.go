// Package app wires configuration into the planner for the service and
// the CLI.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"mesa-planner/internal/adapter/benchmark"
	"mesa-planner/internal/adapter/gemini"
	"mesa-planner/internal/adapter/usecase"
	"mesa-planner/internal/config/configs"
	"mesa-planner/internal/core/modeling"
)

// NewLogger builds the structured logger described by cfg.
func NewLogger(cfg configs.Logger, w io.Writer) *slog.Logger {
	return slog.New(cfg.Handler(w))
}

// LoadBenchmarks returns the embedded benchmark tables, or the tables in
// path when it is set.
func LoadBenchmarks(path string) (*benchmark.Repository, error) {
	if path == "" {
		return benchmark.Default()
	}
	repo, err := benchmark.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load benchmarks %s: %w", path, err)
	}
	return repo, nil
}

// Settings converts the planner and Gemini sections into use case
// settings.
func Settings(p configs.Planner, g configs.Gemini) (usecase.Settings, error) {
	method, err := modeling.ParseMethod(p.CompositionMethod)
	if err != nil {
		return usecase.Settings{}, err
	}
	mode, err := modeling.ParseRatioMode(p.RatioMode)
	if err != nil {
		return usecase.Settings{}, err
	}
	return usecase.Settings{
		MaxActiveSeasons:   p.MaxActiveSeasons,
		Currency:           p.Currency,
		ConcurrentExternal: p.ConcurrentExternal,
		ExternalTimeout:    g.Timeout,
		Method:             method,
		RatioMode:          mode,
	}, nil
}

// NarrativeOptions returns the options that attach Gemini as narrative and
// competitor collaborator, and a close function. Without an API key it
// returns no options and the planner uses its own fallback narrative.
func NarrativeOptions(ctx context.Context, cfg configs.Gemini, log *slog.Logger) ([]usecase.Option, func(), error) {
	if !cfg.Enabled() {
		log.Info("gemini disabled, narratives are generated from the computed KPIs")
		return nil, func() {}, nil
	}
	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	// one planner run makes up to two calls, the narrative and the competitor summary
	gen := gemini.NewLimiter(gemini.NewBreaker("gemini", client, log), cfg.RequestsPerMinute, 2)
	narrator := gemini.NewNarrator(gen)
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close gemini client", slog.Any("error", err))
		}
	}
	return []usecase.Option{usecase.WithNarrative(narrator), usecase.WithCompetitor(narrator)}, closeFn, nil
}
