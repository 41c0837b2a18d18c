package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mesa-planner/internal/adapter/http"
	"mesa-planner/internal/adapter/postgres"
	"mesa-planner/internal/adapter/usecase"
	"mesa-planner/internal/app"
	"mesa-planner/internal/config"
	"mesa-planner/internal/db"
	"mesa-planner/internal/metrics"
)

// main is the entry point of the planner service. It loads configuration,
// builds the benchmark repository and the planner, optionally connects the
// plan store, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := app.NewLogger(cfg.Log, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, err := app.LoadBenchmarks(cfg.Planner.BenchmarksPath)
	if err != nil {
		logger.Error("benchmark tables error", slog.Any("error", err))
		return
	}
	settings, err := app.Settings(cfg.Planner, cfg.Gemini)
	if err != nil {
		logger.Error("planner config error", slog.Any("error", err))
		return
	}

	recorder := metrics.NewRecorder()
	opts := []usecase.Option{usecase.WithSettings(settings), usecase.WithMetrics(recorder)}

	narrativeOpts, closeNarrative, err := app.NarrativeOptions(ctx, cfg.Gemini, logger)
	if err != nil {
		logger.Error("gemini client error", slog.Any("error", err))
		return
	}
	defer closeNarrative()
	opts = append(opts, narrativeOpts...)

	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		opts = append(opts, usecase.WithPlanRepository(postgres.NewPlanRepository(pool)))
	}

	svc := usecase.NewPlannerUseCase(repo, logger, opts...)

	if cfg.Psql.Enabled && cfg.Psql.SeedPlans > 0 {
		failed, err := db.Seed(ctx, svc, cfg.Psql.SeedPlans, time.Now().UnixNano())
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo plans seeded", slog.Int("plans", cfg.Psql.SeedPlans), slog.Int("failed", failed))
		}
	}

	handler := httpadapter.NewHandler(svc, logger, recorder.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
