// Command planctl runs the campaign planner offline against a brief file.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mesa-planner/internal/adapter/usecase"
	"mesa-planner/internal/app"
	"mesa-planner/internal/config"
	"mesa-planner/internal/core/domain"
)

var errPlanFailed = errors.New("plan failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	brief      string
	benchmarks string
	noNarrate  bool
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Plan ad campaign budgets from a brief",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.brief, "brief", "", "brief file (YAML or JSON)")
	root.PersistentFlags().StringVar(&opts.benchmarks, "benchmarks", "", "benchmark tables YAML (defaults to the embedded tables)")
	_ = root.MarkPersistentFlagRequired("brief")

	plan := &cobra.Command{
		Use:   "plan",
		Short: "Run the full pipeline and print the outcome as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, brief, cleanup, err := setup(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			out := svc.Plan(cmd.Context(), brief)
			if err := printJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if out.Failed() {
				return errPlanFailed
			}
			return nil
		},
	}
	plan.Flags().BoolVar(&opts.noNarrate, "no-narrative", false, "skip the narrative service even when configured")

	preflight := &cobra.Command{
		Use:   "preflight",
		Short: "Print advisory warnings for a brief",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.noNarrate = true
			svc, brief, cleanup, err := setup(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()
			return printJSON(cmd.OutOrStdout(), map[string]any{"warnings": svc.Preflight(cmd.Context(), brief)})
		},
	}

	root.AddCommand(plan, preflight)
	return root
}

func setup(ctx context.Context, opts options, logOut io.Writer) (*usecase.PlannerUseCase, domain.CampaignBrief, func(), error) {
	noop := func() {}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, domain.CampaignBrief{}, noop, err
	}
	logger := app.NewLogger(cfg.Log, logOut)

	brief, err := readBrief(opts.brief)
	if err != nil {
		return nil, domain.CampaignBrief{}, noop, err
	}

	path := cfg.Planner.BenchmarksPath
	if opts.benchmarks != "" {
		path = opts.benchmarks
	}
	repo, err := app.LoadBenchmarks(path)
	if err != nil {
		return nil, domain.CampaignBrief{}, noop, err
	}
	settings, err := app.Settings(cfg.Planner, cfg.Gemini)
	if err != nil {
		return nil, domain.CampaignBrief{}, noop, err
	}

	ucOpts := []usecase.Option{usecase.WithSettings(settings)}
	cleanup := noop
	if !opts.noNarrate {
		narrativeOpts, closeFn, err := app.NarrativeOptions(ctx, cfg.Gemini, logger)
		if err != nil {
			return nil, domain.CampaignBrief{}, noop, err
		}
		ucOpts = append(ucOpts, narrativeOpts...)
		cleanup = closeFn
	}
	return usecase.NewPlannerUseCase(repo, logger, ucOpts...), brief, cleanup, nil
}

// readBrief decodes a brief file. JSON briefs are valid YAML, so one
// decoder serves both.
func readBrief(path string) (domain.CampaignBrief, error) {
	var brief domain.CampaignBrief
	raw, err := os.ReadFile(path)
	if err != nil {
		return brief, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&brief); err != nil {
		return brief, fmt.Errorf("decode brief %s: %w", path, err)
	}
	return brief, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
