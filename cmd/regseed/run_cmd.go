package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aimc-tcm/regseed/modules/onboarding/infrastructure/excel"
	"github.com/aimc-tcm/regseed/modules/onboarding/infrastructure/persistence"
	"github.com/aimc-tcm/regseed/modules/onboarding/linkage"
	"github.com/aimc-tcm/regseed/modules/onboarding/services"
	"github.com/aimc-tcm/regseed/pkg/configuration"
)

type runOptions struct {
	file     string
	apply    bool
	strategy string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read the workbook, link rows to companies, and build all collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Workbook path (default: SEED_WORKBOOK)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Write to the database (default is dry-run)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Fuzzy match strategy: substring|ranked (default: SEED_MATCH_STRATEGY)")

	return cmd
}

func runSeed(ctx context.Context, opts runOptions) error {
	cfg := configuration.Use()
	logger := cfg.Logger()

	file := strings.TrimSpace(opts.file)
	if file == "" {
		file = cfg.WorkbookPath
	}
	if file == "" {
		return withCode(exitUsage, fmt.Errorf("no workbook: pass --file or set SEED_WORKBOOK"))
	}

	strategy := opts.strategy
	if strategy == "" {
		strategy = cfg.MatchStrategy
	}

	sheets, err := excel.Load(file)
	if err != nil {
		return err
	}

	var store services.Store
	if opts.apply {
		pool, err := persistence.NewPool(ctx, cfg.Database.ConnectionString())
		if err != nil {
			return withCode(exitDB, err)
		}
		defer pool.Close()
		store = persistence.NewSeedRepository(pool)
	}

	svc := services.NewSeedService(store, logger, services.WithMatcher(linkage.MatcherFor(strategy)))

	var res *services.RunResult
	if opts.apply {
		res, err = svc.Apply(ctx, sheets)
	} else {
		res, err = svc.Plan(ctx, sheets)
	}
	if err != nil {
		return withCode(exitDB, err)
	}

	if err := writeJSONLine(res.Report); err != nil {
		return err
	}
	if !res.Report.Clean() {
		return withCode(exitPartial, fmt.Errorf(
			"run completed with %d link failures, %d duplicates, %d missing sheets",
			len(res.Report.LinkFailures), len(res.Report.Duplicates), len(res.Report.ParseGaps),
		))
	}
	return nil
}

func writeJSONLine(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
