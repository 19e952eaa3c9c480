// Command dosage runs the medication dosing pipeline: load dosage requests
// from a JSON file, apply weight-based dosing rules, and print per-record
// dosages with the aggregate total.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/medbatch/internal/app"
	"github.com/okian/medbatch/internal/config"
	"github.com/okian/medbatch/pkg/logger"
)

func main() {
	input := flag.String("input", "", "Input file (overrides configured meds_file)")
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logging: " + err.Error() + "\n")
		}
	}()

	ctx := context.Background()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	path := cfg.MedsFile
	if *input != "" {
		path = *input
	}

	svc := app.New(
		app.WithDosageFactors(cfg.DosageFactors),
		app.WithLoadingDoseMedications(cfg.LoadingDoseMedications),
		app.WithMedicationWarnings(cfg.MedicationWarnings),
		app.WithLoadingDoseMultiplier(cfg.LoadingDoseMultiplier),
	)

	if _, _, err := svc.CalculateDosages(ctx, path); err != nil {
		logger.Get().Error(ctx, "dosage pipeline failed", logger.String("input", path), logger.Error(err))
		os.Exit(1)
	}

	svc.LogMetricsSummary(ctx)
}
