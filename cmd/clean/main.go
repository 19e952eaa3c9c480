// Command clean runs the patient record cleaning pipeline: load raw records
// from a JSON file, normalize and filter them, and print the cleaned batch.
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
	input := flag.String("input", "", "Input file (overrides configured patients_file)")
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

	path := cfg.PatientsFile
	if *input != "" {
		path = *input
	}

	svc := app.New(
		app.WithMinimumAge(cfg.MinimumAge),
	)

	if _, err := svc.CleanPatients(ctx, path); err != nil {
		logger.Get().Error(ctx, "cleaning pipeline failed", logger.String("input", path), logger.Error(err))
		os.Exit(1)
	}

	svc.LogMetricsSummary(ctx)
}
