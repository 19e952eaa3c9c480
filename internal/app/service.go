// Package app wires the record pipelines together: load, transform, report.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/medbatch/internal/adapters/recordfile"
	"github.com/okian/medbatch/internal/domain/cleanse"
	"github.com/okian/medbatch/internal/domain/dosing"
	"github.com/okian/medbatch/internal/domain/model"
	"github.com/okian/medbatch/pkg/logger"
	"github.com/okian/medbatch/pkg/metrics"
)

// Service runs the cleaning and dosing pipelines.
type Service struct {
	cleanOpts  []cleanse.Option
	dosingOpts []dosing.Option

	cleaner    *cleanse.Cleaner
	calculator *dosing.Calculator

	out io.Writer
	log logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	s.cleaner = cleanse.New(s.cleanOpts...)
	s.calculator = dosing.New(s.dosingOpts...)

	return s
}

// CleanPatients loads raw patient records from path, applies the cleaning
// rules, prints the report, and returns the cleaned records.
func (s *Service) CleanPatients(ctx context.Context, path string) ([]model.Patient, error) {
	batch, err := recordfile.LoadPatients(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}

	s.log.Info(ctx, "loaded patient records",
		logger.String("path", path),
		logger.Int("count", len(batch)),
	)

	cleaned, stats := s.cleaner.Clean(ctx, batch)

	metrics.RecordPatientsLoaded(stats.Loaded)
	metrics.RecordPatientsRetained(stats.Retained)
	for i := 0; i < stats.DuplicatesDropped; i++ {
		metrics.RecordDuplicateDropped()
	}
	for i := 0; i < stats.UnderageFiltered; i++ {
		metrics.RecordUnderageFiltered()
	}
	for i := 0; i < stats.InvalidAges; i++ {
		metrics.RecordInvalidAge()
	}

	s.log.Info(ctx, "cleaned patient records",
		logger.Int("retained", stats.Retained),
		logger.Int("duplicates", stats.DuplicatesDropped),
		logger.Int("underage", stats.UnderageFiltered),
		logger.Int("invalidAges", stats.InvalidAges),
	)

	s.reportPatients(cleaned)
	return cleaned, nil
}

// CalculateDosages loads dosage requests from path, evaluates each one,
// prints the report, and returns the computed results with their aggregate
// total in mg.
//
// A request missing a required field is skipped with a diagnostic and does
// not halt the batch or count toward the total.
func (s *Service) CalculateDosages(ctx context.Context, path string) ([]model.DosageResult, float64, error) {
	batch, err := recordfile.LoadDosageRequests(ctx, path)
	if err != nil {
		return nil, 0, fmt.Errorf("load dosage requests: %w", err)
	}

	s.log.Info(ctx, "loaded dosage requests",
		logger.String("path", path),
		logger.Int("count", len(batch)),
	)

	results := make([]model.DosageResult, 0, len(batch))
	total := 0.0

	for i, req := range batch {
		res, err := s.calculator.Evaluate(ctx, req)
		if err != nil {
			if errors.Is(err, dosing.ErrMissingField) {
				metrics.RecordDosageSkipped()
				s.log.Warn(ctx, "skipping dosage request",
					logger.Int("index", i),
					logger.String("name", req.Name),
					logger.Error(err),
				)
				continue
			}
			return nil, 0, fmt.Errorf("evaluate request %d: %w", i, err)
		}

		metrics.RecordDosageComputed()
		if res.LoadingDoseApplied {
			metrics.RecordLoadingDose()
		}
		if !s.calculator.KnownMedication(res.Medication) {
			metrics.RecordUnknownMedication()
			s.log.Warn(ctx, "medication outside factor table dosed at zero",
				logger.String("name", res.Name),
				logger.String("medication", res.Medication),
			)
		}

		results = append(results, res)
		total += res.FinalDosage
	}

	metrics.UpdateTotalMedication(total)

	s.log.Info(ctx, "calculated dosages",
		logger.Int("computed", len(results)),
		logger.Int("skipped", len(batch)-len(results)),
		logger.Float64("totalMg", total),
	)

	s.reportDosages(results, total)
	return results, total, nil
}

// LogMetricsSummary logs the pipeline counters collected during this run.
func (s *Service) LogMetricsSummary(ctx context.Context) {
	snapshot, err := metrics.Snapshot()
	if err != nil {
		s.log.Warn(ctx, "failed to gather metrics", logger.Error(err))
		return
	}

	fields := make([]logger.Field, 0, len(snapshot))
	for name, value := range snapshot {
		fields = append(fields, logger.Float64(name, value))
	}
	s.log.Debug(ctx, "run metrics", fields...)
}
