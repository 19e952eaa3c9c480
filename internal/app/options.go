package app

import (
	"io"

	"github.com/okian/medbatch/internal/domain/cleanse"
	"github.com/okian/medbatch/internal/domain/dosing"
	"github.com/okian/medbatch/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithOutput redirects the report writer. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithMinimumAge sets the cleaner's retention threshold.
func WithMinimumAge(age int) Option {
	return func(s *Service) {
		s.cleanOpts = append(s.cleanOpts, cleanse.WithMinimumAge(age))
	}
}

// WithDosageFactors sets the medication factor table.
func WithDosageFactors(factors map[string]float64) Option {
	return func(s *Service) {
		s.dosingOpts = append(s.dosingOpts, dosing.WithFactorsFromConfig(factors))
	}
}

// WithLoadingDoseMedications sets the loading-dose eligibility set.
func WithLoadingDoseMedications(meds []string) Option {
	return func(s *Service) {
		s.dosingOpts = append(s.dosingOpts, dosing.WithLoadingDoseMedications(meds))
	}
}

// WithMedicationWarnings sets the medication warning map.
func WithMedicationWarnings(warnings map[string]string) Option {
	return func(s *Service) {
		s.dosingOpts = append(s.dosingOpts, dosing.WithWarningsFromConfig(warnings))
	}
}

// WithLoadingDoseMultiplier sets the first-dose multiplier.
func WithLoadingDoseMultiplier(multiplier float64) Option {
	return func(s *Service) {
		s.dosingOpts = append(s.dosingOpts, dosing.WithLoadingDoseMultiplier(multiplier))
	}
}
