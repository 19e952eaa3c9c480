// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the batch pipelines.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// PatientsFile is the default input for the cleaner pipeline.
	PatientsFile string `koanf:"patients_file"`

	// MedsFile is the default input for the dosage pipeline.
	MedsFile string `koanf:"meds_file"`

	// MinimumAge is the retention threshold for coerced patient ages.
	MinimumAge int `koanf:"minimum_age"`

	// LoadingDoseMultiplier scales the base dosage on eligible first doses.
	LoadingDoseMultiplier float64 `koanf:"loading_dose_multiplier"`

	// DosageFactors maps medication names to mg-per-kg factors. Empty means
	// the built-in table from standard emergency dosing guidelines.
	DosageFactors map[string]float64 `koanf:"dosage_factors"`

	// LoadingDoseMedications lists medications eligible for a loading dose.
	// Nil means the built-in set; an explicit empty list disables loading doses.
	LoadingDoseMedications []string `koanf:"loading_dose_medications"`

	// MedicationWarnings maps medications to static monitoring warnings.
	// The warning rules are data, not code.
	MedicationWarnings map[string]string `koanf:"medication_warnings"`
}

// New creates a Config with defaults. The dosing tables default to nil so the
// dosing package's built-in tables apply unless configuration overrides them.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		PatientsFile:          "data/raw/patients.json",
		MedsFile:              "data/raw/meds.json",
		MinimumAge:            18,
		LoadingDoseMultiplier: 2,
	}
}
