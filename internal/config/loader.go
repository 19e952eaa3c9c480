package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if MEDBATCH_CONFIG is set
//  3. env (prefix MEDBATCH_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MEDBATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: MEDBATCH_LOG_LEVEL, MEDBATCH_MINIMUM_AGE, ...
	// Map env keys like MEDBATCH_PATIENTS_FILE -> patients_file (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MEDBATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "medbatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PatientsFile == "" {
		return fmt.Errorf("%w: patients_file must not be empty", ErrInvalidConfig)
	}
	if c.MedsFile == "" {
		return fmt.Errorf("%w: meds_file must not be empty", ErrInvalidConfig)
	}
	if c.MinimumAge < 0 {
		return fmt.Errorf("%w: minimum_age must not be negative", ErrInvalidConfig)
	}
	if c.LoadingDoseMultiplier <= 0 {
		return fmt.Errorf("%w: loading_dose_multiplier must be positive", ErrInvalidConfig)
	}
	for med, factor := range c.DosageFactors {
		if factor < 0 {
			return fmt.Errorf("%w: dosage factor for %s must not be negative", ErrInvalidConfig, med)
		}
	}
	return nil
}
