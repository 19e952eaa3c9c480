package dosing

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithFactorsFromConfig replaces the factor table from a configuration map.
// Negative factors are ignored.
func WithFactorsFromConfig(factors map[string]float64) Option {
	return func(c *Calculator) {
		if len(factors) == 0 {
			return
		}
		c.factors = make(map[string]float64, len(factors))
		for med, factor := range factors {
			if factor >= 0 {
				c.factors[med] = factor
			}
		}
	}
}

// WithLoadingDoseMedications replaces the set of medications eligible for a
// loading dose on first administration.
func WithLoadingDoseMedications(meds []string) Option {
	return func(c *Calculator) {
		if meds == nil {
			return
		}
		c.loadingDose = make(map[string]struct{}, len(meds))
		for _, med := range meds {
			c.loadingDose[med] = struct{}{}
		}
	}
}

// WithWarningsFromConfig replaces the medication warning map.
func WithWarningsFromConfig(warnings map[string]string) Option {
	return func(c *Calculator) {
		if warnings == nil {
			return
		}
		c.warnings = make(map[string]string, len(warnings))
		for med, text := range warnings {
			if text != "" {
				c.warnings[med] = text
			}
		}
	}
}

// WithLoadingDoseMultiplier sets the first-dose multiplier.
func WithLoadingDoseMultiplier(multiplier float64) Option {
	return func(c *Calculator) {
		if multiplier > 0 {
			c.multiplier = multiplier
		}
	}
}
