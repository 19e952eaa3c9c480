// Package dosing implements weight-based medication dosing rules.
package dosing

import (
	"context"
	"fmt"

	"github.com/okian/medbatch/internal/domain/model"
)

// Default dosing configuration constants.
const (
	defaultLoadingDoseMultiplier = 2.0
)

// defaultFactors maps medication names to mg-per-kg factors from standard
// emergency dosing guidelines. Matching is exact and case-sensitive; an
// unmatched medication doses at zero for review rather than failing the batch.
func defaultFactors() map[string]float64 {
	return map[string]float64{
		"epinephrine":   0.01,  // anaphylaxis
		"amiodarone":    5.00,  // cardiac arrest
		"lorazepam":     0.05,  // seizures
		"fentanyl":      0.001, // pain
		"lisinopril":    0.5,   // blood pressure
		"metformin":     10.0,  // diabetes
		"oseltamivir":   2.5,   // influenza
		"sumatriptan":   1.0,   // migraine
		"albuterol":     0.1,   // asthma
		"ibuprofen":     5.0,   // pain/inflammation
		"sertraline":    1.5,   // antidepressant
		"levothyroxine": 0.02,  // thyroid
	}
}

// defaultLoadingDoseMedications lists medications whose first administration
// doubles the base dosage.
func defaultLoadingDoseMedications() []string {
	return []string{"amiodarone", "lorazepam", "fentanyl"}
}

// defaultWarnings maps medications to their static monitoring warnings.
// Extending this list is a configuration change, not a code change.
func defaultWarnings() map[string]string {
	return map[string]string{
		"epinephrine": "Monitor for arrhythmias",
		"amiodarone":  "Monitor for hypotension",
		"fentanyl":    "Monitor for respiratory depression",
	}
}

// Calculator applies the dosing rule set to dosage requests.
type Calculator struct {
	factors     map[string]float64
	loadingDose map[string]struct{}
	warnings    map[string]string
	multiplier  float64
}

// New creates a Calculator with configuration options.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		factors:     defaultFactors(),
		loadingDose: make(map[string]struct{}),
		warnings:    defaultWarnings(),
		multiplier:  defaultLoadingDoseMultiplier,
	}
	for _, med := range defaultLoadingDoseMedications() {
		c.loadingDose[med] = struct{}{}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Evaluate computes the dosage for a single request.
//
// A request missing weight, medication, or the first-dose flag returns an
// error wrapping ErrMissingField naming the field; callers skip the record
// and continue the batch. Unknown medications are not an error: they dose at
// zero via a zero factor.
func (c *Calculator) Evaluate(ctx context.Context, req model.DosageRequest) (model.DosageResult, error) {
	if err := ctx.Err(); err != nil {
		return model.DosageResult{}, fmt.Errorf("evaluate dosage: %w", err)
	}

	switch {
	case req.Weight == nil:
		return model.DosageResult{}, fmt.Errorf("%w: weight", ErrMissingField)
	case req.Medication == nil:
		return model.DosageResult{}, fmt.Errorf("%w: medication", ErrMissingField)
	case req.IsFirstDose == nil:
		return model.DosageResult{}, fmt.Errorf("%w: is_first_dose", ErrMissingField)
	}

	weight := *req.Weight
	medication := *req.Medication
	isFirstDose := *req.IsFirstDose

	// Unknown medications dose at zero; the caller notices via the output.
	factor := c.factors[medication]
	base := weight * factor

	final := base
	loadingApplied := false
	if _, eligible := c.loadingDose[medication]; eligible && isFirstDose {
		final = base * c.multiplier
		loadingApplied = true
	}

	warnings := []string{}
	if w, ok := c.warnings[medication]; ok {
		warnings = append(warnings, w)
	}

	return model.DosageResult{
		Name:               req.Name,
		Weight:             weight,
		Medication:         medication,
		Condition:          req.Condition,
		IsFirstDose:        isFirstDose,
		Allergies:          req.Allergies,
		BaseDosage:         base,
		LoadingDoseApplied: loadingApplied,
		FinalDosage:        final,
		Warnings:           warnings,
	}, nil
}

// KnownMedication reports whether the medication has a factor table entry.
func (c *Calculator) KnownMedication(name string) bool {
	_, ok := c.factors[name]
	return ok
}
