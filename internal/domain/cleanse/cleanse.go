// Package cleanse implements the patient record cleaning rules.
//
// Records are normalized one at a time: canonical shape is filled in, the
// age is coerced to an integer, and the name is title-cased. Normalized
// records then pass the minimum-age filter and field-wise deduplication,
// preserving the order of first occurrence. Coercion runs before the filter,
// so an invalid age is always zeroed and dropped, never treated as an adult.
package cleanse

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okian/medbatch/internal/domain/dedupe"
	"github.com/okian/medbatch/internal/domain/model"
)

// Default cleaning configuration constants.
const (
	defaultMinimumAge = 18
)

// Option applies a configuration option to the Cleaner.
type Option func(*Cleaner)

// WithMinimumAge sets the retention threshold for coerced ages.
func WithMinimumAge(age int) Option {
	return func(c *Cleaner) {
		if age >= 0 {
			c.minimumAge = age
		}
	}
}

// Stats summarizes what happened to a batch during cleaning.
type Stats struct {
	Loaded            int
	Retained          int
	DuplicatesDropped int
	UnderageFiltered  int
	InvalidAges       int
}

// Cleaner applies the cleaning rule set to batches of raw patient records.
type Cleaner struct {
	minimumAge int
	titler     cases.Caser
}

// New creates a Cleaner with configuration options.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		minimumAge: defaultMinimumAge,
		titler:     cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Clean normalizes, filters, and deduplicates a batch. The returned slice
// holds the retained records in their original order of first occurrence.
func (c *Cleaner) Clean(ctx context.Context, batch []model.RawPatient) ([]model.Patient, Stats) {
	stats := Stats{Loaded: len(batch)}

	seen := dedupe.NewInMemoryDeduper(dedupe.WithCapacityHint(len(batch)))
	cleaned := make([]model.Patient, 0, len(batch))

	for _, raw := range batch {
		p, ageValid := c.normalize(raw)
		if !ageValid {
			stats.InvalidAges++
		}

		if p.Age < c.minimumAge {
			stats.UnderageFiltered++
			continue
		}

		if seen.SeenAndRecord(ctx, p) {
			stats.DuplicatesDropped++
			continue
		}

		cleaned = append(cleaned, p)
	}

	stats.Retained = len(cleaned)
	return cleaned, stats
}

// CleanOne normalizes a single record without filtering or deduplication.
// Exposed for callers that want the canonical form of an arbitrary record.
func (c *Cleaner) CleanOne(raw model.RawPatient) model.Patient {
	p, _ := c.normalize(raw)
	return p
}

// normalize fills the canonical shape, coerces the age, and title-cases the
// name. The second return reports whether the age coerced cleanly.
func (c *Cleaner) normalize(raw model.RawPatient) (model.Patient, bool) {
	age, ok := coerceAge(raw[model.FieldAge])

	return model.Patient{
		Name:      c.titler.String(asString(raw[model.FieldName])),
		Age:       age,
		Gender:    asString(raw[model.FieldGender]),
		Diagnosis: asString(raw[model.FieldDiagnosis]),
	}, ok
}

// coerceAge converts a loosely-typed age to its canonical integer form.
// Anything that fails to parse coerces to 0, which the filter then drops.
func coerceAge(v any) (int, bool) {
	switch age := v.(type) {
	case nil:
		return 0, false
	case int:
		return age, true
	case float64:
		// JSON numbers decode as float64; fractional ages truncate.
		return int(age), true
	case string:
		s := strings.TrimSpace(age)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// asString flattens a raw field to text; missing and non-text values become
// the empty-string placeholder.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
