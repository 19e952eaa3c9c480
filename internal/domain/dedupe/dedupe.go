// Package dedupe tracks field-wise record identity within a batch.
package dedupe

import (
	"context"
	"strconv"
	"strings"

	"github.com/okian/medbatch/internal/domain/model"
)

// Deduper records seen patient fingerprints so a batch keeps only the first
// occurrence of field-wise identical records.
type Deduper interface {
	// SeenAndRecord atomically checks if the record was seen and records it
	// if not. Returns true if an identical record was already seen.
	SeenAndRecord(ctx context.Context, p model.Patient) bool

	// Size returns the number of distinct records recorded so far.
	Size() int
}

// inMemoryDeduper implements Deduper with a plain map. Batches are processed
// sequentially, so no locking or eviction is needed.
type inMemoryDeduper struct {
	seen map[string]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}

	cfg := settings{capacityHint: defaultCapacityHint}
	for _, opt := range opts {
		opt(&cfg)
	}

	d.seen = make(map[string]struct{}, cfg.capacityHint)
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, p model.Patient) bool {
	key := fingerprint(p)
	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	return len(d.seen)
}

// fingerprint derives the identity key from all four canonical fields.
// The unit separator keeps distinct field splits from colliding.
func fingerprint(p model.Patient) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte(0x1f)
	b.WriteString(strconv.Itoa(p.Age))
	b.WriteByte(0x1f)
	b.WriteString(p.Gender)
	b.WriteByte(0x1f)
	b.WriteString(p.Diagnosis)
	return b.String()
}
