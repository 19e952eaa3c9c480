package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/medbatch/internal/adapters/recordfile"
	"github.com/okian/medbatch/pkg/logger"
)

// Run generates both input files for the pipelines.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic records, not security material

	logger.Get().Info(ctx, "seeding record files",
		logger.Int("patients", config.PatientCount),
		logger.Int("meds", config.MedCount),
		logger.String("patientsFile", config.PatientsFile),
		logger.String("medsFile", config.MedsFile),
		logger.Any("seed", seed),
	)

	patients := generatePatients(rng, config.PatientCount, stats)
	if err := recordfile.Write(ctx, config.PatientsFile, patients); err != nil {
		return fmt.Errorf("write patient records: %w", err)
	}

	meds := generateDosageRequests(rng, config.MedCount, stats)
	if err := recordfile.Write(ctx, config.MedsFile, meds); err != nil {
		return fmt.Errorf("write dosage requests: %w", err)
	}

	logger.Get().Info(ctx, "seeding complete",
		logger.Int("patientsGenerated", stats.PatientsGenerated),
		logger.Int("duplicatesInjected", stats.DuplicatesInjected),
		logger.Int("dirtyAgesInjected", stats.DirtyAgesInjected),
		logger.Int("medsGenerated", stats.MedsGenerated),
		logger.Int("missingFieldsInjected", stats.MissingFieldsInject),
	)

	return nil
}
