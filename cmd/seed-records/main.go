// Command seed-records generates synthetic input files for the pipelines.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/medbatch/internal/seeder"
	"github.com/okian/medbatch/pkg/logger"
)

// Default configuration constants.
const (
	defaultPatientCount = 50
	defaultMedCount     = 50
)

func main() {
	var (
		patients     = flag.Int("patients", defaultPatientCount, "Number of patient records to generate")
		meds         = flag.Int("meds", defaultMedCount, "Number of dosage requests to generate")
		patientsFile = flag.String("patients-out", "data/raw/patients.json", "Output file for patient records")
		medsFile     = flag.String("meds-out", "data/raw/meds.json", "Output file for dosage requests")
		seed         = flag.Int64("seed", 0, "Random seed; 0 derives one from the clock")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seeder.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	config := &seeder.Config{
		PatientCount: *patients,
		MedCount:     *meds,
		PatientsFile: *patientsFile,
		MedsFile:     *medsFile,
		Seed:         *seed,
		Verbose:      *verbose,
	}

	if err := seeder.Run(context.Background(), config); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
