package seeder

import (
	"os"
)

// ShowHelp prints usage information for the record seeder.
func ShowHelp() {
	os.Stdout.WriteString(`Medbatch Record Seeder
======================

Generates synthetic patient and dosage-request files with realistic dirt
(string ages, spelled-out ages, duplicate rows, missing required fields) for
exercising the cleaning and dosing pipelines.

Usage:
  go run ./cmd/seed-records [options]

Options:
  -patients int
        Number of patient records to generate (default 50)
  -meds int
        Number of dosage requests to generate (default 50)
  -patients-out string
        Output file for patient records (default "data/raw/patients.json")
  -meds-out string
        Output file for dosage requests (default "data/raw/meds.json")
  -seed int
        Random seed; 0 derives one from the clock (default 0)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed default locations
  go run ./cmd/seed-records

  # Reproducible large batch
  go run ./cmd/seed-records -patients 500 -meds 500 -seed 42
`)
}
