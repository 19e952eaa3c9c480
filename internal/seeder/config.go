package seeder

// Config holds configuration for the record seeder.
type Config struct {
	PatientCount int    // Number of patient records to generate
	MedCount     int    // Number of dosage requests to generate
	PatientsFile string // Output path for patient records
	MedsFile     string // Output path for dosage requests
	Seed         int64  // Random seed for reproducible batches
	Verbose      bool   // Enable verbose logging
}

// Stats holds seeding statistics.
type Stats struct {
	PatientsGenerated   int
	DuplicatesInjected  int
	DirtyAgesInjected   int
	MedsGenerated       int
	MissingFieldsInject int
}
