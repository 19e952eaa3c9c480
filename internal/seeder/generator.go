package seeder

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/medbatch/internal/domain/model"
)

// Dirt injection cadence constants. The cleaner and calculator exist because
// real exports look like this: string ages, spelled-out ages, duplicated
// rows, and requests missing required keys.
const (
	wordAgeEvery      = 7
	stringAgeEvery    = 3
	missingFieldEvery = 5
	duplicateEvery    = 6
	unknownMedEvery   = 9
	minAdultAge       = 16
	ageSpread         = 60
	minWeightKg       = 40.0
	weightSpreadKg    = 70.0
)

var firstNames = []string{"john", "jane", "bob", "ann", "carlos", "mei", "fatima", "lena", "omar", "priya"}
var lastNames = []string{"smith", "doe", "garcia", "chen", "khan", "miller", "rossi", "novak", "sato", "patel"}
var genders = []string{"male", "female"}
var diagnoses = []string{"flu", "hypertension", "asthma", "diabetes", "migraine", "anaphylaxis", "seizure disorder"}
var conditions = []string{"anaphylaxis", "cardiac arrest", "seizures", "pain", "influenza", "migraine", "asthma"}
var wordAges = []string{"thirty", "unknown", "n/a", "forty-two"}

var medications = []string{
	"epinephrine", "amiodarone", "lorazepam", "fentanyl", "lisinopril",
	"metformin", "oseltamivir", "sumatriptan", "albuterol", "ibuprofen",
}

var unknownMedications = []string{"placebo", "experimental_x", "unknown_drug"}

// generatePatients produces a batch of raw patient records with realistic
// dirt. Each record carries a uuid record_id used only in diagnostics; the
// cleaner drops it with every other non-canonical key.
func generatePatients(rng *rand.Rand, count int, stats *Stats) []model.RawPatient {
	batch := make([]model.RawPatient, 0, count)

	for i := 0; i < count; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		age := minAdultAge + rng.Intn(ageSpread)

		rec := model.RawPatient{
			"record_id":          uuid.New().String(),
			model.FieldName:      name,
			model.FieldAge:       age,
			model.FieldGender:    genders[rng.Intn(len(genders))],
			model.FieldDiagnosis: diagnoses[rng.Intn(len(diagnoses))],
		}

		switch {
		case i%wordAgeEvery == wordAgeEvery-1:
			rec[model.FieldAge] = wordAges[rng.Intn(len(wordAges))]
			stats.DirtyAgesInjected++
		case i%stringAgeEvery == stringAgeEvery-1:
			rec[model.FieldAge] = strconv.Itoa(age)
			stats.DirtyAgesInjected++
		}

		if i%missingFieldEvery == missingFieldEvery-1 {
			delete(rec, model.FieldDiagnosis)
		}

		batch = append(batch, rec)

		if i%duplicateEvery == duplicateEvery-1 {
			dup := model.RawPatient{}
			for k, v := range rec {
				dup[k] = v
			}
			dup["record_id"] = uuid.New().String()
			batch = append(batch, dup)
			stats.DuplicatesInjected++
		}
	}

	stats.PatientsGenerated = len(batch)
	return batch
}

// generateDosageRequests produces dosage requests, some of which are missing
// a required field so the skip policy gets exercised.
func generateDosageRequests(rng *rand.Rand, count int, stats *Stats) []model.DosageRequest {
	batch := make([]model.DosageRequest, 0, count)

	for i := 0; i < count; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		weight := minWeightKg + rng.Float64()*weightSpreadKg
		med := medications[rng.Intn(len(medications))]
		if i%unknownMedEvery == unknownMedEvery-1 {
			med = unknownMedications[rng.Intn(len(unknownMedications))]
		}
		firstDose := rng.Intn(2) == 0

		req := model.DosageRequest{
			Name:        name,
			Weight:      &weight,
			Medication:  &med,
			Condition:   conditions[rng.Intn(len(conditions))],
			IsFirstDose: &firstDose,
		}
		if rng.Intn(2) == 0 {
			req.Allergies = []string{"penicillin"}
		}

		if i%missingFieldEvery == missingFieldEvery-1 {
			// Drop one required field at random.
			switch rng.Intn(3) {
			case 0:
				req.Weight = nil
			case 1:
				req.Medication = nil
			default:
				req.IsFirstDose = nil
			}
			stats.MissingFieldsInject++
		}

		batch = append(batch, req)
	}

	stats.MedsGenerated = len(batch)
	return batch
}
