package app

import (
	"fmt"
	"strings"

	"github.com/okian/medbatch/internal/domain/model"
)

// reportPatients prints the cleaned batch in the console format the
// downstream workflow expects.
func (s *Service) reportPatients(cleaned []model.Patient) {
	if len(cleaned) == 0 {
		fmt.Fprintln(s.out, "No valid patient records found.")
		return
	}

	fmt.Fprintln(s.out, "Cleaned Patient Data:")
	for _, p := range cleaned {
		fmt.Fprintf(s.out, "Name: %s, Age: %d, Diagnosis: %s\n", p.Name, p.Age, p.Diagnosis)
	}
}

// reportDosages prints per-record dosage lines and the aggregate total.
func (s *Service) reportDosages(results []model.DosageResult, total float64) {
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No dosage records processed.")
		return
	}

	fmt.Fprintln(s.out, "Medication Dosages:")
	for _, r := range results {
		fmt.Fprintf(s.out, "Name: %s, Medication: %s, Base Dosage: %.2f mg, Final Dosage: %.2f mg\n",
			r.Name, r.Medication, r.BaseDosage, r.FinalDosage)
		if r.LoadingDoseApplied {
			fmt.Fprintln(s.out, "Loading dose applied")
		}
		if len(r.Warnings) > 0 {
			fmt.Fprintln(s.out, "Warnings: "+strings.Join(r.Warnings, ", "))
		}
	}

	fmt.Fprintf(s.out, "\nTotal medication needed: %.2f mg\n", total)
}
