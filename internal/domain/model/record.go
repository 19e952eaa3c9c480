// Package model contains domain models passed between layers.
package model

// Canonical patient record field names as they appear in input files.
const (
	FieldName      = "name"
	FieldAge       = "age"
	FieldGender    = "gender"
	FieldDiagnosis = "diagnosis"
)

// RawPatient is a patient record as loaded from a file, before cleaning.
// Keys may be missing and the age may be a JSON string or number.
type RawPatient map[string]any

// Patient is a cleaned patient record. Exactly the four canonical fields
// survive cleaning; any extra raw keys are dropped.
type Patient struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Diagnosis string `json:"diagnosis"`
}

// DosageRequest is a single medication request for one patient.
// Weight, Medication and IsFirstDose are pointers so an absent key is
// distinguishable from a zero value; all three are required.
type DosageRequest struct {
	Name        string   `json:"name"`
	Weight      *float64 `json:"weight,omitempty"`
	Medication  *string  `json:"medication,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	IsFirstDose *bool    `json:"is_first_dose,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// DosageResult is a computed dosage for an accepted request.
type DosageResult struct {
	Name               string   `json:"name"`
	Weight             float64  `json:"weight"`
	Medication         string   `json:"medication"`
	Condition          string   `json:"condition,omitempty"`
	IsFirstDose        bool     `json:"is_first_dose"`
	Allergies          []string `json:"allergies,omitempty"`
	BaseDosage         float64  `json:"base_dosage"`
	LoadingDoseApplied bool     `json:"loading_dose_applied"`
	FinalDosage        float64  `json:"final_dosage"`
	Warnings           []string `json:"warnings"`
}
