package dosing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/medbatch/internal/domain/dosing"
	"github.com/okian/medbatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func request(name string, weight float64, medication string, firstDose bool) model.DosageRequest {
	return model.DosageRequest{
		Name:        name,
		Weight:      &weight,
		Medication:  &medication,
		IsFirstDose: &firstDose,
	}
}

func TestCalculatorEvaluate(t *testing.T) {
	Convey("Given a calculator with default tables", t, func() {
		calc := dosing.New()
		ctx := context.Background()

		Convey("When dosing epinephrine outside the first dose", func() {
			res, err := calc.Evaluate(ctx, request("John Smith", 70, "epinephrine", false))

			Convey("Then base and final dosage should equal weight times factor", func() {
				So(err, ShouldBeNil)
				So(res.BaseDosage, ShouldAlmostEqual, 0.7)
				So(res.LoadingDoseApplied, ShouldBeFalse)
				So(res.FinalDosage, ShouldAlmostEqual, 0.7)
			})

			Convey("And the epinephrine warning should be attached", func() {
				So(res.Warnings, ShouldResemble, []string{"Monitor for arrhythmias"})
			})
		})

		Convey("When dosing a first dose of amiodarone", func() {
			res, err := calc.Evaluate(ctx, request("Jane Doe", 70, "amiodarone", true))

			Convey("Then the loading dose should double the base", func() {
				So(err, ShouldBeNil)
				So(res.BaseDosage, ShouldAlmostEqual, 350)
				So(res.LoadingDoseApplied, ShouldBeTrue)
				So(res.FinalDosage, ShouldAlmostEqual, 700)
			})
		})

		Convey("When the medication takes loading doses but it is not the first dose", func() {
			res, err := calc.Evaluate(ctx, request("Jane Doe", 70, "amiodarone", false))

			Convey("Then the base dosage should stand", func() {
				So(err, ShouldBeNil)
				So(res.LoadingDoseApplied, ShouldBeFalse)
				So(res.FinalDosage, ShouldAlmostEqual, 350)
			})
		})

		Convey("When it is a first dose of a non-loading medication", func() {
			res, err := calc.Evaluate(ctx, request("Sam Lee", 70, "epinephrine", true))

			Convey("Then no loading dose should apply", func() {
				So(err, ShouldBeNil)
				So(res.LoadingDoseApplied, ShouldBeFalse)
				So(res.FinalDosage, ShouldAlmostEqual, 0.7)
			})
		})

		Convey("When the medication is unknown", func() {
			res, err := calc.Evaluate(ctx, request("Pat Kim", 70, "unknown_drug", false))

			Convey("Then it should dose at zero with no warnings", func() {
				So(err, ShouldBeNil)
				So(res.BaseDosage, ShouldEqual, 0)
				So(res.FinalDosage, ShouldEqual, 0)
				So(res.Warnings, ShouldBeEmpty)
			})

			Convey("And the table should report it as unknown", func() {
				So(calc.KnownMedication("unknown_drug"), ShouldBeFalse)
				So(calc.KnownMedication("epinephrine"), ShouldBeTrue)
			})
		})

		Convey("When medication matching would require case folding", func() {
			res, err := calc.Evaluate(ctx, request("Pat Kim", 70, "Epinephrine", false))

			Convey("Then the match should stay case-sensitive and dose at zero", func() {
				So(err, ShouldBeNil)
				So(res.FinalDosage, ShouldEqual, 0)
			})
		})

		Convey("When required fields are missing", func() {
			med := "fentanyl"
			first := true
			weight := 80.0

			missingWeight := model.DosageRequest{Name: "No Weight", Medication: &med, IsFirstDose: &first}
			missingMed := model.DosageRequest{Name: "No Med", Weight: &weight, IsFirstDose: &first}
			missingFlag := model.DosageRequest{Name: "No Flag", Weight: &weight, Medication: &med}

			Convey("Then each should return ErrMissingField naming the field", func() {
				_, err := calc.Evaluate(ctx, missingWeight)
				So(errors.Is(err, dosing.ErrMissingField), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "weight")

				_, err = calc.Evaluate(ctx, missingMed)
				So(errors.Is(err, dosing.ErrMissingField), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "medication")

				_, err = calc.Evaluate(ctx, missingFlag)
				So(errors.Is(err, dosing.ErrMissingField), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "is_first_dose")
			})
		})

		Convey("When the request carries passthrough fields", func() {
			req := request("Ana Ruiz", 60, "fentanyl", true)
			req.Condition = "post-op pain"
			req.Allergies = []string{"penicillin"}

			res, err := calc.Evaluate(ctx, req)

			Convey("Then they should be preserved on the result", func() {
				So(err, ShouldBeNil)
				So(res.Condition, ShouldEqual, "post-op pain")
				So(res.Allergies, ShouldResemble, []string{"penicillin"})
				So(res.IsFirstDose, ShouldBeTrue)
				So(res.Warnings, ShouldResemble, []string{"Monitor for respiratory depression"})
			})
		})

		Convey("When the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := calc.Evaluate(cancelled, request("X", 70, "epinephrine", false))

			Convey("Then it should return the context error", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestCalculatorOptions(t *testing.T) {
	Convey("Given a calculator with custom tables", t, func() {
		calc := dosing.New(
			dosing.WithFactorsFromConfig(map[string]float64{"saline": 1.0}),
			dosing.WithLoadingDoseMedications([]string{"saline"}),
			dosing.WithWarningsFromConfig(map[string]string{"saline": "Check drip rate"}),
			dosing.WithLoadingDoseMultiplier(3),
		)
		ctx := context.Background()

		Convey("When dosing a first dose with the custom multiplier", func() {
			res, err := calc.Evaluate(ctx, request("Kit", 50, "saline", true))

			Convey("Then the custom tables should drive the result", func() {
				So(err, ShouldBeNil)
				So(res.BaseDosage, ShouldAlmostEqual, 50)
				So(res.LoadingDoseApplied, ShouldBeTrue)
				So(res.FinalDosage, ShouldAlmostEqual, 150)
				So(res.Warnings, ShouldResemble, []string{"Check drip rate"})
			})
		})

		Convey("When dosing a medication from the replaced default table", func() {
			res, err := calc.Evaluate(ctx, request("Kit", 50, "epinephrine", false))

			Convey("Then it should now be unknown", func() {
				So(err, ShouldBeNil)
				So(res.FinalDosage, ShouldEqual, 0)
				So(calc.KnownMedication("epinephrine"), ShouldBeFalse)
			})
		})

		Convey("When an empty medication list clears loading doses", func() {
			noLoading := dosing.New(dosing.WithLoadingDoseMedications([]string{}))

			res, err := noLoading.Evaluate(ctx, request("Kit", 70, "amiodarone", true))

			Convey("Then no loading dose should ever apply", func() {
				So(err, ShouldBeNil)
				So(res.LoadingDoseApplied, ShouldBeFalse)
				So(res.FinalDosage, ShouldAlmostEqual, 350)
			})
		})
	})
}
