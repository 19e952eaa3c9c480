package cleanse_test

import (
	"context"
	"testing"

	"github.com/okian/medbatch/internal/domain/cleanse"
	"github.com/okian/medbatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCleanerRules(t *testing.T) {
	Convey("Given a cleaner with default settings", t, func() {
		c := cleanse.New()
		ctx := context.Background()

		Convey("When cleaning a well-formed record", func() {
			batch := []model.RawPatient{
				{"name": "john smith", "age": "32", "gender": "male", "diagnosis": "flu"},
			}

			cleaned, stats := c.Clean(ctx, batch)

			Convey("Then it should title-case the name and coerce the age", func() {
				So(cleaned, ShouldResemble, []model.Patient{
					{Name: "John Smith", Age: 32, Gender: "male", Diagnosis: "flu"},
				})
				So(stats.Loaded, ShouldEqual, 1)
				So(stats.Retained, ShouldEqual, 1)
			})
		})

		Convey("When cleaning an underage record", func() {
			batch := []model.RawPatient{
				{"name": "ann", "age": "15", "gender": "female", "diagnosis": "cold"},
			}

			cleaned, stats := c.Clean(ctx, batch)

			Convey("Then it should be filtered out", func() {
				So(cleaned, ShouldBeEmpty)
				So(stats.UnderageFiltered, ShouldEqual, 1)
				So(stats.InvalidAges, ShouldEqual, 0)
			})
		})

		Convey("When the age is non-numeric text", func() {
			batch := []model.RawPatient{
				{"name": "bob", "age": "notanumber", "gender": "male", "diagnosis": "flu"},
			}

			cleaned, stats := c.Clean(ctx, batch)

			Convey("Then it should coerce to zero and be filtered", func() {
				So(cleaned, ShouldBeEmpty)
				So(stats.InvalidAges, ShouldEqual, 1)
				So(stats.UnderageFiltered, ShouldEqual, 1)
			})
		})

		Convey("When the age is spelled out in words", func() {
			batch := []model.RawPatient{
				{"name": "carl", "age": "thirty", "gender": "male", "diagnosis": "flu"},
			}

			cleaned, _ := c.Clean(ctx, batch)

			Convey("Then it should never pass as an adult", func() {
				So(cleaned, ShouldBeEmpty)
			})
		})

		Convey("When the batch contains field-wise duplicates", func() {
			batch := []model.RawPatient{
				{"name": "jane doe", "age": "40", "gender": "female", "diagnosis": "asthma"},
				{"name": "john smith", "age": "32", "gender": "male", "diagnosis": "flu"},
				{"name": "jane doe", "age": "40", "gender": "female", "diagnosis": "asthma"},
			}

			cleaned, stats := c.Clean(ctx, batch)

			Convey("Then only the first occurrence should survive, in order", func() {
				So(cleaned, ShouldHaveLength, 2)
				So(cleaned[0].Name, ShouldEqual, "Jane Doe")
				So(cleaned[1].Name, ShouldEqual, "John Smith")
				So(stats.DuplicatesDropped, ShouldEqual, 1)
			})

			Convey("And no two retained records should be field-wise equal", func() {
				for i := range cleaned {
					for j := i + 1; j < len(cleaned); j++ {
						So(cleaned[i], ShouldNotResemble, cleaned[j])
					}
				}
			})
		})

		Convey("When records are missing canonical fields", func() {
			batch := []model.RawPatient{
				{"age": 45},
			}

			cleaned, _ := c.Clean(ctx, batch)

			Convey("Then absent fields should become empty placeholders", func() {
				So(cleaned, ShouldResemble, []model.Patient{
					{Name: "", Age: 45, Gender: "", Diagnosis: ""},
				})
			})
		})

		Convey("When the age arrives as a JSON number", func() {
			batch := []model.RawPatient{
				{"name": "dora", "age": 27.0, "gender": "female", "diagnosis": "migraine"},
			}

			cleaned, _ := c.Clean(ctx, batch)

			Convey("Then it should coerce to an integer", func() {
				So(cleaned, ShouldHaveLength, 1)
				So(cleaned[0].Age, ShouldEqual, 27)
			})
		})

		Convey("When cleaning is applied to its own output", func() {
			batch := []model.RawPatient{
				{"name": "john smith", "age": "32", "gender": "male", "diagnosis": "flu"},
				{"name": "jane doe", "age": 40, "gender": "female", "diagnosis": "asthma"},
			}

			first, _ := c.Clean(ctx, batch)

			rebatch := make([]model.RawPatient, len(first))
			for i, p := range first {
				rebatch[i] = model.RawPatient{
					"name":      p.Name,
					"age":       p.Age,
					"gender":    p.Gender,
					"diagnosis": p.Diagnosis,
				}
			}

			second, stats := c.Clean(ctx, rebatch)

			Convey("Then the result should be unchanged (idempotence)", func() {
				So(second, ShouldResemble, first)
				So(stats.Retained, ShouldEqual, len(first))
				So(stats.InvalidAges, ShouldEqual, 0)
			})
		})

		Convey("When the batch is empty", func() {
			cleaned, stats := c.Clean(ctx, nil)

			Convey("Then it should return an empty slice", func() {
				So(cleaned, ShouldBeEmpty)
				So(stats.Loaded, ShouldEqual, 0)
			})
		})
	})
}

func TestCleanerOptions(t *testing.T) {
	Convey("Given a cleaner with a custom minimum age", t, func() {
		c := cleanse.New(cleanse.WithMinimumAge(21))
		ctx := context.Background()

		Convey("When cleaning a batch straddling the threshold", func() {
			batch := []model.RawPatient{
				{"name": "teen", "age": "19", "gender": "male", "diagnosis": "flu"},
				{"name": "adult", "age": "21", "gender": "male", "diagnosis": "flu"},
			}

			cleaned, stats := c.Clean(ctx, batch)

			Convey("Then only records at or above the threshold survive", func() {
				So(cleaned, ShouldHaveLength, 1)
				So(cleaned[0].Name, ShouldEqual, "Adult")
				So(stats.UnderageFiltered, ShouldEqual, 1)
			})
		})
	})
}

func TestCleanOne(t *testing.T) {
	Convey("Given a cleaner", t, func() {
		c := cleanse.New()

		Convey("When normalizing a single record", func() {
			p := c.CleanOne(model.RawPatient{"name": "mary ann lopez", "age": "12"})

			Convey("Then it should normalize without filtering", func() {
				So(p.Name, ShouldEqual, "Mary Ann Lopez")
				So(p.Age, ShouldEqual, 12)
			})
		})
	})
}
