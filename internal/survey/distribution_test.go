package survey

import (
	"testing"

	"github.com/topservice/pesquisas-api/internal/domain"
)

func findCategory(t *testing.T, categories []domain.CategoryDistribution, name string) domain.CategoryDistribution {
	t.Helper()
	for _, c := range categories {
		if c.Category == name {
			return c
		}
	}
	t.Fatalf("category %q not found in %+v", name, categories)
	return domain.CategoryDistribution{}
}

func TestDistributionCategoriesBuckets(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldHotel1Name:   "Hotel X",
			FieldHotel1Rating: "8",
		}),
		testItem("2", map[Field]string{
			FieldHotel1Name:   "Hotel X",
			FieldHotel1Rating: "6",
		}),
	}

	categories := DistributionCategories(items)
	hotel := findCategory(t, categories, "Hotel X")

	if hotel.TotalResponses != 2 {
		t.Fatalf("total responses = %d, want 2", hotel.TotalResponses)
	}
	if len(hotel.Distribution) != 10 {
		t.Fatalf("bucket count = %d, want 10", len(hotel.Distribution))
	}

	countSum := 0
	for _, bucket := range hotel.Distribution {
		countSum += bucket.Count
		switch bucket.Rating {
		case 6, 8:
			if bucket.Count != 1 {
				t.Fatalf("bucket %d count = %d, want 1", bucket.Rating, bucket.Count)
			}
			if bucket.Percentage != 50 {
				t.Fatalf("bucket %d percentage = %v, want 50", bucket.Rating, bucket.Percentage)
			}
		default:
			if bucket.Count != 0 || bucket.Percentage != 0 {
				t.Fatalf("bucket %d = %+v, want zero", bucket.Rating, bucket)
			}
		}
	}
	if countSum != hotel.TotalResponses {
		t.Fatalf("bucket counts sum to %d, want %d", countSum, hotel.TotalResponses)
	}
}

func TestDistributionSkipsUnratedCategories(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldHotel1Name: "Hotel Sem Nota",
		}),
	}

	for _, c := range DistributionCategories(items) {
		if c.Category == "Hotel Sem Nota" {
			t.Fatalf("unrated entity must not produce a category")
		}
	}
}

func TestDistributionSimpleFieldsAndDMCLabels(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldNotaViagemGeral: "9",
			FieldNomeDMC1:        "DMC Paris",
			FieldNotaDMC1:        "7",
		}),
	}

	categories := DistributionCategories(items)

	viagem := findCategory(t, categories, "Viagem Geral")
	if viagem.TotalResponses != 1 {
		t.Fatalf("viagem geral responses = %d, want 1", viagem.TotalResponses)
	}

	// DMC rating columns are labelled with the company name when present.
	dmc := findCategory(t, categories, "DMC Paris")
	if dmc.Distribution[6].Count != 1 { // bucket index 6 holds rating 7
		t.Fatalf("dmc bucket = %+v", dmc.Distribution[6])
	}
	for _, c := range categories {
		if c.Category == "DMC 1" {
			t.Fatalf("placeholder label leaked alongside the resolved name")
		}
	}
}

func TestDistributionFractionalRatingsHitNoBucket(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldNotaViagemGeral: "7.5",
		}),
	}

	viagem := findCategory(t, DistributionCategories(items), "Viagem Geral")
	if viagem.TotalResponses != 1 {
		t.Fatalf("responses = %d, want 1", viagem.TotalResponses)
	}
	for _, bucket := range viagem.Distribution {
		if bucket.Count != 0 {
			t.Fatalf("fractional rating landed in bucket %d", bucket.Rating)
		}
	}
}
