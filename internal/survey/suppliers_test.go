package survey

import (
	"testing"

	"github.com/topservice/pesquisas-api/internal/domain"
)

func TestCountry(t *testing.T) {
	cases := []struct {
		destino string
		want    string
	}{
		{"Paris, França", "França"},
		{"Paris", "Paris"},
		{"Serra Gaúcha, RS, Brasil", "Brasil"},
		{" Lisboa , Portugal ", "Portugal"},
	}
	for _, tc := range cases {
		if got := Country(tc.destino); got != tc.want {
			t.Errorf("Country(%q) = %q, want %q", tc.destino, got, tc.want)
		}
	}
}

func TestSupplierKind(t *testing.T) {
	for _, label := range []string{"Restaurantes", "Hotéis", "DMC", "Passeios"} {
		kind, ok := SupplierKind(label)
		if !ok {
			t.Fatalf("SupplierKind(%q) not resolved", label)
		}
		if kind.Kind != label {
			t.Fatalf("kind = %q, want %q", kind.Kind, label)
		}
	}
	if _, ok := SupplierKind("Aviões"); ok {
		t.Fatalf("unknown label must not resolve")
	}
}

func TestSearchSuppliersGroupsAndSorts(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldDestino:      "Paris, França",
			FieldHotel1Name:   "Hotel Bom",
			FieldHotel1Rating: "9",
			FieldHotel2Name:   "Hotel Médio",
			FieldHotel2Rating: "6",
		}),
		testItem("2", map[Field]string{
			FieldDestino:      "Paris, França",
			FieldHotel1Name:   "Hotel Bom",
			FieldHotel1Rating: "7",
		}),
		testItem("3", map[Field]string{
			FieldDestino:      "Roma, Itália",
			FieldHotel1Name:   "Hotel Romano",
			FieldHotel1Rating: "8",
		}),
	}

	groups := SearchSuppliers(items, "Paris", Hotels)
	if len(groups) != 1 {
		t.Fatalf("group count = %d, want 1 (%+v)", len(groups), groups)
	}
	group := groups[0]
	if group.Country != "França" {
		t.Fatalf("country = %q, want França", group.Country)
	}
	if len(group.Suppliers) != 2 {
		t.Fatalf("supplier count = %d, want 2", len(group.Suppliers))
	}

	best := group.Suppliers[0]
	if best.Name != "Hotel Bom" {
		t.Fatalf("best supplier = %q, want Hotel Bom", best.Name)
	}
	if best.AverageRating != 8.0 {
		t.Fatalf("average = %v, want 8.0", best.AverageRating)
	}
	if best.TotalEvaluations != 2 {
		t.Fatalf("evaluations = %d, want 2", best.TotalEvaluations)
	}
	if best.Location != "Paris, França" {
		t.Fatalf("location = %q", best.Location)
	}

	// Histograms keep only observed buckets, best first holds 7 and 9.
	if len(best.Distribution) != 2 {
		t.Fatalf("distribution = %+v, want two buckets", best.Distribution)
	}
	for _, bucket := range best.Distribution {
		if bucket.Rating != 7 && bucket.Rating != 9 {
			t.Fatalf("unexpected bucket %+v", bucket)
		}
		if bucket.Count != 1 {
			t.Fatalf("bucket count = %d, want 1", bucket.Count)
		}
	}
}

func TestSearchSuppliersMatchesByName(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldDestino:      "Roma, Itália",
			FieldHotel1Name:   "Grand Paris Palace",
			FieldHotel1Rating: "8",
		}),
	}

	groups := SearchSuppliers(items, "paris", Hotels)
	if len(groups) != 1 || len(groups[0].Suppliers) != 1 {
		t.Fatalf("groups = %+v, want the name match", groups)
	}
	if groups[0].Country != "Itália" {
		t.Fatalf("country = %q, want Itália", groups[0].Country)
	}
}

func TestSearchSuppliersCitySegmentMatch(t *testing.T) {
	// "paris centro" contains the destination's city segment "paris".
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldDestino:      "Paris, França",
			FieldHotel1Name:   "Hotel Lumière",
			FieldHotel1Rating: "9",
		}),
	}

	groups := SearchSuppliers(items, "paris centro", Hotels)
	if len(groups) != 1 {
		t.Fatalf("groups = %+v, want city-segment match", groups)
	}
}

// An item without a destination has an empty city segment, which is a
// substring of every search term; such items must only match by name.
func TestSearchSuppliersEmptyDestinationMatchesByNameOnly(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldHotel1Name:   "Hotel Anônimo",
			FieldHotel1Rating: "8",
		}),
		testItem("2", map[Field]string{
			FieldHotel1Name:   "Pousada Paris",
			FieldHotel1Rating: "9",
		}),
	}

	groups := SearchSuppliers(items, "paris", Hotels)
	if len(groups) != 1 || len(groups[0].Suppliers) != 1 {
		t.Fatalf("groups = %+v, want only the name match", groups)
	}
	if groups[0].Suppliers[0].Name != "Pousada Paris" {
		t.Fatalf("supplier = %q, want Pousada Paris", groups[0].Suppliers[0].Name)
	}
}

func TestSearchSuppliersSkipsUnratedAndUnnamed(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldDestino:      "Paris, França",
			FieldHotel1Name:   "Hotel Sem Nota",
			FieldHotel2Rating: "8",
		}),
	}

	groups := SearchSuppliers(items, "Paris", Hotels)
	if len(groups) != 0 {
		t.Fatalf("groups = %+v, want none", groups)
	}
}

func TestSearchSuppliersDMC(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldDestino:  "Lisboa, Portugal",
			FieldNomeDMC1: "DMC Lisboa",
			FieldNotaDMC1: "10",
			FieldNomeDMC2: "DMC Porto",
			FieldNotaDMC2: "7",
		}),
	}

	groups := SearchSuppliers(items, "lisboa", DMCs)
	if len(groups) != 1 || len(groups[0].Suppliers) != 2 {
		t.Fatalf("groups = %+v, want two DMCs in one country", groups)
	}
	if groups[0].Suppliers[0].Name != "DMC Lisboa" {
		t.Fatalf("best DMC = %q, want DMC Lisboa", groups[0].Suppliers[0].Name)
	}
}
