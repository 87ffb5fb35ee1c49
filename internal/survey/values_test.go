package survey

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/topservice/pesquisas-api/internal/domain"
)

func TestTextValueAbsent(t *testing.T) {
	item := testItem("1", map[Field]string{FieldCliente: "Empresa X"})

	if got := TextValue(item.ColumnValues, FieldCliente); got != "Empresa X" {
		t.Fatalf("TextValue = %q, want %q", got, "Empresa X")
	}
	if got := TextValue(item.ColumnValues, FieldDestino); got != "" {
		t.Fatalf("absent field = %q, want empty", got)
	}

	// A column present with a nil text still reads as empty.
	bag := domain.ColumnValues{ColumnID(FieldDestino): {}}
	if got := TextValue(bag, FieldDestino); got != "" {
		t.Fatalf("nil text = %q, want empty", got)
	}
}

func TestNumericValue(t *testing.T) {
	cases := []struct {
		text string
		want *float64
	}{
		{"8", ptr(8.0)},
		{"7.5", ptr(7.5)},
		{"  9 ", ptr(9.0)},
		{"", nil},
		{"   ", nil},
		{"dez", nil},
		{"8,5", nil},
		{"NaN", nil},
		{"nan", nil},
		{"Inf", nil},
		{"-Infinity", nil},
		{"1e309", nil},
	}
	for _, tc := range cases {
		item := testItem("1", map[Field]string{FieldNotaViagemGeral: tc.text})
		got := NumericValue(item.ColumnValues, FieldNotaViagemGeral)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("NumericValue(%q) = %v, want nil", tc.text, *got)
		case tc.want != nil && got == nil:
			t.Errorf("NumericValue(%q) = nil, want %v", tc.text, *tc.want)
		case tc.want != nil && got != nil && *got != *tc.want:
			t.Errorf("NumericValue(%q) = %v, want %v", tc.text, *got, *tc.want)
		}
	}
}

func TestDisplayValueFallback(t *testing.T) {
	text := "N-100"
	display := "N-200"
	colType := "mirror"

	bag := domain.ColumnValues{
		ColumnID(FieldNumeroNegocioMirror): {Text: &text, DisplayValue: &display, Type: &colType},
	}
	if got := DisplayValue(bag, FieldNumeroNegocioMirror); got != "N-200" {
		t.Fatalf("DisplayValue = %q, want N-200", got)
	}

	bag = domain.ColumnValues{
		ColumnID(FieldNumeroNegocioMirror): {Text: &text, Type: &colType},
	}
	if got := DisplayValue(bag, FieldNumeroNegocioMirror); got != "N-100" {
		t.Fatalf("DisplayValue fallback = %q, want N-100", got)
	}

	if got := DisplayValue(domain.ColumnValues{}, FieldNumeroNegocioMirror); got != "" {
		t.Fatalf("DisplayValue absent = %q, want empty", got)
	}
}

func TestMean(t *testing.T) {
	if got := mean(nil); got != nil {
		t.Fatalf("mean(nil) = %v, want nil", *got)
	}
	got := mean([]float64{8, 6})
	if got == nil || *got != 7.0 {
		t.Fatalf("mean(8,6) = %v, want 7.0", got)
	}
}

// A respondent typing "NaN" must read as absent; a non-finite sample would
// otherwise make the whole evaluation unmarshalable.
func TestEvaluateStaysMarshalableOnNonFiniteInput(t *testing.T) {
	items := []domain.SurveyItem{
		testItem("1", map[Field]string{
			FieldTipo:            domain.TipoConvidados,
			FieldNotaViagemGeral: "NaN",
			FieldHotel1Rating:    "Inf",
			FieldHotel1Name:      "Hotel Estranho",
		}),
	}

	eval := Evaluate(items, domain.TipoConvidados)
	if eval.ViagemGeral != nil {
		t.Fatalf("viagem geral = %v, want nil", *eval.ViagemGeral)
	}
	if len(eval.Hotels) != 1 || eval.Hotels[0].Rating != nil {
		t.Fatalf("hotels = %+v, want Hotel Estranho with nil rating", eval.Hotels)
	}
	if _, err := json.Marshal(eval); err != nil {
		t.Fatalf("marshal evaluation: %v", err)
	}
}

func FuzzNumericValue(f *testing.F) {
	f.Add("8")
	f.Add("7.5")
	f.Add("")
	f.Add("not-a-number")
	f.Add("1e309")
	f.Add("NaN")
	f.Add("+Inf")
	f.Fuzz(func(t *testing.T, raw string) {
		item := testItem("1", map[Field]string{FieldNotaViagemGeral: raw})
		// Must never panic or produce a non-finite sample.
		if v := NumericValue(item.ColumnValues, FieldNotaViagemGeral); v != nil {
			if math.IsNaN(*v) || math.IsInf(*v, 0) {
				t.Fatalf("NumericValue(%q) = %v, want finite or nil", raw, *v)
			}
		}
	})
}

func ptr(v float64) *float64 { return &v }
