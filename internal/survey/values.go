package survey

import (
	"math"
	"strconv"
	"strings"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// TextValue returns the display text of a logical field, or "" when the
// field, the column, or its text is absent. It never fails.
func TextValue(cv domain.ColumnValues, f Field) string {
	col, ok := cv[ColumnID(f)]
	if !ok || col.Text == nil {
		return ""
	}
	return *col.Text
}

// DisplayValue returns the resolved content of a mirror field, falling back
// to its display text when the mirror carries none.
func DisplayValue(cv domain.ColumnValues, f Field) string {
	col, ok := cv[ColumnID(f)]
	if !ok {
		return ""
	}
	if col.DisplayValue != nil && *col.DisplayValue != "" {
		return *col.DisplayValue
	}
	if col.Text != nil {
		return *col.Text
	}
	return ""
}

// NumericValue parses the display text of a logical field as a float.
// Empty, unparseable, or non-finite text yields nil; no rounding or
// clamping is applied. ParseFloat accepts "NaN" and "Inf" spellings, and
// either would poison every mean downstream, so they read as absent too.
func NumericValue(cv domain.ColumnValues, f Field) *float64 {
	raw := strings.TrimSpace(TextValue(cv, f))
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	return &parsed
}

// mean returns the arithmetic mean of samples, or nil for an empty slice.
func mean(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	avg := sum / float64(len(samples))
	return &avg
}

// averageField is the mean of a simple rating field across every item that
// reports a value for it, or nil when none do.
func averageField(items []domain.SurveyItem, f Field) *float64 {
	var samples []float64
	for _, item := range items {
		if v := NumericValue(item.ColumnValues, f); v != nil {
			samples = append(samples, *v)
		}
	}
	return mean(samples)
}
