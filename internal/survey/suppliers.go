package survey

import (
	"sort"
	"strings"

	"github.com/topservice/pesquisas-api/internal/domain"
)

// SupplierKind resolves a supplier-search type label to its entity kind.
func SupplierKind(label string) (EntityKind, bool) {
	switch label {
	case Restaurantes.Kind:
		return Restaurantes, true
	case Hotels.Kind:
		return Hotels, true
	case DMCs.Kind:
		return DMCs, true
	case Passeios.Kind:
		return Passeios, true
	default:
		return EntityKind{}, false
	}
}

type supplierAccum struct {
	ratings   []float64
	locations []string
	countries []string
}

// SearchSuppliers aggregates every rated entity of the kind across all
// trips whose destination or name matches the search term, grouped by the
// country inferred from the destination. Within each group suppliers are
// ordered by average rating, best first. Unlike the per-trip distribution,
// zero-count buckets are left out of the histograms.
func SearchSuppliers(items []domain.SurveyItem, term string, kind EntityKind) []domain.CountryGroup {
	needle := strings.ToLower(strings.TrimSpace(term))

	var order []string
	accums := make(map[string]*supplierAccum)

	for _, item := range items {
		destino := TextValue(item.ColumnValues, FieldDestino)
		destinoLower := strings.ToLower(destino)

		for _, slot := range kind.Slots {
			name := TextValue(item.ColumnValues, slot.Name)
			rating := NumericValue(item.ColumnValues, slot.Rating)
			if name == "" || rating == nil {
				continue
			}
			if !matchesTerm(needle, destinoLower, name) {
				continue
			}

			acc, ok := accums[name]
			if !ok {
				acc = &supplierAccum{}
				accums[name] = acc
				order = append(order, name)
			}
			acc.ratings = append(acc.ratings, *rating)
			acc.locations = appendUnique(acc.locations, destino)
			acc.countries = appendUnique(acc.countries, Country(destino))
		}
	}

	var groupOrder []string
	groups := make(map[string][]domain.Supplier)

	for _, name := range order {
		acc := accums[name]
		country := acc.countries[0]
		if _, ok := groups[country]; !ok {
			groupOrder = append(groupOrder, country)
		}
		groups[country] = append(groups[country], domain.Supplier{
			Name:             name,
			Location:         strings.Join(acc.locations, ", "),
			Country:          country,
			AverageRating:    *mean(acc.ratings),
			TotalEvaluations: len(acc.ratings),
			Distribution:     nonZeroBuckets(acc.ratings),
		})
	}

	results := make([]domain.CountryGroup, 0, len(groupOrder))
	for _, country := range groupOrder {
		suppliers := groups[country]
		sort.SliceStable(suppliers, func(i, j int) bool {
			return suppliers[i].AverageRating > suppliers[j].AverageRating
		})
		results = append(results, domain.CountryGroup{Country: country, Suppliers: suppliers})
	}
	return results
}

// matchesTerm reports whether a supplier entry matches the search term:
// the term occurs in the destination, or the destination's city segment
// occurs in the term, or the term occurs in the supplier's own name.
func matchesTerm(needle, destinoLower, name string) bool {
	if strings.Contains(destinoLower, needle) {
		return true
	}
	city := strings.TrimSpace(strings.SplitN(destinoLower, ",", 2)[0])
	if city != "" && strings.Contains(needle, city) {
		return true
	}
	return strings.Contains(strings.ToLower(name), needle)
}

// Country infers a country from a free-text destination by taking the last
// comma-separated segment ("Paris, França" -> "França"). Destinations
// without a comma are used as-is. Deliberately isolated so a proper
// geocoding strategy can replace it without touching the aggregation.
func Country(destination string) string {
	parts := strings.Split(destination, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// nonZeroBuckets enumerates ratings 1..10 but keeps only buckets with at
// least one observation.
func nonZeroBuckets(samples []float64) []domain.SupplierBucket {
	buckets := make([]domain.SupplierBucket, 0)
	for rating := 1; rating <= 10; rating++ {
		if count := countRating(samples, rating); count > 0 {
			buckets = append(buckets, domain.SupplierBucket{Rating: rating, Count: count})
		}
	}
	return buckets
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
