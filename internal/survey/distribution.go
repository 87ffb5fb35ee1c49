package survey

import (
	"github.com/topservice/pesquisas-api/internal/domain"
)

// DistributionCategories builds the per-business-number rating histograms:
// one category per distinct named entity (hotels, tours, restaurants) and
// one per simple rating field. All ten buckets are emitted, zero counts
// included; categories with no observed rating at all are omitted.
func DistributionCategories(items []domain.SurveyItem) []domain.CategoryDistribution {
	categories := make([]domain.CategoryDistribution, 0)

	for _, kind := range []EntityKind{Hotels, Passeios, Restaurantes} {
		names, byName := kind.ratingsByName(items)
		for _, name := range names {
			samples := byName[name]
			if len(samples) == 0 {
				continue
			}
			categories = append(categories, domain.CategoryDistribution{
				Category:       name,
				TotalResponses: len(samples),
				Distribution:   fullBuckets(samples),
			})
		}
	}

	for _, srf := range simpleRatingFields {
		var samples []float64
		for _, item := range items {
			if v := NumericValue(item.ColumnValues, srf.Field); v != nil {
				samples = append(samples, *v)
			}
		}
		if len(samples) == 0 {
			continue
		}
		categories = append(categories, domain.CategoryDistribution{
			Category:       simpleFieldLabel(srf, items),
			TotalResponses: len(samples),
			Distribution:   fullBuckets(samples),
		})
	}

	return categories
}

// simpleFieldLabel resolves the display label of a simple rating field. The
// DMC rating columns are labelled with the company names entered on the
// trip's first response, falling back to the generic placeholders.
func simpleFieldLabel(srf SimpleRatingField, items []domain.SurveyItem) string {
	if len(items) == 0 {
		return srf.Label
	}
	cv := items[0].ColumnValues
	switch srf.Field {
	case FieldNotaDMC1:
		if name := TextValue(cv, FieldNomeDMC1); name != "" {
			return name
		}
	case FieldNotaDMC2:
		if name := TextValue(cv, FieldNomeDMC2); name != "" {
			return name
		}
	}
	return srf.Label
}

// fullBuckets enumerates every rating 1..10 with its count and percentage
// of the sample total. Buckets with zero count keep percentage 0.
func fullBuckets(samples []float64) []domain.RatingCount {
	buckets := make([]domain.RatingCount, 0, 10)
	for rating := 1; rating <= 10; rating++ {
		count := countRating(samples, rating)
		buckets = append(buckets, domain.RatingCount{
			Rating:     rating,
			Count:      count,
			Percentage: float64(count) / float64(len(samples)) * 100,
		})
	}
	return buckets
}

// countRating counts samples that are exactly the integer rating. Fractional
// scores never hit a bucket, matching how respondents enter whole numbers.
func countRating(samples []float64, rating int) int {
	count := 0
	for _, s := range samples {
		if s == float64(rating) {
			count++
		}
	}
	return count
}
