package domain

// RatingCount is one histogram bucket for an integer rating 1..10.
type RatingCount struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryDistribution is the full 1..10 histogram for one named entity or
// simple rating field, with zero-count buckets included.
type CategoryDistribution struct {
	Category       string        `json:"category"`
	TotalResponses int           `json:"totalResponses"`
	Distribution   []RatingCount `json:"distribution"`
}

// RatingDistribution is the per-business-number distribution payload.
type RatingDistribution struct {
	SearchID   string                 `json:"searchId"`
	Tipo       string                 `json:"tipo"`
	Categories []CategoryDistribution `json:"categories"`
}

// SupplierBucket is a histogram bucket on the supplier-search path. Unlike
// CategoryDistribution buckets, zero-count buckets are omitted here.
type SupplierBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// Supplier is one named entity matched by a supplier search, aggregated
// across every trip it appears in.
type Supplier struct {
	Name             string           `json:"name"`
	Location         string           `json:"location"`
	Country          string           `json:"country"`
	AverageRating    float64          `json:"averageRating"`
	TotalEvaluations int              `json:"totalEvaluations"`
	Distribution     []SupplierBucket `json:"distribution"`
}

// CountryGroup bundles matched suppliers under their inferred country.
type CountryGroup struct {
	Country   string     `json:"country"`
	Suppliers []Supplier `json:"suppliers"`
}

// SupplierSearchResult is the payload of a supplier search.
type SupplierSearchResult struct {
	Type     string         `json:"type"`
	Location string         `json:"location"`
	Results  []CountryGroup `json:"results"`
}
