package models

// PriceRange is a validated numeric price constraint. A degenerate range with
// Min > Max matches nothing.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceRangeInput is the wire form of a price range. Both bounds must be
// supplied together; a half-open range is rejected before the store is
// touched.
type PriceRangeInput struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// SearchRequest carries the filters of a provider search. Every field is
// optional; omitted filters exclude nothing.
type SearchRequest struct {
	Query      string           `json:"query"`
	Category   string           `json:"category"`
	PriceRange *PriceRangeInput `json:"priceRange"`
	Location   string           `json:"location"`
}

// Suggestion source types.
const (
	SuggestionTypeProvider = "provider"
	SuggestionTypeCategory = "category"
)

// Suggestion is a lightweight autocomplete entry referencing either a
// provider or a category. Built fresh per request, never stored.
type Suggestion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Address  string `json:"address,omitempty"`
	Type     string `json:"type"`
}

// AdminStats is the admin dashboard snapshot.
type AdminStats struct {
	TotalProviders    int64 `json:"totalProviders"`
	ActiveProviders   int64 `json:"activeProviders"`
	InactiveProviders int64 `json:"inactiveProviders"`
	NewProviders      int64 `json:"newProviders"`
	TotalSearches     int64 `json:"totalSearches"`
	FailedSearches    int64 `json:"failedSearches"`
	FeedbackCount     int64 `json:"feedbackCount"`
}

// TrendingQuery is one entry of the trending-search listing.
type TrendingQuery struct {
	Query string  `json:"query"`
	Count float64 `json:"count"`
}
