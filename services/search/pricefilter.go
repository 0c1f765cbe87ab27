package search

import (
	"localspot/models"
)

// PriceMatchMode controls how a range-valued price entry is tested against a
// query range.
type PriceMatchMode string

const (
	// PriceMatchOverlap retains a provider when any price entry intersects
	// the query range.
	PriceMatchOverlap PriceMatchMode = "overlap"
	// PriceMatchContain requires a price entry to lie fully inside the query
	// range.
	PriceMatchContain PriceMatchMode = "contain"
)

// ParsePriceMatchMode maps a config string to a mode, defaulting to overlap.
func ParsePriceMatchMode(s string) PriceMatchMode {
	if PriceMatchMode(s) == PriceMatchContain {
		return PriceMatchContain
	}
	return PriceMatchOverlap
}

// PriceMatches tests one parsed price entry against the query range. Single
// values behave identically in both modes. A degenerate query range with
// Min > Max matches nothing.
func PriceMatches(e models.PriceEntry, r models.PriceRange, mode PriceMatchMode) bool {
	if r.Min > r.Max {
		return false
	}
	if !e.IsRange {
		return e.Min >= r.Min && e.Min <= r.Max
	}
	switch mode {
	case PriceMatchContain:
		return e.Min >= r.Min && e.Max <= r.Max
	default:
		return e.Min <= r.Max && e.Max >= r.Min
	}
}

// FilterByPrice retains providers with at least one price entry matching the
// range. A nil range is a pass-through. Providers whose price list has no
// parseable entry are dropped when a range is given.
func FilterByPrice(providers []models.Provider, r *models.PriceRange, mode PriceMatchMode) []models.Provider {
	if r == nil {
		return providers
	}
	filtered := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		for _, e := range p.ParsedPrices() {
			if PriceMatches(e, *r, mode) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
