package search

import (
	"strings"

	providerRepo "localspot/database/repository/provider"
	"localspot/models"
)

// The predicates below are the reference semantics of the provider matcher.
// The Mongo repository expresses the same conditions as a query document;
// in-memory stores (and the test fakes) evaluate them here directly.

// MatchesQuery reports whether the free-text query matches the provider:
// case-insensitive substring on name or description, or an exactly equal
// element of the services list. An empty query matches everything.
func MatchesQuery(p models.Provider, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, svc := range p.Services {
		if svc == query {
			return true
		}
	}
	return false
}

// MatchesLocation reports whether the location string is a case-insensitive
// substring of the provider's address. An empty location matches everything.
func MatchesLocation(p models.Provider, location string) bool {
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Address), strings.ToLower(location))
}

// MatchesFilter evaluates the full search filter against a provider.
// Inactive providers never match; the category constraint is an exact id
// comparison, never a substring.
func MatchesFilter(p models.Provider, f providerRepo.SearchFilter) bool {
	if !p.IsActive {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if !MatchesLocation(p, f.Location) {
		return false
	}
	return MatchesQuery(p, f.Query)
}
