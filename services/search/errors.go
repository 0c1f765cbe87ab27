package search

import "fmt"

// ValidationError indicates malformed search input. It is rejected before any
// store access and maps to a 400 at the request boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
