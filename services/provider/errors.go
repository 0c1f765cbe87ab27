package provider

import "fmt"

// ValidationError indicates a malformed provider payload, rejected before the
// store is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
