package validation

import "fmt"

// Error is a field-level input validation failure. Handlers map it to a
// 400 response naming the offending field and the constraint it violated.
type Error struct {
	Field      string
	Constraint string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}

// Failed builds a new validation error for the given field.
func Failed(field, constraint string) *Error {
	return &Error{Field: field, Constraint: constraint}
}
