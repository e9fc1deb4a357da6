package validation

// Package validation turns raw string-keyed form input into typed mutation
// inputs. Parsing is pure and total: every input yields either typed data or
// a non-empty FieldErrors map, never a panic. Unknown form keys are ignored.

// FieldErrors maps a form field name to its ordered list of human-readable
// error messages.
type FieldErrors map[string][]string

// Add appends a message under the given field key.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Empty reports whether no field collected an error.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}
