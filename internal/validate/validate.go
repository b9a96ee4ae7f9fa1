// Package validate checks form submissions and reports every applicable
// problem as a field → message map. Validation never short-circuits: a
// returned map lists all failing fields at once, and an empty map means the
// submission is acceptable.
package validate

// Errors maps a form field name to a human-readable message.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}
