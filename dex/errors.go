package dex

import "fmt"

// Placeholder is rendered in place of an absent optional field
const Placeholder = "—"

// MissingDataError reports an expected optional field that the payload lacks,
// e.g. no English flavor text or no habitat.
type MissingDataError struct {
	Field string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing data: %s", e.Field)
}

func missing(field string) error { return &MissingDataError{Field: field} }
