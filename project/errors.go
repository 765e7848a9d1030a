package project

import "fmt"

// MissingFieldError reports a required init-record field that is absent.
// It is fatal to Load; no partial state is committed past the point of
// detection.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
