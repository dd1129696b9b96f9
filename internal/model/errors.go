package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")

// ValidationError marks an event that violates the model invariants
// (recurrence without days, days without recurrence, duration out of range).
// It indicates a caller defect and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
