/*
errors.go - Error types for the calculation engine

PURPOSE:
  All engine error types in one place. There are exactly two failure modes:
  invalid input (rejected synchronously, nothing partially computed) and a
  missing entity reference (non-fatal, the record is skipped in that view).

USAGE:
  Callers branch with errors.Is:

    if errors.Is(err, engine.ErrInvalidInput) {
        // reject this record, keep the batch going
    }
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned for non-positive principal or commitment
	// length, a negative rate, or a malformed/absent date a computation
	// requires.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingReference is returned when an operation needs an entity id
	// (investor, advisor, office) that is absent on a record. This is not
	// fatal: aggregations skip the record for that axis and continue.
	ErrMissingReference = errors.New("missing entity reference")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidInputError identifies which field of a request was rejected.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// MissingReferenceError identifies which axis was missing on which record.
type MissingReferenceError struct {
	InvestmentID string
	Axis         GroupAxis
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("investment %s has no %s reference", e.InvestmentID, e.Axis)
}

func (e *MissingReferenceError) Unwrap() error { return ErrMissingReference }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsInvalidInput reports whether err is an input rejection.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsClientError reports whether err is due to bad caller data rather than an
// engine defect. Bulk callers exclude such records and continue.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrMissingReference)
}
