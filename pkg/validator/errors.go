package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedUnit is returned when a rule unit implements neither Validate nor Invoke.
	ErrUnsupportedUnit = errors.New("rule unit must implement Validate or Invoke")

	// ErrNilUnit is returned when a nil rule unit is passed to Make.
	ErrNilUnit = errors.New("rule unit is nil")

	// ErrNoRules is returned when a validator is created for a rule entry without units.
	ErrNoRules = errors.New("attribute has no rules")
)
