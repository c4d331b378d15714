package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound         = errors.New("resource not found")
	ErrDatasetNotFound  = fmt.Errorf("%w: dataset", ErrNotFound)
	ErrTemplateNotFound = fmt.Errorf("%w: template", ErrNotFound)

	// Validation errors
	ErrValidation        = errors.New("validation failed")
	ErrInvalidRowCount   = errors.New("row count must be non-negative")
	ErrInvalidBounds     = errors.New("numeric bounds inverted")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrEmptyColumnName   = errors.New("column name cannot be empty")
	ErrEmptyPrompt       = errors.New("prompt cannot be empty")
	ErrMalformedResponse = errors.New("malformed schema response")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w for %s: %s", ErrValidation, field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidRowCount) ||
		errors.Is(err, ErrInvalidBounds) ||
		errors.Is(err, ErrDuplicateColumn) ||
		errors.Is(err, ErrEmptyColumnName) ||
		errors.Is(err, ErrEmptyPrompt)
}
