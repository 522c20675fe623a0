package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrArtifactNotFound = errors.New("model artifact not found, run the training step first")
	ErrCorruptArtifact  = errors.New("model artifact is corrupt")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrMissingLocation     = errors.New("location is required")
	ErrInvalidArea         = errors.New("area must be greater than 0")
	ErrInvalidBedroomCount = errors.New("bhk must be greater than 0")
	ErrUnknownLocation     = errors.New("unknown location")
	ErrInvalidFeature      = errors.New("invalid feature value")
)

// ============================================================================
// Registry Errors
// ============================================================================

var (
	ErrInvalidModelName = errors.New("model name is required")
	ErrUnknownModel     = errors.New("unknown model")
)

// ErrInvariantViolation marks a defect: the bundle and the encoded vector disagree,
// or a value that validation rejects reached the numeric core anyway.
var ErrInvariantViolation = errors.New("prediction invariant violated")

// UnknownLocationError is returned by the encoder when Location_<name> is not a
// known one-hot column. Valid holds the accepted names in bundle order.
type UnknownLocationError struct {
	Location string
	Valid    []string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location: %s. valid locations: %s", e.Location, strings.Join(e.Valid, ", "))
}

func (e *UnknownLocationError) Unwrap() error {
	return ErrUnknownLocation
}

// IsValidation reports whether err was caused by caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingLocation) ||
		errors.Is(err, ErrInvalidArea) ||
		errors.Is(err, ErrInvalidBedroomCount) ||
		errors.Is(err, ErrUnknownLocation) ||
		errors.Is(err, ErrInvalidFeature)
}

// IsUnavailable reports whether err means the model artifacts cannot be served.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrArtifactNotFound) || errors.Is(err, ErrCorruptArtifact)
}
