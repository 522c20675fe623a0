package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownLocationError(t *testing.T) {
	err := error(&UnknownLocationError{Location: "Thane", Valid: []string{"Vashi", "Nerul"}})

	assert.True(t, errors.Is(err, ErrUnknownLocation))
	assert.Equal(t, "unknown location: Thane. valid locations: Vashi, Nerul", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
}

func TestErrorCategories(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidArea))
	assert.True(t, IsValidation(ErrInvalidFeature))
	assert.False(t, IsValidation(ErrArtifactNotFound))
	assert.False(t, IsValidation(ErrInvariantViolation))

	assert.True(t, IsUnavailable(fmt.Errorf("%w: missing", ErrArtifactNotFound)))
	assert.True(t, IsUnavailable(ErrCorruptArtifact))
	assert.False(t, IsUnavailable(ErrUnknownModel))
}
