package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(BadKeyFormat, "want %d bytes, got %d", 32, 31)
	assert.Equal(t, "BadKeyFormat: want 32 bytes, got 31", err.Error())
}

func TestWrapIncludesCause(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(DecryptionFailure, cause, "blob rejected")
	assert.Contains(t, err.Error(), "DecryptionFailure")
	assert.Contains(t, err.Error(), "blob rejected")
	assert.Contains(t, err.Error(), "underlying failure")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsMatchesByKindOnly(t *testing.T) {
	err := New(BadKeyFormat, "some specific message")
	assert.True(t, errors.Is(err, ErrBadKeyFormat))
	assert.False(t, errors.Is(err, ErrDerivationFailure))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BadKeyFormat", BadKeyFormat.String())
	assert.Equal(t, "DerivationFailure", DerivationFailure.String())
	assert.Equal(t, "DecryptionFailure", DecryptionFailure.String())
	assert.Equal(t, "LengthExceeded", LengthExceeded.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
