package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageLevelPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{"not found", NewNotFoundError("user", 42), IsNotFound},
		{"validation", NewValidationError("question", "empty"), IsValidation},
		{"not authorized", NewNotAuthorizedError("student"), IsNotAuthorized},
		{"store unavailable", NewStoreUnavailableError(), IsStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.predicate(tt.err))
			assert.False(t, tt.predicate(fmt.Errorf("plain error")))
			assert.False(t, tt.predicate(nil))
		})
	}
}

func TestPredicatesDistinguishCodes(t *testing.T) {
	err := NewNotFoundError("faq", 1)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotAuthorized(err))
	assert.False(t, IsStoreUnavailable(err))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewStoreUnavailableError())

	assert.True(t, IsStoreUnavailable(wrapped))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeStoreUnavailable, appErr.Code)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeOf(NewNotFoundError("user", 1)))
	assert.Equal(t, ErrCodeInternal, CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeInternal, CodeOf(nil))
}
