package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"ErrSetNotFound", ErrSetNotFound, true},
		{"ErrCardNotFound", ErrCardNotFound, true},
		{"wrapped ErrQuestionNotFound", fmt.Errorf("load: %w", ErrQuestionNotFound), true},
		{"duplicate is not not-found", ErrSetExists, false},
		{"closed is not not-found", ErrQuestionClosed, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"ErrDuplicate", ErrDuplicate, true},
		{"ErrEmailExists", ErrEmailExists, true},
		{"ErrNicknameExists", ErrNicknameExists, true},
		{"wrapped ErrCardExists", fmt.Errorf("insert: %w", ErrCardExists), true},
		{"ErrSetExists", ErrSetExists, true},
		{"not found", ErrCardNotFound, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsDuplicateError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("card", "update", "failed to update difficulty", cause)

	assert.Equal(t, "update operation on card failed: failed to update difficulty: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("set", "delete", "in use", nil)
	assert.Equal(t, "delete operation on set failed: in use", bare.Error())
}
