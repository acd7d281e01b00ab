package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/service"
	"github.com/phrazzld/flashcards-api/internal/service/auth"
	"github.com/phrazzld/flashcards-api/internal/service/learning"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "set not found", err: store.ErrSetNotFound, want: http.StatusNotFound},
		{name: "question not found", err: store.ErrQuestionNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", store.ErrCardNotFound), want: http.StatusNotFound},
		{name: "not owned", err: service.ErrNotOwned, want: http.StatusForbidden},
		{name: "not visible", err: service.ErrNotVisible, want: http.StatusForbidden},
		{name: "set empty", err: learning.ErrSetEmpty, want: http.StatusBadRequest},
		{name: "question closed", err: learning.ErrQuestionClosed, want: http.StatusBadRequest},
		{name: "validation", err: domain.ErrEmptyNickname, want: http.StatusBadRequest},
		{name: "invalid card side", err: domain.NewValidationError("cardSide", "bad", domain.ErrInvalidCardSide), want: http.StatusBadRequest},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "card exists", err: store.ErrCardExists, want: http.StatusConflict},
		{name: "bad credentials", err: auth.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "unauthorized", err: domain.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "service error", err: service.NewServiceError("card", "add", "boom", errors.New("db")), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Card set not found", GetSafeErrorMessage(store.ErrSetNotFound))
	assert.Equal(t, "Question already closed", GetSafeErrorMessage(learning.ErrQuestionClosed))
	assert.Equal(t, "Card set is empty", GetSafeErrorMessage(learning.ErrSetEmpty))
	assert.Equal(t, "You are not the owner of this resource", GetSafeErrorMessage(service.ErrNotOwned))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	leaky := errors.New("pq: relation users at postgres://admin:secret@db/app")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(service.NewServiceError("card", "add", "failed", leaky)))
}
