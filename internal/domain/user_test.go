package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	validPassword := "correct-horse-battery"

	tests := []struct {
		name     string
		nickname string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "alice", "alice@example.com", validPassword, nil},
		{"empty nickname", " ", "alice@example.com", validPassword, ErrEmptyNickname},
		{"long nickname", strings.Repeat("n", MaxNicknameLength+1), "alice@example.com", validPassword, ErrNicknameTooLong},
		{"empty email", "alice", "", validPassword, ErrEmptyEmail},
		{"no at sign", "alice", "alice.example.com", validPassword, ErrInvalidEmail},
		{"two at signs", "alice", "a@b@example.com", validPassword, ErrInvalidEmail},
		{"no domain dot", "alice", "alice@example", validPassword, ErrInvalidEmail},
		{"short password", "alice", "alice@example.com", "short", ErrPasswordTooShort},
		{"long password", "alice", "alice@example.com", strings.Repeat("p", MaxPasswordLength+1), ErrPasswordTooLong},
		{"no password", "alice", "alice@example.com", "", ErrEmptyPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := NewUser(tc.nickname, tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, user.Enabled)
			assert.Equal(t, "alice", user.Nickname)
		})
	}
}

func TestUser_ValidateWithHashOnly(t *testing.T) {
	t.Parallel()

	u := &User{Nickname: "bob", Email: "bob@example.com", HashedPassword: "$2a$10$hash"}
	assert.NoError(t, u.Validate())
}
