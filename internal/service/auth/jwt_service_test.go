package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return fixedTime })
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, strconv.Itoa(42), claims.Subject)
	assert.Equal(t, fixedTime, claims.IssuedAt.UTC())
	assert.Equal(t, fixedTime.Add(time.Hour), claims.ExpiresAt.UTC())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Failures(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTestJWTService(testSecret, time.Hour, func() time.Time { return issued })
	ctx := context.Background()

	access, err := issuer.GenerateToken(ctx, 1)
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(ctx, 1)
	require.NoError(t, err)

	later := NewTestJWTService(testSecret, time.Hour, func() time.Time { return issued.Add(2 * time.Hour) })
	earlier := NewTestJWTService(testSecret, time.Hour, func() time.Time { return issued.Add(-time.Hour) })
	otherKey := NewTestJWTService("another-secret-that-is-long-enough-too", time.Hour, func() time.Time { return issued })

	tests := []struct {
		name    string
		svc     JWTService
		token   string
		wantErr error
	}{
		{"expired", later, access, ErrExpiredToken},
		{"issued in the future", earlier, access, ErrTokenNotYetValid},
		{"bad signature", otherKey, access, ErrInvalidToken},
		{"malformed", issuer, "not-a-jwt", ErrInvalidToken},
		{"refresh used as access", issuer, refresh, ErrWrongTokenType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.svc.ValidateToken(ctx, tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return issued })
	ctx := context.Background()

	refresh, err := svc.GenerateRefreshToken(ctx, 9)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.Equal(t, issued.Add(7*time.Hour), claims.ExpiresAt.UTC())

	access, err := svc.GenerateToken(ctx, 9)
	require.NoError(t, err)
	_, err = svc.ValidateRefreshToken(ctx, access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	later := NewTestJWTService(testSecret, time.Hour, func() time.Time { return issued.Add(8 * time.Hour) })
	_, err = later.ValidateRefreshToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrExpiredRefreshToken)

	_, err = svc.ValidateRefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 1, RefreshTokenLifetimeMinutes: 2})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        15,
		RefreshTokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), 3)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
}
