package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashcards-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing. Unset function
// fields fall back to the default values: generated tokens are
// AccessToken/RefreshToken (or IssueErr), validation returns Claims (or
// ValidateErr).
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID int64) (string, error)
	ValidateTokenFn        func(ctx context.Context, token string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID int64) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default response values
	AccessToken  string
	RefreshToken string
	IssueErr     error
	Claims       *auth.Claims
	ValidateErr  error

	// Call tracking for verification
	mu       sync.Mutex
	IssuedTo []int64
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) recordIssue(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IssuedTo = append(m.IssuedTo, userID)
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	m.recordIssue(userID)
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.AccessToken, m.IssueErr
}

// GenerateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return m.RefreshToken, m.IssueErr
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return m.validated()
}

// ValidateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, token)
	}
	return m.validated()
}

func (m *MockJWTService) validated() (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
