package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/mocks"
	"github.com/phrazzld/flashcards-api/internal/service"
	"github.com/phrazzld/flashcards-api/internal/service/auth"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validPassword = "correct-horse-battery"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserService(t *testing.T) (*service.UserServiceImpl, *mocks.TestifyMockUserStore) {
	t.Helper()

	users := &mocks.TestifyMockUserStore{}
	svc, err := service.NewUserService(users, auth.NewBcryptHasher(4), mocks.NewTxDB(t), discardLogger())
	require.NoError(t, err)
	return svc, users
}

func TestNewUserService_NilDependencies(t *testing.T) {
	t.Parallel()

	db := mocks.NewTxDB(t)
	hasher := auth.NewBcryptHasher(4)

	_, err := service.NewUserService(nil, hasher, db, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewUserService(&mocks.TestifyMockUserStore{}, nil, db, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.NewUserService(&mocks.TestifyMockUserStore{}, hasher, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("hashes password and clears plaintext", func(t *testing.T) {
		t.Parallel()
		svc, users := newUserService(t)
		users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = 7 }).
			Return(nil)

		user, err := svc.Register(context.Background(), "ada", "ada@example.com", validPassword)

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Empty(t, user.Password)
		assert.NotEqual(t, validPassword, user.HashedPassword)
		assert.NoError(t, auth.NewBcryptHasher(4).Compare(user.HashedPassword, validPassword))
		assert.True(t, user.Enabled)
		users.AssertExpectations(t)
	})

	t.Run("rejects invalid input without touching the store", func(t *testing.T) {
		t.Parallel()
		svc, users := newUserService(t)

		_, err := svc.Register(context.Background(), "ada", "not-an-email", validPassword)

		assert.ErrorIs(t, err, domain.ErrValidation)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email passes through", func(t *testing.T) {
		t.Parallel()
		svc, users := newUserService(t)
		users.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		_, err := svc.Register(context.Background(), "ada", "ada@example.com", validPassword)

		assert.ErrorIs(t, err, store.ErrEmailExists)
		var svcErr *service.ServiceError
		assert.False(t, errors.As(err, &svcErr))
	})

	t.Run("unexpected store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		svc, users := newUserService(t)
		boom := errors.New("connection reset")
		users.On("Create", mock.Anything, mock.Anything).Return(boom)

		_, err := svc.Register(context.Background(), "ada", "ada@example.com", validPassword)

		var svcErr *service.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "register", svcErr.Operation)
		assert.ErrorIs(t, err, boom)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hashed, err := auth.NewBcryptHasher(4).Hash(validPassword)
	require.NoError(t, err)

	tests := []struct {
		name     string
		user     *domain.User
		storeErr error
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			user:     &domain.User{ID: 1, Email: "ada@example.com", HashedPassword: hashed, Enabled: true},
			password: validPassword,
		},
		{
			name:     "wrong password",
			user:     &domain.User{ID: 1, Email: "ada@example.com", HashedPassword: hashed, Enabled: true},
			password: "wrong-password-here",
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			storeErr: store.ErrUserNotFound,
			password: validPassword,
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "disabled user",
			user:     &domain.User{ID: 1, Email: "ada@example.com", HashedPassword: hashed, Enabled: false},
			password: validPassword,
			wantErr:  auth.ErrUserDisabled,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, users := newUserService(t)
			users.On("GetByEmail", mock.Anything, "ada@example.com").Return(tc.user, tc.storeErr)

			user, err := svc.Authenticate(context.Background(), "ada@example.com", tc.password)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.user.ID, user.ID)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()

	svc, users := newUserService(t)
	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	users.On("GetByID", mock.Anything, int64(4)).Return(nil, store.ErrUserNotFound)

	user, err := svc.GetUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)

	_, err = svc.GetUser(context.Background(), 4)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
