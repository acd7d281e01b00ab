package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// The testify store mocks return themselves from WithTx so expectations
// set on the mock also apply inside a transaction.

// TestifyMockUserStore is a mock of store.UserStore for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *TestifyMockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx is a mock implementation of store.UserStore.WithTx
func (m *TestifyMockUserStore) WithTx(*sql.Tx) store.UserStore {
	return m
}

// TestifyMockCardSetStore is a mock of store.CardSetStore for use with testify/mock
type TestifyMockCardSetStore struct {
	mock.Mock
}

var _ store.CardSetStore = (*TestifyMockCardSetStore)(nil)

// Create is a mock implementation of store.CardSetStore.Create
func (m *TestifyMockCardSetStore) Create(ctx context.Context, set *domain.CardSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

// GetByID is a mock implementation of store.CardSetStore.GetByID
func (m *TestifyMockCardSetStore) GetByID(ctx context.Context, id int64) (*domain.CardSet, error) {
	args := m.Called(ctx, id)
	if set, ok := args.Get(0).(*domain.CardSet); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByAuthor is a mock implementation of store.CardSetStore.ListByAuthor
func (m *TestifyMockCardSetStore) ListByAuthor(
	ctx context.Context,
	authorID int64,
	publicOnly bool,
) ([]*domain.CardSet, error) {
	args := m.Called(ctx, authorID, publicOnly)
	if sets, ok := args.Get(0).([]*domain.CardSet); ok {
		return sets, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.CardSetStore.Update
func (m *TestifyMockCardSetStore) Update(ctx context.Context, set *domain.CardSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

// Delete is a mock implementation of store.CardSetStore.Delete
func (m *TestifyMockCardSetStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx is a mock implementation of store.CardSetStore.WithTx
func (m *TestifyMockCardSetStore) WithTx(*sql.Tx) store.CardSetStore {
	return m
}

// TestifyMockCardStore is a mock of store.CardStore for use with testify/mock
type TestifyMockCardStore struct {
	mock.Mock
}

var _ store.CardStore = (*TestifyMockCardStore)(nil)

// Create is a mock implementation of store.CardStore.Create
func (m *TestifyMockCardStore) Create(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// CreateMultiple is a mock implementation of store.CardStore.CreateMultiple
func (m *TestifyMockCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

// GetByID is a mock implementation of store.CardStore.GetByID
func (m *TestifyMockCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if card, ok := args.Get(0).(*domain.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetForUpdate is a mock implementation of store.CardStore.GetForUpdate
func (m *TestifyMockCardStore) GetForUpdate(ctx context.Context, id int64) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if card, ok := args.Get(0).(*domain.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListBySet is a mock implementation of store.CardStore.ListBySet
func (m *TestifyMockCardStore) ListBySet(ctx context.Context, setID int64) ([]*domain.Card, error) {
	args := m.Called(ctx, setID)
	if cards, ok := args.Get(0).([]*domain.Card); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListBySetPage is a mock implementation of store.CardStore.ListBySetPage
func (m *TestifyMockCardStore) ListBySetPage(
	ctx context.Context,
	setID int64,
	limit, offset int,
) ([]*domain.Card, int, error) {
	args := m.Called(ctx, setID, limit, offset)
	if cards, ok := args.Get(0).([]*domain.Card); ok {
		return cards, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

// UpdateText is a mock implementation of store.CardStore.UpdateText
func (m *TestifyMockCardStore) UpdateText(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// UpdateDifficulty is a mock implementation of store.CardStore.UpdateDifficulty
func (m *TestifyMockCardStore) UpdateDifficulty(ctx context.Context, id int64, difficulty domain.Difficulty) error {
	args := m.Called(ctx, id, difficulty)
	return args.Error(0)
}

// Delete is a mock implementation of store.CardStore.Delete
func (m *TestifyMockCardStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx is a mock implementation of store.CardStore.WithTx
func (m *TestifyMockCardStore) WithTx(*sql.Tx) store.CardStore {
	return m
}

// TestifyMockQuestionStore is a mock of store.QuestionStore for use with testify/mock
type TestifyMockQuestionStore struct {
	mock.Mock
}

var _ store.QuestionStore = (*TestifyMockQuestionStore)(nil)

// Create is a mock implementation of store.QuestionStore.Create
func (m *TestifyMockQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

// GetByID is a mock implementation of store.QuestionStore.GetByID
func (m *TestifyMockQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetForUpdate is a mock implementation of store.QuestionStore.GetForUpdate
func (m *TestifyMockQuestionStore) GetForUpdate(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

// Close is a mock implementation of store.QuestionStore.Close
func (m *TestifyMockQuestionStore) Close(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

// WithTx is a mock implementation of store.QuestionStore.WithTx
func (m *TestifyMockQuestionStore) WithTx(*sql.Tx) store.QuestionStore {
	return m
}
