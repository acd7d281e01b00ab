package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/mocks"
	"github.com/phrazzld/flashcards-api/internal/service"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cardFixture struct {
	svc   service.CardService
	sets  *mocks.TestifyMockCardSetStore
	cards *mocks.TestifyMockCardStore
}

func newCardFixture(t *testing.T) cardFixture {
	t.Helper()

	f := cardFixture{
		sets:  &mocks.TestifyMockCardSetStore{},
		cards: &mocks.TestifyMockCardStore{},
	}
	svc, err := service.NewCardService(f.sets, f.cards, mocks.NewTxDB(t), discardLogger())
	require.NoError(t, err)
	f.svc = svc

	f.sets.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.CardSet{ID: 1, AuthorID: 100, Name: "public", Type: domain.SetTypePublic}, nil).Maybe()
	f.sets.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.CardSet{ID: 2, AuthorID: 100, Name: "private", Type: domain.SetTypePrivate}, nil).Maybe()
	return f
}

func TestCardService_AddCard(t *testing.T) {
	t.Parallel()

	t.Run("author adds a HARD card", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.On("Create", mock.Anything, mock.AnythingOfType("*domain.Card")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Card).ID = 9 }).
			Return(nil)

		card, err := f.svc.AddCard(context.Background(), 100, 1, "Bonjour", "Hello")

		require.NoError(t, err)
		assert.Equal(t, int64(9), card.ID)
		assert.Equal(t, domain.DifficultyHard, card.Difficulty)
	})

	t.Run("non-author is refused", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)

		_, err := f.svc.AddCard(context.Background(), 200, 1, "Bonjour", "Hello")

		assert.ErrorIs(t, err, service.ErrNotOwned)
		f.cards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate front", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.On("Create", mock.Anything, mock.Anything).Return(store.ErrCardExists)

		_, err := f.svc.AddCard(context.Background(), 100, 1, "Bonjour", "Hello")

		assert.ErrorIs(t, err, store.ErrCardExists)
	})

	t.Run("empty back", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)

		_, err := f.svc.AddCard(context.Background(), 100, 1, "Bonjour", "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCardService_GetCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  int64
		card    *domain.Card
		wantErr error
	}{
		{name: "public set", userID: 200, card: &domain.Card{ID: 5, SetID: 1}},
		{name: "private set author", userID: 100, card: &domain.Card{ID: 5, SetID: 2}},
		{name: "private set stranger", userID: 200, card: &domain.Card{ID: 5, SetID: 2}, wantErr: service.ErrNotVisible},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newCardFixture(t)
			f.cards.On("GetByID", mock.Anything, int64(5)).Return(tc.card, nil)

			card, err := f.svc.GetCard(context.Background(), tc.userID, 5)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tc.card, card)
		})
	}

	t.Run("missing card", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.On("GetByID", mock.Anything, int64(6)).Return(nil, store.ErrCardNotFound)

		_, err := f.svc.GetCard(context.Background(), 100, 6)

		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})
}

func TestCardService_ListCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		wantLimit  int
		wantOffset int
	}{
		{name: "first page", page: 0, size: 10, wantLimit: 10, wantOffset: 0},
		{name: "third page", page: 2, size: 10, wantLimit: 10, wantOffset: 20},
		{name: "default size", page: 1, size: 0, wantLimit: service.DefaultPageSize, wantOffset: service.DefaultPageSize},
		{name: "clamped size", page: 0, size: 1000, wantLimit: service.MaxPageSize, wantOffset: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newCardFixture(t)
			f.cards.On("ListBySetPage", mock.Anything, int64(1), tc.wantLimit, tc.wantOffset).
				Return([]*domain.Card{{ID: 1}}, 42, nil)

			page, err := f.svc.ListCards(context.Background(), 200, 1, tc.page, tc.size)

			require.NoError(t, err)
			assert.Equal(t, 42, page.Total)
			assert.Equal(t, tc.page, page.Page)
			assert.Equal(t, tc.wantLimit, page.Size)
			f.cards.AssertExpectations(t)
		})
	}

	t.Run("negative page", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)

		_, err := f.svc.ListCards(context.Background(), 100, 1, -1, 10)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("private set for stranger", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)

		_, err := f.svc.ListCards(context.Background(), 200, 2, 0, 10)

		assert.ErrorIs(t, err, service.ErrNotVisible)
	})
}

func TestCardService_UpdateCard(t *testing.T) {
	t.Parallel()

	t.Run("keeps difficulty", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		existing := &domain.Card{ID: 5, SetID: 1, Front: "a", Back: "b", Difficulty: domain.DifficultyEasy}
		f.cards.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		f.cards.On("UpdateText", mock.Anything, existing).Return(nil)

		card, err := f.svc.UpdateCard(context.Background(), 100, 5, "Bonjour", "Hello")

		require.NoError(t, err)
		assert.Equal(t, "Bonjour", card.Front)
		assert.Equal(t, domain.DifficultyEasy, card.Difficulty)
	})

	t.Run("non-author is refused", func(t *testing.T) {
		t.Parallel()
		f := newCardFixture(t)
		f.cards.On("GetByID", mock.Anything, int64(5)).Return(&domain.Card{ID: 5, SetID: 1, Front: "a", Back: "b"}, nil)

		_, err := f.svc.UpdateCard(context.Background(), 200, 5, "Bonjour", "Hello")

		assert.ErrorIs(t, err, service.ErrNotOwned)
	})
}

func TestCardService_DeleteCard(t *testing.T) {
	t.Parallel()

	f := newCardFixture(t)
	f.cards.On("GetByID", mock.Anything, int64(5)).Return(&domain.Card{ID: 5, SetID: 1}, nil)
	f.cards.On("Delete", mock.Anything, int64(5)).Return(nil)

	assert.ErrorIs(t, f.svc.DeleteCard(context.Background(), 200, 5), service.ErrNotOwned)
	require.NoError(t, f.svc.DeleteCard(context.Background(), 100, 5))
	f.cards.AssertNumberOfCalls(t, "Delete", 1)
}
