package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/require"
)

// MustCreateUser inserts an enabled user with a unique nickname and email.
func MustCreateUser(t *testing.T, db store.DBTX) *domain.User {
	t.Helper()

	name := UniqueName("user")
	user := &domain.User{
		Nickname:       name,
		Email:          name + "@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuuN0HcFEvO5RP1zzsqgXbUVjDD7xgFO2",
		Enabled:        true,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	require.NoError(t, postgres.NewPostgresUserStore(db, nil).Create(context.Background(), user))
	return user
}

// MustCreateSet inserts a set owned by authorID with one card per
// front/back pair.
func MustCreateSet(t *testing.T, db store.DBTX, authorID int64, setType domain.SetType, pairs ...[2]string) (*domain.CardSet, []*domain.Card) {
	t.Helper()

	set, err := domain.NewCardSet(authorID, UniqueName("set"), "", setType)
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresCardSetStore(db, nil).Create(context.Background(), set))

	cards := make([]*domain.Card, 0, len(pairs))
	cardStore := postgres.NewPostgresCardStore(db, nil)
	for _, p := range pairs {
		card, err := domain.NewCard(set.ID, p[0], p[1])
		require.NoError(t, err)
		require.NoError(t, cardStore.Create(context.Background(), card))
		cards = append(cards, card)
	}

	return set, cards
}
