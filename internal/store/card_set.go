package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/flashcards-api/internal/domain"
)

// CardSetStore defines the interface for card set persistence.
type CardSetStore interface {
	// Create saves a new set and assigns its ID and timestamps.
	// Cards attached to the set are not stored; use CardStore for those.
	// Returns ErrSetExists if the author already owns a set with that name.
	Create(ctx context.Context, set *domain.CardSet) error

	// GetByID retrieves a set without its cards.
	// Returns ErrSetNotFound if the set does not exist.
	GetByID(ctx context.Context, id int64) (*domain.CardSet, error)

	// ListByAuthor returns the author's sets ordered by creation time.
	// When publicOnly is true, private sets are omitted.
	ListByAuthor(ctx context.Context, authorID int64, publicOnly bool) ([]*domain.CardSet, error)

	// Update persists name, description and type of an existing set.
	// Returns ErrSetNotFound if the set does not exist and ErrSetExists
	// if the new name collides with another of the author's sets.
	Update(ctx context.Context, set *domain.CardSet) error

	// Delete removes a set. Its cards and their questions are removed by
	// the schema's ON DELETE CASCADE constraints.
	// Returns ErrSetNotFound if the set does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CardSetStore instance that uses the provided transaction.
	//
	// Example usage:
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
	//       return setStore.WithTx(tx).Create(ctx, set)
	//   })
	WithTx(tx *sql.Tx) CardSetStore
}
