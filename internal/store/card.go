package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/flashcards-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a card and assigns its ID.
	// Returns ErrCardExists if the set already has a card with the same front
	// and ErrSetNotFound if the set does not exist.
	Create(ctx context.Context, card *domain.Card) error

	// CreateMultiple saves several cards of one set.
	// IMPORTANT: This method MUST be run within a transaction for atomicity.
	// Use the WithTx method with store.RunInTransaction.
	CreateMultiple(ctx context.Context, cards []*domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Card, error)

	// GetForUpdate is GetByID that also locks the card row until the
	// surrounding transaction ends. It must run inside a transaction.
	GetForUpdate(ctx context.Context, id int64) (*domain.Card, error)

	// ListBySet returns every card of the set in creation order.
	// An empty slice is returned for a set without cards.
	ListBySet(ctx context.Context, setID int64) ([]*domain.Card, error)

	// ListBySetPage returns one page of the set's cards in creation order
	// together with the total number of cards in the set.
	ListBySetPage(ctx context.Context, setID int64, limit, offset int) ([]*domain.Card, int, error)

	// UpdateText persists front and back of an existing card.
	// Returns ErrCardNotFound or ErrCardExists.
	UpdateText(ctx context.Context, card *domain.Card) error

	// UpdateDifficulty moves a card to a new rung of the difficulty ladder.
	// Returns ErrCardNotFound if the card does not exist.
	UpdateDifficulty(ctx context.Context, id int64, difficulty domain.Difficulty) error

	// Delete removes a card. Questions built from it are removed by
	// ON DELETE CASCADE.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CardStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CardStore
}
