package learning

import (
	"context"

	"github.com/phrazzld/flashcards-api/internal/domain"
)

// Service creates study questions and verifies answers to them.
type Service interface {
	// CreateQuestion builds and persists an open question about a random
	// card of setID, asking the given side of the card.
	//
	// Errors:
	//   - store.ErrSetNotFound when the set does not exist
	//   - service.ErrNotOwned when userID did not author the set
	//   - ErrSetEmpty when the set has no cards
	CreateQuestion(ctx context.Context, userID, setID int64, side domain.CardSide) (*domain.Question, error)

	// SubmitAnswer records answer on an open question owned by userID,
	// scores it and moves the source card along the difficulty ladder.
	// The card update and the close commit together or not at all.
	//
	// Errors:
	//   - store.ErrQuestionNotFound when the question does not exist
	//   - service.ErrNotOwned when the question belongs to another user
	//   - ErrQuestionClosed when the question was already answered,
	//     including when a concurrent submission closed it first
	SubmitAnswer(ctx context.Context, userID, questionID int64, answer string) (*domain.Question, error)
}
