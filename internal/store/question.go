package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/flashcards-api/internal/domain"
)

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	// Create saves an open question and assigns its ID.
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question by its unique ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// GetForUpdate retrieves a question and locks its row until the
	// surrounding transaction ends. It must be called on a store obtained
	// from WithTx.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetForUpdate(ctx context.Context, id int64) (*domain.Question, error)

	// Close records answer, correct and answered_at on a question that is
	// still open. The update is conditional on the answer being unset, so
	// only one caller can ever close a given question.
	// Returns ErrQuestionClosed when no open row matched.
	Close(ctx context.Context, question *domain.Question) error

	// WithTx returns a new QuestionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) QuestionStore
}
