package learning

import (
	"context"
	"database/sql"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// SetRepository is the part of the card set store the learning service needs.
type SetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CardSet, error)
	WithTx(tx *sql.Tx) SetRepository
}

// CardRepository is the part of the card store the learning service needs.
type CardRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Card, error)
	ListBySet(ctx context.Context, setID int64) ([]*domain.Card, error)
	UpdateDifficulty(ctx context.Context, id int64, difficulty domain.Difficulty) error
	WithTx(tx *sql.Tx) CardRepository
}

// QuestionRepository is the part of the question store the learning service needs.
type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	GetForUpdate(ctx context.Context, id int64) (*domain.Question, error)
	Close(ctx context.Context, question *domain.Question) error
	WithTx(tx *sql.Tx) QuestionRepository
}

// NewSetRepositoryAdapter lets a store.CardSetStore serve as a SetRepository.
func NewSetRepositoryAdapter(s store.CardSetStore) SetRepository {
	return &setRepositoryAdapter{store: s}
}

type setRepositoryAdapter struct {
	store store.CardSetStore
}

func (a *setRepositoryAdapter) GetByID(ctx context.Context, id int64) (*domain.CardSet, error) {
	return a.store.GetByID(ctx, id)
}

func (a *setRepositoryAdapter) WithTx(tx *sql.Tx) SetRepository {
	return &setRepositoryAdapter{store: a.store.WithTx(tx)}
}

// NewCardRepositoryAdapter lets a store.CardStore serve as a CardRepository.
func NewCardRepositoryAdapter(s store.CardStore) CardRepository {
	return &cardRepositoryAdapter{store: s}
}

type cardRepositoryAdapter struct {
	store store.CardStore
}

func (a *cardRepositoryAdapter) GetForUpdate(ctx context.Context, id int64) (*domain.Card, error) {
	return a.store.GetForUpdate(ctx, id)
}

func (a *cardRepositoryAdapter) ListBySet(ctx context.Context, setID int64) ([]*domain.Card, error) {
	return a.store.ListBySet(ctx, setID)
}

func (a *cardRepositoryAdapter) UpdateDifficulty(ctx context.Context, id int64, difficulty domain.Difficulty) error {
	return a.store.UpdateDifficulty(ctx, id, difficulty)
}

func (a *cardRepositoryAdapter) WithTx(tx *sql.Tx) CardRepository {
	return &cardRepositoryAdapter{store: a.store.WithTx(tx)}
}

// NewQuestionRepositoryAdapter lets a store.QuestionStore serve as a QuestionRepository.
func NewQuestionRepositoryAdapter(s store.QuestionStore) QuestionRepository {
	return &questionRepositoryAdapter{store: s}
}

type questionRepositoryAdapter struct {
	store store.QuestionStore
}

func (a *questionRepositoryAdapter) Create(ctx context.Context, question *domain.Question) error {
	return a.store.Create(ctx, question)
}

func (a *questionRepositoryAdapter) GetForUpdate(ctx context.Context, id int64) (*domain.Question, error) {
	return a.store.GetForUpdate(ctx, id)
}

func (a *questionRepositoryAdapter) Close(ctx context.Context, question *domain.Question) error {
	return a.store.Close(ctx, question)
}

func (a *questionRepositoryAdapter) WithTx(tx *sql.Tx) QuestionRepository {
	return &questionRepositoryAdapter{store: a.store.WithTx(tx)}
}
