package learning

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/service"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	sets      SetRepository
	cards     CardRepository
	questions QuestionRepository
	builder   *Builder
	db        *sql.DB
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures optional collaborators of the learning service.
type Option func(*serviceImpl)

// WithClock replaces the clock used to stamp answers.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

// NewService creates a new learning Service.
// It panics if any of the required dependencies are nil.
func NewService(
	sets SetRepository,
	cards CardRepository,
	questions QuestionRepository,
	builder *Builder,
	db *sql.DB,
	logger *slog.Logger,
	opts ...Option,
) Service {
	if sets == nil {
		panic("sets cannot be nil")
	}
	if cards == nil {
		panic("cards cannot be nil")
	}
	if questions == nil {
		panic("questions cannot be nil")
	}
	if builder == nil {
		panic("builder cannot be nil")
	}
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &serviceImpl{
		sets:      sets,
		cards:     cards,
		questions: questions,
		builder:   builder,
		db:        db,
		now:       time.Now,
		logger:    logger.With(slog.String("component", "learning_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateQuestion implements Service.CreateQuestion.
func (s *serviceImpl) CreateQuestion(
	ctx context.Context,
	userID, setID int64,
	side domain.CardSide,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !side.Valid() {
		log.Debug("question requested with unknown card side", slog.String("card_side", string(side)))
		return nil, domain.NewValidationError("cardSide", "must be FRONT or BACK", domain.ErrInvalidCardSide)
	}

	log.Debug("creating question",
		slog.Int64("user_id", userID),
		slog.Int64("set_id", setID),
		slog.String("card_side", string(side.Resolve())))

	var question *domain.Question
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		set, err := s.sets.WithTx(tx).GetByID(ctx, setID)
		if err != nil {
			return err
		}
		if !set.IsOwnedBy(userID) {
			log.Debug("question requested for another author's set",
				slog.Int64("user_id", userID),
				slog.Int64("set_id", setID),
				slog.Int64("author_id", set.AuthorID))
			return service.ErrNotOwned
		}

		cards, err := s.cards.WithTx(tx).ListBySet(ctx, setID)
		if err != nil {
			return err
		}

		question, err = s.builder.Build(userID, cards, side)
		if err != nil {
			return err
		}

		return s.questions.WithTx(tx).Create(ctx, question)
	})
	if err != nil {
		return nil, s.fail(log, "create question", err)
	}

	log.Info("question created",
		slog.Int64("question_id", question.ID),
		slog.Int64("card_id", question.CardID),
		slog.Int("option_count", len(question.Options)))
	return question, nil
}

// SubmitAnswer implements Service.SubmitAnswer.
func (s *serviceImpl) SubmitAnswer(
	ctx context.Context,
	userID, questionID int64,
	answer string,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var question *domain.Question
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		questions := s.questions.WithTx(tx)
		cards := s.cards.WithTx(tx)

		q, err := questions.GetForUpdate(ctx, questionID)
		if err != nil {
			return err
		}
		if !q.IsOwnedBy(userID) {
			return service.ErrNotOwned
		}
		if q.IsClosed() {
			return ErrQuestionClosed
		}

		card, err := cards.GetForUpdate(ctx, q.CardID)
		if err != nil {
			return err
		}

		if err := q.Close(answer, s.now()); err != nil {
			return ErrQuestionClosed
		}

		next := domain.NextDifficulty(card.Difficulty, q.Correct)
		if next != card.Difficulty {
			if err := cards.UpdateDifficulty(ctx, card.ID, next); err != nil {
				return err
			}
		}

		if err := questions.Close(ctx, q); err != nil {
			if errors.Is(err, store.ErrQuestionClosed) {
				return ErrQuestionClosed
			}
			return err
		}

		log.Debug("answer scored",
			slog.Int64("question_id", q.ID),
			slog.Bool("correct", q.Correct),
			slog.Bool("offered", q.HasOption(answer)),
			slog.String("difficulty_from", string(card.Difficulty)),
			slog.String("difficulty_to", string(next)))
		question = q
		return nil
	})
	if err != nil {
		return nil, s.fail(log, "submit answer", err)
	}

	return question, nil
}

// fail passes classified errors through and wraps the rest.
func (s *serviceImpl) fail(log *slog.Logger, operation string, err error) error {
	switch {
	case store.IsNotFoundError(err),
		errors.Is(err, service.ErrNotOwned),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, domain.ErrValidation):
		log.Debug("learning request rejected",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return err
	}

	log.Error("learning request failed",
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)))
	return service.NewServiceError("learning", operation, "unexpected failure", err)
}
