package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// PostgresQuestionStore implements store.QuestionStore on PostgreSQL.
// Options are stored as a JSONB array.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a question store on the given connection or transaction.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

const questionColumns = `id, user_id, card_id, card_side, question, correct_answer, options,
	answer, correct, answered_at, created_at`

// WithTx implements store.QuestionStore.WithTx.
func (s *PostgresQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &PostgresQuestionStore{db: tx, logger: s.logger}
}

// Create implements store.QuestionStore.Create.
func (s *PostgresQuestionStore) Create(ctx context.Context, q *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if q.IsClosed() {
		return fmt.Errorf("%w: question must be open when created", store.ErrInvalidEntity)
	}

	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("%w: options: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO questions (user_id, card_id, card_side, question, correct_answer, options, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = s.db.QueryRowContext(ctx, query,
		q.UserID,
		q.CardID,
		string(q.CardSide),
		q.Prompt,
		q.CorrectAnswer,
		string(options),
		q.CreatedAt,
	).Scan(&q.ID)
	if err != nil {
		log.Error("failed to create question",
			slog.String("error", redact.Error(err)),
			slog.Int64("card_id", q.CardID))
		return MapError(err)
	}

	log.Debug("question created",
		slog.Int64("question_id", q.ID),
		slog.Int64("card_id", q.CardID),
		slog.Int("options", len(q.Options)))
	return nil
}

// GetByID implements store.QuestionStore.GetByID.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	return s.get(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id)
}

// GetForUpdate implements store.QuestionStore.GetForUpdate.
func (s *PostgresQuestionStore) GetForUpdate(ctx context.Context, id int64) (*domain.Question, error) {
	return s.get(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresQuestionStore) get(ctx context.Context, query string, id int64) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q, err := scanQuestion(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found", slog.Int64("question_id", id))
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to load question",
			slog.String("error", redact.Error(err)),
			slog.Int64("question_id", id))
		return nil, MapError(err)
	}

	return q, nil
}

// Close implements store.QuestionStore.Close.
func (s *PostgresQuestionStore) Close(ctx context.Context, q *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !q.IsClosed() {
		return fmt.Errorf("%w: question has no answer to record", store.ErrInvalidEntity)
	}

	query := `
		UPDATE questions
		SET answer = $1, correct = $2, answered_at = $3
		WHERE id = $4 AND answer IS NULL
	`
	result, err := s.db.ExecContext(ctx, query, *q.Answer, q.Correct, *q.AnsweredAt, q.ID)
	if err != nil {
		log.Error("failed to close question",
			slog.String("error", redact.Error(err)),
			slog.Int64("question_id", q.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrQuestionClosed); err != nil {
		log.Debug("question was not open", slog.Int64("question_id", q.ID))
		return err
	}

	return nil
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var (
		q          domain.Question
		side       string
		options    []byte
		answer     sql.NullString
		answeredAt sql.NullTime
	)
	if err := row.Scan(
		&q.ID,
		&q.UserID,
		&q.CardID,
		&side,
		&q.Prompt,
		&q.CorrectAnswer,
		&options,
		&answer,
		&q.Correct,
		&answeredAt,
		&q.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(options, &q.Options); err != nil {
		return nil, fmt.Errorf("failed to decode question options: %w", err)
	}

	q.CardSide = domain.CardSide(side)
	if answer.Valid {
		a := answer.String
		q.Answer = &a
	}
	if answeredAt.Valid {
		t := answeredAt.Time.UTC()
		q.AnsweredAt = &t
	}

	return &q, nil
}
