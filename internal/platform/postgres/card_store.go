package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// PostgresCardStore implements store.CardStore on PostgreSQL.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a card store on the given connection or transaction.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

var _ store.CardStore = (*PostgresCardStore)(nil)

const cardColumns = `id, set_id, front, back, difficulty, created_at, updated_at`

// WithTx implements store.CardStore.WithTx.
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{db: tx, logger: s.logger}
}

// Create implements store.CardStore.Create.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO cards (set_id, front, back, difficulty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		card.SetID,
		card.Front,
		card.Back,
		string(card.Difficulty),
		card.CreatedAt,
		card.UpdatedAt,
	).Scan(&card.ID)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) && !store.IsNotFoundError(mapped) {
			log.Error("failed to create card",
				slog.String("error", redact.Error(err)),
				slog.Int64("set_id", card.SetID))
		}
		return mapped
	}

	return nil
}

// CreateMultiple implements store.CardStore.CreateMultiple.
func (s *PostgresCardStore) CreateMultiple(ctx context.Context, cards []*domain.Card) error {
	for i, card := range cards {
		if err := s.Create(ctx, card); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}

// GetByID implements store.CardStore.GetByID.
func (s *PostgresCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	return s.get(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)
}

// GetForUpdate implements store.CardStore.GetForUpdate.
func (s *PostgresCardStore) GetForUpdate(ctx context.Context, id int64) (*domain.Card, error) {
	return s.get(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresCardStore) get(ctx context.Context, query string, id int64) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.Int64("card_id", id))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to load card",
			slog.String("error", redact.Error(err)),
			slog.Int64("card_id", id))
		return nil, MapError(err)
	}

	return card, nil
}

// ListBySet implements store.CardStore.ListBySet.
func (s *PostgresCardStore) ListBySet(ctx context.Context, setID int64) ([]*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE set_id = $1 ORDER BY created_at, id`
	return s.list(ctx, query, setID)
}

// ListBySetPage implements store.CardStore.ListBySetPage.
func (s *PostgresCardStore) ListBySetPage(
	ctx context.Context,
	setID int64,
	limit, offset int,
) ([]*domain.Card, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE set_id = $1`, setID).Scan(&total)
	if err != nil {
		return nil, 0, MapError(err)
	}

	query := `SELECT ` + cardColumns + ` FROM cards WHERE set_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	cards, err := s.list(ctx, query, setID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

func (s *PostgresCardStore) list(ctx context.Context, query string, args ...any) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// UpdateText implements store.CardStore.UpdateText.
func (s *PostgresCardStore) UpdateText(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE cards SET front = $1, back = $2, updated_at = $3 WHERE id = $4`
	result, err := s.db.ExecContext(ctx, query, card.Front, card.Back, card.UpdatedAt, card.ID)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			log.Error("failed to update card",
				slog.String("error", redact.Error(err)),
				slog.Int64("card_id", card.ID))
		}
		return mapped
	}

	return CheckRowsAffected(result, store.ErrCardNotFound)
}

// UpdateDifficulty implements store.CardStore.UpdateDifficulty.
func (s *PostgresCardStore) UpdateDifficulty(ctx context.Context, id int64, difficulty domain.Difficulty) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !difficulty.Valid() {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrInvalidDifficulty)
	}

	query := `UPDATE cards SET difficulty = $1, updated_at = NOW() WHERE id = $2`
	result, err := s.db.ExecContext(ctx, query, string(difficulty), id)
	if err != nil {
		log.Error("failed to update card difficulty",
			slog.String("error", redact.Error(err)),
			slog.Int64("card_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		return err
	}

	log.Debug("card difficulty updated",
		slog.Int64("card_id", id),
		slog.String("difficulty", string(difficulty)))
	return nil
}

// Delete implements store.CardStore.Delete.
func (s *PostgresCardStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", redact.Error(err)),
			slog.Int64("card_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCardNotFound)
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	var difficulty string
	if err := row.Scan(
		&card.ID,
		&card.SetID,
		&card.Front,
		&card.Back,
		&difficulty,
		&card.CreatedAt,
		&card.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	card.Difficulty = d
	return &card, nil
}
