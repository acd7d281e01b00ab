package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// PostgresCardSetStore implements store.CardSetStore on PostgreSQL.
type PostgresCardSetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardSetStore creates a card set store on the given connection or transaction.
func NewPostgresCardSetStore(db store.DBTX, logger *slog.Logger) *PostgresCardSetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardSetStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_set_store")),
	}
}

var _ store.CardSetStore = (*PostgresCardSetStore)(nil)

// WithTx implements store.CardSetStore.WithTx.
func (s *PostgresCardSetStore) WithTx(tx *sql.Tx) store.CardSetStore {
	return &PostgresCardSetStore{db: tx, logger: s.logger}
}

// Create implements store.CardSetStore.Create.
func (s *PostgresCardSetStore) Create(ctx context.Context, set *domain.CardSet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := set.Validate(); err != nil {
		log.Debug("card set validation failed", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO card_sets (author_id, name, description, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		set.AuthorID,
		set.Name,
		set.Description,
		string(set.Type),
		set.CreatedAt,
		set.UpdatedAt,
	).Scan(&set.ID)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) && !store.IsNotFoundError(mapped) {
			log.Error("failed to create card set",
				slog.String("error", redact.Error(err)),
				slog.Int64("author_id", set.AuthorID))
		}
		return mapped
	}

	log.Debug("card set created",
		slog.Int64("set_id", set.ID),
		slog.Int64("author_id", set.AuthorID))
	return nil
}

// GetByID implements store.CardSetStore.GetByID.
func (s *PostgresCardSetStore) GetByID(ctx context.Context, id int64) (*domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, name, description, type, created_at, updated_at
		FROM card_sets
		WHERE id = $1
	`
	set, err := scanCardSet(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card set not found", slog.Int64("set_id", id))
			return nil, store.ErrSetNotFound
		}
		log.Error("failed to load card set",
			slog.String("error", redact.Error(err)),
			slog.Int64("set_id", id))
		return nil, MapError(err)
	}

	return set, nil
}

// ListByAuthor implements store.CardSetStore.ListByAuthor.
func (s *PostgresCardSetStore) ListByAuthor(
	ctx context.Context,
	authorID int64,
	publicOnly bool,
) ([]*domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, name, description, type, created_at, updated_at
		FROM card_sets
		WHERE author_id = $1 AND (NOT $2::boolean OR type = 'PUBLIC')
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, authorID, publicOnly)
	if err != nil {
		log.Error("failed to list card sets", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	sets := []*domain.CardSet{}
	for rows.Next() {
		set, err := scanCardSet(rows)
		if err != nil {
			return nil, MapError(err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return sets, nil
}

// Update implements store.CardSetStore.Update.
func (s *PostgresCardSetStore) Update(ctx context.Context, set *domain.CardSet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := set.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE card_sets
		SET name = $1, description = $2, type = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		set.Name,
		set.Description,
		string(set.Type),
		set.UpdatedAt,
		set.ID,
	)
	if err != nil {
		mapped := MapError(err)
		if !store.IsDuplicateError(mapped) {
			log.Error("failed to update card set",
				slog.String("error", redact.Error(err)),
				slog.Int64("set_id", set.ID))
		}
		return mapped
	}

	return CheckRowsAffected(result, store.ErrSetNotFound)
}

// Delete implements store.CardSetStore.Delete.
func (s *PostgresCardSetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM card_sets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card set",
			slog.String("error", redact.Error(err)),
			slog.Int64("set_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrSetNotFound)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCardSet(row rowScanner) (*domain.CardSet, error) {
	var set domain.CardSet
	var setType string
	if err := row.Scan(
		&set.ID,
		&set.AuthorID,
		&set.Name,
		&set.Description,
		&setType,
		&set.CreatedAt,
		&set.UpdatedAt,
	); err != nil {
		return nil, err
	}
	set.Type = domain.SetType(setType)
	return &set, nil
}
