package service

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

// CardText is the front/back pair of a card supplied by a client.
type CardText struct {
	Front string
	Back  string
}

// CardSetService manages card sets and enforces authorship and visibility.
type CardSetService interface {
	// CreateSet creates a set authored by userID together with any initial
	// cards, all in one transaction. Initial cards start at HARD.
	CreateSet(
		ctx context.Context,
		userID int64,
		name, description string,
		setType domain.SetType,
		cards []CardText,
	) (*domain.CardSet, error)

	// GetSet returns a set visible to userID.
	// Returns store.ErrSetNotFound or ErrNotVisible.
	GetSet(ctx context.Context, userID, setID int64) (*domain.CardSet, error)

	// UpdateSet replaces name, description and type of a set authored by userID.
	UpdateSet(
		ctx context.Context,
		userID, setID int64,
		name, description string,
		setType domain.SetType,
	) (*domain.CardSet, error)

	// DeleteSet removes a set authored by userID along with its cards.
	DeleteSet(ctx context.Context, userID, setID int64) error

	// ListSets lists the sets of authorID as seen by callerID: every set
	// when the caller is the author, public sets otherwise.
	ListSets(ctx context.Context, callerID, authorID int64) ([]*domain.CardSet, error)
}

// cardSetServiceImpl implements the CardSetService interface
type cardSetServiceImpl struct {
	setStore  store.CardSetStore
	cardStore store.CardStore
	db        *sql.DB
	logger    *slog.Logger
}

var _ CardSetService = (*cardSetServiceImpl)(nil)

// NewCardSetService creates a new CardSetService.
// It returns an error if any of the required dependencies are nil.
func NewCardSetService(
	setStore store.CardSetStore,
	cardStore store.CardStore,
	db *sql.DB,
	logger *slog.Logger,
) (CardSetService, error) {
	if setStore == nil {
		return nil, domain.NewValidationError("setStore", "cannot be nil", domain.ErrValidation)
	}
	if cardStore == nil {
		return nil, domain.NewValidationError("cardStore", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cardSetServiceImpl{
		setStore:  setStore,
		cardStore: cardStore,
		db:        db,
		logger:    logger.With(slog.String("component", "card_set_service")),
	}, nil
}

// CreateSet implements CardSetService.CreateSet.
func (s *cardSetServiceImpl) CreateSet(
	ctx context.Context,
	userID int64,
	name, description string,
	setType domain.SetType,
	cards []CardText,
) (*domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	set, err := domain.NewCardSet(userID, name, description, setType)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.setStore.WithTx(tx).Create(ctx, set); err != nil {
			return err
		}
		if len(cards) == 0 {
			return nil
		}

		domainCards := make([]*domain.Card, 0, len(cards))
		for _, c := range cards {
			card, err := domain.NewCard(set.ID, c.Front, c.Back)
			if err != nil {
				return err
			}
			for _, existing := range domainCards {
				if existing.SameAs(card) {
					return store.ErrCardExists
				}
			}
			domainCards = append(domainCards, card)
		}

		if err := s.cardStore.WithTx(tx).CreateMultiple(ctx, domainCards); err != nil {
			return err
		}
		set.Cards = domainCards
		return nil
	})
	if err != nil {
		return nil, s.passThrough(log, "create", "failed to create set", err)
	}

	log.Info("card set created",
		slog.Int64("set_id", set.ID),
		slog.Int64("author_id", userID),
		slog.Int("card_count", len(set.Cards)))
	return set, nil
}

// GetSet implements CardSetService.GetSet.
func (s *cardSetServiceImpl) GetSet(ctx context.Context, userID, setID int64) (*domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	set, err := s.setStore.GetByID(ctx, setID)
	if err != nil {
		return nil, s.passThrough(log, "get", "failed to retrieve set", err)
	}

	if !set.VisibleTo(userID) {
		log.Debug("private set requested by non-author",
			slog.Int64("set_id", setID),
			slog.Int64("user_id", userID))
		return nil, ErrNotVisible
	}

	return set, nil
}

// UpdateSet implements CardSetService.UpdateSet.
func (s *cardSetServiceImpl) UpdateSet(
	ctx context.Context,
	userID, setID int64,
	name, description string,
	setType domain.SetType,
) (*domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var set *domain.CardSet
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txSets := s.setStore.WithTx(tx)

		var err error
		set, err = s.ownedSet(ctx, txSets, userID, setID)
		if err != nil {
			return err
		}
		if err := set.Update(name, description, setType); err != nil {
			return err
		}
		return txSets.Update(ctx, set)
	})
	if err != nil {
		return nil, s.passThrough(log, "update", "failed to update set", err)
	}

	log.Info("card set updated", slog.Int64("set_id", setID))
	return set, nil
}

// DeleteSet implements CardSetService.DeleteSet.
func (s *cardSetServiceImpl) DeleteSet(ctx context.Context, userID, setID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txSets := s.setStore.WithTx(tx)
		if _, err := s.ownedSet(ctx, txSets, userID, setID); err != nil {
			return err
		}
		return txSets.Delete(ctx, setID)
	})
	if err != nil {
		return s.passThrough(log, "delete", "failed to delete set", err)
	}

	log.Info("card set deleted", slog.Int64("set_id", setID))
	return nil
}

// ListSets implements CardSetService.ListSets.
func (s *cardSetServiceImpl) ListSets(ctx context.Context, callerID, authorID int64) ([]*domain.CardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets, err := s.setStore.ListByAuthor(ctx, authorID, callerID != authorID)
	if err != nil {
		return nil, s.passThrough(log, "list", "failed to list sets", err)
	}
	return sets, nil
}

// ownedSet loads a set and checks that userID authored it.
func (s *cardSetServiceImpl) ownedSet(
	ctx context.Context,
	sets store.CardSetStore,
	userID, setID int64,
) (*domain.CardSet, error) {
	set, err := sets.GetByID(ctx, setID)
	if err != nil {
		return nil, err
	}
	if !set.IsOwnedBy(userID) {
		return nil, ErrNotOwned
	}
	return set, nil
}

// passThrough returns errors the API layer knows how to classify as-is and
// wraps anything else in a ServiceError.
func (s *cardSetServiceImpl) passThrough(log *slog.Logger, operation, message string, err error) error {
	if isClassified(err) {
		log.Debug("card set request rejected",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return err
	}
	log.Error(message, slog.String("operation", operation), slog.String("error", redact.Error(err)))
	return NewServiceError("card set", operation, message, err)
}

// isClassified reports whether err belongs to one of the error families
// that map to a client-facing status.
func isClassified(err error) bool {
	return store.IsNotFoundError(err) ||
		store.IsDuplicateError(err) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, ErrNotOwned) ||
		errors.Is(err, ErrNotVisible) ||
		errors.Is(err, ErrInvalidState)
}
