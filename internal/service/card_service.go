package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/redact"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// Pagination defaults for ListCards.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CardPage is one page of a set's cards, ordered by creation time.
type CardPage struct {
	Cards []*domain.Card
	Page  int
	Size  int
	Total int
}

// CardService manages cards inside sets. Reads follow the set visibility
// rule, mutations require authorship of the owning set.
type CardService interface {
	// AddCard appends a card to a set authored by userID.
	// Returns store.ErrCardExists when the set already has a card with the same front.
	AddCard(ctx context.Context, userID, setID int64, front, back string) (*domain.Card, error)

	// GetCard returns a card whose set is visible to userID.
	GetCard(ctx context.Context, userID, cardID int64) (*domain.Card, error)

	// ListCards returns a zero-based page of the set's cards.
	ListCards(ctx context.Context, userID, setID int64, page, size int) (*CardPage, error)

	// UpdateCard replaces the text of a card. Its difficulty is kept.
	UpdateCard(ctx context.Context, userID, cardID int64, front, back string) (*domain.Card, error)

	// DeleteCard removes a card from a set authored by userID.
	DeleteCard(ctx context.Context, userID, cardID int64) error
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	setStore  store.CardSetStore
	cardStore store.CardStore
	db        *sql.DB
	logger    *slog.Logger
}

var _ CardService = (*cardServiceImpl)(nil)

// NewCardService creates a new CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	setStore store.CardSetStore,
	cardStore store.CardStore,
	db *sql.DB,
	logger *slog.Logger,
) (CardService, error) {
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

	return &cardServiceImpl{
		setStore:  setStore,
		cardStore: cardStore,
		db:        db,
		logger:    logger.With(slog.String("component", "card_service")),
	}, nil
}

// AddCard implements CardService.AddCard.
func (s *cardServiceImpl) AddCard(
	ctx context.Context,
	userID, setID int64,
	front, back string,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := domain.NewCard(setID, front, back)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.requireAuthor(ctx, s.setStore.WithTx(tx), userID, setID); err != nil {
			return err
		}
		return s.cardStore.WithTx(tx).Create(ctx, card)
	})
	if err != nil {
		return nil, s.fail(log, "add", "failed to add card", err)
	}

	log.Info("card added", slog.Int64("card_id", card.ID), slog.Int64("set_id", setID))
	return card, nil
}

// GetCard implements CardService.GetCard.
func (s *cardServiceImpl) GetCard(ctx context.Context, userID, cardID int64) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		return nil, s.fail(log, "get", "failed to retrieve card", err)
	}

	set, err := s.setStore.GetByID(ctx, card.SetID)
	if err != nil {
		return nil, s.fail(log, "get", "failed to retrieve card set", err)
	}
	if !set.VisibleTo(userID) {
		return nil, ErrNotVisible
	}

	return card, nil
}

// ListCards implements CardService.ListCards.
func (s *cardServiceImpl) ListCards(
	ctx context.Context,
	userID, setID int64,
	page, size int,
) (*CardPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 0 {
		return nil, domain.NewValidationError("page", "must not be negative", domain.ErrValidation)
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}

	set, err := s.setStore.GetByID(ctx, setID)
	if err != nil {
		return nil, s.fail(log, "list", "failed to retrieve card set", err)
	}
	if !set.VisibleTo(userID) {
		return nil, ErrNotVisible
	}

	cards, total, err := s.cardStore.ListBySetPage(ctx, setID, size, page*size)
	if err != nil {
		return nil, s.fail(log, "list", "failed to list cards", err)
	}

	return &CardPage{Cards: cards, Page: page, Size: size, Total: total}, nil
}

// UpdateCard implements CardService.UpdateCard.
func (s *cardServiceImpl) UpdateCard(
	ctx context.Context,
	userID, cardID int64,
	front, back string,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var card *domain.Card
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCards := s.cardStore.WithTx(tx)

		var err error
		card, err = txCards.GetByID(ctx, cardID)
		if err != nil {
			return err
		}
		if err := s.requireAuthor(ctx, s.setStore.WithTx(tx), userID, card.SetID); err != nil {
			return err
		}
		if err := card.UpdateText(front, back); err != nil {
			return err
		}
		return txCards.UpdateText(ctx, card)
	})
	if err != nil {
		return nil, s.fail(log, "update", "failed to update card", err)
	}

	log.Info("card updated", slog.Int64("card_id", cardID))
	return card, nil
}

// DeleteCard implements CardService.DeleteCard.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, userID, cardID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCards := s.cardStore.WithTx(tx)

		card, err := txCards.GetByID(ctx, cardID)
		if err != nil {
			return err
		}
		if err := s.requireAuthor(ctx, s.setStore.WithTx(tx), userID, card.SetID); err != nil {
			return err
		}
		return txCards.Delete(ctx, cardID)
	})
	if err != nil {
		return s.fail(log, "delete", "failed to delete card", err)
	}

	log.Info("card deleted", slog.Int64("card_id", cardID))
	return nil
}

func (s *cardServiceImpl) requireAuthor(ctx context.Context, sets store.CardSetStore, userID, setID int64) error {
	set, err := sets.GetByID(ctx, setID)
	if err != nil {
		return err
	}
	if !set.IsOwnedBy(userID) {
		return ErrNotOwned
	}
	return nil
}

func (s *cardServiceImpl) fail(log *slog.Logger, operation, message string, err error) error {
	if isClassified(err) {
		log.Debug("card request rejected",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return err
	}
	log.Error(message, slog.String("operation", operation), slog.String("error", redact.Error(err)))
	return NewServiceError("card", operation, message, err)
}
