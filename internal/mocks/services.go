package mocks

import (
	"context"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn     func(ctx context.Context, nickname, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID int64) (*domain.User, error)

	// Default response values
	User *domain.User
	Err  error
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements the service.UserService interface
func (m *MockUserService) Register(ctx context.Context, nickname, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, nickname, email, password)
	}
	return m.User, m.Err
}

// Authenticate implements the service.UserService interface
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return m.User, m.Err
}

// GetUser implements the service.UserService interface
func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.Err
}

// MockCardSetService implements service.CardSetService for testing
type MockCardSetService struct {
	CreateSetFn func(
		ctx context.Context,
		userID int64,
		name, description string,
		setType domain.SetType,
		cards []service.CardText,
	) (*domain.CardSet, error)
	GetSetFn    func(ctx context.Context, userID, setID int64) (*domain.CardSet, error)
	UpdateSetFn func(
		ctx context.Context,
		userID, setID int64,
		name, description string,
		setType domain.SetType,
	) (*domain.CardSet, error)
	DeleteSetFn func(ctx context.Context, userID, setID int64) error
	ListSetsFn  func(ctx context.Context, callerID, authorID int64) ([]*domain.CardSet, error)

	// Default response values
	Set  *domain.CardSet
	Sets []*domain.CardSet
	Err  error
}

var _ service.CardSetService = (*MockCardSetService)(nil)

// CreateSet implements the service.CardSetService interface
func (m *MockCardSetService) CreateSet(
	ctx context.Context,
	userID int64,
	name, description string,
	setType domain.SetType,
	cards []service.CardText,
) (*domain.CardSet, error) {
	if m.CreateSetFn != nil {
		return m.CreateSetFn(ctx, userID, name, description, setType, cards)
	}
	return m.Set, m.Err
}

// GetSet implements the service.CardSetService interface
func (m *MockCardSetService) GetSet(ctx context.Context, userID, setID int64) (*domain.CardSet, error) {
	if m.GetSetFn != nil {
		return m.GetSetFn(ctx, userID, setID)
	}
	return m.Set, m.Err
}

// UpdateSet implements the service.CardSetService interface
func (m *MockCardSetService) UpdateSet(
	ctx context.Context,
	userID, setID int64,
	name, description string,
	setType domain.SetType,
) (*domain.CardSet, error) {
	if m.UpdateSetFn != nil {
		return m.UpdateSetFn(ctx, userID, setID, name, description, setType)
	}
	return m.Set, m.Err
}

// DeleteSet implements the service.CardSetService interface
func (m *MockCardSetService) DeleteSet(ctx context.Context, userID, setID int64) error {
	if m.DeleteSetFn != nil {
		return m.DeleteSetFn(ctx, userID, setID)
	}
	return m.Err
}

// ListSets implements the service.CardSetService interface
func (m *MockCardSetService) ListSets(ctx context.Context, callerID, authorID int64) ([]*domain.CardSet, error) {
	if m.ListSetsFn != nil {
		return m.ListSetsFn(ctx, callerID, authorID)
	}
	return m.Sets, m.Err
}

// MockCardService implements service.CardService for testing
type MockCardService struct {
	AddCardFn    func(ctx context.Context, userID, setID int64, front, back string) (*domain.Card, error)
	GetCardFn    func(ctx context.Context, userID, cardID int64) (*domain.Card, error)
	ListCardsFn  func(ctx context.Context, userID, setID int64, page, size int) (*service.CardPage, error)
	UpdateCardFn func(ctx context.Context, userID, cardID int64, front, back string) (*domain.Card, error)
	DeleteCardFn func(ctx context.Context, userID, cardID int64) error

	// Default response values
	Card *domain.Card
	Page *service.CardPage
	Err  error
}

var _ service.CardService = (*MockCardService)(nil)

// AddCard implements the service.CardService interface
func (m *MockCardService) AddCard(ctx context.Context, userID, setID int64, front, back string) (*domain.Card, error) {
	if m.AddCardFn != nil {
		return m.AddCardFn(ctx, userID, setID, front, back)
	}
	return m.Card, m.Err
}

// GetCard implements the service.CardService interface
func (m *MockCardService) GetCard(ctx context.Context, userID, cardID int64) (*domain.Card, error) {
	if m.GetCardFn != nil {
		return m.GetCardFn(ctx, userID, cardID)
	}
	return m.Card, m.Err
}

// ListCards implements the service.CardService interface
func (m *MockCardService) ListCards(
	ctx context.Context,
	userID, setID int64,
	page, size int,
) (*service.CardPage, error) {
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx, userID, setID, page, size)
	}
	return m.Page, m.Err
}

// UpdateCard implements the service.CardService interface
func (m *MockCardService) UpdateCard(
	ctx context.Context,
	userID, cardID int64,
	front, back string,
) (*domain.Card, error) {
	if m.UpdateCardFn != nil {
		return m.UpdateCardFn(ctx, userID, cardID, front, back)
	}
	return m.Card, m.Err
}

// DeleteCard implements the service.CardService interface
func (m *MockCardService) DeleteCard(ctx context.Context, userID, cardID int64) error {
	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, userID, cardID)
	}
	return m.Err
}
