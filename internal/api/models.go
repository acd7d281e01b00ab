package api

import (
	"time"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/service"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Nickname string `json:"nickname" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after registration and login.
type AuthResponse struct {
	UserID       int64  `json:"user_id"`
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// RefreshTokenRequest is the body of POST /api/auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse carries a new token pair.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// UserResponse is the public view of a user. Email is only filled in for
// the user themself.
type UserResponse struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(u *domain.User, self bool) UserResponse {
	resp := UserResponse{ID: u.ID, Nickname: u.Nickname, CreatedAt: u.CreatedAt}
	if self {
		resp.Email = u.Email
	}
	return resp
}

// CardRequest is the body for creating or replacing a card.
type CardRequest struct {
	Front string `json:"front" validate:"required,max=500"`
	Back  string `json:"back"  validate:"required,max=500"`
}

// CreateSetRequest is the body of POST /api/sets.
type CreateSetRequest struct {
	Name        string        `json:"name"        validate:"required,max=100"`
	Description string        `json:"description" validate:"max=1000"`
	Type        string        `json:"type"        validate:"omitempty,oneof=PUBLIC PRIVATE public private"`
	Cards       []CardRequest `json:"cards"       validate:"omitempty,dive"`
}

// UpdateSetRequest is the body of PUT /api/sets/{setId}.
type UpdateSetRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Type        string `json:"type"        validate:"omitempty,oneof=PUBLIC PRIVATE public private"`
}

// CardResponse is the API view of a card.
type CardResponse struct {
	ID         int64             `json:"id"`
	SetID      int64             `json:"set_id"`
	Front      string            `json:"front"`
	Back       string            `json:"back"`
	Difficulty domain.Difficulty `json:"difficulty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func cardToResponse(c *domain.Card) CardResponse {
	return CardResponse{
		ID:         c.ID,
		SetID:      c.SetID,
		Front:      c.Front,
		Back:       c.Back,
		Difficulty: c.Difficulty,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToResponse(c))
	}
	return out
}

// CardPageResponse is one page of cards.
type CardPageResponse struct {
	Cards []CardResponse `json:"cards"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int            `json:"total"`
}

func cardPageToResponse(p *service.CardPage) CardPageResponse {
	return CardPageResponse{
		Cards: cardsToResponse(p.Cards),
		Page:  p.Page,
		Size:  p.Size,
		Total: p.Total,
	}
}

// SetResponse is the API view of a card set.
type SetResponse struct {
	ID          int64          `json:"id"`
	AuthorID    int64          `json:"author_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        domain.SetType `json:"type"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Cards       []CardResponse `json:"cards,omitempty"`
}

func setToResponse(s *domain.CardSet) SetResponse {
	resp := SetResponse{
		ID:          s.ID,
		AuthorID:    s.AuthorID,
		Name:        s.Name,
		Description: s.Description,
		Type:        s.Type,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if len(s.Cards) > 0 {
		resp.Cards = cardsToResponse(s.Cards)
	}
	return resp
}

// CreateQuestionRequest is the optional body of POST /api/learning/questions.
type CreateQuestionRequest struct {
	CardSide string `json:"cardSide" validate:"omitempty,oneof=FRONT BACK front back"`
}

// SubmitAnswerRequest is the body of PUT /api/learning/questions/{questionId}.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// QuestionView is the outward view of a question. The correct answer is
// never exposed; the submitted answer, score and answer time only appear
// once the question is closed.
type QuestionView struct {
	ID         int64           `json:"id"`
	Question   string          `json:"question"`
	Options    []string        `json:"options"`
	CardSide   domain.CardSide `json:"cardSide"`
	Answer     *string         `json:"answer,omitempty"`
	Correct    *bool           `json:"correct,omitempty"`
	AnsweredAt *time.Time      `json:"answeredAt,omitempty"`
}

func questionToView(q *domain.Question) QuestionView {
	view := QuestionView{
		ID:       q.ID,
		Question: q.Prompt,
		Options:  q.Options,
		CardSide: q.CardSide,
	}
	if q.IsClosed() {
		correct := q.Correct
		view.Answer = q.Answer
		view.Correct = &correct
		view.AnsweredAt = q.AnsweredAt
	}
	return view
}
