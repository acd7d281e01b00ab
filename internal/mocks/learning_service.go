package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/service/learning"
)

// MockLearningService implements learning.Service for testing
type MockLearningService struct {
	CreateQuestionFn func(ctx context.Context, userID, setID int64, side domain.CardSide) (*domain.Question, error)
	SubmitAnswerFn   func(ctx context.Context, userID, questionID int64, answer string) (*domain.Question, error)

	// Default response values
	Question *domain.Question
	Err      error

	// Call tracking for verification
	mu                  sync.Mutex
	CreateQuestionSides []domain.CardSide
	SubmittedAnswers    []string
}

var _ learning.Service = (*MockLearningService)(nil)

// CreateQuestion implements the learning.Service interface
func (m *MockLearningService) CreateQuestion(
	ctx context.Context,
	userID, setID int64,
	side domain.CardSide,
) (*domain.Question, error) {
	m.mu.Lock()
	m.CreateQuestionSides = append(m.CreateQuestionSides, side)
	m.mu.Unlock()

	if m.CreateQuestionFn != nil {
		return m.CreateQuestionFn(ctx, userID, setID, side)
	}
	return m.Question, m.Err
}

// SubmitAnswer implements the learning.Service interface
func (m *MockLearningService) SubmitAnswer(
	ctx context.Context,
	userID, questionID int64,
	answer string,
) (*domain.Question, error) {
	m.mu.Lock()
	m.SubmittedAnswers = append(m.SubmittedAnswers, answer)
	m.mu.Unlock()

	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, userID, questionID, answer)
	}
	return m.Question, m.Err
}
