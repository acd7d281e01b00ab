package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/mocks"
	"github.com/phrazzld/flashcards-api/internal/service"
	"github.com/phrazzld/flashcards-api/internal/service/learning"
	"github.com/phrazzld/flashcards-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionsPath = "/api/learning/questions"

func openQuestion() *domain.Question {
	return &domain.Question{
		ID:            11,
		UserID:        1,
		CardID:        3,
		CardSide:      domain.CardSideBack,
		Prompt:        "Hello",
		CorrectAnswer: "Bonjour",
		Options:       []string{"Merci", "Bonjour"},
	}
}

func TestLearningHandler_CreateQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		body       string
		userID     int64
		svcErr     error
		wantStatus int
		wantSide   domain.CardSide
	}{
		{name: "default side", target: questionsPath + "?setId=5", userID: 1, wantStatus: http.StatusCreated, wantSide: domain.CardSideBack},
		{name: "front side", target: questionsPath + "?setId=5", body: `{"cardSide":"FRONT"}`, userID: 1, wantStatus: http.StatusCreated, wantSide: domain.CardSideFront},
		{name: "invalid side", target: questionsPath + "?setId=5", body: `{"cardSide":"SIDEWAYS"}`, userID: 1, wantStatus: http.StatusBadRequest},
		{name: "missing set id", target: questionsPath, userID: 1, wantStatus: http.StatusBadRequest},
		{name: "non-numeric set id", target: questionsPath + "?setId=abc", userID: 1, wantStatus: http.StatusBadRequest},
		{name: "unauthenticated", target: questionsPath + "?setId=5", wantStatus: http.StatusUnauthorized},
		{name: "set not found", target: questionsPath + "?setId=5", userID: 1, svcErr: store.ErrSetNotFound, wantStatus: http.StatusNotFound},
		{name: "not the author", target: questionsPath + "?setId=5", userID: 1, svcErr: service.ErrNotOwned, wantStatus: http.StatusForbidden},
		{name: "empty set", target: questionsPath + "?setId=5", userID: 1, svcErr: learning.ErrSetEmpty, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := &mocks.MockLearningService{
				CreateQuestionFn: func(_ context.Context, userID, setID int64, side domain.CardSide) (*domain.Question, error) {
					if tc.svcErr != nil {
						return nil, tc.svcErr
					}
					assert.Equal(t, int64(5), setID)
					q := openQuestion()
					q.CardSide = side
					return q, nil
				},
			}
			h := NewLearningHandler(svc, testLogger())

			w := serve(t, http.MethodPost, questionsPath, tc.target, tc.body, tc.userID, h.CreateQuestion)

			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.wantStatus != http.StatusCreated {
				return
			}
			assert.Equal(t, []domain.CardSide{tc.wantSide}, svc.CreateQuestionSides)

			body := decodeBody[map[string]any](t, w)
			assert.Equal(t, "Hello", body["question"])
			assert.Equal(t, string(tc.wantSide), body["cardSide"])
			assert.NotContains(t, body, "correctAnswer")
			assert.NotContains(t, body, "correct_answer")
			assert.NotContains(t, body, "answer")
			assert.NotContains(t, body, "correct")
			assert.NotContains(t, body, "answeredAt")
		})
	}
}

func TestLearningHandler_SubmitAnswer(t *testing.T) {
	t.Parallel()

	answeredAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pattern := questionsPath + "/{questionId}"

	tests := []struct {
		name       string
		target     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "correct answer", target: questionsPath + "/11", body: `{"answer":"Bonjour"}`, wantStatus: http.StatusOK},
		{name: "already closed", target: questionsPath + "/11", body: `{"answer":"Bonjour"}`, svcErr: learning.ErrQuestionClosed, wantStatus: http.StatusBadRequest},
		{name: "not owner", target: questionsPath + "/11", body: `{"answer":"Bonjour"}`, svcErr: service.ErrNotOwned, wantStatus: http.StatusForbidden},
		{name: "missing question", target: questionsPath + "/11", body: `{"answer":"Bonjour"}`, svcErr: store.ErrQuestionNotFound, wantStatus: http.StatusNotFound},
		{name: "missing answer", target: questionsPath + "/11", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "bad id", target: questionsPath + "/eleven", body: `{"answer":"Bonjour"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", target: questionsPath + "/11", body: `{"answer":`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := &mocks.MockLearningService{
				SubmitAnswerFn: func(_ context.Context, userID, questionID int64, answer string) (*domain.Question, error) {
					if tc.svcErr != nil {
						return nil, tc.svcErr
					}
					q := openQuestion()
					require.NoError(t, q.Close(answer, answeredAt))
					return q, nil
				},
			}
			h := NewLearningHandler(svc, testLogger())

			w := serve(t, http.MethodPut, pattern, tc.target, tc.body, 1, h.SubmitAnswer)

			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.wantStatus != http.StatusOK {
				return
			}

			view := decodeBody[QuestionView](t, w)
			assert.Equal(t, int64(11), view.ID)
			require.NotNil(t, view.Answer)
			assert.Equal(t, "Bonjour", *view.Answer)
			require.NotNil(t, view.Correct)
			assert.True(t, *view.Correct)
			require.NotNil(t, view.AnsweredAt)
			assert.True(t, answeredAt.Equal(*view.AnsweredAt))
			assert.NotContains(t, w.Body.String(), "correctAnswer")
		})
	}
}

func TestQuestionToView_WrongAnswerShowsCorrectFalse(t *testing.T) {
	t.Parallel()

	q := openQuestion()
	require.NoError(t, q.Close("Merci", time.Now()))

	view := questionToView(q)

	require.NotNil(t, view.Correct)
	assert.False(t, *view.Correct)
}
