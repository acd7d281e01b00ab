package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashcards-api/internal/api/shared"
	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/service/learning"
)

// LearningHandler serves study questions.
type LearningHandler struct {
	learning learning.Service
	logger   *slog.Logger
}

// NewLearningHandler creates a new LearningHandler.
func NewLearningHandler(svc learning.Service, logger *slog.Logger) *LearningHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LearningHandler")
	}
	return &LearningHandler{
		learning: svc,
		logger:   logger.With(slog.String("component", "learning_handler")),
	}
}

// CreateQuestion handles POST /api/learning/questions?setId=.
// The body is optional; cardSide defaults to BACK.
func (h *LearningHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	setID, err := getQueryID(r, "setId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateQuestionRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	side, err := domain.ParseCardSide(req.CardSide)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	question, err := h.learning.CreateQuestion(r.Context(), userID, setID, side)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create question")
		return
	}

	log.Debug("question served", slog.Int64("question_id", question.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, questionToView(question))
}

// SubmitAnswer handles PUT /api/learning/questions/{questionId}.
func (h *LearningHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, questionID, ok := handleUserIDAndPathID(w, r, "questionId", log)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	question, err := h.learning.SubmitAnswer(r.Context(), userID, questionID, req.Answer)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questionToView(question))
}
