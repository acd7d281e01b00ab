package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashcards-api/internal/api/shared"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/service"
)

// CardHandler handles card requests.
type CardHandler struct {
	cards  service.CardService
	logger *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cards service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cards:  cards,
		logger: logger.With(slog.String("component", "card_handler")),
	}
}

// AddCard handles POST /api/sets/{setId}/cards.
func (h *CardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, setID, ok := handleUserIDAndPathID(w, r, "setId", log)
	if !ok {
		return
	}

	var req CardRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	card, err := h.cards.AddCard(r.Context(), userID, setID, req.Front, req.Back)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// ListCards handles GET /api/sets/{setId}/cards?page=&size=.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, setID, ok := handleUserIDAndPathID(w, r, "setId", log)
	if !ok {
		return
	}

	page, err := getQueryInt(r, "page", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	size, err := getQueryInt(r, "size", service.DefaultPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.cards.ListCards(r.Context(), userID, setID, page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardPageToResponse(result))
}

// GetCard handles GET /api/cards/{cardId}.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := handleUserIDAndPathID(w, r, "cardId", log)
	if !ok {
		return
	}

	card, err := h.cards.GetCard(r.Context(), userID, cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// UpdateCard handles PUT /api/cards/{cardId}.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := handleUserIDAndPathID(w, r, "cardId", log)
	if !ok {
		return
	}

	var req CardRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	card, err := h.cards.UpdateCard(r.Context(), userID, cardID, req.Front, req.Back)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /api/cards/{cardId}.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := handleUserIDAndPathID(w, r, "cardId", log)
	if !ok {
		return
	}

	if err := h.cards.DeleteCard(r.Context(), userID, cardID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
