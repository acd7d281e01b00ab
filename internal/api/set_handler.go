package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashcards-api/internal/api/shared"
	"github.com/phrazzld/flashcards-api/internal/domain"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/service"
)

// SetHandler handles card set requests.
type SetHandler struct {
	sets   service.CardSetService
	logger *slog.Logger
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(sets service.CardSetService, logger *slog.Logger) *SetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SetHandler{
		sets:   sets,
		logger: logger.With(slog.String("component", "set_handler")),
	}
}

// CreateSet handles POST /api/sets.
func (h *SetHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateSetRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	setType, err := domain.ParseSetType(req.Type)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cards := make([]service.CardText, 0, len(req.Cards))
	for _, c := range req.Cards {
		cards = append(cards, service.CardText{Front: c.Front, Back: c.Back})
	}

	set, err := h.sets.CreateSet(r.Context(), userID, req.Name, req.Description, setType, cards)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create card set")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, setToResponse(set))
}

// GetSet handles GET /api/sets/{setId}.
func (h *SetHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, setID, ok := handleUserIDAndPathID(w, r, "setId", log)
	if !ok {
		return
	}

	set, err := h.sets.GetSet(r.Context(), userID, setID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve card set")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setToResponse(set))
}

// UpdateSet handles PUT /api/sets/{setId}.
func (h *SetHandler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, setID, ok := handleUserIDAndPathID(w, r, "setId", log)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	setType, err := domain.ParseSetType(req.Type)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	set, err := h.sets.UpdateSet(r.Context(), userID, setID, req.Name, req.Description, setType)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update card set")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setToResponse(set))
}

// DeleteSet handles DELETE /api/sets/{setId}.
func (h *SetHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, setID, ok := handleUserIDAndPathID(w, r, "setId", log)
	if !ok {
		return
	}

	if err := h.sets.DeleteSet(r.Context(), userID, setID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete card set")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSets handles GET /api/sets?authorId=. Without authorId the caller's
// own sets are listed.
func (h *SetHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	authorID := userID
	if r.URL.Query().Has("authorId") {
		id, err := getQueryID(r, "authorId")
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		authorID = id
	}

	sets, err := h.sets.ListSets(r.Context(), userID, authorID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list card sets")
		return
	}

	resp := make([]SetResponse, 0, len(sets))
	for _, s := range sets {
		resp = append(resp, setToResponse(s))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
