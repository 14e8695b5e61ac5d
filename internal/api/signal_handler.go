package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jwhitfield/ember-api/internal/api/shared"
	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/store"
)

// SignalHandler handles passive behavior-signal API requests.
type SignalHandler struct {
	signalStore store.SignalStore
	validator   *validator.Validate
}

// NewSignalHandler creates a new SignalHandler with the given dependencies.
func NewSignalHandler(signalStore store.SignalStore) *SignalHandler {
	return &SignalHandler{
		signalStore: signalStore,
		validator:   validator.New(),
	}
}

// TrackSignal handles POST /signals/track, recording one behavior signal
// event for the authenticated user.
func (h *SignalHandler) TrackSignal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req TrackSignalRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	event, err := domain.NewSignalEvent(userID, domain.SignalType(req.Type), req.Value)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.signalStore.Create(r.Context(), event); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TrackSignalResponse{
		ID:         event.ID,
		Type:       string(event.Type),
		RecordedAt: event.RecordedAt.Format(time.RFC3339),
	})
}
