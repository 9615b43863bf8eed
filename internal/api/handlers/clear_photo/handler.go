package clear_photo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
)

const msgNotFound = "сессия формы не найдена"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/photo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.ClearPhoto(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/photo - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id}/photo - Failed to clear photo: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
