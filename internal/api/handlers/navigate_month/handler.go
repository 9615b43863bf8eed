package navigate_month

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDelta       = "delta должна быть -1 или 1"
	msgNotFound           = "сессия формы не найдена"
)

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

// Handle POST /api/v1/sessions/{sessionId}/calendar/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/calendar/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Navigate(r.Context(), sessionID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/calendar/navigate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/calendar/navigate - Invalid delta: session_id=%s, delta=%d", sessionID, req.Delta)
			handlers.RespondBadRequest(w, msgInvalidDelta)

		default:
			h.logger.Error("POST /sessions/{id}/calendar/navigate - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
