package commit_email

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

// Handle POST /api/v1/sessions/{sessionId}/email/commit
// Вызывается при потере фокуса полем email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.CommitEmail(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/email/commit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/email/commit - Failed to commit email: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/email/commit - Email committed: session_id=%s, validity=%s",
		sessionID, session.EmailValidity)
	handlers.RespondJSON(w, http.StatusOK, session)
}
