package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/calendar"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "время должно быть одним из слотов тренировки (HH:MM)"
	msgNoDateSelected     = "сначала выберите дату"
	msgObservanceDay      = "в памятную дату выбор времени недоступен"
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

// Handle PUT /api/v1/sessions/{sessionId}/calendar/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/calendar/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectTime(r.Context(), sessionID, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/calendar/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/calendar/time - Invalid time: session_id=%s, time=%q", sessionID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, calendar.ErrNoDateSelected):
			h.logger.Warn("PUT /sessions/{id}/calendar/time - No date selected: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoDateSelected)

		case errors.Is(err, calendar.ErrObservanceDay):
			h.logger.Warn("PUT /sessions/{id}/calendar/time - Observance day: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgObservanceDay)

		default:
			h.logger.Error("PUT /sessions/{id}/calendar/time - Failed to select time: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/calendar/time - Time selected: session_id=%s, time=%s", sessionID, req.Time)
	handlers.RespondJSON(w, http.StatusOK, session)
}
