package select_date

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
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOutsideMonth       = "дата не входит в отображаемый месяц"
	msgNotBookable        = "на этот день записаться нельзя"
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

// Handle PUT /api/v1/sessions/{sessionId}/calendar/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/calendar/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectDate(r.Context(), sessionID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/calendar/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/calendar/date - Invalid date: session_id=%s, date=%q", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, calendar.ErrDateOutsideMonth):
			h.logger.Warn("PUT /sessions/{id}/calendar/date - Date outside month: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondConflict(w, msgOutsideMonth)

		case errors.Is(err, calendar.ErrDayNotBookable):
			h.logger.Warn("PUT /sessions/{id}/calendar/date - Day not bookable: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondConflict(w, msgNotBookable)

		default:
			h.logger.Error("PUT /sessions/{id}/calendar/date - Failed to select date: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/calendar/date - Date selected: session_id=%s, date=%s", sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, session)
}
