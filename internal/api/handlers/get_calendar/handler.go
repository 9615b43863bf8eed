package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
)

const msgInvalidMonth = "некорректный месяц, ожидается YYYY-MM"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?month=YYYY-MM
// Без параметра month возвращается текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	grid, err := h.service.Month(r.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: month=%s, error=%v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, grid)
}
