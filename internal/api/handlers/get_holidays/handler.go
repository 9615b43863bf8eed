package get_holidays

import (
	"net/http"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
)

type Handler struct {
	source HolidaySource
	logger Logger
}

func NewHandler(source HolidaySource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/holidays
// Пока праздники не загружены, список пустой, а календарь работает в режиме fail-open
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.source.Status()
	if status.Attempted && !status.Loaded {
		h.logger.Warn("GET /holidays - Holidays not loaded: country=%s, year=%d, error=%v", status.Country, status.Year, status.LastError)
	}

	entries, _ := h.source.Entries()
	handlers.RespondJSON(w, http.StatusOK, FromSource(status, entries))
}
