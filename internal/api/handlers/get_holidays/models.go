package get_holidays

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/holidays"
)

// HolidaysResponse HTTP response model
type HolidaysResponse struct {
	Country   string            `json:"country"`
	Year      int               `json:"year,omitempty"`
	Attempted bool              `json:"attempted"`
	Loaded    bool              `json:"loaded"`
	Count     int               `json:"count"`
	LoadedAt  string            `json:"loadedAt,omitempty"`
	Error     string            `json:"error,omitempty"`
	Holidays  []HolidayResponse `json:"holidays"`
}

// HolidayResponse праздник
type HolidayResponse struct {
	Date string `json:"date"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// FromSource собирает ответ по состоянию источника праздников
func FromSource(status holidays.Status, entries []domain.HolidayEntry) *HolidaysResponse {
	resp := &HolidaysResponse{
		Country:   status.Country,
		Year:      status.Year,
		Attempted: status.Attempted,
		Loaded:    status.Loaded,
		Count:     status.Count,
		Holidays:  make([]HolidayResponse, len(entries)),
	}

	if !status.LoadedAt.IsZero() {
		resp.LoadedAt = status.LoadedAt.Format(time.RFC3339)
	}
	if status.LastError != nil {
		resp.Error = status.LastError.Error()
	}

	for i, h := range entries {
		resp.Holidays[i] = HolidayResponse{
			Date: h.DateString(),
			Type: string(h.Type),
			Name: h.Name,
		}
	}
	return resp
}
