package models

import (
	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/calendar"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
)

// Request модели

// UpdateFieldsRequest правка полей формы
// Текстовые поля фиксируются с задержкой, возраст сразу
type UpdateFieldsRequest struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Email   *string `json:"email,omitempty"`
	Age     *int    `json:"age,omitempty"`
}

// IsEmpty в запросе нет ни одного поля
func (r *UpdateFieldsRequest) IsEmpty() bool {
	return r.Name == nil && r.Surname == nil && r.Email == nil && r.Age == nil
}

// Response модели

// SessionResponse представление сессии формы
type SessionResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Surname        string            `json:"surname"`
	Email          string            `json:"email"`
	EmailValidity  string            `json:"emailValidity"`
	Age            int               `json:"age"`
	Drafts         map[string]string `json:"drafts,omitempty"` // значения, ожидающие фиксации
	Photo          *PhotoResponse    `json:"photo,omitempty"`
	Calendar       CalendarResponse  `json:"calendar"`
	SelectedDate   string            `json:"selectedDate,omitempty"`
	SelectedTime   string            `json:"selectedTime,omitempty"`
	Observance     string            `json:"observance,omitempty"`
	TimeSlots      []TimeSlot        `json:"timeSlots,omitempty"`
	CanSubmit      bool              `json:"canSubmit"`
	MissingFields  []string          `json:"missingFields"`
	HolidaysLoaded bool              `json:"holidaysLoaded"`
}

// PhotoResponse сведения о прикрепленной фотографии (без содержимого)
type PhotoResponse struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Size        int    `json:"size"`
}

// TimeSlot время тренировки
type TimeSlot struct {
	Time     string `json:"time"`
	Selected bool   `json:"selected"`
}

// CalendarResponse сетка месяца
type CalendarResponse struct {
	Month    string        `json:"month"` // YYYY-MM
	Title    string        `json:"title"`
	Weekdays []string      `json:"weekdays"`
	Padding  int           `json:"padding"`
	Days     []DayResponse `json:"days"`
}

// DayResponse день сетки
type DayResponse struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	Bookable   bool   `json:"bookable"`
	Selected   bool   `json:"selected"`
	Observance string `json:"observance,omitempty"`
}

// FromGrid конвертирует сетку календаря в ответ
func FromGrid(g calendar.Grid) CalendarResponse {
	days := make([]DayResponse, len(g.Days))
	for i, d := range g.Days {
		days[i] = DayResponse{
			Date:       d.Date.Format(domain.DateFormat),
			Day:        d.Day,
			Bookable:   d.Bookable,
			Selected:   d.Selected,
			Observance: d.Observance,
		}
	}

	return CalendarResponse{
		Month:    g.Month.Format(domain.MonthFormat),
		Title:    g.Title,
		Weekdays: g.Weekdays,
		Padding:  g.Padding,
		Days:     days,
	}
}

// FromSession собирает представление сессии по снимку состояния
func FromSession(id string, state domain.FormState, drafts map[string]string, rules *availability.Rules) *SessionResponse {
	resp := &SessionResponse{
		ID:             id,
		Name:           state.Name,
		Surname:        state.Surname,
		Email:          state.Email,
		EmailValidity:  string(state.EmailValidity),
		Age:            state.Age,
		Calendar:       FromGrid(calendar.BuildGrid(state.Calendar, rules)),
		SelectedDate:   state.Calendar.SelectedDateString(),
		Observance:     calendar.Observance(state.Calendar, rules),
		MissingFields:  form.MissingFields(state, rules),
		HolidaysLoaded: rules.Loaded(),
	}
	resp.CanSubmit = len(resp.MissingFields) == 0

	if len(drafts) > 0 {
		resp.Drafts = drafts
	}

	if state.Photo != nil {
		resp.Photo = &PhotoResponse{
			Name:        state.Photo.Name,
			ContentType: state.Photo.ContentType,
			Size:        state.Photo.Size(),
		}
	}

	if calendar.TimeSlotsVisible(state.Calendar, rules) {
		resp.SelectedTime = state.Calendar.SelectedTime.String()
		resp.TimeSlots = make([]TimeSlot, len(domain.WorkoutTimes))
		for i, t := range domain.WorkoutTimes {
			resp.TimeSlots[i] = TimeSlot{
				Time:     t.String(),
				Selected: t == state.Calendar.SelectedTime,
			}
		}
	}

	return resp
}
