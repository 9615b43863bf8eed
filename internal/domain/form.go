package domain

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/pkg/types"
)

// EmailValidity состояние проверки email
type EmailValidity string

const (
	EmailUnset   EmailValidity = "unset"
	EmailValid   EmailValidity = "valid"
	EmailInvalid EmailValidity = "invalid"
)

// Имена полей формы (используются в сообщениях о незаполненных полях)
const (
	FieldName         = "name"
	FieldSurname      = "surname"
	FieldEmail        = "email"
	FieldAge          = "age"
	FieldPhoto        = "photo"
	FieldSelectedDate = "selectedDate"
	FieldSelectedTime = "selectedTime"
)

// Photo загруженная фотография
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size размер фотографии в байтах
func (p *Photo) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}

// CalendarState состояние виджета календаря
// Инвариант: SelectedDate, если задана, лежит в месяце MonthCursor
type CalendarState struct {
	MonthCursor  time.Time // первое число отображаемого месяца, UTC
	SelectedDate *time.Time
	SelectedTime types.TimeString
}

// NewCalendarState курсор на текущем месяце, ничего не выбрано
func NewCalendarState(now time.Time) CalendarState {
	return CalendarState{
		MonthCursor: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

// SelectedDateString возвращает выбранную дату в формате YYYY-MM-DD или пустую строку
func (s CalendarState) SelectedDateString() string {
	if s.SelectedDate == nil {
		return ""
	}
	return s.SelectedDate.Format(DateFormat)
}

// FormState снимок состояния формы
type FormState struct {
	Name          string
	Surname       string
	Email         string
	EmailValidity EmailValidity
	Age           int
	Photo         *Photo
	Calendar      CalendarState
}

// NewFormState возвращает состояние формы по умолчанию
func NewFormState(now time.Time) FormState {
	return FormState{
		EmailValidity: EmailUnset,
		Age:           DefaultAge,
		Calendar:      NewCalendarState(now),
	}
}
