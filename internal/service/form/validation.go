package form

import (
	"regexp"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/calendar"
)

// emailRegex адрес вида local@domain.tld без пробелов
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail проверяет формат email
// Вызывается только при фиксации значения, поэтому результат всегда valid или invalid
func ValidateEmail(email string) domain.EmailValidity {
	if emailRegex.MatchString(email) {
		return domain.EmailValid
	}
	return domain.EmailInvalid
}

// MissingFields возвращает поля, которые мешают отправке
// Email считается незаполненным, пока его проверка не дала ровно valid
// Время не засчитывается, если для выбранной даты выбор времени скрыт (памятная дата)
func MissingFields(s domain.FormState, rules *availability.Rules) []string {
	missing := make([]string, 0)

	if s.Name == "" {
		missing = append(missing, domain.FieldName)
	}
	if s.Surname == "" {
		missing = append(missing, domain.FieldSurname)
	}
	if s.EmailValidity != domain.EmailValid {
		missing = append(missing, domain.FieldEmail)
	}
	if s.Photo == nil || s.Photo.Name == "" {
		missing = append(missing, domain.FieldPhoto)
	}
	if s.Calendar.SelectedDate == nil {
		missing = append(missing, domain.FieldSelectedDate)
	}
	if s.Calendar.SelectedTime.IsZero() || !calendar.TimeSlotsVisible(s.Calendar, rules) {
		missing = append(missing, domain.FieldSelectedTime)
	}

	return missing
}

// CheckRequired возвращает *MissingFieldsError, если форма не готова к отправке
func CheckRequired(s domain.FormState, rules *availability.Rules) error {
	if missing := MissingFields(s, rules); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// CanSubmit форма готова к отправке
func CanSubmit(s domain.FormState, rules *availability.Rules) bool {
	return len(MissingFields(s, rules)) == 0
}
