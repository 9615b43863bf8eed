package form

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/calendar"
	"github.com/m04kA/SMC-WorkoutForm/pkg/types"
)

// Action изменение состояния формы
// Состояние меняется только через Session.Dispatch, каждое действие - чистая функция
type Action interface {
	reduce(s domain.FormState, rules *availability.Rules) (domain.FormState, error)
}

// SetName фиксирует имя
type SetName struct{ Value string }

func (a SetName) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	s.Name = a.Value
	return s, nil
}

// SetSurname фиксирует фамилию
type SetSurname struct{ Value string }

func (a SetSurname) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	s.Surname = a.Value
	return s, nil
}

// SetEmail фиксирует email и сразу вычисляет его валидность
type SetEmail struct{ Value string }

func (a SetEmail) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	s.Email = a.Value
	s.EmailValidity = ValidateEmail(a.Value)
	return s, nil
}

// SetAge выставляет возраст, приводя его к допустимому диапазону
type SetAge struct{ Value int }

func (a SetAge) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	s.Age = domain.ClampAge(a.Value)
	return s, nil
}

// AttachPhoto прикрепляет фотографию (заменяя предыдущую)
type AttachPhoto struct{ Photo domain.Photo }

func (a AttachPhoto) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	if a.Photo.Name == "" || len(a.Photo.Data) == 0 {
		return s, ErrEmptyPhoto
	}
	photo := a.Photo
	s.Photo = &photo
	return s, nil
}

// ClearPhoto удаляет фотографию
type ClearPhoto struct{}

func (ClearPhoto) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	s.Photo = nil
	return s, nil
}

// NavigateMonth листает календарь
type NavigateMonth struct{ Delta int }

func (a NavigateMonth) reduce(s domain.FormState, _ *availability.Rules) (domain.FormState, error) {
	cal, err := calendar.Navigate(s.Calendar, a.Delta)
	if err != nil {
		return s, err
	}
	s.Calendar = cal
	return s, nil
}

// SelectDate выбирает день
type SelectDate struct{ Date time.Time }

func (a SelectDate) reduce(s domain.FormState, rules *availability.Rules) (domain.FormState, error) {
	cal, err := calendar.SelectDay(s.Calendar, a.Date, rules)
	if err != nil {
		return s, err
	}
	s.Calendar = cal
	return s, nil
}

// SelectTime выбирает время тренировки
type SelectTime struct{ Time types.TimeString }

func (a SelectTime) reduce(s domain.FormState, rules *availability.Rules) (domain.FormState, error) {
	cal, err := calendar.SelectTime(s.Calendar, a.Time, rules)
	if err != nil {
		return s, err
	}
	s.Calendar = cal
	return s, nil
}
