package calendar

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/pkg/dateutil"
	"github.com/m04kA/SMC-WorkoutForm/pkg/types"
)

// Переходы состояния календаря - чистые функции: на ошибке возвращается исходное состояние

// Navigate сдвигает курсор месяца на delta (-1 или 1) и сбрасывает выбранную дату
// Выбранное время сохраняется, но не имеет смысла, пока не выбрана новая дата
func Navigate(s domain.CalendarState, delta int) (domain.CalendarState, error) {
	if delta != -1 && delta != 1 {
		return s, ErrInvalidDelta
	}

	s.MonthCursor = dateutil.AddMonths(s.MonthCursor, delta)
	s.SelectedDate = nil
	return s, nil
}

// SelectDay выбирает день отображаемого месяца, если он доступен для бронирования
// Выбранное время не меняется
func SelectDay(s domain.CalendarState, date time.Time, rules *availability.Rules) (domain.CalendarState, error) {
	date = dateutil.StartOfDay(date)

	if !dateutil.IsSameMonth(date, s.MonthCursor) {
		return s, ErrDateOutsideMonth
	}

	if !rules.IsBookable(date) {
		return s, ErrDayNotBookable
	}

	s.SelectedDate = &date
	return s, nil
}

// SelectTime выбирает время тренировки
// Разрешено только при выбранной дате, которая не является памятной датой
// Повторный выбор того же времени ничего не меняет
func SelectTime(s domain.CalendarState, t types.TimeString, rules *availability.Rules) (domain.CalendarState, error) {
	if !domain.IsWorkoutTime(t) {
		return s, ErrUnknownTime
	}

	if s.SelectedDate == nil {
		return s, ErrNoDateSelected
	}

	if rules.ObservanceLabel(*s.SelectedDate) != "" {
		return s, ErrObservanceDay
	}

	if s.SelectedTime == t {
		return s, nil
	}

	s.SelectedTime = t
	return s, nil
}

// Observance название памятной даты для выбранного дня (или пустая строка)
func Observance(s domain.CalendarState, rules *availability.Rules) string {
	if s.SelectedDate == nil {
		return ""
	}
	return rules.ObservanceLabel(*s.SelectedDate)
}

// TimeSlotsVisible выбор времени показывается, только если выбрана дата и она не памятная
func TimeSlotsVisible(s domain.CalendarState, rules *availability.Rules) bool {
	return s.SelectedDate != nil && Observance(s, rules) == ""
}
