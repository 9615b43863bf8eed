package calendar

import "errors"

var (
	// ErrInvalidDelta возвращается, когда навигация не на один месяц вперед или назад
	ErrInvalidDelta = errors.New("calendar: month delta must be -1 or 1")

	// ErrDateOutsideMonth возвращается при выборе дня не из отображаемого месяца
	ErrDateOutsideMonth = errors.New("calendar: date is outside the displayed month")

	// ErrDayNotBookable возвращается при выборе воскресенья или государственного праздника
	ErrDayNotBookable = errors.New("calendar: day is not bookable")

	// ErrNoDateSelected возвращается при выборе времени без выбранной даты
	ErrNoDateSelected = errors.New("calendar: no date selected")

	// ErrObservanceDay возвращается при выборе времени в памятную дату
	ErrObservanceDay = errors.New("calendar: time selection is hidden on observance days")

	// ErrUnknownTime возвращается, когда время не входит в список слотов
	ErrUnknownTime = errors.New("calendar: unknown workout time")
)
