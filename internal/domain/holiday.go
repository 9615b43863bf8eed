package domain

import (
	"strings"
	"time"
)

// HolidayType тип записи календаря праздников
type HolidayType string

const (
	HolidayNational   HolidayType = "NATIONAL_HOLIDAY"
	HolidayObservance HolidayType = "OBSERVANCE"
)

// ParseHolidayType нормализует тип из внешнего API
// API отдает как "NATIONAL_HOLIDAY", так и "national_holiday" или "National holiday"
func ParseHolidayType(raw string) HolidayType {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	return HolidayType(normalized)
}

// HolidayEntry запись календаря праздников
// Неизменяема после загрузки
type HolidayEntry struct {
	Date time.Time // только дата, UTC
	Type HolidayType
	Name string
}

// IsNational праздник блокирует бронирование
func (h HolidayEntry) IsNational() bool {
	return h.Type == HolidayNational
}

// IsObservance памятная дата: бронирование разрешено, но выбор времени скрыт
func (h HolidayEntry) IsObservance() bool {
	return h.Type == HolidayObservance
}

// DateString возвращает дату в формате YYYY-MM-DD
func (h HolidayEntry) DateString() string {
	return h.Date.Format(DateFormat)
}
