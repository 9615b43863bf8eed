package dateutil

import "time"

// StartOfDay возвращает начало дня (00:00:00) для даты
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfMonth возвращает первый день месяца, к которому относится дата
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth возвращает последний день месяца (начало дня)
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// DaysInMonth возвращает количество дней в месяце даты
func DaysInMonth(date time.Time) int {
	return EndOfMonth(date).Day()
}

// EachDayOfMonth перечисляет все дни месяца по порядку
func EachDayOfMonth(date time.Time) []time.Time {
	first := StartOfMonth(date)
	n := DaysInMonth(date)

	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// MondayIndex возвращает индекс дня недели, где понедельник = 0, воскресенье = 6
func MondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// AddMonths сдвигает курсор месяца на delta месяцев
// Всегда возвращает первое число месяца, чтобы избежать переполнения (31 января + 1 месяц)
func AddMonths(date time.Time, delta int) time.Time {
	return StartOfMonth(date).AddDate(0, delta, 0)
}

// IsSunday возвращает true, если дата - воскресенье
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// IsSameDay проверяет, что две даты относятся к одному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsSameMonth проверяет, что две даты относятся к одному месяцу одного года
func IsSameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// FormatMonthTitle форматирует заголовок месяца: "May 2024"
func FormatMonthTitle(date time.Time) string {
	return date.Format("January 2006")
}
