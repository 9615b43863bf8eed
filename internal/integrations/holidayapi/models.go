package holidayapi

import "github.com/m04kA/SMC-WorkoutForm/internal/domain"

// Holiday запись из ответа API (после разбора)
type Holiday = domain.HolidayEntry

// rawHoliday запись в том виде, в котором ее отдает API
// Все поля опциональны: форма записи не гарантируется
type rawHoliday struct {
	Country string `json:"country"`
	ISO     string `json:"iso"`
	Year    int    `json:"year"`
	Date    string `json:"date"`
	Day     string `json:"day"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// Result результат загрузки: валидные записи и количество отброшенных
type Result struct {
	Holidays []Holiday
	Skipped  int
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Error string `json:"error"`
}
