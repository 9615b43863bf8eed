package availability

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/pkg/dateutil"
)

// Rules правила доступности дней для бронирования
// Нулевое значение и Rules без загруженных праздников работают в режиме fail-open:
// бронируемы все дни, кроме воскресений
type Rules struct {
	holidays []domain.HolidayEntry
	loaded   bool
}

// New создает правила по списку праздников
// loaded = false означает, что список еще не получен (или загрузка упала)
func New(holidays []domain.HolidayEntry, loaded bool) *Rules {
	return &Rules{
		holidays: holidays,
		loaded:   loaded,
	}
}

// FailOpen правила без данных о праздниках
func FailOpen() *Rules {
	return &Rules{}
}

// Loaded возвращает true, если список праздников получен
func (r *Rules) Loaded() bool {
	return r != nil && r.loaded
}

// IsBookable проверяет, можно ли выбрать день для тренировки
//
// День недоступен, если это воскресенье или если среди праздников того же месяца
// есть NATIONAL_HOLIDAY с тем же числом. Год при этом не сравнивается:
// праздник 2024-05-01 закрывает и 1 мая любого другого года.
// TODO: сравнивать полную дату, когда API начнет запрашиваться на год отображаемого месяца
func (r *Rules) IsBookable(date time.Time) bool {
	if dateutil.IsSunday(date) {
		return false
	}

	if !r.Loaded() {
		return true
	}

	for _, h := range r.inMonth(date.Month()) {
		if h.IsNational() && h.Date.Day() == date.Day() {
			return false
		}
	}
	return true
}

// ObservanceLabel возвращает название памятной даты, совпадающей с датой полностью
// Памятная дата не блокирует бронирование, но скрывает выбор времени
func (r *Rules) ObservanceLabel(date time.Time) string {
	if !r.Loaded() {
		return ""
	}

	for _, h := range r.inMonth(date.Month()) {
		if h.IsObservance() && dateutil.IsSameDay(h.Date, date) {
			return h.Name
		}
	}
	return ""
}

// inMonth праздники, попадающие в месяц (по номеру месяца, без учета года)
func (r *Rules) inMonth(month time.Month) []domain.HolidayEntry {
	result := make([]domain.HolidayEntry, 0)
	for _, h := range r.holidays {
		if h.Date.Month() == month {
			result = append(result, h)
		}
	}
	return result
}
