package calendar

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/pkg/dateutil"
)

// DayCell ячейка дня в сетке месяца
type DayCell struct {
	Date       time.Time
	Day        int
	Bookable   bool
	Selected   bool
	Observance string
}

// Grid сетка месяца
// Padding - количество пустых ячеек перед первым числом (неделя начинается с понедельника)
type Grid struct {
	Month    time.Time
	Title    string
	Weekdays []string
	Padding  int
	Days     []DayCell
}

// BuildGrid строит сетку месяца курсора с учетом правил доступности
func BuildGrid(s domain.CalendarState, rules *availability.Rules) Grid {
	first := dateutil.StartOfMonth(s.MonthCursor)
	days := dateutil.EachDayOfMonth(first)

	cells := make([]DayCell, len(days))
	for i, d := range days {
		cells[i] = DayCell{
			Date:       d,
			Day:        d.Day(),
			Bookable:   rules.IsBookable(d),
			Selected:   s.SelectedDate != nil && dateutil.IsSameDay(*s.SelectedDate, d),
			Observance: rules.ObservanceLabel(d),
		}
	}

	return Grid{
		Month:    first,
		Title:    dateutil.FormatMonthTitle(first),
		Weekdays: domain.WeekdayLabels,
		Padding:  dateutil.MondayIndex(first),
		Days:     cells,
	}
}
