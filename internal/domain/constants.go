package domain

import "github.com/m04kA/SMC-WorkoutForm/pkg/types"

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Ограничения полей формы
const (
	MinAge     = 8
	MaxAge     = 100
	DefaultAge = MinAge
)

// WeekdayLabels заголовки колонок сетки календаря, неделя начинается с понедельника
var WeekdayLabels = []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// WorkoutTimes фиксированный список слотов тренировки
var WorkoutTimes = []types.TimeString{"12:00", "14:00", "16:30", "18:30", "20:00"}

// IsWorkoutTime проверяет, что время входит в список слотов
func IsWorkoutTime(t types.TimeString) bool {
	for _, w := range WorkoutTimes {
		if w == t {
			return true
		}
	}
	return false
}

// ClampAge приводит возраст к диапазону [MinAge, MaxAge]
func ClampAge(age int) int {
	if age < MinAge {
		return MinAge
	}
	if age > MaxAge {
		return MaxAge
	}
	return age
}
