package get_holidays

import (
	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/holidays"
)

type HolidaySource interface {
	Entries() ([]domain.HolidayEntry, bool)
	Status() holidays.Status
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
