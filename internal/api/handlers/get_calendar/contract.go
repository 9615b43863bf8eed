package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
)

type CalendarService interface {
	Month(ctx context.Context, month string) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
