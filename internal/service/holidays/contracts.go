package holidays

import (
	"context"

	"github.com/m04kA/SMC-WorkoutForm/internal/integrations/holidayapi"
)

// HolidayClient интерфейс клиента API праздников
type HolidayClient interface {
	GetHolidays(ctx context.Context, country string, year int) (*holidayapi.Result, error)
}

// Metrics интерфейс метрик загрузки праздников
type Metrics interface {
	IncHolidayFetch(result string)
	SetHolidaysLoaded(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
