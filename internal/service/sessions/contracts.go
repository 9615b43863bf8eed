package sessions

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/availability"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
)

// SessionRepository интерфейс хранилища сессий формы
type SessionRepository interface {
	Create(s *form.Session) error
	Get(id string) (*form.Session, error)
	PurgeIdle(now time.Time, ttl time.Duration) []*form.Session
	Count() int
}

// RulesProvider интерфейс источника правил доступности
type RulesProvider interface {
	Rules() *availability.Rules
}

// Metrics интерфейс метрик сессий
type Metrics interface {
	SetSessionsActive(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
