package submit_application

import (
	"context"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/integrations/submission"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
)

// SessionRepository интерфейс хранилища сессий формы
type SessionRepository interface {
	Get(id string) (*form.Session, error)
	Delete(id string) (*form.Session, error)
	Count() int
}

// SubmissionClient интерфейс клиента отправки заявок
type SubmissionClient interface {
	Send(ctx context.Context, payload *submission.Payload) error
}

// AttemptRecorder интерфейс журнала попыток отправки (опционально, может быть nil)
type AttemptRecorder interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

// Metrics интерфейс метрик отправки
type Metrics interface {
	IncSubmission(result string)
	SetSessionsActive(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
