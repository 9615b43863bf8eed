package commit_email

import (
	"context"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
)

type SessionService interface {
	CommitEmail(ctx context.Context, id string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
