package upload_photo

import (
	"context"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
)

type SessionService interface {
	AttachPhoto(ctx context.Context, id string, photo domain.Photo) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
