package submit_application

import (
	"context"

	submitApplication "github.com/m04kA/SMC-WorkoutForm/internal/usecase/submit_application"
)

type SubmitApplicationUseCase interface {
	Execute(ctx context.Context, req *submitApplication.Request) (*submitApplication.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
