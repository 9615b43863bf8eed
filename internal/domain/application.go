package domain

import (
	"time"

	"github.com/m04kA/SMC-WorkoutForm/pkg/types"
)

// ApplicationStatus результат попытки отправки заявки
type ApplicationStatus string

const (
	ApplicationSent   ApplicationStatus = "sent"
	ApplicationFailed ApplicationStatus = "failed"
)

// Application запись журнала отправок
// Байты фотографии не сохраняются, только имя и размер
type Application struct {
	ID           int64
	SessionID    string
	Name         string
	Surname      string
	Email        string
	Age          int
	SelectedDate time.Time
	SelectedTime types.TimeString
	PhotoName    string
	PhotoSize    int
	Status       ApplicationStatus
	Error        *string
	CreatedAt    time.Time
}
