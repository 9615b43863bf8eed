package submit_application

import (
	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/integrations/submission"
)

// buildPayload собирает тело запроса из проверенного состояния формы
func buildPayload(state domain.FormState) *submission.Payload {
	return &submission.Payload{
		Name:         state.Name,
		Surname:      state.Surname,
		Email:        state.Email,
		Age:          state.Age,
		SelectedDate: state.Calendar.SelectedDateString(),
		SelectedTime: state.Calendar.SelectedTime.String(),
		File:         submission.EncodeFile(state.Photo.Name, state.Photo.ContentType, state.Photo.Data),
	}
}

// buildAttempt запись журнала по состоянию формы и результату отправки
func buildAttempt(sessionID string, state domain.FormState, sendErr error) *domain.Application {
	app := &domain.Application{
		SessionID:    sessionID,
		Name:         state.Name,
		Surname:      state.Surname,
		Email:        state.Email,
		Age:          state.Age,
		SelectedTime: state.Calendar.SelectedTime,
		PhotoName:    state.Photo.Name,
		PhotoSize:    state.Photo.Size(),
		Status:       domain.ApplicationSent,
	}
	if state.Calendar.SelectedDate != nil {
		app.SelectedDate = *state.Calendar.SelectedDate
	}
	if sendErr != nil {
		msg := sendErr.Error()
		app.Status = domain.ApplicationFailed
		app.Error = &msg
	}
	return app
}
