package submit_application

import (
	submitApplication "github.com/m04kA/SMC-WorkoutForm/internal/usecase/submit_application"
)

// SubmitResponse HTTP response model
type SubmitResponse struct {
	SessionID     string `json:"sessionId"`
	Status        string `json:"status"`
	ApplicationID *int64 `json:"applicationId,omitempty"`
}

// IncompleteResponse ответ на попытку отправить незаполненную форму
type IncompleteResponse struct {
	Code          int      `json:"code"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitApplication.Response) *SubmitResponse {
	return &SubmitResponse{
		SessionID:     resp.SessionID,
		Status:        resp.Status,
		ApplicationID: resp.ApplicationID,
	}
}
