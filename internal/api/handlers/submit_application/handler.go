package submit_application

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
	submitApplication "github.com/m04kA/SMC-WorkoutForm/internal/usecase/submit_application"
)

const (
	msgIncomplete       = "пожалуйста, заполните все обязательные поля"
	msgSubmissionFailed = "не удалось отправить заявку, заполните форму заново"
	msgNotFound         = "сессия формы не найдена"
)

type Handler struct {
	useCase SubmitApplicationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &submitApplication.Request{SessionID: sessionID})
	if err != nil {
		var missing *form.MissingFieldsError
		switch {
		case errors.Is(err, submitApplication.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &missing):
			h.logger.Warn("POST /sessions/{id}/submit - Form incomplete: session_id=%s, missing=%v", sessionID, missing.Fields)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, IncompleteResponse{
				Code:          http.StatusUnprocessableEntity,
				Message:       msgIncomplete,
				MissingFields: missing.Fields,
			})

		case errors.Is(err, submitApplication.ErrSubmissionFailed):
			h.logger.Error("POST /sessions/{id}/submit - Submission failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgSubmissionFailed)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Application sent: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
