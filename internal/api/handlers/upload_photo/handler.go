package upload_photo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutForm/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
)

const (
	msgInvalidMultipart = "ожидается multipart/form-data с файлом"
	msgNoFile           = "файл не передан"
	msgEmptyFile        = "файл пустой"
	msgTooLarge         = "файл слишком большой"
	msgNotFound         = "сессия формы не найдена"
)

// multipartOverhead запас на заголовки частей сверх размера файла
const multipartOverhead = 64 << 10

type Handler struct {
	service  SessionService
	maxBytes int64
	logger   Logger
}

func NewHandler(service SessionService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/photo
// Используется только первый файл запроса (выбор файла или drag-and-drop)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	photo, err := readFirstFile(r, h.maxBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, errTooLarge), errors.As(err, &maxBytesErr):
			h.logger.Warn("PUT /sessions/{id}/photo - File too large: session_id=%s, limit=%d", sessionID, h.maxBytes)
			handlers.RespondRequestTooLarge(w, msgTooLarge)

		case errors.Is(err, errNoFile):
			h.logger.Warn("PUT /sessions/{id}/photo - No file in request: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoFile)

		default:
			h.logger.Warn("PUT /sessions/{id}/photo - Invalid multipart body: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidMultipart)
		}
		return
	}

	session, err := h.service.AttachPhoto(r.Context(), sessionID, photo)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/photo - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/photo - Empty file: session_id=%s, name=%s", sessionID, photo.Name)
			handlers.RespondBadRequest(w, msgEmptyFile)

		default:
			h.logger.Error("PUT /sessions/{id}/photo - Failed to attach photo: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/photo - Photo attached: session_id=%s, name=%s, size=%d, type=%s",
		sessionID, photo.Name, photo.Size(), photo.ContentType)
	handlers.RespondJSON(w, http.StatusOK, session)
}
