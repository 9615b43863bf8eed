package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена, истекла или уже отправлена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTransitionRejected возвращается, когда календарь отклонил переход (состояние не меняется)
	ErrTransitionRejected = errors.New("transition rejected")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
