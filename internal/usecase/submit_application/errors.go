package submit_application

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже отправляется
	ErrSessionNotFound = errors.New("submit_application: session not found")

	// ErrIncomplete возвращается, когда форма не готова к отправке (сетевого запроса не было)
	ErrIncomplete = errors.New("submit_application: form is incomplete")

	// ErrSubmissionFailed возвращается, когда endpoint не принял заявку (сессия уже удалена)
	ErrSubmissionFailed = errors.New("submit_application: submission failed")
)
