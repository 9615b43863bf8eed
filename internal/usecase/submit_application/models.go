package submit_application

// Request модель запроса на отправку формы
type Request struct {
	SessionID string // ID сессии формы
}

// Response модель ответа после успешной отправки
type Response struct {
	SessionID     string // ID отправленной (и уже удаленной) сессии
	Status        string // "sent"
	ApplicationID *int64 // ID записи в журнале попыток, если журнал включен
}
