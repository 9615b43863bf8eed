package submission

// Payload тело запроса отправки заявки
type Payload struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	SelectedDate string `json:"selectedDate"` // "2024-05-03"
	SelectedTime string `json:"selectedTime"` // "12:00"
	File         File   `json:"file"`
}

// File фотография внутри JSON: байты передаются в base64 (std encoding)
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Data        string `json:"data"`
}
