package form

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownField возвращается при редактировании неизвестного текстового поля
	ErrUnknownField = errors.New("form: unknown text field")

	// ErrEmptyPhoto возвращается при попытке прикрепить пустой файл
	ErrEmptyPhoto = errors.New("form: photo is empty")

	// ErrMissingFields возвращается, когда форма не готова к отправке
	ErrMissingFields = errors.New("form: required fields are missing")

	// ErrClosed возвращается при работе с закрытой сессией
	ErrClosed = errors.New("form: session is closed")
)

// MissingFieldsError список незаполненных (или некорректных) полей
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}
