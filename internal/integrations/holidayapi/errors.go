package holidayapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidayapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("holidayapi client: invalid response")

	// ErrUnauthorized возвращается, когда API ключ не принят
	ErrUnauthorized = errors.New("holidayapi client: unauthorized")

	// ErrMissingAPIKey возвращается, когда ключ не настроен
	ErrMissingAPIKey = errors.New("holidayapi client: api key is not configured")
)
