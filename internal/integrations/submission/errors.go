package submission

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, транспорт)
	ErrInternal = errors.New("submission client: internal error")

	// ErrRejected возвращается, когда endpoint ответил не-2xx статусом
	ErrRejected = errors.New("submission client: application rejected")
)
