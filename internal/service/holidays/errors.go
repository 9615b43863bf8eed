package holidays

import "errors"

var (
	// ErrAlreadyAttempted возвращается при повторной попытке загрузки: список грузится один раз
	ErrAlreadyAttempted = errors.New("holidays: load already attempted")

	// ErrFetchFailed возвращается, когда загрузка не удалась
	ErrFetchFailed = errors.New("holidays: fetch failed")
)
