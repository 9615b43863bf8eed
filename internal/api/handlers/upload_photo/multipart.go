package upload_photo

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
)

const octetStream = "application/octet-stream"

var (
	errNoFile   = errors.New("multipart body contains no file")
	errTooLarge = errors.New("file exceeds size limit")
)

// readFirstFile читает первый файл из multipart тела, остальные части игнорируются
// Тип содержимого берется из заголовка части, а если его нет, определяется по байтам
func readFirstFile(r *http.Request, maxBytes int64) (domain.Photo, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return domain.Photo{}, err
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return domain.Photo{}, errNoFile
		}
		if err != nil {
			return domain.Photo{}, err
		}

		if part.FileName() == "" {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
		_ = part.Close()
		if err != nil {
			return domain.Photo{}, err
		}
		if int64(len(data)) > maxBytes {
			return domain.Photo{}, errTooLarge
		}

		return domain.Photo{
			Name:        part.FileName(),
			ContentType: contentType(part.Header.Get("Content-Type"), data),
			Data:        data,
		}, nil
	}
}

func contentType(header string, data []byte) string {
	if header != "" {
		if mediaType, _, err := mime.ParseMediaType(header); err == nil && mediaType != octetStream {
			return mediaType
		}
	}
	return http.DetectContentType(data)
}
