package submission

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент удаленного endpoint, принимающего заявки
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// EncodeFile кодирует байты фотографии для передачи в JSON
func EncodeFile(name, contentType string, data []byte) File {
	return File{
		Name:        name,
		ContentType: contentType,
		Size:        len(data),
		Data:        base64.StdEncoding.EncodeToString(data),
	}
}

// Send отправляет заявку одним POST запросом, без повторов
func (c *Client) Send(ctx context.Context, payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrRejected, resp.StatusCode, string(respBody))
	}

	// Тело ответа не используется, но вычитываем его, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Info("Application sent: email=%s, date=%s, time=%s, status=%d",
		payload.Email, payload.SelectedDate, payload.SelectedTime, resp.StatusCode)
	return nil
}
