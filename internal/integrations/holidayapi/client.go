package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
)

const apiKeyHeader = "X-Api-Key"

// maxBodyBytes ограничение на размер ответа API
const maxBodyBytes = 1 << 20

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент API праздников (api-ninjas)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHolidays получает праздники страны за год
// Некорректные записи пропускаются и учитываются в Result.Skipped
func (c *Client) GetHolidays(ctx context.Context, country string, year int) (*Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	query := url.Values{}
	query.Set("country", country)
	query.Set("year", strconv.Itoa(year))
	reqURL := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, describeError(body))
	}

	result, err := parseHolidays(body)
	if err != nil {
		return nil, err
	}

	if result.Skipped > 0 {
		c.log.Warn("Holiday API returned %d malformed records for country=%s year=%d, skipped",
			result.Skipped, country, year)
	}

	c.log.Info("Fetched %d holidays for country=%s year=%d", len(result.Holidays), country, year)
	return result, nil
}

// parseHolidays разбирает ответ поштучно: одна битая запись не ломает весь список
// Пустой ответ (null или []) - валидный пустой список
func parseHolidays(body []byte) (*Result, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return &Result{Holidays: []Holiday{}}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: expected a list of records: %v", ErrInvalidResponse, err)
	}

	result := &Result{Holidays: make([]Holiday, 0, len(records))}
	for _, record := range records {
		holiday, ok := parseRecord(record)
		if !ok {
			result.Skipped++
			continue
		}
		result.Holidays = append(result.Holidays, holiday)
	}

	return result, nil
}

func parseRecord(record json.RawMessage) (Holiday, bool) {
	var raw rawHoliday
	if err := json.Unmarshal(record, &raw); err != nil {
		return Holiday{}, false
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(raw.Date))
	if err != nil {
		return Holiday{}, false
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Holiday{}, false
	}

	return Holiday{
		Date: date,
		Type: domain.ParseHolidayType(raw.Type),
		Name: name,
	}, true
}

func describeError(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	if len(body) > 200 {
		return string(body[:200])
	}
	return string(body)
}
