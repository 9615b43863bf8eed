package holidayapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/v1/holidays", apiKey, 5*time.Second, logger.NewNop())
}

func TestClient_GetHolidays(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/holidays", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "PL", r.URL.Query().Get("country"))
		assert.Equal(t, "2024", r.URL.Query().Get("year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"country":"Poland","iso":"PL","year":2024,"date":"2024-05-01","day":"Wednesday","name":"Labour Day","type":"NATIONAL_HOLIDAY"},
			{"country":"Poland","iso":"PL","year":2024,"date":"2024-05-02","day":"Thursday","name":"Flag Day","type":"observance"}
		]`))
	})

	result, err := client.GetHolidays(context.Background(), "PL", 2024)
	require.NoError(t, err)

	require.Len(t, result.Holidays, 2)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), result.Holidays[0].Date)
	assert.Equal(t, domain.HolidayNational, result.Holidays[0].Type)
	assert.Equal(t, "Labour Day", result.Holidays[0].Name)
	assert.Equal(t, domain.HolidayObservance, result.Holidays[1].Type)
}

func TestClient_GetHolidays_SkipsMalformedRecords(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"date":"2024-05-01","name":"Labour Day","type":"NATIONAL_HOLIDAY"},
			{"date":"01.05.2024","name":"Bad date","type":"NATIONAL_HOLIDAY"},
			{"date":"2024-05-03","name":"","type":"NATIONAL_HOLIDAY"},
			{"date": 20240503, "name":"Numeric date"},
			"not an object",
			{"date":"2024-05-19","name":"Pentecost"}
		]`))
	})

	result, err := client.GetHolidays(context.Background(), "PL", 2024)
	require.NoError(t, err)

	require.Len(t, result.Holidays, 2)
	assert.Equal(t, 4, result.Skipped)
	assert.Equal(t, "Pentecost", result.Holidays[1].Name)
	assert.Equal(t, domain.HolidayType(""), result.Holidays[1].Type)
}

func TestClient_GetHolidays_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "null", "[]"} {
		client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		result, err := client.GetHolidays(context.Background(), "PL", 2024)
		require.NoError(t, err, body)
		assert.Empty(t, result.Holidays, body)
	}
}

func TestClient_GetHolidays_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"Invalid API Key."}`, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, `oops`, ErrInvalidResponse},
		{"object instead of list", http.StatusOK, `{"error":"quota"}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetHolidays(context.Background(), "PL", 2024)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetHolidays_MissingKey(t *testing.T) {
	called := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.GetHolidays(context.Background(), "PL", 2024)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called)
}

func TestClient_GetHolidays_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/v1/holidays", "secret", time.Second, logger.NewNop())

	_, err := client.GetHolidays(context.Background(), "PL", 2024)
	assert.ErrorIs(t, err, ErrInternal)
}
