package get_calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

type fakeService struct {
	month string
}

func (f *fakeService) Month(ctx context.Context, month string) (*models.CalendarResponse, error) {
	f.month = month
	if month == "05/2024" {
		return nil, fmt.Errorf("%w: bad month", sessions.ErrInvalidInput)
	}
	return &models.CalendarResponse{Month: "2024-05", Title: "May 2024", Padding: 2}, nil
}

func serve(svc CalendarService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Month(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/api/v1/calendar?month=2024-05")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-05", svc.month)
	assert.Contains(t, rec.Body.String(), `"title":"May 2024"`)
}

func TestHandle_DefaultMonth(t *testing.T) {
	svc := &fakeService{month: "unchanged"}
	rec := serve(svc, "/api/v1/calendar")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.month)
}

func TestHandle_InvalidMonth(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/calendar?month=05/2024")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":400,"message":%q}`, msgInvalidMonth), rec.Body.String())
}
