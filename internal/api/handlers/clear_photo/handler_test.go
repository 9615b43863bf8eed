package clear_photo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

type fakeService struct {
	err error
	id  string
}

func (f *fakeService) ClearPhoto(ctx context.Context, id string) (*models.SessionResponse, error) {
	f.id = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: id}, nil
}

func serve(svc SessionService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sessions/{sessionId}/photo", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/s-1/photo", nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-1", svc.id)
	assert.Contains(t, rec.Body.String(), `"id":"s-1"`)
	assert.NotContains(t, rec.Body.String(), `"photo"`)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&fakeService{err: sessions.ErrSessionNotFound})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":404,"message":%q}`, msgNotFound), rec.Body.String())

	rec = serve(&fakeService{err: errors.New("boom")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
