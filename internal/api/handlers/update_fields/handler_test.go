package update_fields

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

type fakeService struct {
	err   error
	calls int
	req   *models.UpdateFieldsRequest
}

func (f *fakeService) UpdateFields(ctx context.Context, id string, req *models.UpdateFieldsRequest) (*models.SessionResponse, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields", sessions.ErrInvalidInput)
	}
	return &models.SessionResponse{ID: id, Drafts: map[string]string{"name": *req.Name}}, nil
}

func serve(svc SessionService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sessions/{sessionId}/fields", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/s-1/fields", bytes.NewBufferString(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"name":"John"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	require.NotNil(t, svc.req.Name)
	assert.Equal(t, "John", *svc.req.Name)
	assert.Nil(t, svc.req.Surname)
	assert.Nil(t, svc.req.Email)
	assert.Nil(t, svc.req.Age)
	assert.Contains(t, rec.Body.String(), `"drafts":{"name":"John"}`)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, ``)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":400,"message":%q}`, msgInvalidRequestBody), rec.Body.String())
	assert.Zero(t, svc.calls)

	rec = serve(svc, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":400,"message":%q}`, msgNoFields), rec.Body.String())
}

func TestHandle_UnknownField(t *testing.T) {
	svc := &fakeService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, `{"nickname":"jd"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, `{"age":"thirty"}`).Code)
	assert.Zero(t, svc.calls)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(&fakeService{err: sessions.ErrSessionNotFound}, `{"age":30}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"code":404,"message":%q}`, msgNotFound), rec.Body.String())
}
