package submit_application

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WorkoutForm/internal/service/form"
	submitApplication "github.com/m04kA/SMC-WorkoutForm/internal/usecase/submit_application"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

type fakeUseCase struct {
	resp *submitApplication.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *submitApplication.Request) (*submitApplication.Response, error) {
	return f.resp, f.err
}

func serve(uc SubmitApplicationUseCase) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sessions/{sessionId}/submit", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s-1/submit", nil))
	return rec
}

func TestHandle_Sent(t *testing.T) {
	id := int64(7)
	rec := serve(&fakeUseCase{resp: &submitApplication.Response{SessionID: "s-1", Status: "sent", ApplicationID: &id}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessionId":"s-1","status":"sent","applicationId":7}`, rec.Body.String())
}

func TestHandle_Incomplete(t *testing.T) {
	err := fmt.Errorf("%w: %w", submitApplication.ErrIncomplete, &form.MissingFieldsError{Fields: []string{"email", "photo"}})
	rec := serve(&fakeUseCase{err: err})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"code":422,"message":"`+msgIncomplete+`","missingFields":["email","photo"]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{submitApplication.ErrSessionNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: rejected", submitApplication.ErrSubmissionFailed), http.StatusBadGateway},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := serve(&fakeUseCase{err: tc.err})
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
