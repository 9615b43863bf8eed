package upload_photo

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
)

type fakeService struct {
	photos []domain.Photo
	err    error
}

func (f *fakeService) AttachPhoto(ctx context.Context, id string, photo domain.Photo) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.photos = append(f.photos, photo)
	return &models.SessionResponse{
		ID:    id,
		Photo: &models.PhotoResponse{Name: photo.Name, ContentType: photo.ContentType, Size: photo.Size()},
	}, nil
}

type filePart struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, parts ...filePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("comment", "not a file"))

	for _, p := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.name+`"`)
		if p.contentType != "" {
			header.Set("Content-Type", p.contentType)
		}
		w, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func serve(h *Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sessions/{sessionId}/photo", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/s-1/photo", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_UsesFirstFile(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, 1024, logger.NewNop())

	pngHeader := []byte("\x89PNG\r\n\x1a\n0000")
	body, ct := multipartBody(t,
		filePart{field: "file", name: "first.png", data: pngHeader},
		filePart{field: "file", name: "second.jpg", contentType: "image/jpeg", data: []byte("jpeg")},
	)

	rec := serve(h, body, ct)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, svc.photos, 1)
	assert.Equal(t, "first.png", svc.photos[0].Name)
	assert.Equal(t, "image/png", svc.photos[0].ContentType)
	assert.Equal(t, pngHeader, svc.photos[0].Data)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Photo)
	assert.Equal(t, "first.png", resp.Photo.Name)
}

func TestHandle_KeepsDeclaredContentType(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, 1024, logger.NewNop())

	body, ct := multipartBody(t, filePart{field: "photo", name: "me.webp", contentType: "image/webp", data: []byte("webp")})

	rec := serve(h, body, ct)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/webp", svc.photos[0].ContentType)
}

func TestHandle_TooLarge(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, 4, logger.NewNop())

	body, ct := multipartBody(t, filePart{field: "file", name: "big.png", data: []byte("12345")})

	rec := serve(h, body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, svc.photos)
}

func TestHandle_NoFile(t *testing.T) {
	h := NewHandler(&fakeService{}, 1024, logger.NewNop())

	body, ct := multipartBody(t)

	rec := serve(h, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"code":400,"message":"`+msgNoFile+`"}`, rec.Body.String())
}

func TestHandle_NotMultipart(t *testing.T) {
	h := NewHandler(&fakeService{}, 1024, logger.NewNop())

	rec := serve(h, bytes.NewBufferString(`{"file":"x"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{sessions.ErrSessionNotFound, http.StatusNotFound},
		{sessions.ErrInvalidInput, http.StatusBadRequest},
		{sessions.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		h := NewHandler(&fakeService{err: tc.err}, 1024, logger.NewNop())
		body, ct := multipartBody(t, filePart{field: "file", name: "me.png", data: []byte("png")})

		rec := serve(h, body, ct)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
