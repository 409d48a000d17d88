package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadHandlerAcceptsImage(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartImage(t, "image", "avatar.png", pngBytes())
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res uploadResponse
	decode(t, w, &res)
	assert.True(t, strings.HasPrefix(res.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(res.URL, ".png"))
}

func TestUploadHandlerRejectsNonImage(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartImage(t, "image", "notes.txt", []byte("plain text, not an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr APIError
	decode(t, w, &apiErr)
	assert.Equal(t, "only image files are allowed", apiErr.Message)
}

func TestUploadHandlerMissingField(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartImage(t, "file", "avatar.png", pngBytes())
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
