package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
)

func TestProfileHandlerEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileHandlerUpsert(t *testing.T) {
	r := newTestRouter(t)

	// first PUT creates the singleton row
	w := doJSON(t, r, http.MethodPut, "/api/profile", gin.H{
		"fullName": "Yoo Cha",
		"position": "Backend Engineer",
		"email":    "yoo@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var p models.Profile
	decode(t, w, &p)
	require.NotZero(t, p.ID)

	// second PUT updates in place, leaving other fields intact
	w = doJSON(t, r, http.MethodPut, "/api/profile", gin.H{
		"location": "Seoul",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Profile
	decode(t, w, &updated)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Seoul", updated.Location)
	assert.Equal(t, "Yoo Cha", updated.FullName)

	w = doJSON(t, r, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
