package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
)

func createArticle(t *testing.T, r *gin.Engine, body gin.H) models.Article {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/articles", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var a models.Article
	decode(t, w, &a)
	return a
}

func TestArticleHandlerCreateDerivesSlug(t *testing.T) {
	r := newTestRouter(t)

	a := createArticle(t, r, gin.H{
		"title":    "Shipping a Portfolio API",
		"excerpt":  "notes",
		"content":  "body",
		"category": "Go",
		"readTime": 5,
	})
	assert.Equal(t, "shipping-a-portfolio-api", a.Slug)

	w := doJSON(t, r, http.MethodGet, "/api/articles/shipping-a-portfolio-api", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Article
	decode(t, w, &got)
	assert.Equal(t, a.ID, got.ID)
}

func TestArticleHandlerUpdateMissing(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/articles/999", gin.H{"title": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var apiErr APIError
	decode(t, w, &apiErr)
	assert.Equal(t, "Article not found", apiErr.Message)
}

func TestArticleHandlerListFilters(t *testing.T) {
	r := newTestRouter(t)

	createArticle(t, r, gin.H{
		"title": "Draft", "excerpt": "e", "content": "c", "category": "Go", "readTime": 1,
	})
	createArticle(t, r, gin.H{
		"title": "Live", "excerpt": "e", "content": "c", "category": "Go", "readTime": 1,
		"published": true,
	})
	createArticle(t, r, gin.H{
		"title": "Star", "excerpt": "e", "content": "c", "category": "Go", "readTime": 1,
		"published": true, "featured": true,
	})

	var rows []models.Article

	w := doJSON(t, r, http.MethodGet, "/api/articles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &rows)
	assert.Len(t, rows, 3)

	w = doJSON(t, r, http.MethodGet, "/api/articles?published=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &rows)
	assert.Len(t, rows, 2)

	w = doJSON(t, r, http.MethodGet, "/api/articles?featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Star", rows[0].Title)
}

func TestArticleHandlerDuplicateSlug(t *testing.T) {
	r := newTestRouter(t)

	createArticle(t, r, gin.H{
		"title": "Same Title", "excerpt": "e", "content": "c", "category": "Go", "readTime": 1,
	})

	w := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title": "Same Title", "excerpt": "e", "content": "c", "category": "Go", "readTime": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
