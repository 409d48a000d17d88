package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yoockh/portfolio-backend/config"
	"github.com/yoockh/portfolio-backend/internal/cache"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/services"
	"github.com/yoockh/portfolio-backend/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:h_%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// newTestRouter wires the handlers against an in-memory database. Auth
// middleware is exercised separately in the middleware package.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	c := cache.NewNoopCache()

	skill := NewSkillHandler(services.NewSkillService(pgrepo.NewSkillRepo(db), c))
	article := NewArticleHandler(services.NewArticleService(pgrepo.NewArticleRepo(db), c))
	contact := NewContactHandler(services.NewContactMessageService(pgrepo.NewContactMessageRepo(db), nil))
	profile := NewProfileHandler(services.NewProfileService(pgrepo.NewProfileRepo(db), c))

	uploader, err := storage.NewLocalUploader(t.TempDir())
	require.NoError(t, err)
	upload := NewUploadHandler(uploader)

	r := gin.New()
	r.GET("/api/skills", skill.List)
	r.GET("/api/skills/:id", skill.Get)
	r.POST("/api/skills", skill.Create)
	r.PUT("/api/skills/:id", skill.Update)
	r.DELETE("/api/skills/:id", skill.Delete)

	r.GET("/api/articles", article.List)
	r.GET("/api/articles/:slug", article.GetBySlug)
	r.POST("/api/articles", article.Create)
	r.PUT("/api/articles/:id", article.Update)
	r.DELETE("/api/articles/:id", article.Delete)

	r.GET("/api/contact-messages", contact.List)
	r.POST("/api/contact-messages", contact.Create)
	r.PUT("/api/contact-messages/:id/read", contact.MarkRead)

	r.GET("/api/profile", profile.Get)
	r.PUT("/api/profile", profile.Update)

	r.POST("/api/upload-image", upload.Upload)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// minimal valid PNG header, enough for http.DetectContentType
func pngBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
}
