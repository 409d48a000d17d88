package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yoockh/portfolio-backend/internal/storage"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const maxUploadSize = 5 << 20 // 5MB

type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload accepts a single image in the multipart field "image" and
// returns the path it is served from.
func (h *UploadHandler) Upload(c *gin.Context) {
	const op = "UploadHandler.Upload"

	fh, err := c.FormFile("image")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'image'", err))
		return
	}

	if fh.Size <= 0 || fh.Size > maxUploadSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large (max 5MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	// sniff the real content type, the client-supplied header is not trusted
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]
	ct := http.DetectContentType(head)
	if !strings.HasPrefix(ct, "image/") {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "only image files are allowed", nil))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectName := uuid.NewString() + ext

	// re-compose stream: head + remaining file
	r := &readJoin{a: bytes.NewReader(head), b: file}

	url, err := h.uploader.Upload(c.Request.Context(), objectName, ct, r)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to store upload", err))
		return
	}

	c.JSON(http.StatusOK, uploadResponse{URL: url})
}

type readJoin struct {
	a *bytes.Reader
	b io.Reader
}

func (r *readJoin) Read(p []byte) (int, error) {
	if r.a != nil && r.a.Len() > 0 {
		return r.a.Read(p)
	}
	return r.b.Read(p)
}
