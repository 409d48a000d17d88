package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalUploader writes uploads to a directory on disk; the files are
// served back by the router under /uploads.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Dir() string { return u.dir }

func (u *LocalUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	// objectName comes from the handler (uuid + extension); reject
	// anything that would escape the upload dir
	name := filepath.Base(objectName)
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}

	dst := filepath.Join(u.dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return "/uploads/" + name, nil
}
