// Package assets serves locally stored media such as facility inspection
// photos.
package assets

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound     = errors.New("asset not found")
	ErrInvalidKey   = errors.New("invalid asset key")
	ErrInvalidWidth = errors.New("invalid thumbnail width")
)

type Store interface {
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Thumbnail(ctx context.Context, key string, width int) ([]byte, string, error)
}

// IsImage reports whether name has an extension the site displays as an image.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}
