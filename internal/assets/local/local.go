package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	_ "golang.org/x/image/webp"

	"github.com/vbonduro/councilweb/internal/assets"
)

const MaxThumbnailWidth = 2000

type LocalStore struct {
	basePath string
	thumbs   *lru.Cache[string, []byte]
}

func NewLocalStore(basePath string, cacheSize int) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory: %w", err)
	}
	thumbs, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail cache: %w", err)
	}
	return &LocalStore{basePath: basePath, thumbs: thumbs}, nil
}

func (s *LocalStore) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	filePath, err := s.safeJoin(key)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", assets.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, "", assets.ErrNotFound
	}
	return f, extToMimeType(filePath), nil
}

// Thumbnail returns key scaled down to width pixels wide. Images narrower
// than width are re-encoded at their own size. Results are cached per file
// version, so replacing a file invalidates its thumbnails.
func (s *LocalStore) Thumbnail(ctx context.Context, key string, width int) ([]byte, string, error) {
	if width <= 0 || width > MaxThumbnailWidth {
		return nil, "", assets.ErrInvalidWidth
	}

	filePath, err := s.safeJoin(key)
	if err != nil {
		return nil, "", err
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return nil, "", assets.ErrNotFound
	}

	format := thumbnailFormat(filePath)
	cacheKey := fmt.Sprintf("%s@%d#%d", filePath, width, info.ModTime().UnixNano())
	if data, ok := s.thumbs.Get(cacheKey); ok {
		return data, formatMimeType(format), nil
	}

	img, err := imaging.Open(filePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(80)); err != nil {
		return nil, "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	data := buf.Bytes()
	s.thumbs.Add(cacheKey, data)
	return data, formatMimeType(format), nil
}

// CachedThumbnails reports the number of thumbnails held in memory.
func (s *LocalStore) CachedThumbnails() int {
	return s.thumbs.Len()
}

// safeJoin resolves key relative to basePath and rejects directory traversal.
func (s *LocalStore) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", assets.ErrInvalidKey
	}
	return absPath, nil
}

// thumbnailFormat keeps PNG and GIF sources lossless; everything else,
// WebP included, is served as JPEG.
func thumbnailFormat(filePath string) imaging.Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png", ".gif":
		return imaging.PNG
	default:
		return imaging.JPEG
	}
}

func formatMimeType(f imaging.Format) string {
	if f == imaging.PNG {
		return "image/png"
	}
	return "image/jpeg"
}

func extToMimeType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}
