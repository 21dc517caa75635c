package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/vbonduro/councilweb/internal/assets"
)

func (s *Server) assetError(w http.ResponseWriter, r *http.Request, key string, err error) {
	switch {
	case errors.Is(err, assets.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, assets.ErrInvalidKey), errors.Is(err, assets.ErrInvalidWidth):
		http.Error(w, "invalid asset request", http.StatusBadRequest)
	default:
		s.logger.Error("asset error", "key", key, "error", err)
		http.Error(w, "failed to load asset", http.StatusInternalServerError)
	}
}

// handleAsset serves a local media file, or a thumbnail of it when a width
// is given with ?w=.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if ws := r.URL.Query().Get("w"); ws != "" {
		width, err := strconv.Atoi(ws)
		if err != nil {
			http.Error(w, "invalid width", http.StatusBadRequest)
			return
		}
		data, mimeType, err := s.assets.Thumbnail(r.Context(), key, width)
		if err != nil {
			s.assetError(w, r, key, err)
			return
		}
		w.Header().Set("Content-Type", mimeType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(data)
		return
	}

	rc, mimeType, err := s.assets.Get(r.Context(), key)
	if err != nil {
		s.assetError(w, r, key, err)
		return
	}
	defer func() { _ = rc.Close() }()

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, rc); err != nil {
		s.logger.Error("asset copy error", "key", key, "error", err)
	}
}
