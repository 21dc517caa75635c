package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/db"
	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestBackend starts a fake REST backend serving mux.
func newTestBackend(t *testing.T, mux http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 2*time.Second)
}

// unreachableBackend returns a client whose server has already shut down.
func unreachableBackend(t *testing.T) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return backend.NewClient(url, time.Second)
}

func openStores(t *testing.T) (*store.BookmarkStore, *store.GalleryViewStore) {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return store.NewBookmarkStore(d), store.NewGalleryViewStore(d)
}

type identityResolver struct{}

func (identityResolver) ResolveURL(ref string) string { return ref }

type stubGallery struct {
	page       backend.Page[domain.GalleryItem]
	err        error
	detail     *domain.GalleryDetail
	detailErr  error
	lastList   *backend.GalleryQuery
	lastSearch *backend.GalleryQuery
	increments int
	// incrementErrs fail the next len(incrementErrs) increments in order.
	incrementErrs []error
}

func (s *stubGallery) List(_ context.Context, q backend.GalleryQuery) (backend.Page[domain.GalleryItem], error) {
	s.lastList = &q
	return s.page, s.err
}

func (s *stubGallery) Search(_ context.Context, q backend.GalleryQuery) (backend.Page[domain.GalleryItem], error) {
	s.lastSearch = &q
	return s.page, s.err
}

func (s *stubGallery) Detail(_ context.Context, _ int64) (*domain.GalleryDetail, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	d := *s.detail
	return &d, nil
}

func (s *stubGallery) IncrementViewCount(_ context.Context, _ int64) error {
	if len(s.incrementErrs) > 0 {
		err := s.incrementErrs[0]
		s.incrementErrs = s.incrementErrs[1:]
		return err
	}
	s.increments++
	return nil
}

type stubCalendar struct {
	events   []domain.CalendarEvent
	err      error
	gotYear  int
	gotMonth int
}

func (s *stubCalendar) Events(_ context.Context, year, month int) ([]domain.CalendarEvent, error) {
	s.gotYear, s.gotMonth = year, month
	return s.events, s.err
}
