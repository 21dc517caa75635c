package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// GalleryViewStore remembers which gallery posts a visitor opened on a given
// day so the backend view counter is bumped at most once per visitor per day.
type GalleryViewStore struct {
	db *sql.DB
}

func NewGalleryViewStore(db *sql.DB) *GalleryViewStore {
	return &GalleryViewStore{db: db}
}

// RecordView stores the view and reports whether it is the visitor's first
// view of galleryID on the day of at.
func (s *GalleryViewStore) RecordView(ctx context.Context, visitorID string, galleryID int64, at time.Time) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO gallery_views (visitor_id, gallery_id, day) VALUES (?, ?, ?)
	`, visitorID, galleryID, at.Format(dayLayout))
	if err != nil {
		return false, fmt.Errorf("failed to record gallery view: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n == 1, nil
}

// ForgetView removes the view recorded for the day of at, so the next
// RecordView on that day counts as first again.
func (s *GalleryViewStore) ForgetView(ctx context.Context, visitorID string, galleryID int64, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM gallery_views WHERE visitor_id = ? AND gallery_id = ? AND day = ?
	`, visitorID, galleryID, at.Format(dayLayout))
	if err != nil {
		return fmt.Errorf("failed to forget gallery view: %w", err)
	}
	return nil
}

// PruneBefore deletes views recorded on days before the day of cutoff.
func (s *GalleryViewStore) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM gallery_views WHERE day < ?
	`, cutoff.Format(dayLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to prune gallery views: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
