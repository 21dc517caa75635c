package store

import (
	"context"
	"database/sql"
	"fmt"
)

// BookmarkStore keeps the matching-board bookmarks of each visitor.
type BookmarkStore struct {
	db *sql.DB
}

func NewBookmarkStore(db *sql.DB) *BookmarkStore {
	return &BookmarkStore{db: db}
}

// Toggle flips the bookmark of postID for visitorID and returns the new state.
func (s *BookmarkStore) Toggle(ctx context.Context, visitorID string, postID int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		DELETE FROM matching_bookmarks WHERE visitor_id = ? AND post_id = ?
	`, visitorID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to delete bookmark: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if removed == 0 {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO matching_bookmarks (visitor_id, post_id) VALUES (?, ?)
		`, visitorID, postID); err != nil {
			return false, fmt.Errorf("failed to create bookmark: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bookmark toggle: %w", err)
	}
	return removed == 0, nil
}

func (s *BookmarkStore) IsBookmarked(ctx context.Context, visitorID string, postID int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM matching_bookmarks WHERE visitor_id = ? AND post_id = ?
	`, visitorID, postID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return n > 0, nil
}

// ListByVisitor returns the bookmarked post IDs of visitorID, newest first.
func (s *BookmarkStore) ListByVisitor(ctx context.Context, visitorID string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT post_id FROM matching_bookmarks WHERE visitor_id = ?
		ORDER BY created_at DESC, post_id
	`, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}
	return ids, nil
}

// CountByPost returns how many visitors bookmarked postID.
func (s *BookmarkStore) CountByPost(ctx context.Context, postID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM matching_bookmarks WHERE post_id = ?
	`, postID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return n, nil
}
