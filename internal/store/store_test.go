package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/councilweb/internal/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestBookmarkToggle(t *testing.T) {
	s := NewBookmarkStore(openTestDB(t))
	ctx := context.Background()

	on, err := s.Toggle(ctx, "v1", 3)
	require.NoError(t, err)
	assert.True(t, on)

	ok, err := s.IsBookmarked(ctx, "v1", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	on, err = s.Toggle(ctx, "v1", 3)
	require.NoError(t, err)
	assert.False(t, on)

	ok, err = s.IsBookmarked(ctx, "v1", 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookmarkPerVisitor(t *testing.T) {
	s := NewBookmarkStore(openTestDB(t))
	ctx := context.Background()

	_, err := s.Toggle(ctx, "v1", 1)
	require.NoError(t, err)
	_, err = s.Toggle(ctx, "v1", 2)
	require.NoError(t, err)
	_, err = s.Toggle(ctx, "v2", 2)
	require.NoError(t, err)

	ids, err := s.ListByVisitor(ctx, "v1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)

	ids, err = s.ListByVisitor(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)

	n, err := s.CountByPost(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestGalleryViewOncePerDay(t *testing.T) {
	s := NewGalleryViewStore(openTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	first, err := s.RecordView(ctx, "v1", 7, day)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := s.RecordView(ctx, "v1", 7, day.Add(3*time.Hour))
	require.NoError(t, err)
	assert.False(t, again)

	other, err := s.RecordView(ctx, "v2", 7, day)
	require.NoError(t, err)
	assert.True(t, other)

	nextDay, err := s.RecordView(ctx, "v1", 7, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, nextDay)
}

func TestGalleryViewForget(t *testing.T) {
	s := NewGalleryViewStore(openTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	_, err := s.RecordView(ctx, "v1", 7, day)
	require.NoError(t, err)
	_, err = s.RecordView(ctx, "v1", 7, day.AddDate(0, 0, -1))
	require.NoError(t, err)

	require.NoError(t, s.ForgetView(ctx, "v1", 7, day.Add(2*time.Hour)))

	first, err := s.RecordView(ctx, "v1", 7, day)
	require.NoError(t, err)
	assert.True(t, first)

	yesterday, err := s.RecordView(ctx, "v1", 7, day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.False(t, yesterday)
}

func TestGalleryViewPrune(t *testing.T) {
	s := NewGalleryViewStore(openTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := range 3 {
		_, err := s.RecordView(ctx, "v1", 1, day.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	n, err := s.PruneBefore(ctx, day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
