package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/domain"
)

type stubMatching struct {
	page backend.Page[domain.MatchingPost]
	err  error
}

func (s *stubMatching) List(_ context.Context, _ backend.MatchingQuery) (backend.Page[domain.MatchingPost], error) {
	return s.page, s.err
}

func (s *stubMatching) Detail(_ context.Context, id int64) (*domain.MatchingDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MatchingDetail{ID: id, Title: "live"}, nil
}

func (s *stubMatching) IncrementViewCount(_ context.Context, _ int64) error { return nil }

func TestParseMatchingType(t *testing.T) {
	assert.Equal(t, domain.MatchingProject, ParseMatchingType("project"))
	assert.Equal(t, domain.MatchingMentor, ParseMatchingType("mentor"))
	assert.Equal(t, domain.MatchingStudy, ParseMatchingType(""))
	assert.Equal(t, domain.MatchingStudy, ParseMatchingType("bogus"))
}

func TestMatchingBuiltInBoard(t *testing.T) {
	bookmarks, _ := openStores(t)
	svc := NewMatchingService(&stubMatching{}, bookmarks, false, discardLogger())

	board, err := svc.Board(context.Background(), "v1", domain.MatchingProject)
	require.NoError(t, err)
	assert.False(t, board.Live)
	require.Len(t, board.Cards, 2)
	assert.Equal(t, "웹 개발 프로젝트 팀원 모집", board.Cards[0].Title)
	assert.Len(t, board.Tabs, 3)
}

func TestMatchingLiveFallsBackToBuiltInBoard(t *testing.T) {
	bookmarks, _ := openStores(t)
	svc := NewMatchingService(&stubMatching{err: errors.New("down")}, bookmarks, true, discardLogger())

	board, err := svc.Board(context.Background(), "", domain.MatchingStudy)
	require.NoError(t, err)
	assert.False(t, board.Live)
	assert.Len(t, board.Cards, 3)
}

func TestMatchingLiveBoard(t *testing.T) {
	bookmarks, _ := openStores(t)
	api := &stubMatching{page: backend.Page[domain.MatchingPost]{Content: []domain.MatchingPost{{ID: 100, Title: "live post"}}}}
	svc := NewMatchingService(api, bookmarks, true, discardLogger())

	board, err := svc.Board(context.Background(), "", domain.MatchingStudy)
	require.NoError(t, err)
	assert.True(t, board.Live)
	require.Len(t, board.Cards, 1)
	assert.Equal(t, "live post", board.Cards[0].Title)
}

func TestMatchingBookmarkToggle(t *testing.T) {
	bookmarks, _ := openStores(t)
	svc := NewMatchingService(&stubMatching{}, bookmarks, false, discardLogger())
	ctx := context.Background()

	on, err := svc.ToggleBookmark(ctx, "v1", 2)
	require.NoError(t, err)
	assert.True(t, on)

	board, err := svc.Board(ctx, "v1", domain.MatchingStudy)
	require.NoError(t, err)
	assert.False(t, board.Cards[0].Bookmarked)
	assert.True(t, board.Cards[1].Bookmarked)

	view, err := svc.Detail(ctx, "v1", 2, "https://council.example/matching/2")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.True(t, view.Bookmarked)
	assert.Equal(t, 362, view.BookmarkCount)

	other, err := svc.Detail(ctx, "v2", 2, "https://council.example/matching/2")
	require.NoError(t, err)
	assert.False(t, other.Bookmarked)

	on, err = svc.ToggleBookmark(ctx, "v1", 2)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestMatchingBookmarkUnknownPost(t *testing.T) {
	bookmarks, _ := openStores(t)
	svc := NewMatchingService(&stubMatching{}, bookmarks, false, discardLogger())

	_, err := svc.ToggleBookmark(context.Background(), "v1", 99)
	assert.ErrorIs(t, err, ErrUnknownPost)

	_, err = svc.ToggleBookmark(context.Background(), "", 1)
	assert.Error(t, err)
}

func TestMatchingDetailBuiltIn(t *testing.T) {
	bookmarks, _ := openStores(t)
	svc := NewMatchingService(&stubMatching{}, bookmarks, false, discardLogger())

	view, err := svc.Detail(context.Background(), "", 4, "https://council.example/matching/4")
	require.NoError(t, err)
	require.NotNil(t, view)
	require.NotNil(t, view.Post)
	assert.Equal(t, "웹 개발 프로젝트 팀원 모집", view.Post.Title)
	assert.Equal(t, int64(3395), view.Views)
	require.Len(t, view.Share, 3)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fcouncil.example%2Fmatching%2F4", view.Share[0].URL)

	missing, err := svc.Detail(context.Background(), "", 77, "")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
