package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/fallback"
)

var ErrUnknownPost = errors.New("unknown matching post")

// matchingAPI is the subset of backend.MatchingClient that MatchingService requires.
type matchingAPI interface {
	List(ctx context.Context, q backend.MatchingQuery) (backend.Page[domain.MatchingPost], error)
	Detail(ctx context.Context, id int64) (*domain.MatchingDetail, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

// bookmarkRepository is the subset of store.BookmarkStore that MatchingService requires.
type bookmarkRepository interface {
	Toggle(ctx context.Context, visitorID string, postID int64) (bool, error)
	IsBookmarked(ctx context.Context, visitorID string, postID int64) (bool, error)
	ListByVisitor(ctx context.Context, visitorID string) ([]int64, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
}

type MatchingTab struct {
	Type  domain.MatchingType
	Label string
}

var MatchingTabs = []MatchingTab{
	{Type: domain.MatchingStudy, Label: "스터디"},
	{Type: domain.MatchingProject, Label: "프로젝트"},
	{Type: domain.MatchingMentor, Label: "멘토링"},
}

// ParseMatchingType maps a tab name to its type; unknown names select the
// study tab.
func ParseMatchingType(s string) domain.MatchingType {
	for _, t := range MatchingTabs {
		if string(t.Type) == s {
			return t.Type
		}
	}
	return domain.MatchingStudy
}

// MatchingService runs the matching board. Unless live, the board is the
// built-in one; bookmarks are always kept locally per visitor.
type MatchingService struct {
	api       matchingAPI
	bookmarks bookmarkRepository
	live      bool
	logger    *slog.Logger
}

func NewMatchingService(api matchingAPI, bookmarks bookmarkRepository, live bool, logger *slog.Logger) *MatchingService {
	return &MatchingService{api: api, bookmarks: bookmarks, live: live, logger: logger}
}

type MatchingCard struct {
	domain.MatchingPost
	Bookmarked bool
}

type MatchingBoard struct {
	Tab   domain.MatchingType
	Tabs  []MatchingTab
	Cards []MatchingCard
	Live  bool
}

func (s *MatchingService) Board(ctx context.Context, visitorID string, tab domain.MatchingType) (*MatchingBoard, error) {
	board := &MatchingBoard{Tab: tab, Tabs: MatchingTabs}

	posts, live := s.posts(ctx, tab)
	board.Live = live

	var marked []int64
	if visitorID != "" {
		var err error
		marked, err = s.bookmarks.ListByVisitor(ctx, visitorID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookmarks: %w", err)
		}
	}

	for _, p := range posts {
		board.Cards = append(board.Cards, MatchingCard{
			MatchingPost: p,
			Bookmarked:   slices.Contains(marked, p.ID),
		})
	}
	return board, nil
}

func (s *MatchingService) posts(ctx context.Context, tab domain.MatchingType) ([]domain.MatchingPost, bool) {
	if s.live {
		p, err := s.api.List(ctx, backend.MatchingQuery{Type: tab})
		if err == nil && !p.Unrecognised {
			return p.Content, true
		}
		s.logger.Warn("matching board unavailable, using built-in board", "tab", tab, "error", err)
	}
	return fallback.MatchingPosts(tab), false
}

type ShareLink struct {
	Platform string
	URL      string
}

// MatchingView is a post detail as shown to one visitor.
type MatchingView struct {
	domain.MatchingDetail
	Post       *domain.MatchingPost
	Bookmarked bool
	Share      []ShareLink
}

// Detail returns post id for visitorID, or nil, nil when there is no such
// post. pageURL is the absolute address of the detail page, used for the
// share links.
func (s *MatchingService) Detail(ctx context.Context, visitorID string, id int64, pageURL string) (*MatchingView, error) {
	detail, post := s.detail(ctx, id)
	if detail == nil {
		return nil, nil
	}

	view := &MatchingView{MatchingDetail: *detail, Post: post}

	local, err := s.bookmarks.CountByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	view.BookmarkCount += local

	if visitorID != "" {
		view.Bookmarked, err = s.bookmarks.IsBookmarked(ctx, visitorID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check bookmark: %w", err)
		}
	}

	view.Share = ShareLinks(pageURL, view.Title)
	return view, nil
}

func (s *MatchingService) detail(ctx context.Context, id int64) (*domain.MatchingDetail, *domain.MatchingPost) {
	if s.live {
		d, err := s.api.Detail(ctx, id)
		if err == nil {
			if err := s.api.IncrementViewCount(ctx, id); err != nil {
				s.logger.Warn("failed to increment matching view count", "post_id", id, "error", err)
			}
			return d, nil
		}
		if isNotFound(err) {
			return nil, nil
		}
		s.logger.Warn("matching post unavailable, using built-in board", "post_id", id, "error", err)
	}

	p, ok := fallback.MatchingPost(id)
	if !ok {
		return nil, nil
	}
	d := fallback.MatchingDetail(id)
	return &d, &p
}

// ToggleBookmark flips visitorID's bookmark on post id and returns the new
// state. Posts of the built-in board must exist.
func (s *MatchingService) ToggleBookmark(ctx context.Context, visitorID string, id int64) (bool, error) {
	if visitorID == "" {
		return false, errors.New("visitor id required")
	}
	if !s.live {
		if _, ok := fallback.MatchingPost(id); !ok {
			return false, ErrUnknownPost
		}
	}
	return s.bookmarks.Toggle(ctx, visitorID, id)
}

// ShareLinks returns the social share targets for pageURL.
func ShareLinks(pageURL, title string) []ShareLink {
	u := url.QueryEscape(pageURL)
	return []ShareLink{
		{Platform: "facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Platform: "twitter", URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + url.QueryEscape(title)},
		{Platform: "kakao", URL: "https://sharer.kakao.com/talk/friends/picker/link?url=" + u},
	}
}
