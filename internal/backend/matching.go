package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/domain"
)

// MatchingQuery parameters are only sent when set; page 0 is not sent.
type MatchingQuery struct {
	Type     domain.MatchingType
	Page     int
	Limit    int
	Search   string
	Category string
}

func (q MatchingQuery) values() url.Values {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	if q.Page != 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit != 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

// MatchingInput is the payload for creating or updating a matching post.
type MatchingInput struct {
	Title       string              `json:"title"`
	Type        domain.MatchingType `json:"type"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	MaxMembers  int                 `json:"maxMembers"`
	Deadline    string              `json:"deadline"`
	Details     map[string]any      `json:"details,omitempty"`
}

type BookmarkState struct {
	Bookmarked    bool `json:"bookmarked"`
	BookmarkCount int  `json:"bookmarkCount"`
}

type FollowState struct {
	Following bool `json:"following"`
}

type MatchingStats struct {
	Views          int64 `json:"views"`
	BookmarkCount  int   `json:"bookmarkCount"`
	ApplicantCount int   `json:"applicantCount"`
}

type MatchingClient struct {
	c *Client
}

func NewMatchingClient(c *Client) *MatchingClient {
	return &MatchingClient{c: c}
}

func (m *MatchingClient) List(ctx context.Context, q MatchingQuery) (Page[domain.MatchingPost], error) {
	return getPage[domain.MatchingPost](ctx, m.c, "/api/matching", q.values())
}

func (m *MatchingClient) Detail(ctx context.Context, id int64) (*domain.MatchingDetail, error) {
	var d domain.MatchingDetail
	if err := m.c.Get(ctx, fmt.Sprintf("/api/matching/%d", id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (m *MatchingClient) Create(ctx context.Context, in MatchingInput) (*domain.MatchingDetail, error) {
	var d domain.MatchingDetail
	if err := m.c.Post(ctx, "/api/matching", in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (m *MatchingClient) Update(ctx context.Context, id int64, in MatchingInput) (*domain.MatchingDetail, error) {
	var d domain.MatchingDetail
	if err := m.c.Put(ctx, fmt.Sprintf("/api/matching/%d", id), in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (m *MatchingClient) Delete(ctx context.Context, id int64) error {
	return m.c.Delete(ctx, fmt.Sprintf("/api/matching/%d", id))
}

func (m *MatchingClient) Apply(ctx context.Context, id int64, application map[string]any) error {
	if application == nil {
		application = map[string]any{}
	}
	return m.c.Post(ctx, fmt.Sprintf("/api/matching/%d/apply", id), application, nil)
}

func (m *MatchingClient) ToggleBookmark(ctx context.Context, id int64) (*BookmarkState, error) {
	var s BookmarkState
	if err := m.c.Post(ctx, fmt.Sprintf("/api/matching/%d/bookmark", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MatchingClient) Bookmarks(ctx context.Context, page, limit int) (Page[domain.MatchingPost], error) {
	q := MatchingQuery{Page: page, Limit: limit}
	return getPage[domain.MatchingPost](ctx, m.c, "/api/matching/bookmarks", q.values())
}

func (m *MatchingClient) ToggleFollow(ctx context.Context, organizerID int64) (*FollowState, error) {
	var s FollowState
	if err := m.c.Post(ctx, fmt.Sprintf("/api/matching/organizer/%d/follow", organizerID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Popular returns the most viewed posts; limit defaults to 5.
func (m *MatchingClient) Popular(ctx context.Context, limit int) ([]domain.MatchingPost, error) {
	if limit <= 0 {
		limit = 5
	}
	var posts []domain.MatchingPost
	v := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := m.c.Get(ctx, "/api/matching/popular", v, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *MatchingClient) Categories(ctx context.Context, typ domain.MatchingType) ([]string, error) {
	var cats []string
	var v url.Values
	if typ != "" {
		v = url.Values{"type": {string(typ)}}
	}
	if err := m.c.Get(ctx, "/api/matching/categories", v, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (m *MatchingClient) IncrementViewCount(ctx context.Context, id int64) error {
	return m.c.Post(ctx, fmt.Sprintf("/api/matching/%d/view", id), nil, nil)
}

func (m *MatchingClient) Stats(ctx context.Context, id int64) (*MatchingStats, error) {
	var s MatchingStats
	if err := m.c.Get(ctx, fmt.Sprintf("/api/matching/%d/stats", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
