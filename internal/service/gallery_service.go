package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/paging"
)

// galleryAPI is the subset of backend.GalleryClient that GalleryService requires.
type galleryAPI interface {
	List(ctx context.Context, q backend.GalleryQuery) (backend.Page[domain.GalleryItem], error)
	Search(ctx context.Context, q backend.GalleryQuery) (backend.Page[domain.GalleryItem], error)
	Detail(ctx context.Context, id int64) (*domain.GalleryDetail, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

// viewRecorder is the subset of store.GalleryViewStore that GalleryService requires.
type viewRecorder interface {
	RecordView(ctx context.Context, visitorID string, galleryID int64, at time.Time) (bool, error)
	ForgetView(ctx context.Context, visitorID string, galleryID int64, at time.Time) error
}

type GalleryService struct {
	api      galleryAPI
	views    viewRecorder
	resolver urlResolver
	logger   *slog.Logger
	now      func() time.Time
}

func NewGalleryService(api galleryAPI, views viewRecorder, resolver urlResolver, logger *slog.Logger) *GalleryService {
	return &GalleryService{
		api:      api,
		views:    views,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// GalleryListing is one page of gallery posts.
type GalleryListing struct {
	Items         []domain.GalleryItem
	Pager         paging.Pager
	TotalElements int
}

// List returns one page of posts. A non-blank keyword goes to the search
// endpoint. Backend failures are returned to the caller; there is no
// built-in gallery.
func (s *GalleryService) List(ctx context.Context, q backend.GalleryQuery) (*GalleryListing, error) {
	fetch := s.api.List
	if strings.TrimSpace(q.Keyword) != "" {
		fetch = s.api.Search
	}

	p, err := fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery: %w", err)
	}

	for i := range p.Content {
		p.Content[i].ImageURL = s.resolver.ResolveURL(p.Content[i].ImageURL)
	}

	total := p.TotalPages
	if p.Unrecognised {
		total = 1
	}
	return &GalleryListing{
		Items:         p.Content,
		Pager:         paging.NewPager(q.Page, total),
		TotalElements: p.TotalElements,
	}, nil
}

// GallerySlide is the full-screen slider over the posts of one listing page.
type GallerySlide struct {
	Items    []domain.GalleryItem
	Carousel paging.Carousel
	Query    backend.GalleryQuery
}

func (sl *GallerySlide) Current() *domain.GalleryItem {
	if len(sl.Items) == 0 {
		return nil
	}
	return &sl.Items[sl.Carousel.Index]
}

// Slide opens the slider on the index-th post of the listing page q. The
// index wraps around the page.
func (s *GalleryService) Slide(ctx context.Context, q backend.GalleryQuery, index int) (*GallerySlide, error) {
	listing, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &GallerySlide{
		Items:    listing.Items,
		Carousel: paging.NewCarousel(index, len(listing.Items)),
		Query:    q,
	}, nil
}

// Open returns a post and counts the visit. The backend view counter is
// bumped at most once per visitor per day. A failed bump un-records the view
// so the next open retries it. Counting failures are logged and do not fail
// the page. A missing post returns nil, nil.
func (s *GalleryService) Open(ctx context.Context, visitorID string, id int64) (*domain.GalleryDetail, error) {
	d, err := s.api.Detail(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery post: %w", err)
	}

	d.ImageURL = s.resolver.ResolveURL(d.ImageURL)
	for i := range d.Images {
		d.Images[i].URL = s.resolver.ResolveURL(d.Images[i].URL)
	}

	if visitorID == "" {
		return d, nil
	}

	now := s.now()
	first, err := s.views.RecordView(ctx, visitorID, id, now)
	if err != nil {
		s.logger.Warn("failed to record gallery view", "gallery_id", id, "error", err)
		return d, nil
	}
	if !first {
		return d, nil
	}

	if err := s.api.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("failed to increment gallery view count", "gallery_id", id, "error", err)
		if err := s.views.ForgetView(context.WithoutCancel(ctx), visitorID, id, now); err != nil {
			s.logger.Warn("failed to forget gallery view", "gallery_id", id, "error", err)
		}
		return d, nil
	}
	d.ViewCount++
	return d, nil
}
