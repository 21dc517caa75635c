package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/domain"
)

const homeGalleryItems = 4

// Home is the landing page: the latest gallery posts and this month's events.
// Either section is simply left empty when its backend call fails.
type Home struct {
	Gallery []domain.GalleryItem
	Events  []domain.CalendarEvent
}

type HomeService struct {
	gallery  galleryAPI
	calendar calendarAPI
	resolver urlResolver
	logger   *slog.Logger
	now      func() time.Time
}

func NewHomeService(gallery galleryAPI, calendar calendarAPI, resolver urlResolver, logger *slog.Logger) *HomeService {
	return &HomeService{gallery: gallery, calendar: calendar, resolver: resolver, logger: logger, now: time.Now}
}

func (s *HomeService) Load(ctx context.Context) *Home {
	home := &Home{}
	now := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.gallery.List(gctx, backend.GalleryQuery{Size: homeGalleryItems})
		if err != nil {
			s.logger.Warn("home gallery unavailable", "error", err)
			return nil
		}
		for _, it := range p.Content {
			it.ImageURL = s.resolver.ResolveURL(it.ImageURL)
			home.Gallery = append(home.Gallery, it)
		}
		return nil
	})
	g.Go(func() error {
		events, err := s.calendar.Events(gctx, now.Year(), int(now.Month()))
		if err != nil {
			s.logger.Warn("home calendar unavailable", "error", err)
			return nil
		}
		home.Events = events
		return nil
	})
	_ = g.Wait()

	if len(home.Gallery) > homeGalleryItems {
		home.Gallery = home.Gallery[:homeGalleryItems]
	}
	return home
}
