package service

import (
	"context"
	"log/slog"

	"github.com/vbonduro/councilweb/internal/period"
)

// PeriodService browses one year/month indexed collection: the study-support
// posters from the resources API, or the facility inspection photos from the
// local asset catalog.
type PeriodService struct {
	Title   string
	browser *period.Browser
}

func NewPeriodService(title string, src period.Source, logger *slog.Logger) *PeriodService {
	return &PeriodService{
		Title:   title,
		browser: period.NewBrowser(src, logger.With("collection", title)),
	}
}

func (s *PeriodService) Browse(ctx context.Context, sel period.Selection) *period.View {
	return s.browser.Load(ctx, sel)
}
