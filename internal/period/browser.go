// Package period browses media collections indexed by year and month.
//
// Loading is a single chain: the available years, then the months of the
// selected year, then the resources of the selected (year, month). Each step
// has an explicit stage status. When a step fails every later step is left
// idle with no data, so a failed months fetch can never show the images of a
// previously selected month.
package period

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/paging"
)

// Source provides the three lookups of the chain.
type Source interface {
	Years(ctx context.Context) ([]int, error)
	Months(ctx context.Context, year int) ([]int, error)
	Resources(ctx context.Context, year, month int) ([]domain.Resource, error)
}

// Selection is the requested position. Zero Year or Month means "first
// available".
type Selection struct {
	Year  int
	Month int
	Index int
}

// WithYear selects a year and resets the month and image index.
func (s Selection) WithYear(year int) Selection {
	return Selection{Year: year}
}

// WithMonth selects a month of the current year and resets the image index.
func (s Selection) WithMonth(month int) Selection {
	return Selection{Year: s.Year, Month: month}
}

func (s Selection) WithIndex(index int) Selection {
	s.Index = index
	return s
}

// View is the outcome of one Load.
type View struct {
	Years     Stage
	Months    Stage
	Resources Stage

	AvailableYears  []int
	AvailableMonths []int
	Items           []domain.Resource

	Year     int
	Month    int
	Carousel paging.Carousel
}

// Current is the resource under the carousel index, or nil.
func (v *View) Current() *domain.Resource {
	if len(v.Items) == 0 {
		return nil
	}
	return &v.Items[v.Carousel.Index]
}

// Err returns the error of the first failed stage.
func (v *View) Err() error {
	for _, s := range []Stage{v.Years, v.Months, v.Resources} {
		if s.Failed() {
			return s.Err
		}
	}
	return nil
}

// NoContent reports that the collection has no years at all.
func (v *View) NoContent() bool {
	return v.Years.Loaded() && len(v.AvailableYears) == 0
}

// Selection is the position this view shows.
func (v *View) Selection() Selection {
	return Selection{Year: v.Year, Month: v.Month, Index: v.Carousel.Index}
}

// PrevMonth returns the month before the selected one in the year's list.
func (v *View) PrevMonth() (int, bool) {
	i := slices.Index(v.AvailableMonths, v.Month)
	if i <= 0 {
		return 0, false
	}
	return v.AvailableMonths[i-1], true
}

// NextMonth returns the month after the selected one in the year's list.
func (v *View) NextMonth() (int, bool) {
	i := slices.Index(v.AvailableMonths, v.Month)
	if i < 0 || i >= len(v.AvailableMonths)-1 {
		return 0, false
	}
	return v.AvailableMonths[i+1], true
}

type Browser struct {
	src    Source
	logger *slog.Logger
}

func NewBrowser(src Source, logger *slog.Logger) *Browser {
	return &Browser{src: src, logger: logger}
}

// Load runs the chain for sel. A requested year that is not offered falls
// back to the first year and drops the requested month and index; likewise a
// month that is not offered falls back to the first month and drops the index.
func (b *Browser) Load(ctx context.Context, sel Selection) *View {
	v := &View{
		Years:     Stage{Status: StatusIdle},
		Months:    Stage{Status: StatusIdle},
		Resources: Stage{Status: StatusIdle},
	}

	b.move(&v.Years, StatusLoading, nil)
	years, err := b.src.Years(ctx)
	if err != nil {
		b.fail(&v.Years, "years", err)
		return v
	}
	b.move(&v.Years, StatusLoaded, nil)
	v.AvailableYears = years
	if len(years) == 0 {
		return v
	}

	v.Year = years[0]
	if slices.Contains(years, sel.Year) {
		v.Year = sel.Year
	} else {
		sel = sel.WithYear(v.Year)
	}

	b.move(&v.Months, StatusLoading, nil)
	months, err := b.src.Months(ctx, v.Year)
	if err != nil {
		b.fail(&v.Months, "months", err)
		return v
	}
	b.move(&v.Months, StatusLoaded, nil)
	v.AvailableMonths = months
	if len(months) == 0 {
		return v
	}

	v.Month = months[0]
	if slices.Contains(months, sel.Month) {
		v.Month = sel.Month
	} else {
		sel = sel.WithMonth(v.Month)
	}

	b.move(&v.Resources, StatusLoading, nil)
	items, err := b.src.Resources(ctx, v.Year, v.Month)
	if err != nil {
		b.fail(&v.Resources, "resources", err)
		return v
	}
	b.move(&v.Resources, StatusLoaded, nil)
	v.Items = items
	v.Carousel = paging.NewCarousel(sel.Index, len(items))
	return v
}

func (b *Browser) fail(s *Stage, stage string, err error) {
	b.logger.Warn("period browser stage failed", "stage", stage, "error", err)
	b.move(s, StatusError, fmt.Errorf("load %s: %w", stage, err))
}

func (b *Browser) move(s *Stage, to Status, err error) {
	if terr := s.transition(to, err); terr != nil {
		b.logger.Error("period browser invariant violated", "error", terr)
	}
}
