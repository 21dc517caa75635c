package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vbonduro/councilweb/internal/domain"
)

// calendarAPI is the subset of backend.CalendarClient that CalendarService requires.
type calendarAPI interface {
	Events(ctx context.Context, year, month int) ([]domain.CalendarEvent, error)
}

type CalendarService struct {
	api calendarAPI
	now func() time.Time
}

func NewCalendarService(api calendarAPI) *CalendarService {
	return &CalendarService{api: api, now: time.Now}
}

type CalendarMonth struct {
	Year, Month int
	Events      []domain.CalendarEvent
	Prev, Next  time.Time
}

// Month returns the events of (year, month). A zero year or an out of range
// month selects the current month.
func (s *CalendarService) Month(ctx context.Context, year, month int) (*CalendarMonth, error) {
	if year <= 0 || month < 1 || month > 12 {
		now := s.now()
		year, month = now.Year(), int(now.Month())
	}

	events, err := s.api.Events(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return &CalendarMonth{
		Year:   year,
		Month:  month,
		Events: events,
		Prev:   first.AddDate(0, -1, 0),
		Next:   first.AddDate(0, 1, 0),
	}, nil
}
