package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/domain"
)

type CalendarClient struct {
	c *Client
}

func NewCalendarClient(c *Client) *CalendarClient {
	return &CalendarClient{c: c}
}

// Events returns the events of the given month.
func (cc *CalendarClient) Events(ctx context.Context, year, month int) ([]domain.CalendarEvent, error) {
	v := url.Values{}
	v.Set("year", strconv.Itoa(year))
	v.Set("month", strconv.Itoa(month))
	p, err := getPage[domain.CalendarEvent](ctx, cc.c, "/api/calendar/events", v)
	if err != nil {
		return nil, err
	}
	return p.Content, nil
}
