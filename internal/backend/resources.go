package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/domain"
)

// ResourcesClient reads period-indexed media collections such as the monthly
// study-support programme posters. It satisfies period.Source.
type ResourcesClient struct {
	c        *Client
	category string
}

func NewResourcesClient(c *Client, category string) *ResourcesClient {
	return &ResourcesClient{c: c, category: category}
}

func (r *ResourcesClient) Years(ctx context.Context) ([]int, error) {
	var years []int
	if err := r.c.Get(ctx, fmt.Sprintf("/api/resources/%s/years", url.PathEscape(r.category)), nil, &years); err != nil {
		return nil, err
	}
	return years, nil
}

func (r *ResourcesClient) Months(ctx context.Context, year int) ([]int, error) {
	var months []int
	path := fmt.Sprintf("/api/resources/%s/years/%d/months", url.PathEscape(r.category), year)
	if err := r.c.Get(ctx, path, nil, &months); err != nil {
		return nil, err
	}
	return months, nil
}

func (r *ResourcesClient) Resources(ctx context.Context, year, month int) ([]domain.Resource, error) {
	v := url.Values{}
	v.Set("year", strconv.Itoa(year))
	v.Set("month", strconv.Itoa(month))
	path := fmt.Sprintf("/api/resources/%s", url.PathEscape(r.category))
	p, err := getPage[domain.Resource](ctx, r.c, path, v)
	if err != nil {
		return nil, err
	}
	for i := range p.Content {
		p.Content[i].ImageURL = r.c.ResolveURL(p.Content[i].ImageURL)
	}
	return p.Content, nil
}
