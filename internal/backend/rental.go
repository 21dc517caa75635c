package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vbonduro/councilweb/internal/domain"
)

// AllCategories is the rental category label meaning "no filter".
const AllCategories = "전체"

type RentalQuery struct {
	Category string
	Keyword  string
}

func (q RentalQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" && q.Category != AllCategories {
		v.Set("category", q.Category)
	}
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		v.Set("keyword", kw)
	}
	return v
}

type RentalClient struct {
	c *Client
}

func NewRentalClient(c *Client) *RentalClient {
	return &RentalClient{c: c}
}

// List returns the rental items. The endpoint answers with a bare array, but a
// page object is accepted too.
func (r *RentalClient) List(ctx context.Context, q RentalQuery) (Page[domain.RentalItem], error) {
	return getPage[domain.RentalItem](ctx, r.c, "/api/rental", q.values())
}

func (r *RentalClient) Detail(ctx context.Context, id int64) (*domain.RentalItem, error) {
	var item domain.RentalItem
	if err := r.c.Get(ctx, fmt.Sprintf("/api/rental/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RentalClient) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := r.c.Get(ctx, "/api/rental/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *RentalClient) Create(ctx context.Context, item domain.RentalItem) (*domain.RentalItem, error) {
	var out domain.RentalItem
	if err := r.c.Post(ctx, "/api/rental", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RentalClient) Update(ctx context.Context, id int64, item domain.RentalItem) (*domain.RentalItem, error) {
	var out domain.RentalItem
	if err := r.c.Put(ctx, fmt.Sprintf("/api/rental/%d", id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RentalClient) Delete(ctx context.Context, id int64) error {
	return r.c.Delete(ctx, fmt.Sprintf("/api/rental/%d", id))
}

func (r *RentalClient) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.RentalItem, error) {
	var out domain.RentalItem
	body := map[string]int{"quantity": quantity}
	if err := r.c.Put(ctx, fmt.Sprintf("/api/rental/%d/quantity", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RentalClient) BulkCreate(ctx context.Context, items []domain.RentalItem) ([]domain.RentalItem, error) {
	var out []domain.RentalItem
	body := map[string][]domain.RentalItem{"items": items}
	if err := r.c.Post(ctx, "/api/rental/bulk", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
