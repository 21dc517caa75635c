package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/fallback"
)

// LowStock is the quantity at or below which an item is flagged.
const LowStock = 5

// rentalAPI is the subset of backend.RentalClient that RentalService requires.
type rentalAPI interface {
	List(ctx context.Context, q backend.RentalQuery) (backend.Page[domain.RentalItem], error)
	Categories(ctx context.Context) ([]string, error)
}

type RentalService struct {
	api    rentalAPI
	logger *slog.Logger
}

func NewRentalService(api rentalAPI, logger *slog.Logger) *RentalService {
	return &RentalService{api: api, logger: logger}
}

type RentalListing struct {
	Items      []domain.RentalItem
	Categories []string
	Category   string
	Keyword    string
	// Kinds and TotalQuantity summarise Items.
	Kinds         int
	TotalQuantity int
	Fallback      bool
	Notice        []string
}

// List fetches items and categories concurrently and filters the items
// locally, whether or not the backend already filtered them. Item failures
// fall back to the built-in inventory and category failures to the default
// categories, both silently.
func (s *RentalService) List(ctx context.Context, q backend.RentalQuery) *RentalListing {
	category := q.Category
	if category == "" {
		category = backend.AllCategories
	}
	listing := &RentalListing{
		Category: category,
		Keyword:  strings.TrimSpace(q.Keyword),
		Notice:   fallback.RentalNotice,
	}

	var (
		items      []domain.RentalItem
		categories []string
		g          errgroup.Group
	)
	g.Go(func() error {
		p, err := s.api.List(ctx, q)
		switch {
		case err != nil:
			s.logger.Warn("rental items unavailable, using built-in inventory", "error", err)
		case p.Unrecognised:
			s.logger.Warn("rental items response not recognised, using built-in inventory")
		default:
			items = p.Content
			return nil
		}
		items = fallback.RentalItems()
		listing.Fallback = true
		return nil
	})
	g.Go(func() error {
		cats, err := s.api.Categories(ctx)
		if err != nil {
			s.logger.Warn("rental categories unavailable, using defaults", "error", err)
		}
		categories = withAllCategories(cats)
		return nil
	})
	_ = g.Wait()

	listing.Categories = categories
	listing.Items = FilterRentalItems(items, listing.Category, listing.Keyword)
	listing.Kinds = len(listing.Items)
	for _, it := range listing.Items {
		listing.TotalQuantity += it.Quantity
	}
	return listing
}

// withAllCategories puts the "all" option in front of the backend's
// categories, or returns the default set when there are none.
func withAllCategories(cats []string) []string {
	if len(cats) == 0 {
		return fallback.RentalCategories()
	}
	out := []string{backend.AllCategories}
	for _, c := range cats {
		if c != backend.AllCategories && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// FilterRentalItems keeps the items in category (any category for "전체" or
// "") whose name contains keyword, compared case-insensitively. An empty
// keyword matches every name. The result is always a subset of items in
// their original order.
func FilterRentalItems(items []domain.RentalItem, category, keyword string) []domain.RentalItem {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(keyword))

	out := make([]domain.RentalItem, 0, len(items))
	for _, it := range items {
		if category != "" && category != backend.AllCategories && it.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(it.Name), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func IsLowStock(quantity int) bool {
	return quantity <= LowStock
}
