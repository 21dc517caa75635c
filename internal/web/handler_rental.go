package web

import (
	"net/http"
	"net/url"

	"github.com/vbonduro/councilweb/internal/backend"
)

func (s *Server) handleRental(w http.ResponseWriter, r *http.Request) {
	ctx, ticket := s.begin(r, "rental")
	defer ticket.Release()

	q := backend.RentalQuery{
		Category: queryString(r, "category"),
		Keyword:  queryString(r, "keyword"),
	}
	listing := s.svc.Rental.List(ctx, q)
	if superseded(w, r, ticket) {
		return
	}

	categoryLinks := make([]pageLink, 0, len(listing.Categories))
	for _, c := range listing.Categories {
		p := url.Values{"keyword": {listing.Keyword}}
		if c != backend.AllCategories {
			p.Set("category", c)
		}
		categoryLinks = append(categoryLinks, pageLink{Label: c, URL: link("/resources/rental", p), Active: c == listing.Category})
	}

	s.render(w, r, map[string]any{
		"Listing":       listing,
		"CategoryLinks": categoryLinks,
		"ActiveNav":     "resources",
	}, "pages/rental.html", "partials/rental_list.html")
}
