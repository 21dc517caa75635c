package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/backend"
)

var financeSortOrders = []struct{ ID, Label string }{
	{"desc", "최신순"},
	{"asc", "오래된순"},
}

func financeQuery(r *http.Request) backend.FinanceQuery {
	q := backend.FinanceQuery{
		Page:      queryInt(r, "page", 0),
		Keyword:   queryString(r, "keyword"),
		SortOrder: queryString(r, "sort"),
		Year:      queryInt(r, "year", 0),
	}
	if q.SortOrder != "asc" {
		q.SortOrder = "desc"
	}
	return q
}

func financeValues(q backend.FinanceQuery) url.Values {
	v := url.Values{}
	v.Set("keyword", q.Keyword)
	if q.SortOrder == "asc" {
		v.Set("sort", q.SortOrder)
	}
	v.Set("year", strconv.Itoa(q.Year))
	return v
}

func (s *Server) handleFinance(w http.ResponseWriter, r *http.Request) {
	ctx, ticket := s.begin(r, "finance")
	defer ticket.Release()

	q := financeQuery(r)
	listing := s.svc.Finance.List(ctx, q)
	if superseded(w, r, ticket) {
		return
	}

	params := financeValues(q)
	yearLinks := make([]pageLink, 0, len(listing.Years))
	for _, y := range listing.Years {
		p := financeValues(q)
		p.Set("year", strconv.Itoa(y))
		yearLinks = append(yearLinks, pageLink{Label: yearLabel(y), URL: link("/resources/finance", p), Active: y == q.Year})
	}
	sortLinks := make([]pageLink, 0, len(financeSortOrders))
	for _, o := range financeSortOrders {
		p := financeValues(q)
		p.Set("sort", o.ID)
		sortLinks = append(sortLinks, pageLink{Label: o.Label, URL: link("/resources/finance", p), Active: o.ID == q.SortOrder})
	}

	s.render(w, r, map[string]any{
		"Query":      q,
		"Listing":    listing,
		"YearLinks":  yearLinks,
		"SortLinks":  sortLinks,
		"Pagination": newPagination("/resources/finance", params, listing.Pager),
		"ActiveNav":  "resources",
	}, "pages/finance.html", "partials/finance_list.html", "partials/pagination.html")
}

func (s *Server) handleFinancePreview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid report id", http.StatusBadRequest)
		return
	}

	row, err := s.svc.Finance.Preview(r.Context(), id)
	if err != nil {
		s.logger.Error("finance preview error", "report_id", id, "error", err)
		http.Error(w, "failed to load report", http.StatusBadGateway)
		return
	}
	if row == nil {
		http.NotFound(w, r)
		return
	}

	s.render(w, r, map[string]any{
		"Report":    row,
		"ActiveNav": "resources",
	}, "pages/finance_preview.html", "partials/finance_preview.html")
}
