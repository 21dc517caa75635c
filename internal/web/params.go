package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vbonduro/councilweb/internal/paging"
)

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// queryInt reads a non-negative integer query parameter; anything else is def.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// querySignedInt is queryInt for parameters that may be negative, such as a
// carousel index stepped back from zero.
func querySignedInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// link builds path?query, dropping empty and zero-valued parameters.
func link(path string, params url.Values) string {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" && v != "0" {
				q.Add(k, v)
			}
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

type pageLink struct {
	Label    string
	URL      string
	Active   bool
	Disabled bool
}

// pagination is the first/prev/numbers/next/last control of a listing.
type pagination struct {
	Show    bool
	First   pageLink
	Prev    pageLink
	Numbers []pageLink
	Next    pageLink
	Last    pageLink
}

// newPagination builds the controls for p. Every link keeps params and only
// replaces "page".
func newPagination(path string, params url.Values, p paging.Pager) pagination {
	at := func(page int) string {
		q := url.Values{}
		for k, v := range params {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		return link(path, q)
	}

	pg := pagination{
		Show:  p.Show(),
		First: pageLink{Label: "«", URL: at(0), Disabled: !p.HasPrev()},
		Prev:  pageLink{Label: "‹", URL: at(p.Prev()), Disabled: !p.HasPrev()},
		Next:  pageLink{Label: "›", URL: at(p.Next()), Disabled: !p.HasNext()},
		Last:  pageLink{Label: "»", URL: at(p.Last()), Disabled: !p.HasNext()},
	}
	for _, n := range p.Numbers() {
		pg.Numbers = append(pg.Numbers, pageLink{
			Label:  strconv.Itoa(n + 1),
			URL:    at(n),
			Active: n == p.Page,
		})
	}
	return pg
}
