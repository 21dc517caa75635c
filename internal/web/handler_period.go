package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/period"
	"github.com/vbonduro/councilweb/internal/service"
)

// periodPage is a period browser view with every navigation link resolved.
type periodPage struct {
	Title      string
	View       *period.View
	YearLinks  []pageLink
	MonthLinks []pageLink
	PrevMonth  string
	NextMonth  string
	PrevImage  string
	NextImage  string
	RetryURL   string
}

func periodLink(path string, sel period.Selection) string {
	return link(path, url.Values{
		"year":  {strconv.Itoa(sel.Year)},
		"month": {strconv.Itoa(sel.Month)},
		"i":     {strconv.Itoa(sel.Index)},
	})
}

func newPeriodPage(path, title string, requested period.Selection, v *period.View) periodPage {
	sel := v.Selection()
	pp := periodPage{
		Title:    title,
		View:     v,
		RetryURL: periodLink(path, requested),
	}

	for _, y := range v.AvailableYears {
		pp.YearLinks = append(pp.YearLinks, pageLink{
			Label:  yearLabel(y),
			URL:    periodLink(path, sel.WithYear(y)),
			Active: y == v.Year,
		})
	}
	for _, m := range v.AvailableMonths {
		pp.MonthLinks = append(pp.MonthLinks, pageLink{
			Label:  strconv.Itoa(m) + "월",
			URL:    periodLink(path, sel.WithMonth(m)),
			Active: m == v.Month,
		})
	}
	if m, ok := v.PrevMonth(); ok {
		pp.PrevMonth = periodLink(path, sel.WithMonth(m))
	}
	if m, ok := v.NextMonth(); ok {
		pp.NextMonth = periodLink(path, sel.WithMonth(m))
	}
	if v.Carousel.Multiple() {
		pp.PrevImage = periodLink(path, sel.WithIndex(v.Carousel.Prev()))
		pp.NextImage = periodLink(path, sel.WithIndex(v.Carousel.Next()))
	}
	return pp
}

func (s *Server) handlePeriod(w http.ResponseWriter, r *http.Request, view, nav, path string, svc *service.PeriodService) {
	ctx, ticket := s.begin(r, view)
	defer ticket.Release()

	requested := period.Selection{
		Year:  queryInt(r, "year", 0),
		Month: queryInt(r, "month", 0),
		Index: querySignedInt(r, "i", 0),
	}
	v := svc.Browse(ctx, requested)
	if superseded(w, r, ticket) {
		return
	}

	s.render(w, r, map[string]any{
		"Page":      newPeriodPage(path, svc.Title, requested, v),
		"ActiveNav": nav,
	}, "pages/period.html", "partials/period_view.html")
}

func (s *Server) handleStudySupport(w http.ResponseWriter, r *http.Request) {
	s.handlePeriod(w, r, "study-support", "notice", "/notice/study-support", s.svc.StudySupport)
}

func (s *Server) handleInspection(w http.ResponseWriter, r *http.Request) {
	s.handlePeriod(w, r, "inspection", "resources", "/resources/inspection", s.svc.Inspection)
}
