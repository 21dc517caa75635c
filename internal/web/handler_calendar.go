package web

import (
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func calendarLink(t time.Time) string {
	return link("/notice/calendar", url.Values{
		"year":  {strconv.Itoa(t.Year())},
		"month": {strconv.Itoa(int(t.Month()))},
	})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, ticket := s.begin(r, "calendar")
	defer ticket.Release()

	year, month := queryInt(r, "year", 0), queryInt(r, "month", 0)
	m, err := s.svc.Calendar.Month(ctx, year, month)
	if superseded(w, r, ticket) {
		return
	}

	data := map[string]any{"ActiveNav": "notice"}
	if err != nil {
		s.logger.Error("calendar error", "error", err)
		data["Error"] = "일정을 불러오는데 실패했습니다."
		data["RetryURL"] = r.URL.RequestURI()
	} else {
		data["Month"] = m
		data["PrevURL"] = calendarLink(m.Prev)
		data["NextURL"] = calendarLink(m.Next)
	}

	s.render(w, r, data, "pages/calendar.html", "partials/calendar_month.html")
}
