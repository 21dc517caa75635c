package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/service"
)

func (s *Server) handleMatching(w http.ResponseWriter, r *http.Request) {
	ctx, ticket := s.begin(r, "matching")
	defer ticket.Release()

	tab := service.ParseMatchingType(queryString(r, "tab"))
	board, err := s.svc.Matching.Board(ctx, visitorID(r), tab)
	if superseded(w, r, ticket) {
		return
	}
	if err != nil {
		s.logger.Error("matching board error", "error", err)
		http.Error(w, "failed to load matching board", http.StatusInternalServerError)
		return
	}

	tabLinks := make([]pageLink, 0, len(board.Tabs))
	for _, t := range board.Tabs {
		tabLinks = append(tabLinks, pageLink{
			Label:  t.Label,
			URL:    link("/matching", url.Values{"tab": {string(t.Type)}}),
			Active: t.Type == board.Tab,
		})
	}

	s.render(w, r, map[string]any{
		"Board":     board,
		"TabLinks":  tabLinks,
		"ActiveNav": "matching",
	}, "pages/matching.html", "partials/matching_list.html", "partials/bookmark_button.html")
}

func (s *Server) handleMatchingDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	view, err := s.svc.Matching.Detail(r.Context(), visitorID(r), id, absoluteURL(r))
	if err != nil {
		s.logger.Error("matching detail error", "post_id", id, "error", err)
		http.Error(w, "failed to load matching post", http.StatusInternalServerError)
		return
	}
	if view == nil {
		http.NotFound(w, r)
		return
	}

	s.render(w, r, map[string]any{
		"View":      view,
		"Bookmark":  bookmarkButton{ID: id, Bookmarked: view.Bookmarked},
		"ActiveNav": "matching",
	}, "pages/matching_detail.html", "", "partials/bookmark_button.html")
}

type bookmarkButton struct {
	ID         int64
	Bookmarked bool
}

func (s *Server) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	on, err := s.svc.Matching.ToggleBookmark(r.Context(), visitorID(r), id)
	if errors.Is(err, service.ErrUnknownPost) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("toggle bookmark error", "post_id", id, "error", err)
		http.Error(w, "failed to toggle bookmark", http.StatusInternalServerError)
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, "/matching/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}
	if err := s.renderPartial(w, "partials/bookmark_button.html", bookmarkButton{ID: id, Bookmarked: on}); err != nil {
		s.logger.Error("render partial error", "error", err)
	}
}

// absoluteURL reconstructs the address the visitor requested, for share links.
func absoluteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
