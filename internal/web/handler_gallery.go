package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/vbonduro/councilweb/internal/backend"
)

var gallerySearchTypes = []struct{ ID, Label string }{
	{backend.SearchAll, "제목 + 내용"},
	{backend.SearchTitle, "제목"},
	{backend.SearchContent, "내용"},
}

func galleryQuery(r *http.Request) backend.GalleryQuery {
	q := backend.GalleryQuery{
		Page:       queryInt(r, "page", 0),
		Keyword:    queryString(r, "keyword"),
		SearchType: queryString(r, "searchType"),
	}
	switch q.SearchType {
	case backend.SearchTitle, backend.SearchContent:
	default:
		q.SearchType = backend.SearchAll
	}
	return q
}

// galleryValues are the query parameters that select a listing, less the page.
func galleryValues(q backend.GalleryQuery) url.Values {
	v := url.Values{}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
		v.Set("searchType", q.SearchType)
	}
	return v
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	ctx, ticket := s.begin(r, "gallery")
	defer ticket.Release()

	q := galleryQuery(r)
	listing, err := s.svc.Gallery.List(ctx, q)
	if superseded(w, r, ticket) {
		return
	}

	params := galleryValues(q)
	data := map[string]any{
		"Query":       q,
		"SearchTypes": gallerySearchTypes,
		"RetryURL":    link("/notice/gallery", withPage(params, q.Page)),
		"ActiveNav":   "notice",
	}
	if err != nil {
		s.logger.Error("gallery list error", "error", err)
		data["Error"] = "갤러리를 불러오는데 실패했습니다."
	} else {
		data["Listing"] = listing
		data["Pagination"] = newPagination("/notice/gallery", params, listing.Pager)
		data["SlideBase"] = link("/notice/gallery/slide", withPage(params, q.Page))
	}

	s.render(w, r, data, "pages/gallery.html", "partials/gallery_list.html", "partials/pagination.html")
}

func (s *Server) handleGallerySlide(w http.ResponseWriter, r *http.Request) {
	ctx, ticket := s.begin(r, "gallery-slide")
	defer ticket.Release()

	q := galleryQuery(r)
	slide, err := s.svc.Gallery.Slide(ctx, q, querySignedInt(r, "i", 0))
	if superseded(w, r, ticket) {
		return
	}
	if err != nil {
		s.logger.Error("gallery slide error", "error", err)
		http.Error(w, "failed to load gallery", http.StatusBadGateway)
		return
	}

	params := withPage(galleryValues(q), q.Page)
	at := func(i int) string {
		p := url.Values{}
		for k, v := range params {
			p[k] = v
		}
		p.Set("i", strconv.Itoa(i))
		return link("/notice/gallery/slide", p)
	}

	s.render(w, r, map[string]any{
		"Slide":     slide,
		"PrevURL":   at(slide.Carousel.Prev()),
		"NextURL":   at(slide.Carousel.Next()),
		"CloseURL":  link("/notice/gallery", params),
		"ActiveNav": "notice",
	}, "pages/gallery_slide.html", "partials/gallery_slide.html")
}

func (s *Server) handleGalleryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid gallery id", http.StatusBadRequest)
		return
	}

	post, err := s.svc.Gallery.Open(r.Context(), visitorID(r), id)
	if err != nil {
		s.logger.Error("gallery detail error", "gallery_id", id, "error", err)
		http.Error(w, "failed to load gallery post", http.StatusBadGateway)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	s.render(w, r, map[string]any{
		"Post":      post,
		"ActiveNav": "notice",
	}, "pages/gallery_detail.html", "")
}

func withPage(params url.Values, page int) url.Values {
	out := url.Values{}
	for k, v := range params {
		out[k] = v
	}
	if page > 0 {
		out.Set("page", strconv.Itoa(page))
	}
	return out
}
