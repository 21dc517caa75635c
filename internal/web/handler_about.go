package web

import (
	"net/http"

	"github.com/vbonduro/councilweb/internal/service"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	home := s.svc.Home.Load(r.Context())
	s.render(w, r, map[string]any{
		"Home":      home,
		"ActiveNav": "home",
	}, "pages/home.html", "")
}

func (s *Server) handleOrganization(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, map[string]any{
		"Roster":    service.Organization(),
		"ActiveNav": "about",
	}, "pages/organization.html", "")
}

func (s *Server) handlePledge(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, map[string]any{
		"Summary":   service.Pledges(),
		"ActiveNav": "pledge",
	}, "pages/pledge.html", "")
}

func (s *Server) handleKakao(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, map[string]any{
		"Channel":   service.Kakao(s.opts.KakaoChannelURL),
		"ActiveNav": "contact",
	}, "pages/kakao.html", "")
}
