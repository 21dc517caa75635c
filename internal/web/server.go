package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vbonduro/councilweb/internal/assets"
	"github.com/vbonduro/councilweb/internal/paging"
	"github.com/vbonduro/councilweb/internal/service"
)

// Services are the page services the server renders.
type Services struct {
	Home         *service.HomeService
	Gallery      *service.GalleryService
	Finance      *service.FinanceService
	Rental       *service.RentalService
	Matching     *service.MatchingService
	StudySupport *service.PeriodService
	Inspection   *service.PeriodService
	Calendar     *service.CalendarService
}

type Options struct {
	NaverClientID   string
	KakaoChannelURL string
}

type Server struct {
	svc       Services
	opts      Options
	templates embed.FS
	assets    assets.Store
	latest    *paging.Latest
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(svc Services, opts Options, tmpl embed.FS, as assets.Store, logger *slog.Logger) *Server {
	s := &Server{
		svc:       svc,
		opts:      opts,
		templates: tmpl,
		assets:    as,
		latest:    paging.NewLatest(),
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: templateFuncs(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /about/organization", s.handleOrganization)
	s.mux.HandleFunc("GET /pledge", s.handlePledge)
	s.mux.HandleFunc("GET /contact/kakao", s.handleKakao)

	s.mux.HandleFunc("GET /notice/gallery", s.handleGallery)
	s.mux.HandleFunc("GET /notice/gallery/slide", s.handleGallerySlide)
	s.mux.HandleFunc("GET /notice/gallery/{id}", s.handleGalleryDetail)
	s.mux.HandleFunc("GET /notice/study-support", s.handleStudySupport)
	s.mux.HandleFunc("GET /notice/calendar", s.handleCalendar)

	s.mux.HandleFunc("GET /resources/finance", s.handleFinance)
	s.mux.HandleFunc("GET /resources/finance/{id}/preview", s.handleFinancePreview)
	s.mux.HandleFunc("GET /resources/rental", s.handleRental)
	s.mux.HandleFunc("GET /resources/inspection", s.handleInspection)

	s.mux.HandleFunc("GET /matching", s.handleMatching)
	s.mux.HandleFunc("GET /matching/{id}", s.handleMatchingDetail)
	s.mux.HandleFunc("POST /matching/{id}/bookmark", s.handleToggleBookmark)

	s.mux.HandleFunc("GET /assets/{key...}", s.handleAsset)
}

// securityHeaders sets the framing, sniffing and content policy headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"font-src https://fonts.gstatic.com; "+
				"img-src 'self' data: http: https:; "+
				"frame-src 'self' http: https:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"htmx", isHTMX(r),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

const visitorCookie = "cw_visitor"

type visitorKey struct{}

// visitor gives every browser a stable random id, kept in a cookie, for
// bookmarks, view counting and request supersession.
func visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(visitorCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey{}, id)))
	})
}

func visitorID(r *http.Request) string {
	id, _ := r.Context().Value(visitorKey{}).(string)
	return id
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(visitor(s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsFragment reports whether r swaps a fragment into an existing page.
// History restores re-fetch a whole page after the cached copy was evicted,
// so they get the full document like any direct load.
func wantsFragment(r *http.Request) bool {
	return isHTMX(r) && r.Header.Get("HX-History-Restore-Request") != "true"
}

// begin registers a fragment request as the newest request of this visitor
// for view. Its context is cancelled as soon as a newer fragment request for
// the same view begins. Full page loads are never tracked: two tabs on the
// same page must both render, so they keep the request context and get a
// nil ticket. The ticket must be released.
func (s *Server) begin(r *http.Request, view string) (context.Context, *paging.Ticket) {
	if !wantsFragment(r) {
		return r.Context(), nil
	}
	return s.latest.Begin(r.Context(), visitorID(r)+"|"+view)
}

// superseded answers 204 to a fragment request whose ticket is no longer the
// newest, so a stale response never replaces the fragment of a newer one.
func superseded(w http.ResponseWriter, r *http.Request, t *paging.Ticket) bool {
	if t.Current() || !wantsFragment(r) {
		return false
	}
	w.WriteHeader(http.StatusNoContent)
	return true
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses file plus any templates it uses and executes the
// block named after file, so partials/gallery_list.html runs
// {{define "gallery_list"}}.
func (s *Server) renderPartial(w http.ResponseWriter, file string, data any, extra ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, append([]string{file}, extra...)...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	name := path.Base(file)
	return tmpl.ExecuteTemplate(w, strings.TrimSuffix(name, path.Ext(name)), data)
}

// render answers fragment requests with the fragment and everything else
// with the full page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, data map[string]any, page, fragment string, extra ...string) {
	if fragment != "" {
		w.Header().Add("Vary", "HX-Request")
	}
	if wantsFragment(r) && fragment != "" {
		if err := s.renderPartial(w, fragment, data, extra...); err != nil {
			s.logger.Error("render partial error", "template", fragment, "error", err)
		}
		return
	}

	data["NaverClientID"] = s.opts.NaverClientID
	files := append([]string{"base.html", page}, extra...)
	if fragment != "" {
		files = append(files, fragment)
	}
	if err := s.renderPage(w, data, files...); err != nil {
		s.logger.Error("render page error", "template", page, "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
