package web

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"calckit/internal/domain"
)

// RequestTimeout bounds the handling time of a single request.
const RequestTimeout = 30 * time.Second

// compressLevel is used for both gzip and brotli.
const compressLevel = 5

// Server renders calculator pages and serves the JSON API.
type Server struct {
	calcs    domain.CalculatorService
	history  domain.HistoryService
	logger   *slog.Logger
	baseURL  string
	pretty   bool
	compress bool
	pages    *pageSet
}

// Option configures a Server.
type Option func(*Server)

// WithHistory saves each successful page computation and enables the history
// API. A nil service leaves both off.
func WithHistory(h domain.HistoryService) Option {
	return func(s *Server) { s.history = h }
}

// WithLogger sets the access and error logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = logger
	}
}

// WithBaseURL sets the absolute site URL used in JSON-LD and the sitemap.
// When empty it is derived from each request.
func WithBaseURL(u string) Option {
	return func(s *Server) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithPrettyHTML re-indents rendered pages.
func WithPrettyHTML(on bool) Option {
	return func(s *Server) { s.pretty = on }
}

// WithCompression toggles brotli/gzip response compression.
func WithCompression(on bool) Option {
	return func(s *Server) { s.compress = on }
}

// New builds a Server over calcs. Templates are parsed here so a broken
// template fails at startup.
func New(calcs domain.CalculatorService, opts ...Option) (*Server, error) {
	s := &Server{
		calcs:    calcs,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		compress: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	s.pages = pages
	return s, nil
}

// Handler returns the routed handler with the middleware stack applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	if s.compress {
		r.Use(newCompressor().Handler)
	}
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handleIndex)
	r.Get("/c/{slug}", s.handleCalculator)
	r.Post("/c/{slug}", s.handleCalculator)
	r.Get("/sitemap.xml", s.handleSitemap)

	r.Route("/api", func(r chi.Router) {
		r.Get("/calculators", s.apiList)
		r.Get("/calculators/{slug}", s.apiDescribe)
		r.Post("/calculators/{slug}", s.apiRun)
		r.Get("/history", s.apiHistory)
		r.Post("/history", s.apiRecord)
		r.Delete("/history", s.apiClearHistory)
	})

	r.NotFound(s.handleNotFound)
	return r
}

// newCompressor prefers brotli and falls back to chi's gzip and deflate.
func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(compressLevel)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}

// accessLog writes one line per request once the response is complete.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			s.logger.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

// siteURL is the configured base URL or one derived from r.
func (s *Server) siteURL(r *http.Request) string {
	if s.baseURL != "" {
		return s.baseURL
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
