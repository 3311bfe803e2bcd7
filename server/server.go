package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/iedon/game-catalog-go/config"
	"github.com/iedon/game-catalog-go/site"
)

const shutdownGrace = 10 * time.Second

// Server ties HTTP handlers to the site service.
type Server struct {
	cfg          *config.Config
	svc          *site.Service
	logger       *slog.Logger
	mux          *http.ServeMux
	static       *staticFiles
	serverHeader string
	contacts     *clientLimiter
}

// New constructs a server instance.
func New(cfg *config.Config, svc *site.Service, logger *slog.Logger, serverHeader string) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	srv := &Server{
		cfg:          cfg,
		svc:          svc,
		logger:       logger,
		mux:          http.NewServeMux(),
		static:       newStaticFiles(cfg.OutputDir),
		serverHeader: strings.TrimSpace(serverHeader),
		contacts:     newClientLimiter(cfg.Contact.RatePerMinute, clock.NewClock()),
	}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/api/search", s.handleSearch)
	s.mux.HandleFunc("/api/preferences", s.handlePreferences)
	s.mux.HandleFunc("/catalog.json", s.handleSearchIndex)
	s.mux.HandleFunc("/contact.html", s.handleContact)
	s.mux.HandleFunc("/contact", s.handleContact)
	s.mux.HandleFunc("/", s.handlePage)
}

// Handler returns the mux wrapped in the logging and header middleware.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = s.logRequests(h)
	if s.serverHeader != "" {
		h = withHeader(h, "Server", s.serverHeader)
	}
	return h
}

// Start refreshes the static tree, then serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.svc.BuildStatic(ctx); err != nil {
		s.logger.Warn("static build", "error", err)
	}

	ln, err := listen(s.cfg.Listen)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("shutdown", "error", err)
		}
	}()

	s.logger.Info("listening", "addr", ln.Addr().String(), "tls", s.cfg.EnableTLS)
	if s.cfg.EnableTLS {
		err = httpServer.ServeTLS(ln, s.cfg.TLSCert, s.cfg.TLSKey)
	} else {
		err = httpServer.Serve(ln)
	}
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}

func withHeader(next http.Handler, key, value string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(key, value)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.written,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.written += n
	return n, err
}
