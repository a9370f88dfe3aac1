package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/config"
	"github.com/matzehuels/uithings/pkg/pipeline"
	"github.com/matzehuels/uithings/pkg/scene"
)

// shutdownTimeout bounds how long in-flight requests get after the context
// passed to ListenAndServe is cancelled.
const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger

	// Render defaults applied when a request leaves them out.
	width, height, offset float64

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default is the runner's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaults sets the canvas size and label offset used when a render
// request does not specify them.
func WithDefaults(c config.Config) Option {
	return func(s *Server) {
		s.width, s.height = c.Canvas.Width, c.Canvas.Height
		s.offset = c.Annotate.Offset
	}
}

// New builds a server around runner. A nil runner gets an uncached one.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, nil)
	}
	s := &Server{
		runner: runner,
		logger: runner.Logger,
		width:  scene.DefaultCanvas.W,
		height: scene.DefaultCanvas.H,
		offset: annotate.DefaultOffset,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/demos", s.handleListDemos)
		r.Get("/demos/{id}", s.handleGetDemo)
		r.Get("/demos/{id}/render", s.handleRender)
		r.Post("/place", s.handlePlace)
		r.Get("/catalog.{format}", s.handleCatalog)
	})
	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
