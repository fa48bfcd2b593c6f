package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blueprint-dev/blueprint/internal/dev"
	blueprinterrors "github.com/blueprint-dev/blueprint/internal/errors"
	"github.com/blueprint-dev/blueprint/pkg/middleware"
	"github.com/blueprint-dev/blueprint/pkg/render"
)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address, e.g. "localhost:3000".
	Addr string

	// DocumentsDir is the directory holding page documents.
	DocumentsDir string

	// AssetsDir is the directory of static files served under /assets/.
	// Empty disables asset serving.
	AssetsDir string

	// HotReload injects the live reload client into served pages.
	HotReload bool

	// Render configures HTML serialization.
	Render render.Config

	// PageLang is the default lang attribute for served pages.
	PageLang string

	// PageHead holds raw head fragments added to every served page.
	PageHead []string

	// Logger receives server diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves rendered documents with live reload for development.
type Server struct {
	config   Config
	logger   *slog.Logger
	renderer *render.Renderer
	hub      *dev.ReloadHub
	router   chi.Router
	http     *http.Server
}

// New creates a preview server.
func New(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:   config,
		logger:   logger,
		renderer: render.New(config.Render),
		hub:      dev.NewReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter assembles the middleware stack and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(req *http.Request) bool {
			return req.URL.Path != "/metrics" && req.URL.Path != dev.ReloadPath
		}),
	))

	r.Handle("/metrics", promhttp.Handler())
	r.Get(dev.ReloadPath, s.hub.HandleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if s.config.AssetsDir != "" {
		r.Get(AssetsPrefix+"*", s.serveAsset)
		r.Head(AssetsPrefix+"*", s.serveAsset)
	}

	r.Get("/", s.handleIndex)
	r.Get("/{name}", s.handleDocument)

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Hub returns the reload hub so callers can broadcast change events.
func (s *Server) Hub() *dev.ReloadHub {
	return s.hub
}

// NotifyChange tells connected browsers that a file changed. Errors from a
// failed reload render are pushed as an overlay instead.
func (s *Server) NotifyChange(path string) {
	s.logger.Info("document changed", "path", path)
	s.hub.NotifyReload(path)
	middleware.RecordReload()
	middleware.SetReloadClients(s.hub.ClientCount())
}

// NotifyError pushes a document error overlay to connected browsers.
func (s *Server) NotifyError(err error) {
	var be *blueprinterrors.BlueprintError
	if errors.As(err, &be) {
		middleware.RecordDocumentError(be.Code)
		s.hub.NotifyError(be.FormatCompact())
		return
	}
	s.hub.NotifyError(err.Error())
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.Close()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return blueprinterrors.New("E080").
				WithDetail("Listen on " + s.config.Addr + " failed").
				Wrap(err)
		}
		return nil
	}
}
