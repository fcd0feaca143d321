package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/todolist/internal/platform/timeouts"
	"github.com/louisbranch/todolist/internal/services/web/app"
	"github.com/louisbranch/todolist/internal/services/web/integration/cache"
	"github.com/louisbranch/todolist/internal/services/web/module"
	"github.com/louisbranch/todolist/internal/services/web/modules"
	"github.com/louisbranch/todolist/internal/services/web/modules/todos"
	"github.com/louisbranch/todolist/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/todolist/internal/services/web/static"
	webstorage "github.com/louisbranch/todolist/internal/services/web/storage"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the remote todos REST API. Empty runs in degraded mode.
	APIBaseURL string
	// UserID selects whose todos are shown. Zero renders the user warning.
	UserID int
	// CachePath is the SQLite cache file. Empty disables the cache.
	CachePath string
	CacheTTL  time.Duration
	// AllowedOrigins may read the JSON API cross-origin.
	AllowedOrigins      []string
	TrustForwardedProto bool
	// HTTPClient overrides the client used for upstream calls.
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      webstorage.Store
	logger     *log.Logger
}

// NewServer builds a configured web server. It opens the cache store when
// configured; the caller owns Close.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if strings.TrimSpace(config.APIBaseURL) == "" {
		config.Logger.Printf("todos api base url is empty; serving in degraded mode")
	}

	opened, err := cache.OpenStore(ctx, config.CachePath, config.Logger)
	if err != nil {
		return nil, err
	}
	var store webstorage.Store
	if opened != nil {
		store = opened
	}

	gateway := todos.NewCachedGateway(
		todos.NewHTTPGateway(config.APIBaseURL, config.HTTPClient),
		store,
		config.CacheTTL,
		config.Logger,
	)
	handler, err := NewHandler(config, gateway)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          config.Logger,
		},
		store:  store,
		logger: config.Logger,
	}, nil
}

// NewHandler composes the root handler around gateway.
func NewHandler(config Config, gateway todos.TodoGateway) (http.Handler, error) {
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	userID := config.UserID
	deps := modules.Dependencies{
		Module: module.Dependencies{
			ResolveUserID: func(*http.Request) int { return userID },
			SchemePolicy:  policy,
			Logger:        config.Logger,
		},
		TodoGateway:    gateway,
		AllowedOrigins: config.AllowedOrigins,
	}
	staticFS, err := static.Assets()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}
	return app.Compose(app.ComposeInput{
		Modules:             modules.DefaultModules(deps),
		StaticFS:            staticFS,
		RequestSchemePolicy: policy,
		Logger:              config.Logger,
	})
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the cache store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Printf("close web cache store: %v", err)
	}
}
