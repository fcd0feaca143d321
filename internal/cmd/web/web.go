// Package web parses web command flags and launches the todo list server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/todolist/internal/platform/cmd"
	"github.com/louisbranch/todolist/internal/platform/otel"
	"github.com/louisbranch/todolist/internal/services/web"
)

// DotEnvPath is the optional dotenv file loaded before env parsing.
const DotEnvPath = ".env"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"TODOLIST_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL          string        `env:"TODOLIST_API_BASE_URL" envDefault:"https://mate.academy/students-api"`
	UserID              int           `env:"TODOLIST_USER_ID"`
	CachePath           string        `env:"TODOLIST_CACHE_PATH"`
	CacheTTL            time.Duration `env:"TODOLIST_CACHE_TTL" envDefault:"30s"`
	CORSAllowedOrigins  []string      `env:"TODOLIST_CORS_ALLOWED_ORIGINS" envSeparator:","`
	TrustForwardedProto bool          `env:"TODOLIST_TRUST_FORWARDED_PROTO"`

	Telemetry otel.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg, DotEnvPath); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Remote todos REST API base URL")
	fs.IntVar(&cfg.UserID, "user-id", cfg.UserID, "User whose todos are shown")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "SQLite list cache path (empty disables the cache)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.UserID < 0 {
		return Config{}, fmt.Errorf("user id must not be negative, got %d", cfg.UserID)
	}
	cfg.CORSAllowedOrigins = trimOrigins(cfg.CORSAllowedOrigins)
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, cfg.Telemetry, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			APIBaseURL:          cfg.APIBaseURL,
			UserID:              cfg.UserID,
			CachePath:           cfg.CachePath,
			CacheTTL:            cfg.CacheTTL,
			AllowedOrigins:      cfg.CORSAllowedOrigins,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Logger:              log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func trimOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
