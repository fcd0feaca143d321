package web

import (
	"flag"
	"reflect"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.APIBaseURL != "https://mate.academy/students-api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.UserID != 0 {
		t.Fatalf("UserID = %d, want 0", cfg.UserID)
	}
	if cfg.CachePath != "" {
		t.Fatalf("CachePath = %q, want empty", cfg.CachePath)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("CacheTTL = %v, want 30s", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Fatalf("CORSAllowedOrigins = %v, want empty", cfg.CORSAllowedOrigins)
	}
	if cfg.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = true, want false")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("TODOLIST_USER_ID", "42")
	t.Setenv("TODOLIST_CACHE_TTL", "2m")
	t.Setenv("TODOLIST_CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("TODOLIST_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", cfg.UserID)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("CacheTTL = %v, want 2m", cfg.CacheTTL)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Fatalf("CORSAllowedOrigins = %v, want %v", cfg.CORSAllowedOrigins, want)
	}
	if !cfg.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = false, want true")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TODOLIST_WEB_HTTP_ADDR", "env:9000")
	t.Setenv("TODOLIST_USER_ID", "1")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-api-base-url", "http://todos.test",
		"-user-id", "7",
		"-cache-path", "/tmp/todolist.sqlite",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "http://todos.test" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.UserID != 7 {
		t.Fatalf("UserID = %d, want 7", cfg.UserID)
	}
	if cfg.CachePath != "/tmp/todolist.sqlite" {
		t.Fatalf("CachePath = %q", cfg.CachePath)
	}
}

func TestParseConfigRejectsNegativeUserID(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-user-id", "-3"}); err == nil {
		t.Fatal("expected negative user id error")
	}
}

func TestParseConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("TODOLIST_CACHE_TTL", "soon")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected invalid duration error")
	}
}
