package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"TODOLIST_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TODOLIST_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if err := LoadDotEnv("   "); err != nil {
		t.Fatalf("LoadDotEnv(blank) error = %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TODOLIST_TEST_PORT=456\nTODOLIST_TEST_DOTENV_ONLY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("TODOLIST_TEST_PORT", "789")
	t.Cleanup(func() { _ = os.Unsetenv("TODOLIST_TEST_DOTENV_ONLY") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 789 {
		t.Fatalf("Port = %d, want 789", cfg.Port)
	}
	if got := os.Getenv("TODOLIST_TEST_DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("TODOLIST_TEST_DOTENV_ONLY = %q, want %q", got, "from-file")
	}
}
