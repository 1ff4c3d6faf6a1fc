package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers restoration; unset so viper sees the keys as absent.
	for _, key := range []string{"APP_ENV", "LISTEN_ADDR", "DATABASE_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Expected env local, got %q", cfg.Env)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("Expected listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DB.Path != "scores.db" {
		t.Errorf("Expected database path scores.db, got %q", cfg.DB.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("DATABASE_PATH", "/tmp/parlor.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("Expected env production, got %q", cfg.Env)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("Expected overridden listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.DB.Path != "/tmp/parlor.db" {
		t.Errorf("Expected overridden database path, got %q", cfg.DB.Path)
	}
}
