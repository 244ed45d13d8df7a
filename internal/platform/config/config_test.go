package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func baseConfig() Config {
	return Config{
		BackendURL:         "http://localhost:3001",
		BackendTimeout:     time.Second,
		BackendAddr:        ":3001",
		LoginUsername:      "admin",
		LoginPassword:      "secret",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 60,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("BACKEND_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.BackendURL != "http://localhost:3001" {
		t.Fatalf("unexpected backend url %q", cfg.BackendURL)
	}
	if cfg.BackendTimeout != 8*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.BackendTimeout)
	}
	if cfg.Addr != ":3000" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
}

func TestValidateRequiresCredentials(t *testing.T) {
	cfg := baseConfig()
	cfg.LoginPassword = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing password error")
	}
}

func TestValidateProductionRules(t *testing.T) {
	cfg := baseConfig()
	cfg.Environment = "production"
	cfg.SessionSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected short secret rejected")
	}

	cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected plain password rejected in production")
	}

	cfg.LoginPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid production config, got %v", err)
	}

	if err := cfg.ValidateBackend(); err == nil {
		t.Fatal("expected DATABASE_URL required for production backend")
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOGIN_USERNAME=fromfile\nFORM_IDLE_TTL=5m\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOGIN_USERNAME", "fromenv")
	t.Setenv("FORM_IDLE_TTL", "")
	os.Unsetenv("FORM_IDLE_TTL")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := Load()
	if cfg.LoginUsername != "fromenv" {
		t.Fatalf("expected env to win, got %q", cfg.LoginUsername)
	}
	if cfg.FormIdleTTL != 5*time.Minute {
		t.Fatalf("expected value from file, got %v", cfg.FormIdleTTL)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file ignored, got %v", err)
	}
}
