package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andrasyah/preferensi-api/internal/config"
)

// clearEnv blanks every environment variable the loader reads so tests
// are independent of the host environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_PATH", "TOKEN_KEY", "BCRYPT_COST", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":3000" {
		t.Fatalf("expected default addr :3000, got %s", cfg.Server.Addr)
	}
	if cfg.Database.Path != "preferensi.db" {
		t.Fatalf("expected default db path preferensi.db, got %s", cfg.Database.Path)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Server.ReadHeaderTimeout != 10*time.Second {
		t.Fatalf("expected read header timeout 10s, got %v", cfg.Server.ReadHeaderTimeout)
	}
}

func TestLoad_YAMLWithEnvExpansion(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_TOKEN_SECRET", "a-very-long-secret-value-for-tests-123")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":8080"
  shutdown_timeout: "15s"
database:
  path: "/tmp/test.db"
auth:
  token_secret: "${TEST_TOKEN_SECRET}"
  bcrypt_cost: 10
logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Auth.TokenSecret != "a-very-long-secret-value-for-tests-123" {
		t.Fatalf("expected expanded token secret, got %q", cfg.Auth.TokenSecret)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Fatalf("expected shutdown timeout 15s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Logging.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_KEY", "environment-supplied-secret-of-32-chars!")
	t.Setenv("BCRYPT_COST", "6")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9999" {
		t.Fatalf("expected addr :9999, got %s", cfg.Server.Addr)
	}
	if cfg.Auth.TokenSecret != "environment-supplied-secret-of-32-chars!" {
		t.Fatalf("unexpected token secret %q", cfg.Auth.TokenSecret)
	}
	if cfg.Auth.BcryptCost != 6 {
		t.Fatalf("expected bcrypt cost 6, got %d", cfg.Auth.BcryptCost)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  idle_timeout: \"not-a-duration\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		cost    int
		wantErr string
	}{
		{"missing secret", "", 12, "token_secret"},
		{"short secret", "too-short", 12, "32 characters"},
		{"cost too low", strings.Repeat("s", 32), 3, "bcrypt_cost"},
		{"cost too high", strings.Repeat("s", 32), 15, "bcrypt_cost"},
		{"valid", strings.Repeat("s", 32), 12, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				Auth: config.AuthConfig{TokenSecret: tc.secret, BcryptCost: tc.cost},
			}
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
