package config

import (
	"strings"
	"testing"
	"time"
)

func TestFromViperDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/talent")
	t.Setenv("JWT_SECRET", "secret")
	for _, name := range []string{"PORT", "LOG_LEVEL", "REDIS_ADDR", "SENDGRID_TIMEOUT_SECONDS"} {
		t.Setenv(name, "")
	}

	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.SendGrid.Timeout != 30*time.Second {
		t.Fatalf("expected 30s sendgrid timeout, got %v", cfg.SendGrid.Timeout)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("expected redis disabled by default")
	}
}

func TestFromViperMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SENDGRID_API_KEY", "key")
	t.Setenv("SENDGRID_FROM_EMAIL", "")

	_, err := FromViper(newViper())
	if err == nil {
		t.Fatalf("expected error for missing variables")
	}
	for _, name := range []string{"DATABASE_URL", "JWT_SECRET", "SENDGRID_FROM_EMAIL"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %s in error, got %v", name, err)
		}
	}
}
