package config

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "TOKEN_TTL",
		"MAX_UPLOAD_BYTES", "MAX_BATCH_FILES", "EXTRACT_WORKERS", "EXTRACT_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.JWTIssuer != "onboard" {
		t.Errorf("expected issuer onboard, got %q", cfg.JWTIssuer)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Errorf("expected 12h ttl, got %s", cfg.TokenTTL)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected 50MB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxBatchFiles != 20 {
		t.Errorf("expected 20 batch files, got %d", cfg.MaxBatchFiles)
	}
	if cfg.ExtractWorkers != 0 || cfg.ExtractTimeout != 0 {
		t.Errorf("expected pool defaults, got %d workers and %s timeout", cfg.ExtractWorkers, cfg.ExtractTimeout)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty database url, got %q", cfg.DatabaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DATABASE_URL", "postgres://localhost/onboard")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("MAX_BATCH_FILES", "5")
	t.Setenv("EXTRACT_WORKERS", "3")
	t.Setenv("EXTRACT_TIMEOUT", "45s")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected lower-cased level debug, got %q", cfg.LogLevel)
	}
	if cfg.DatabaseURL != "postgres://localhost/onboard" {
		t.Errorf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %s", cfg.TokenTTL)
	}
	if cfg.MaxBatchFiles != 5 {
		t.Errorf("expected 5 batch files, got %d", cfg.MaxBatchFiles)
	}
	if cfg.ExtractWorkers != 3 {
		t.Errorf("expected 3 workers, got %d", cfg.ExtractWorkers)
	}
	if cfg.ExtractTimeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.ExtractTimeout)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "-1")
	t.Setenv("MAX_BATCH_FILES", "many")
	t.Setenv("TOKEN_TTL", "forever")
	t.Setenv("EXTRACT_WORKERS", "-4")

	cfg := Load()
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected default upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxBatchFiles != 20 {
		t.Errorf("expected default batch files, got %d", cfg.MaxBatchFiles)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Errorf("expected default ttl, got %s", cfg.TokenTTL)
	}
	if cfg.ExtractWorkers != 0 {
		t.Errorf("expected 0 workers, got %d", cfg.ExtractWorkers)
	}
}

func TestValidate(t *testing.T) {
	good := Config{JWTSecret: "0123456789abcdef", LogLevel: "info"}
	if err := good.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	tests := map[string]Config{
		"missing secret": {LogLevel: "info"},
		"short secret":   {JWTSecret: "short", LogLevel: "info"},
		"bad level":      {JWTSecret: "0123456789abcdef", LogLevel: "verbose"},
	}
	for name, cfg := range tests {
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("warn", &buf)

	log.Info("hidden")
	log.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered, got %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("expected JSON warn line, got %s", out)
	}
	if NewLogger("nonsense", &buf).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected unknown level to fall back to info")
	}
}
