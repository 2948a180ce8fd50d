package common

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_URL", "DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME",
		"DB_MAX_CONN_IDLE_TIME", "DB_DIAL_TIMEOUT", "DB_STATEMENT_TIMEOUT",
		"GEMINI_MODEL", "GEMINI_API_KEY", "GEMINI_TEMPERATURE", "GEMINI_TIMEOUT",
		"EXPORT_OUTPUT_PATH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadConfig()

	if cfg.Database.DSN != "" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 20 || cfg.Database.MinConns != 5 {
		t.Errorf("conns = %d/%d, want 20/5", cfg.Database.MaxConns, cfg.Database.MinConns)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.1 {
		t.Errorf("temperature = %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_URL", "postgres://localhost/policies")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("GEMINI_TIMEOUT", "90s")
	t.Setenv("GEMINI_TEMPERATURE", "0.5")
	t.Setenv("EXPORT_OUTPUT_PATH", "/tmp/out.xlsx")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://localhost/policies" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 50 {
		t.Errorf("MaxConns = %d", cfg.Database.MaxConns)
	}
	if cfg.LLM.Timeout != 90*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.LLM.Temperature != 0.5 {
		t.Errorf("temperature = %v", cfg.LLM.Temperature)
	}
	if cfg.Export.OutputPath != "/tmp/out.xlsx" {
		t.Errorf("output path = %q", cfg.Export.OutputPath)
	}
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("GEMINI_TIMEOUT", "soon")

	cfg := LoadConfig()
	if cfg.Database.MaxConns != 20 {
		t.Errorf("MaxConns = %d, want default on parse failure", cfg.Database.MaxConns)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want default on parse failure", cfg.LLM.Timeout)
	}
}

func TestValidateForPostgres(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidateForPostgres(); err == nil {
		t.Error("empty DSN should fail validation")
	}

	cfg.Database.DSN = "postgres://localhost/policies"
	cfg.Database.MinConns = 10
	cfg.Database.MaxConns = 5
	if err := cfg.ValidateForPostgres(); err == nil {
		t.Error("min > max should fail validation")
	}

	cfg.Database.MinConns = 2
	if err := cfg.ValidateForPostgres(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
