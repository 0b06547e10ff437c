package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv would leave the variables set-but-empty, which envconfig
	// treats as a value; the defaults only kick in when truly unset.
	for _, key := range []string{"PORT", "REDIS_ADDR", "ENVIRONMENT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5050" {
		t.Errorf("port = %q, want 5050", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("redis addr = %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.Environment != Development {
		t.Errorf("environment = %q, want development", cfg.Environment)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Environment.IsProduction() {
		t.Errorf("environment = %q, want production", cfg.Environment)
	}

	// Anything unrecognised falls back to development.
	t.Setenv("ENVIRONMENT", "weird")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != Development {
		t.Errorf("environment = %q, want development fallback", cfg.Environment)
	}
}
