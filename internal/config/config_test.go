package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerAddr != ":5000" {
		t.Errorf("ServerAddr = %q, want :5000", cfg.ServerAddr)
	}
	if cfg.IntentsFile != "data/intents.json" {
		t.Errorf("IntentsFile = %q, want data/intents.json", cfg.IntentsFile)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("CORSOrigins = %q, want *", cfg.CORSOrigins)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false for default environment")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("INTENTS_FILE", "/etc/healthbot/intents.yaml")
	t.Setenv("RATE_LIMIT_MAX", "25")

	cfg := Load()

	if cfg.Env != "production" || cfg.IsDev() {
		t.Errorf("Env = %q, IsDev() = %v", cfg.Env, cfg.IsDev())
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.IntentsFile != "/etc/healthbot/intents.yaml" {
		t.Errorf("IntentsFile = %q", cfg.IntentsFile)
	}
	if cfg.RateLimitMax != 25 {
		t.Errorf("RateLimitMax = %d, want 25", cfg.RateLimitMax)
	}
}

func TestLoadBadRateLimit(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "lots"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_MAX", tt.value)
			if got := Load().RateLimitMax; got != 100 {
				t.Errorf("RateLimitMax = %d, want fallback 100", got)
			}
		})
	}
}
