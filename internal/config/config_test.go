package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "USER_VIEW_TTL", "SEED_USERS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.SeedUsers != 2 {
		t.Errorf("expected 2 seed users, got %d", cfg.SeedUsers)
	}
	if cfg.UserViewTTL != 5*time.Minute || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected durations %s %s", cfg.UserViewTTL, cfg.ShutdownTimeout)
	}
	if cfg.AppEnv != "production" || cfg.IsDevelopment() {
		t.Errorf("expected production env, got %q", cfg.AppEnv)
	}
	if cfg.CacheEnabled() {
		t.Error("expected cache to be disabled without REDIS_ADDR")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "development")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("USER_VIEW_TTL", "30s")
	t.Setenv("SEED_USERS", "0")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9090 || !cfg.IsDevelopment() {
		t.Errorf("unexpected port/env %d %s", cfg.Port, cfg.AppEnv)
	}
	if !cfg.CacheEnabled() || cfg.RedisConfig.DB != 3 {
		t.Errorf("unexpected redis config %+v", cfg.RedisConfig)
	}
	if cfg.UserViewTTL != 30*time.Second {
		t.Errorf("expected 30s ttl, got %s", cfg.UserViewTTL)
	}
	if cfg.SeedUsers != 0 {
		t.Errorf("expected seeding disabled, got %d", cfg.SeedUsers)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected fallback shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port out of range", key: "PORT", val: "70000"},
		{name: "negative seed users", key: "SEED_USERS", val: "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("[%s] expected an error", tt.name)
			}
		})
	}
}
