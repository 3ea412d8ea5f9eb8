package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Env != EnvLocal {
		t.Fatalf("expected default env local, got %s", cfg.App.Env)
	}
	if cfg.App.Timezone != "Europe/Berlin" {
		t.Fatalf("expected default timezone Europe/Berlin, got %s", cfg.App.Timezone)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.HTTP.Port)
	}
	if cfg.Cache.LocationsSize != 1000 {
		t.Fatalf("expected default cache size 1000, got %d", cfg.Cache.LocationsSize)
	}
	if cfg.Cache.WeeksTTL != 30*time.Minute {
		t.Fatalf("expected default weeks ttl 30m, got %v", cfg.Cache.WeeksTTL)
	}
}

func TestNewConfig_EnvLowercased(t *testing.T) {
	t.Setenv("APP_ENV", "PRODUCTION")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Env != EnvProduction {
		t.Fatalf("expected env to be lowercased, got %s", cfg.App.Env)
	}
	if !cfg.IsNotLocal() {
		t.Fatalf("expected production env to be not local")
	}
	if cfg.IsLocal() {
		t.Fatalf("expected production env to not be local")
	}
}

func TestNewConfig_BasicClientsParsing(t *testing.T) {
	t.Setenv("AUTH_BASIC_CLIENTS", "portal:secret,scheduler:pass2")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Auth.BasicClients) != 2 {
		t.Fatalf("expected 2 basic clients, got %d", len(cfg.Auth.BasicClients))
	}
	if cfg.Auth.BasicClients[0].Username != "portal" || cfg.Auth.BasicClients[0].Password != "secret" {
		t.Fatalf("unexpected first client: %+v", cfg.Auth.BasicClients[0])
	}
	if cfg.Auth.BasicClients[1].Username != "scheduler" || cfg.Auth.BasicClients[1].Password != "pass2" {
		t.Fatalf("unexpected second client: %+v", cfg.Auth.BasicClients[1])
	}
}

func TestNewConfig_MalformedBasicClientSkipped(t *testing.T) {
	t.Setenv("AUTH_BASIC_CLIENTS", "portal:secret,broken-pair")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Auth.BasicClients) != 1 {
		t.Fatalf("expected malformed pair to be skipped, got %d clients", len(cfg.Auth.BasicClients))
	}
}

func TestNewConfig_CacheDisabledWithoutRabbitMq(t *testing.T) {
	t.Setenv("RABBITMQ_ENABLED", "false")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Без событий инвалидации кэш отдавал бы устаревшие недели
	if cfg.Cache.Enabled {
		t.Fatalf("expected cache to be forced off when rabbitmq is disabled")
	}
}

func TestNewConfig_CacheStaysEnabledWithRabbitMq(t *testing.T) {
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Cache.Enabled {
		t.Fatalf("expected cache to stay enabled")
	}
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "svc")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_DATABASE", "portal")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "host=db.internal port=5433 user=svc password=pw dbname=portal sslmode=require"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("unexpected dsn:\n got: %s\nwant: %s", got, want)
	}
}
