package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Debounce != 300*time.Millisecond {
		t.Fatalf("expected 300ms debounce, got %s", cfg.Debounce)
	}
	if cfg.KVBackend != "local" || cfg.CatalogSource != "seed" {
		t.Fatalf("unexpected backends: kv=%q catalog=%q", cfg.KVBackend, cfg.CatalogSource)
	}
	if cfg.FeaturedCount != 3 {
		t.Fatalf("expected featured count 3, got %d", cfg.FeaturedCount)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("PORT", "9090")
	t.Setenv("KV_BACKEND", "pg")
	t.Setenv("DEBOUNCE", "150ms")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_URL", "postgres://localhost/chef")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.KVBackend != "postgres" {
		t.Fatalf("expected postgres backend, got %q", cfg.KVBackend)
	}
	if cfg.Debounce != 150*time.Millisecond {
		t.Fatalf("expected 150ms debounce, got %s", cfg.Debounce)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production env, got %q", cfg.Env)
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORSAllowOrigin)
	}
}

func TestLoadYAMLSynonyms(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "chef.yaml")
	body := "featured_count: 5\nsynonyms:\n  pesce:\n    - tonno\n    - salmone\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FeaturedCount != 5 {
		t.Fatalf("expected featured count 5, got %d", cfg.FeaturedCount)
	}
	want := []string{"tonno", "salmone"}
	if !reflect.DeepEqual(cfg.Synonyms["pesce"], want) {
		t.Fatalf("expected synonyms %v, got %v", want, cfg.Synonyms["pesce"])
	}
}

func TestLoadPostgresKVRequiresDatabaseInProduction(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("ENV", "production")
	t.Setenv("KV_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}
