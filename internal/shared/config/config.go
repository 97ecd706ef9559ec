package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names the optional YAML config file.
const ConfigPathEnvVar = "CONFIG_PATH"

var defaultConfigPaths = []string{"config.yaml", "config.yml"}

// Config holds application configuration.
type Config struct {
	Env             string              `koanf:"env"`
	Port            string              `koanf:"port"`
	CORSAllowOrigin []string            `koanf:"cors_allow_origins"`
	LogLevel        string              `koanf:"log_level"`
	LogFormat       string              `koanf:"log_format"`
	DatabaseURL     string              `koanf:"database_url"`
	KVBackend       string              `koanf:"kv_backend"`
	KVDir           string              `koanf:"kv_dir"`
	BadgerDir       string              `koanf:"badger_dir"`
	AWSRegion       string              `koanf:"aws_region"`
	S3Bucket        string              `koanf:"s3_bucket"`
	S3Prefix        string              `koanf:"s3_prefix"`
	CatalogSource   string              `koanf:"catalog_source"`
	CatalogPath     string              `koanf:"catalog_path"`
	FeaturedCount   int                 `koanf:"featured_count"`
	Debounce        time.Duration       `koanf:"debounce"`
	SplashDelay     time.Duration       `koanf:"splash_delay"`
	RateLimitRPS    float64             `koanf:"rate_limit_rps"`
	RateLimitBurst  int                 `koanf:"rate_limit_burst"`
	TrustedProxies  []string            `koanf:"trusted_proxies"`
	Synonyms        map[string][]string `koanf:"synonyms"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Env:             "dev",
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LogLevel:        "info",
		LogFormat:       "json",
		KVBackend:       "local",
		KVDir:           "./data",
		BadgerDir:       "./data/badger",
		CatalogSource:   "seed",
		FeaturedCount:   3,
		Debounce:        300 * time.Millisecond,
		SplashDelay:     3 * time.Second,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
	}
}

// Load reads configuration from defaults, an optional YAML file and the environment.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	for _, key := range []string{"cors_allow_origins", "trusted_proxies"} {
		if raw, ok := k.Get(key).(string); ok {
			if err := k.Set(key, splitAndTrim(raw)); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", key, err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.KVBackend = normalizeKVBackend(cfg.KVBackend)
	cfg.CatalogSource = normalizeCatalogSource(cfg.CatalogSource)

	if cfg.Env == "production" && cfg.KVBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres kv backend in production")
	}
	return cfg, nil
}

var envKeys = map[string]string{
	"ENV":                "env",
	"PORT":               "port",
	"CORS_ALLOW_ORIGINS": "cors_allow_origins",
	"LOG_LEVEL":          "log_level",
	"LOG_FORMAT":         "log_format",
	"DATABASE_URL":       "database_url",
	"KV_BACKEND":         "kv_backend",
	"KV_DIR":             "kv_dir",
	"BADGER_DIR":         "badger_dir",
	"AWS_REGION":         "aws_region",
	"S3_BUCKET":          "s3_bucket",
	"S3_PREFIX":          "s3_prefix",
	"CATALOG_SOURCE":     "catalog_source",
	"CATALOG_PATH":       "catalog_path",
	"FEATURED_COUNT":     "featured_count",
	"DEBOUNCE":           "debounce",
	"SPLASH_DELAY":       "splash_delay",
	"RATE_LIMIT_RPS":     "rate_limit_rps",
	"RATE_LIMIT_BURST":   "rate_limit_burst",
	"TRUSTED_PROXIES":    "trusted_proxies",
}

// envKey maps known environment variables to config paths; others are ignored.
func envKey(key string) string {
	return envKeys[key]
}

func findConfigFile() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeKVBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "memory":
		return "memory"
	case "badger":
		return "badger"
	case "postgres", "pg":
		return "postgres"
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeCatalogSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "file":
		return "file"
	case "postgres", "pg":
		return "postgres"
	default:
		return "seed"
	}
}
