package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"chef-backend/internal/discovery"
	"chef-backend/internal/favorites"
	"chef-backend/internal/matching"
	"chef-backend/internal/pantry"
	"chef-backend/internal/recipes"
	"chef-backend/internal/selection"
	"chef-backend/internal/services/health"
	"chef-backend/internal/shared/config"
	"chef-backend/internal/shared/server"
	"chef-backend/internal/shared/storage/db"
	"chef-backend/internal/shared/storage/kv"
	"chef-backend/internal/shared/storage/kv/badgerkv"
	"chef-backend/internal/shared/storage/kv/local"
	"chef-backend/internal/shared/storage/kv/memory"
	"chef-backend/internal/shared/storage/kv/pg"
	s3kv "chef-backend/internal/shared/storage/kv/s3"
	"chef-backend/internal/shared/telemetry"
	"chef-backend/internal/suggest"
)

// App holds shared dependencies.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	DB         *sql.DB
	KV         kv.Store
	Catalog    *recipes.Catalog
	Engine     *matching.Engine
	Selections *selection.Registry
	Favorites  *favorites.Registry
	Suggester  *suggest.Suggester

	DiscoveryService *discovery.Service
	PantryService    *pantry.Service

	closers []func() error
}

// Build prepares shared dependencies and the HTTP router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil {
		app.DB = sqlDB
		app.closers = append(app.closers, sqlDB.Close)
	}

	store, err := app.buildKV(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.KV = store

	catalog, err := app.buildCatalog(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Catalog = catalog

	app.Engine = matching.NewEngine(matching.DefaultSynonyms().Merge(cfg.Synonyms))
	app.Selections = selection.NewRegistry(app.KV)
	app.Favorites = favorites.NewRegistry(app.KV)
	app.Suggester = suggest.NewSuggester(nil)

	app.DiscoveryService = &discovery.Service{
		Catalog:       app.Catalog,
		Engine:        app.Engine,
		Selections:    app.Selections,
		Favorites:     app.Favorites,
		FeaturedCount: cfg.FeaturedCount,
	}
	app.PantryService = &pantry.Service{
		Selections: app.Selections,
		Suggester:  app.Suggester,
	}

	app.Router = server.NewRouter(cfg, server.Handlers{
		Discovery: discovery.NewHandler(app.DiscoveryService),
		Pantry:    pantry.NewHandler(app.PantryService),
		Health:    health.NewService(app.DB, app.Catalog.Len),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"kv_backend":     cfg.KVBackend,
		"catalog_source": cfg.CatalogSource,
		"recipes":        app.Catalog.Len(),
	})
	return app, nil
}

// Close releases the database and any embedded store.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func needsDB(cfg config.Config) bool {
	return cfg.KVBackend == "postgres" || cfg.CatalogSource == "postgres"
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if !needsDB(cfg) {
		return nil, nil
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_missing", map[string]any{"fallback": "memory"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_connect_failed", map[string]any{"fallback": "memory", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.migrate_failed", map[string]any{"fallback": "memory", "error": err.Error()})
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func (a *App) buildKV(ctx context.Context) (kv.Store, error) {
	cfg := a.Config
	switch cfg.KVBackend {
	case "memory":
		return memory.New(), nil
	case "badger":
		store, err := badgerkv.Open(cfg.BadgerDir)
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	case "postgres":
		if a.DB == nil {
			return memory.New(), nil
		}
		return pg.New(a.DB), nil
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("KV_BACKEND=s3 requires S3_BUCKET")
		}
		return s3kv.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return local.New(cfg.KVDir)
	}
}

func (a *App) buildCatalog(ctx context.Context) (*recipes.Catalog, error) {
	cfg := a.Config
	var src recipes.Source
	switch cfg.CatalogSource {
	case "file":
		if strings.TrimSpace(cfg.CatalogPath) == "" {
			return nil, fmt.Errorf("CATALOG_SOURCE=file requires CATALOG_PATH")
		}
		src = recipes.FileSource{Path: cfg.CatalogPath}
	case "postgres":
		if a.DB == nil {
			src = recipes.StaticSource(recipes.Seed())
			break
		}
		src = recipes.PGSource{DB: a.DB}
	default:
		src = recipes.StaticSource(recipes.Seed())
	}

	catalog, err := recipes.LoadCatalog(ctx, src)
	if err != nil {
		return nil, err
	}
	if catalog.Len() == 0 && isDevLike(cfg.Env) {
		telemetry.Warn("bootstrap.catalog_empty", map[string]any{"fallback": "seed"})
		return recipes.NewCatalog(recipes.Seed())
	}
	return catalog, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
