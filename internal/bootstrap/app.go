package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/storage/document"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/internal/statuschecks"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Mongo            *mongo.Client
	DB               *sql.DB
	Limiter          *middleware.RedisLimiter
	Metrics          *metrics.Recorder
	StatusRepo       statuschecks.Repo
	PortfolioService *portfolio.Service
	StatusService    *statuschecks.Service
	HealthService    *health.Service
	PortfolioHandler *portfolio.Handler
	StatusHandler    *statuschecks.Handler
	HealthHandler    *health.Handler
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.StatusStore) == "" {
		cfg.StatusStore = config.StoreMemory
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	if err := buildStatusStore(ctx, app); err != nil {
		return nil, err
	}
	app.Limiter = buildLimiter(ctx, cfg)
	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
	}

	if err := buildServices(app); err != nil {
		app.Close()
		return nil, err
	}

	deps := server.RouterDeps{
		Config:           app.Config,
		PortfolioHandler: app.PortfolioHandler,
		StatusHandler:    app.StatusHandler,
		HealthHandler:    app.HealthHandler,
		Metrics:          app.Metrics,
	}
	if app.Limiter != nil {
		deps.Limiter = app.Limiter
	}
	app.Router = server.NewRouter(deps)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          app.Config.Env,
		"status_store": app.Config.StatusStore,
		"redis":        app.Limiter != nil,
		"metrics":      app.Metrics != nil,
	})
	return app, nil
}

func buildStatusStore(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.StatusStore {
	case config.StoreMongo:
		if cfg.MongoURL == "" {
			return fallbackToMemory(app, errors.New("MONGO_URL is empty"))
		}
		client, err := document.Connect(ctx, document.Options{
			URL:      cfg.MongoURL,
			Database: cfg.DBName,
			Timeout:  cfg.MongoTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect mongo status store: %w", err)
		}
		app.Mongo = client
		app.StatusRepo = statuschecks.NewMongoRepo(client, cfg.DBName)
	case config.StorePostgres:
		if cfg.DatabaseURL == "" {
			return fallbackToMemory(app, errors.New("DATABASE_URL is empty"))
		}
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return fmt.Errorf("connect postgres status store: %w", err)
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return fmt.Errorf("migrate postgres status store: %w", err)
		}
		app.DB = sqlDB
		app.StatusRepo = &statuschecks.PGRepo{DB: sqlDB}
	default:
		if !cfg.IsDevLike() {
			return fmt.Errorf("status store is required outside dev: set MONGO_URL or DATABASE_URL")
		}
		telemetry.Info("bootstrap.memory_store", map[string]any{"env": cfg.Env})
		app.StatusRepo = statuschecks.NewMemoryRepo()
	}
	return nil
}

// fallbackToMemory serves dev setups that select a store without configuring
// its URL. A configured store that cannot be reached never falls back.
func fallbackToMemory(app *App, err error) error {
	if !app.Config.IsDevLike() {
		return fmt.Errorf("connect %s status store: %w", app.Config.StatusStore, err)
	}
	telemetry.Warn("bootstrap.store_fallback", map[string]any{
		"status_store": app.Config.StatusStore,
		"error":        err.Error(),
	})
	app.Config.StatusStore = config.StoreMemory
	app.StatusRepo = statuschecks.NewMemoryRepo()
	return nil
}

// buildLimiter returns a shared Redis limiter, or nil to use the in-process one.
func buildLimiter(ctx context.Context, cfg config.Config) *middleware.RedisLimiter {
	if cfg.RedisURL == "" {
		return nil
	}
	limiter, err := middleware.NewRedisLimiter(ctx, cfg.RedisURL)
	if err != nil {
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"error": err.Error()})
		return nil
	}
	return limiter
}

func buildServices(app *App) error {
	portfolioSvc, err := portfolio.NewService()
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	var observer statuschecks.Observer
	if app.Metrics != nil {
		observer = app.Metrics
	}
	statusSvc := statuschecks.NewService(app.StatusRepo, observer)

	var checks []health.Checker
	if p, ok := app.StatusRepo.(pinger); ok {
		checks = append(checks, health.NewCheck("status_store", p.Ping))
	}
	if app.Limiter != nil {
		checks = append(checks, health.NewCheck("redis", app.Limiter.Ping))
	}
	healthSvc := health.NewService(checks...)

	app.PortfolioService = portfolioSvc
	app.StatusService = statusSvc
	app.HealthService = healthSvc
	app.PortfolioHandler = portfolio.NewHandler(portfolioSvc)
	app.StatusHandler = statuschecks.NewHandler(statusSvc)
	app.HealthHandler = health.NewHandler(healthSvc)

	if app.PortfolioHandler == nil || app.StatusHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}

// Close releases store clients. Safe to call on a partially built App.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Mongo != nil {
		timeout := a.Config.MongoTimeout
		if err := document.Disconnect(a.Mongo, timeout); err != nil {
			telemetry.Warn("shutdown.mongo", map[string]any{"error": err.Error()})
		}
		a.Mongo = nil
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			telemetry.Warn("shutdown.db", map[string]any{"error": err.Error()})
		}
		a.DB = nil
	}
	if a.Limiter != nil {
		if err := a.Limiter.Close(); err != nil {
			telemetry.Warn("shutdown.redis", map[string]any{"error": err.Error()})
		}
		a.Limiter = nil
	}
}
