package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"portfolio-backend/internal/shared/telemetry"
)

// Status store backends.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	StatusStore     string
	MongoURL        string
	DBName          string
	MongoTimeout    time.Duration
	DatabaseURL     string
	RedisURL        string
	StatusRateLimit float64
	StatusRateBurst int
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	env := normalizeEnv(v.GetString("ENV"))
	mongoURL := strings.TrimSpace(v.GetString("MONGO_URL"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	store := normalizeStoreType(v.GetString("STATUS_STORE"), mongoURL, dbURL)

	if env == "production" && store == StoreMemory {
		telemetry.Warn("config.store_missing", map[string]any{
			"message": "MONGO_URL or DATABASE_URL is required in production",
		})
	}

	return Config{
		Port:            v.GetString("PORT"),
		Env:             env,
		LogLevel:        v.GetString("LOG_LEVEL"),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ORIGINS")),
		StatusStore:     store,
		MongoURL:        mongoURL,
		DBName:          v.GetString("DB_NAME"),
		MongoTimeout:    v.GetDuration("MONGO_TIMEOUT"),
		DatabaseURL:     dbURL,
		RedisURL:        strings.TrimSpace(v.GetString("REDIS_URL")),
		StatusRateLimit: v.GetFloat64("RATE_LIMIT_STATUS_RPS"),
		StatusRateBurst: v.GetInt("RATE_LIMIT_STATUS_BURST"),
		MetricsEnabled:  v.GetBool("METRICS_ENABLED"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

// IsDevLike reports whether missing infrastructure may fall back to in-memory implementations.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_NAME", "portfolio")
	v.SetDefault("MONGO_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT_STATUS_RPS", 1.0)
	v.SetDefault("RATE_LIMIT_STATUS_BURST", 10)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
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

// normalizeStoreType honors an explicit STATUS_STORE and otherwise picks the
// backend whose connection string is set, preferring the document store.
func normalizeStoreType(raw, mongoURL, dbURL string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mongo", "mongodb":
		return StoreMongo
	case "postgres", "pg":
		return StorePostgres
	case "memory":
		return StoreMemory
	}
	switch {
	case mongoURL != "":
		return StoreMongo
	case dbURL != "":
		return StorePostgres
	default:
		return StoreMemory
	}
}
