package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Session backends.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StorageDriver string
	DatabaseURL   string
	RunMigrations bool
	DBMaxConns    int32
	DBMaxConnLife time.Duration

	SessionBackend       string
	SessionTTL           time.Duration
	SessionCookieName    string
	SessionSweepInterval time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginRateLimit     string
	CORSAllowedOrigins []string
	SeedDemoData       bool

	PosthogAPIKey   string
	PosthogEndpoint string
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.SessionBackend == SessionRedis
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("SESSION_BACKEND", SessionMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "sessionId")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "10m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageDriver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		RunMigrations:     v.GetBool("RUN_MIGRATIONS"),
		DBMaxConns:        v.GetInt32("DB_MAX_CONNS"),
		SessionBackend:    strings.ToLower(v.GetString("SESSION_BACKEND")),
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		LoginRateLimit:    v.GetString("LOGIN_RATE_LIMIT"),
		SeedDemoData:      v.GetBool("SEED_DEMO_DATA"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "sessionId"
	}

	cfg.SessionTTL = durationOr(v, "SESSION_TTL", 24*time.Hour)
	cfg.SessionSweepInterval = durationOr(v, "SESSION_SWEEP_INTERVAL", 10*time.Minute)
	cfg.DBMaxConnLife = durationOr(v, "DB_CONN_MAX_LIFETIME", time.Hour)

	switch cfg.StorageDriver {
	case StorageMemory, StoragePostgres:
	default:
		log.Printf("Warning: Unknown STORAGE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StorageDriver, StorageMemory)
		cfg.StorageDriver = StorageMemory
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	switch cfg.SessionBackend {
	case SessionMemory, SessionRedis:
	default:
		log.Printf("Warning: Unknown SESSION_BACKEND ('%s'). Defaulting to %s.\n", cfg.SessionBackend, SessionMemory)
		cfg.SessionBackend = SessionMemory
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// durationOr parses key as a positive duration, falling back to def on a bad value.
// Zero and negative values are rejected so the session cookie and the registry agree on TTL.
func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
