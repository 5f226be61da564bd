package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends.
const (
	StoreFile     = "file"
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config captures everything the console needs at startup.
type Config struct {
	Store        string
	File         string
	BoltPath     string
	Postgres     PostgresConfig
	Redis        RedisConfig
	Log          LogConfig
	MetricsFile  string
	UpcomingDays int
}

// PostgresConfig configures the postgres snapshot backend.
type PostgresConfig struct {
	URL            string
	MaxConns       int32
	ConnectTimeout time.Duration
}

// RedisConfig configures the redis snapshot backend.
type RedisConfig struct {
	URL          string
	Key          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		Store:    strings.ToLower(get("CONTACTBOOK_STORE", StoreFile)),
		File:     get("CONTACTBOOK_FILE", "addressbook.json"),
		BoltPath: get("CONTACTBOOK_BOLT_PATH", "addressbook.db"),
		Postgres: PostgresConfig{
			URL:            get("CONTACTBOOK_DATABASE_URL", ""),
			MaxConns:       2,
			ConnectTimeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			URL:          get("CONTACTBOOK_REDIS_URL", ""),
			Key:          get("CONTACTBOOK_REDIS_KEY", "contactbook:records"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level:  get("CONTACTBOOK_LOG_LEVEL", "warn"),
			Format: get("CONTACTBOOK_LOG_FORMAT", "text"),
			File:   get("CONTACTBOOK_LOG_FILE", ""),
		},
		MetricsFile: get("CONTACTBOOK_METRICS_FILE", ""),
	}

	days, err := strconv.Atoi(get("CONTACTBOOK_UPCOMING_DAYS", "7"))
	if err != nil || days < 0 {
		return Config{}, fmt.Errorf("CONTACTBOOK_UPCOMING_DAYS must be a non-negative integer")
	}
	cfg.UpcomingDays = days

	switch cfg.Store {
	case StoreFile, StoreBolt:
	case StorePostgres:
		if cfg.Postgres.URL == "" {
			return Config{}, fmt.Errorf("CONTACTBOOK_DATABASE_URL is required for the postgres store")
		}
	case StoreRedis:
		if cfg.Redis.URL == "" {
			return Config{}, fmt.Errorf("CONTACTBOOK_REDIS_URL is required for the redis store")
		}
	default:
		return Config{}, fmt.Errorf("unknown CONTACTBOOK_STORE %q", cfg.Store)
	}
	return cfg, nil
}
