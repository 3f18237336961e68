package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		LogLevel  string `env:"APP_LOG_LEVEL" env-default:"info"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Redis struct {
		Addr       string        `env:"REDIS_ADDR"`
		Pass       string        `env:"REDIS_PASS"`
		DB         int           `env:"REDIS_DB" env-default:"0"`
		ProfileTTL time.Duration `env:"REDIS_PROFILE_TTL" env-default:"10m"`
	}
	S3 struct {
		Region        string `env:"S3_REGION" env-default:"us-east-1"`
		Bucket        string `env:"S3_BUCKET" env-default:"story-media"`
		Endpoint      string `env:"S3_ENDPOINT"`
		AccessKey     string `env:"S3_ACCESS_KEY"`
		SecretKey     string `env:"S3_SECRET_KEY"`
		PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
	}
	Location struct {
		BaseURL        string        `env:"LOCATION_BASE_URL" env-default:"https://nominatim.openstreetmap.org"`
		UserAgent      string        `env:"LOCATION_USER_AGENT" env-default:"story-engine/1.0"`
		Timeout        time.Duration `env:"LOCATION_TIMEOUT" env-default:"4s"`
		UserRequests   int           `env:"LOCATION_USER_REQUESTS" env-default:"1"`
		UserPer        time.Duration `env:"LOCATION_USER_PER" env-default:"2s"`
		UserBurst      int           `env:"LOCATION_USER_BURST" env-default:"3"`
		GlobalInterval time.Duration `env:"LOCATION_GLOBAL_INTERVAL" env-default:"1s"`
	}
	Story struct {
		TTL             time.Duration `env:"STORY_TTL" env-default:"24h"`
		TickInterval    time.Duration `env:"STORY_TICK_INTERVAL" env-default:"50ms"`
		HoldThreshold   time.Duration `env:"STORY_HOLD_THRESHOLD" env-default:"250ms"`
		TapThreshold    float64       `env:"STORY_TAP_THRESHOLD" env-default:"5"`
		DropZoneY       float64       `env:"STORY_DROP_ZONE_Y" env-default:"85"`
		CleanupInterval time.Duration `env:"STORY_CLEANUP_INTERVAL" env-default:"1h"`
	}
	Workers struct {
		PoolSize int `env:"WORKERS_POOL_SIZE" env-default:"8"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the lib/pq connection string used by goose.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// GetURL returns the postgres URL used by pgxpool.
func (c *Config) GetURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
