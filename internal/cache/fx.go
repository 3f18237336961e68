package cache

import (
	"context"
	"time"

	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

// New connects to redis when an address is configured and falls back to Nop otherwise.
func New(opts Opts) ProfileCache {
	cfg := opts.Config.Redis
	if cfg.Addr == "" {
		opts.Logger.Warn("Redis address not set, profile cache disabled")
		return Nop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Pass,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// A cold cache only costs database reads.
				opts.Logger.Warn("Redis ping failed", "addr", cfg.Addr, "error", err)
				return nil
			}
			opts.Logger.Info("Connected to redis", "addr", cfg.Addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisProfileCache(client, cfg.ProfileTTL, opts.Logger)
}

var Module = fx.Provide(New)
