package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "story-engine:profile:"

func profileKey(id string) string {
	return profileKeyPrefix + id
}

type RedisProfileCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

var _ ProfileCache = (*RedisProfileCache)(nil)

func NewRedisProfileCache(client redis.Cmdable, ttl time.Duration, log logger.Logger) *RedisProfileCache {
	return &RedisProfileCache{
		client: client,
		ttl:    ttl,
		logger: log.WithComponent("ProfileCache"),
	}
}

func (c *RedisProfileCache) GetProfiles(ctx context.Context, ids []string) (map[string]domain.Profile, []string, error) {
	found := make(map[string]domain.Profile, len(ids))
	if len(ids) == 0 {
		return found, nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return found, ids, fmt.Errorf("%w: %w", ErrCache, err)
	}

	var missing []string
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}

		var p domain.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			c.logger.Warn("Dropping malformed cached profile", "id", ids[i], "error", err)
			missing = append(missing, ids[i])
			continue
		}
		found[ids[i]] = p
	}

	return found, missing, nil
}

func (c *RedisProfileCache) SetProfiles(ctx context.Context, profiles []domain.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for _, p := range profiles {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.Set(ctx, profileKey(p.ID), data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}
