package mixer

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-gamekit/internal/redis"
)

// DefaultRedisKey is the hash holding mixer parameters
const DefaultRedisKey = "mixer:master"

// RedisConfig contains configuration for the Redis-backed mixer
type RedisConfig struct {
	Client redisclient.Client
	// Key is the hash key; DefaultRedisKey when empty
	Key string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisMixer struct {
	client redisclient.Client
	key    string
}

// NewRedis creates a mixer whose parameters live in a Redis hash, so volume
// settings survive restarts and are shared between processes.
func NewRedis(cfg *RedisConfig) (Mixer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	return &redisMixer{
		client: cfg.Client,
		key:    key,
	}, nil
}

func (m *redisMixer) SetFloat(ctx context.Context, param string, level float32) error {
	if param == "" {
		return errors.InvalidArgument("mixer parameter cannot be empty")
	}
	value := fmt.Sprintf("%g", level)
	if err := m.client.HSet(ctx, m.key, param, value).Err(); err != nil {
		return errors.Wrapf(err, "failed to set mixer parameter %s", param)
	}
	return nil
}

func (m *redisMixer) GetFloat(ctx context.Context, param string) (float32, bool, error) {
	if param == "" {
		return 0, false, errors.InvalidArgument("mixer parameter cannot be empty")
	}
	level, err := m.client.HGet(ctx, m.key, param).Float32()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, errors.Wrapf(err, "failed to get mixer parameter %s", param)
	}
	return level, true, nil
}

func (m *redisMixer) ClearFloat(ctx context.Context, param string) error {
	if param == "" {
		return errors.InvalidArgument("mixer parameter cannot be empty")
	}
	if err := m.client.HDel(ctx, m.key, param).Err(); err != nil {
		return errors.Wrapf(err, "failed to clear mixer parameter %s", param)
	}
	return nil
}
