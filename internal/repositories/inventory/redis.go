package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-gamekit/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:player:"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("inventory for player %s not found", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get inventory for player %s", input.PlayerID)
	}

	var data InventoryData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal inventory data")
	}

	return &GetOutput{Data: &data}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data := &InventoryData{
		PlayerID: input.PlayerID,
		Items:    copyItems(input.Items),
		SavedAt:  input.SavedAt,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal inventory data")
	}

	if err := r.client.Set(ctx, GetKey(input.PlayerID), jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save inventory for player %s", input.PlayerID)
	}

	return &SaveOutput{Data: data}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete inventory for player %s", input.PlayerID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("inventory for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a player's inventory
// Exposed for testing purposes
func GetKey(playerID string) string {
	return fmt.Sprintf("%s%s", inventoryKeyPrefix, playerID)
}
