package adventurer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	entities "github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/errors"
	redisclient "github.com/emberforge/adventurer-api/internal/redis"
)

const (
	snapshotKeyPrefix = "adventurer:"

	// Error messages
	errSnapshotNil = "snapshot cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis snapshot repository.
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

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func snapshotKey(tokenID uint64) string {
	return snapshotKeyPrefix + strconv.FormatUint(tokenID, 10)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key := snapshotKey(input.TokenID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("adventurer %d not found", input.TokenID).
				WithMeta("token_id", input.TokenID)
		}
		return nil, errors.Wrapf(err, "failed to get adventurer %d", input.TokenID)
	}

	var snapshot entities.Snapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot for adventurer %d", input.TokenID)
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	key := snapshotKey(input.TokenID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil { // snapshots do not expire
		return nil, errors.Wrapf(err, "failed to store adventurer %d", input.TokenID)
	}

	slog.Debug("stored adventurer snapshot",
		"token_id", input.TokenID,
		"health", input.Snapshot.Health,
		"level", input.Snapshot.Level,
	)

	return &SetOutput{Snapshot: input.Snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key := snapshotKey(input.TokenID)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete adventurer %d", input.TokenID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("adventurer %d not found", input.TokenID).
			WithMeta("token_id", input.TokenID)
	}

	return &DeleteOutput{}, nil
}
