package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
)

// ProvisionCacheRepository remembers recently provisioned identities in Redis
// so that authenticated requests skip the database upsert.
type ProvisionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of a cached identity
}

func NewProvisionCacheRepository(client *redis.Client, expiration time.Duration) *ProvisionCacheRepository {
	return &ProvisionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func provisionKey(provider, providerAccountID string) string {
	return fmt.Sprintf("provisioned:%s:%s", provider, providerAccountID)
}

// Get returns the cached local user id. ok is false on a cache miss.
func (r *ProvisionCacheRepository) Get(ctx context.Context, provider, providerAccountID string) (userID uuid.UUID, ok bool, err error) {
	key := provisionKey(provider, providerAccountID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("redis get",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	userID, err = uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt provision cache entry %s: %w", key, err)
	}
	return userID, true, nil
}

// Set caches the local user id of an identity with expiration.
func (r *ProvisionCacheRepository) Set(ctx context.Context, provider, providerAccountID string, userID uuid.UUID) error {
	key := provisionKey(provider, providerAccountID)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"value", userID.String(),
		"error", err,
	)

	return err
}

// Delete forgets an identity, used when its user is removed.
func (r *ProvisionCacheRepository) Delete(ctx context.Context, provider, providerAccountID string) error {
	key := provisionKey(provider, providerAccountID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("redis del",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
