package records

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/crowdfund/internal/errors"
)

// DefaultRedisKeyPrefix namespaces record set keys: crowdfund:records:{kind}.
const DefaultRedisKeyPrefix = "crowdfund:records:"

// RedisBackend keeps each record set as a single string value.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend creates a RedisBackend using keyPrefix for every key.
func NewRedisBackend(client *redis.Client, keyPrefix string) *RedisBackend {
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisBackend{client: client, prefix: keyPrefix}
}

func (r *RedisBackend) key(kind Kind) string {
	return r.prefix + string(kind)
}

// Read returns the stored value, or apperrors.ErrNotFound when the key is unset.
func (r *RedisBackend) Read(ctx context.Context, kind Kind) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the value with a single SET, without expiry.
func (r *RedisBackend) Write(ctx context.Context, kind Kind, data []byte) error {
	return r.client.Set(ctx, r.key(kind), data, 0).Err()
}
