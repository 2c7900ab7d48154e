package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

const redisKeyPrefix = "tracker:"

type redisStore struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed store. Keys are namespaced under "tracker:".
func NewRedis(client redis.UniversalClient) Store {
	if client == nil {
		panic("redis client cannot be nil")
	}

	return &redisStore{
		client: client,
	}
}

func (s *redisStore) key(k string) string {
	return redisKeyPrefix + k
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("key '%s' not found", key).
			WithMeta("key", key)
	}
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get key from redis").
			WithMeta("key", key)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return dnderr.InvalidArgument("key is required")
	}

	// No expiration, the sheet lives until cleared
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to set key in redis").
			WithMeta("key", key)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dnderr.InvalidArgument("key is required")
	}

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete key from redis").
			WithMeta("key", key)
	}

	return nil
}
