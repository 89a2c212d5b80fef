package kvstore

import (
	"context"
	"errors"
	"fmt"

	"agencia_maker/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "kv:"

// RedisStore keeps each collection as a plain string key: kv:{key}.
type RedisStore struct {
	client *redis.Client
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
