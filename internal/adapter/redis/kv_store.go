// Package redis stores collections as plain redis strings.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"admanager/internal/config/configs"
	"admanager/internal/core/port"
)

// KVStore implements port.KV with one redis key per collection.
type KVStore struct {
	rdb    *redis.Client
	prefix string
}

var _ port.KV = (*KVStore)(nil)

func NewClient(cfg configs.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewKVStore(rdb *redis.Client, prefix string) *KVStore {
	return &KVStore{rdb: rdb, prefix: prefix}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *KVStore) Close() error {
	return s.rdb.Close()
}
