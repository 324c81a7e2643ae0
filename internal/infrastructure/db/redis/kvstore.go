package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "library:"

// KVStore adapts a Redis client to the KeyValueStore contract. Connectivity
// failures are contained: reads report absence, writes become no-ops, and
// the failure is logged.
type KVStore struct {
	client *redis.Client
	log    zerolog.Logger
}

// Close releases the underlying connection.
func (s *KVStore) Close() error {
	return s.client.Close()
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Error().Err(err).Str("key", key).Msg("redis: get failed")
		}
		return "", false
	}
	return v, true
}

func (s *KVStore) Set(ctx context.Context, key, value string) {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("redis: set failed")
	}
}

func (s *KVStore) Remove(ctx context.Context, key string) {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("redis: del failed")
	}
}

func (s *KVStore) Clear(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Error().Err(err).Str("key", iter.Val()).Msg("redis: clear failed")
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Error().Err(err).Msg("redis: clear scan failed")
	}
}

func (s *KVStore) key(key string) string {
	return fmt.Sprintf("%s%s", keyPrefix, key)
}
