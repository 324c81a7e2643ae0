// Package redis backs the key-value store with a Redis instance. All
// library collections live under a common key namespace so a shared
// instance stays usable.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/infrastructure/config"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 5 * time.Second

// Open dials the configured Redis instance, verifies connectivity, and
// returns the key-value store bound to the library namespace. An
// unreachable instance is a wiring error and is returned; operation
// failures after startup are contained by the store itself.
func Open(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &KVStore{client: client, log: log}, nil
}
