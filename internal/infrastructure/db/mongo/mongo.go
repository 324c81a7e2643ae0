// Package mongo backs the key-value store with a MongoDB database. Every
// logical collection key becomes one document in a single key_values
// collection, so the stored shape stays identical across backends.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openshelf/library-system/internal/infrastructure/config"
)

// connectTimeout bounds the initial dial and ping.
const connectTimeout = 10 * time.Second

// Open dials the configured MongoDB database, verifies connectivity, and
// returns the key-value store over its key_values collection. An
// unreachable database is a wiring error and is returned; operation
// failures after startup are contained by the store itself.
func Open(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) (*KVStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(kvCollection)
	return &KVStore{client: client, coll: coll, log: log}, nil
}
