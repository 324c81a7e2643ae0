package mongo

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollection = "key_values"

// KVStore adapts a Mongo collection to the KeyValueStore contract. Each
// logical key is one document keyed by _id, holding the serialized value as
// an opaque string. Failures are contained and logged.
type KVStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	log    zerolog.Logger
}

type kvDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Close disconnects the underlying client.
func (s *KVStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool) {
	var doc kvDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if err != mongo.ErrNoDocuments {
			s.log.Error().Err(err).Str("key", key).Msg("mongo: find failed")
		}
		return "", false
	}
	return doc.Value, true
}

func (s *KVStore) Set(ctx context.Context, key, value string) {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, kvDoc{Key: key, Value: value}, opts); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("mongo: upsert failed")
	}
}

func (s *KVStore) Remove(ctx context.Context, key string) {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("mongo: delete failed")
	}
}

func (s *KVStore) Clear(ctx context.Context) {
	if _, err := s.coll.DeleteMany(ctx, bson.M{}); err != nil {
		s.log.Error().Err(err).Msg("mongo: clear failed")
	}
}
