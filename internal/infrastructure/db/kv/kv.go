// Package kv implements the persistence ports on top of a KeyValueStore.
// Each collection lives whole under one logical key, serialized as JSON,
// exactly as the simulated backend keeps it. Serialization failures follow
// the containment policy: logged, never propagated.
package kv

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/ports"
)

// Logical storage keys. One per collection, no schema versioning.
const (
	usersKey       = "lib_users"
	currentUserKey = "lib_user"
	tokenKey       = "lib_auth_token"
	loansKey       = "lib_loans"
	wishlistKey    = "lib_wishlist"
)

func getJSON[T any](ctx context.Context, store ports.KeyValueStore, key string, log zerolog.Logger) (T, bool) {
	var out T
	raw, ok := store.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Error().Err(err).Str("key", key).Msg("kv: corrupt collection, treating as absent")
		var zero T
		return zero, false
	}
	return out, true
}

func setJSON[T any](ctx context.Context, store ports.KeyValueStore, key string, v T, log zerolog.Logger) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("kv: marshal failed, write dropped")
		return
	}
	store.Set(ctx, key, string(raw))
}
