package kv

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// UserRepository stores the registered-users collection under a single key.
type UserRepository struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewUserRepository(store ports.KeyValueStore, log zerolog.Logger) *UserRepository {
	return &UserRepository{store: store, log: log}
}

func (r *UserRepository) All(ctx context.Context) []domain.User {
	users, ok := getJSON[[]domain.User](ctx, r.store, usersKey, r.log)
	if !ok {
		return nil
	}
	return users
}

func (r *UserRepository) SaveAll(ctx context.Context, users []domain.User) {
	setJSON(ctx, r.store, usersKey, users, r.log)
}
