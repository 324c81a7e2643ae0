package kv

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// WishlistRepository stores wishlisted books verbatim under a single key.
type WishlistRepository struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewWishlistRepository(store ports.KeyValueStore, log zerolog.Logger) *WishlistRepository {
	return &WishlistRepository{store: store, log: log}
}

func (r *WishlistRepository) All(ctx context.Context) []domain.Book {
	books, ok := getJSON[[]domain.Book](ctx, r.store, wishlistKey, r.log)
	if !ok {
		return nil
	}
	return books
}

func (r *WishlistRepository) SaveAll(ctx context.Context, books []domain.Book) {
	setJSON(ctx, r.store, wishlistKey, books, r.log)
}
