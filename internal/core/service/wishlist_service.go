package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// WishlistService maintains the wishlist collection. Books are stored
// verbatim as the catalog client produced them.
type WishlistService struct {
	wishlist ports.WishlistRepository
	tokens   ports.TokenStore
	log      zerolog.Logger
}

func NewWishlistService(wishlist ports.WishlistRepository, tokens ports.TokenStore, log zerolog.Logger) *WishlistService {
	return &WishlistService{wishlist: wishlist, tokens: tokens, log: log}
}

var _ ports.WishlistService = (*WishlistService)(nil)

// Add stores the book unless it is already wishlisted.
func (s *WishlistService) Add(ctx context.Context, book domain.Book) error {
	if _, ok := s.tokens.Token(ctx); !ok {
		return domain.ErrNoSession
	}
	books := s.wishlist.All(ctx)
	for _, b := range books {
		if b.ID == book.ID {
			return domain.ErrAlreadyWishlisted
		}
	}
	s.wishlist.SaveAll(ctx, append(books, book))
	s.log.Info().Str("book_id", book.ID).Msg("book wishlisted")
	return nil
}

// Remove drops the book from the wishlist. Removing an absent book is a
// no-op.
func (s *WishlistService) Remove(ctx context.Context, bookID string) {
	books := s.wishlist.All(ctx)
	kept := books[:0]
	for _, b := range books {
		if b.ID != bookID {
			kept = append(kept, b)
		}
	}
	if len(kept) != len(books) {
		s.wishlist.SaveAll(ctx, kept)
	}
}

// List returns the wishlist in insertion order.
func (s *WishlistService) List(ctx context.Context) []domain.Book {
	return s.wishlist.All(ctx)
}
