package ports

import (
	"context"

	"github.com/openshelf/library-system/internal/core/domain"
)

// SearchResult is a single page of normalized catalog search hits.
type SearchResult struct {
	Books []domain.Book
	Total int
}

// CatalogClient talks to the external book catalog.
//
// Transport and non-2xx failures are swallowed at this boundary: Search
// degrades to an empty result set and BookDetails to absence. Callers cannot
// distinguish "no results" from "catalog unreachable".
type CatalogClient interface {
	Search(ctx context.Context, query string, filters domain.Filters, limit, offset int) SearchResult
	BookDetails(ctx context.Context, bookID string) (*domain.Book, bool)
	// CoverImageURL is pure: it builds a predictable image URL from a cover
	// id and a size token (S/M/L, default M), or returns the placeholder
	// path when the id is absent or zero.
	CoverImageURL(coverID *int, size string) string
}
