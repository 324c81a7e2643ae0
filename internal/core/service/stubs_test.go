package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub stores shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) All(_ context.Context) []domain.User {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *stubUserRepo) SaveAll(_ context.Context, users []domain.User) {
	r.users = users
}

type stubSessionStore struct {
	user    domain.User
	present bool
}

func (s *stubSessionStore) CurrentUser(_ context.Context) (domain.User, bool) {
	return s.user, s.present
}

func (s *stubSessionStore) SetCurrentUser(_ context.Context, u domain.User) {
	s.user = u
	s.present = true
}

func (s *stubSessionStore) ClearCurrentUser(_ context.Context) {
	s.user = domain.User{}
	s.present = false
}

type stubTokenStore struct {
	token   string
	present bool
}

func (s *stubTokenStore) Token(_ context.Context) (string, bool) {
	return s.token, s.present
}

func (s *stubTokenStore) SetToken(_ context.Context, token string) {
	s.token = token
	s.present = true
}

func (s *stubTokenStore) RemoveToken(_ context.Context) {
	s.token = ""
	s.present = false
}

func (s *stubTokenStore) AuthHeader(_ context.Context) string {
	if !s.present {
		return ""
	}
	return "Bearer " + s.token
}

type stubLoanRepo struct {
	loans []domain.Loan
}

func (r *stubLoanRepo) All(_ context.Context) []domain.Loan {
	out := make([]domain.Loan, len(r.loans))
	copy(out, r.loans)
	return out
}

func (r *stubLoanRepo) SaveAll(_ context.Context, loans []domain.Loan) {
	r.loans = loans
}

type stubWishlistRepo struct {
	books []domain.Book
}

func (r *stubWishlistRepo) All(_ context.Context) []domain.Book {
	out := make([]domain.Book, len(r.books))
	copy(out, r.books)
	return out
}

func (r *stubWishlistRepo) SaveAll(_ context.Context, books []domain.Book) {
	r.books = books
}

// fakeCatalog records Search invocations and replays canned results.
type fakeCatalog struct {
	mu      sync.Mutex
	calls   int
	queries []string
	result  ports.SearchResult
	details map[string]*domain.Book
}

func (c *fakeCatalog) Search(_ context.Context, query string, _ domain.Filters, _, _ int) ports.SearchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.queries = append(c.queries, query)
	return c.result
}

func (c *fakeCatalog) BookDetails(_ context.Context, bookID string) (*domain.Book, bool) {
	b, ok := c.details[bookID]
	return b, ok
}

func (c *fakeCatalog) CoverImageURL(coverID *int, size string) string {
	return ""
}

func (c *fakeCatalog) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *fakeCatalog) lastQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queries) == 0 {
		return ""
	}
	return c.queries[len(c.queries)-1]
}
