package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

const defaultDebounce = 500 * time.Millisecond

// SearchCoordinator debounces user-driven search invocations and tracks
// loading and error state around the catalog client.
//
// Rapid successive calls inside the debounce window reset the timer and the
// latest arguments win: one underlying catalog call per quiet period. An
// empty or whitespace-only query short-circuits synchronously to an empty
// result set without touching the network.
//
// A superseded search that is already in flight is not cancelled; its result
// can still arrive and overwrite newer state. Callers that care must discard
// stale deliveries themselves.
type SearchCoordinator struct {
	catalog   ports.CatalogClient
	delay     time.Duration
	onResults func(ports.SearchResult)
	log       zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	loading bool
	err     error
	books   []domain.Book
	total   int
}

// NewSearchCoordinator wires the coordinator to a catalog client. delay <= 0
// selects the default 500 ms window. onResults, when non-nil, is invoked
// with every delivered result set, including the short-circuited empty one.
func NewSearchCoordinator(catalog ports.CatalogClient, delay time.Duration, onResults func(ports.SearchResult), log zerolog.Logger) *SearchCoordinator {
	if delay <= 0 {
		delay = defaultDebounce
	}
	return &SearchCoordinator{
		catalog:   catalog,
		delay:     delay,
		onResults: onResults,
		log:       log,
	}
}

// Search schedules a debounced catalog search with the given arguments.
func (s *SearchCoordinator) Search(ctx context.Context, query string, filters domain.Filters, limit, offset int) {
	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.books = []domain.Book{}
		s.total = 0
		s.err = nil
		s.mu.Unlock()

		if s.onResults != nil {
			s.onResults(ports.SearchResult{Books: []domain.Book{}, Total: 0})
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, query, filters, limit, offset)
	})
}

func (s *SearchCoordinator) run(ctx context.Context, query string, filters domain.Filters, limit, offset int) {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			// The catalog client swallows expected failures itself; only an
			// unexpected fault ends up here.
			s.mu.Lock()
			s.loading = false
			s.err = fmt.Errorf("search failed: %v", r)
			s.mu.Unlock()
			s.log.Error().Str("query", query).Interface("cause", r).Msg("search panicked")
		}
	}()

	result := s.catalog.Search(ctx, query, filters, limit, offset)

	s.mu.Lock()
	s.books = result.Books
	s.total = result.Total
	s.loading = false
	s.mu.Unlock()

	if s.onResults != nil {
		s.onResults(result)
	}
}

// Books returns the most recently delivered result page.
func (s *SearchCoordinator) Books() []domain.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.books
}

// Total returns the upstream total of the most recent delivery.
func (s *SearchCoordinator) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Loading reports whether a catalog call is currently in flight.
func (s *SearchCoordinator) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error of the last unexpected failure, or nil.
func (s *SearchCoordinator) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
