package service

import (
	"context"
	"testing"
	"time"

	"github.com/openshelf/library-system/internal/core/domain"
	"github.com/openshelf/library-system/internal/core/ports"
)

const testDebounce = 30 * time.Millisecond

func newSearchFixture(catalog *fakeCatalog) (*SearchCoordinator, chan ports.SearchResult) {
	delivered := make(chan ports.SearchResult, 8)
	coord := NewSearchCoordinator(catalog, testDebounce, func(r ports.SearchResult) {
		delivered <- r
	}, discardLogger)
	return coord, delivered
}

func waitDelivery(t *testing.T, ch chan ports.SearchResult) ports.SearchResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a search delivery")
		return ports.SearchResult{}
	}
}

func TestSearchCoordinator_EmptyQueryShortCircuits(t *testing.T) {
	catalog := &fakeCatalog{}
	coord, delivered := newSearchFixture(catalog)

	coord.Search(context.Background(), "   ", domain.Filters{}, 10, 0)

	r := waitDelivery(t, delivered)
	if len(r.Books) != 0 || r.Total != 0 {
		t.Errorf("expected empty result set, got %+v", r)
	}
	if catalog.callCount() != 0 {
		t.Errorf("expected no network call, got %d", catalog.callCount())
	}
	if len(coord.Books()) != 0 {
		t.Error("expected coordinator state cleared")
	}
}

func TestSearchCoordinator_DebounceCoalescesToLatestArgs(t *testing.T) {
	catalog := &fakeCatalog{result: ports.SearchResult{
		Books: []domain.Book{{ID: "/works/OL1W", Title: "Dune"}},
		Total: 1,
	}}
	coord, delivered := newSearchFixture(catalog)
	ctx := context.Background()

	coord.Search(ctx, "dun", domain.Filters{}, 10, 0)
	coord.Search(ctx, "dune", domain.Filters{}, 10, 0)

	waitDelivery(t, delivered)
	// Allow any stray second call to land before asserting.
	time.Sleep(3 * testDebounce)

	if got := catalog.callCount(); got != 1 {
		t.Fatalf("expected the two invocations to collapse into 1 call, got %d", got)
	}
	if got := catalog.lastQuery(); got != "dune" {
		t.Errorf("expected the second invocation's query, got %q", got)
	}
}

func TestSearchCoordinator_DeliversResultsAndClearsLoading(t *testing.T) {
	catalog := &fakeCatalog{result: ports.SearchResult{
		Books: []domain.Book{{ID: "/works/OL1W", Title: "Dune"}},
		Total: 42,
	}}
	coord, delivered := newSearchFixture(catalog)

	coord.Search(context.Background(), "dune", domain.Filters{}, 10, 0)

	r := waitDelivery(t, delivered)
	if len(r.Books) != 1 || r.Total != 42 {
		t.Fatalf("unexpected delivery: %+v", r)
	}
	if coord.Loading() {
		t.Error("expected loading false after delivery")
	}
	if coord.Err() != nil {
		t.Errorf("expected no error, got %v", coord.Err())
	}
	if coord.Total() != 42 {
		t.Errorf("expected total 42, got %d", coord.Total())
	}
}

func TestSearchCoordinator_QuietPeriodsIssueSeparateCalls(t *testing.T) {
	catalog := &fakeCatalog{result: ports.SearchResult{Books: []domain.Book{}, Total: 0}}
	coord, delivered := newSearchFixture(catalog)
	ctx := context.Background()

	coord.Search(ctx, "first", domain.Filters{}, 10, 0)
	waitDelivery(t, delivered)

	coord.Search(ctx, "second", domain.Filters{}, 10, 0)
	waitDelivery(t, delivered)

	if got := catalog.callCount(); got != 2 {
		t.Fatalf("expected 2 calls across separate quiet periods, got %d", got)
	}
}
