// Package app assembles the library system: configuration, logger, storage
// backend, repositories, and services. UI glue builds one App at startup and
// calls into its services; nothing below this layer depends on the UI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/ports"
	"github.com/openshelf/library-system/internal/core/service"
	"github.com/openshelf/library-system/internal/infrastructure/catalog/openlibrary"
	"github.com/openshelf/library-system/internal/infrastructure/config"
	"github.com/openshelf/library-system/internal/infrastructure/db/kv"
	"github.com/openshelf/library-system/internal/infrastructure/db/localstore"
	mongodb "github.com/openshelf/library-system/internal/infrastructure/db/mongo"
	redisdb "github.com/openshelf/library-system/internal/infrastructure/db/redis"
)

// App holds the wired service graph.
type App struct {
	Config   *config.Config
	Store    ports.KeyValueStore
	Auth     ports.AuthService
	Loans    ports.LoanService
	Wishlist ports.WishlistService
	Library  *service.LibraryService
	Catalog  ports.CatalogClient
	Search   *service.SearchCoordinator

	closeStore func(context.Context) error
}

// New wires the whole graph from configuration. onResults, when non-nil,
// receives every search delivery (see service.SearchCoordinator).
//
// Storage operation failures are contained by the adapters; a backend that
// cannot be reached at startup, however, is a wiring error and is returned.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, onResults func(ports.SearchResult)) (*App, error) {
	a := &App{Config: cfg}

	switch cfg.Storage.Backend {
	case "redis":
		store, err := redisdb.Open(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("storage backend: %w", err)
		}
		a.Store = store
		a.closeStore = func(context.Context) error { return store.Close() }
	case "mongo":
		store, err := mongodb.Open(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, fmt.Errorf("storage backend: %w", err)
		}
		a.Store = store
		a.closeStore = store.Close
	case "memory":
		a.Store = localstore.NewMemoryStore()
	case "file":
		a.Store = localstore.NewFileStore(cfg.Storage.Dir, log)
	default:
		return nil, fmt.Errorf("storage backend: unknown backend %q", cfg.Storage.Backend)
	}

	users := kv.NewUserRepository(a.Store, log)
	session := kv.NewSessionStore(a.Store, log)
	tokens := kv.NewTokenStore(a.Store, log)
	loans := kv.NewLoanRepository(a.Store, log)
	wishlist := kv.NewWishlistRepository(a.Store, log)

	a.Auth = service.NewAuthService(users, session, tokens, log)
	a.Loans = service.NewLoanService(loans, tokens, log)
	a.Wishlist = service.NewWishlistService(wishlist, tokens, log)
	a.Library = service.NewLibraryService(a.Auth, a.Loans, log)

	a.Catalog = openlibrary.NewClient(openlibrary.Config{
		BaseURL:           cfg.Catalog.BaseURL,
		CoversURL:         cfg.Catalog.CoversURL,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	}, log)
	a.Search = service.NewSearchCoordinator(
		a.Catalog,
		time.Duration(cfg.Search.DebounceMillis)*time.Millisecond,
		onResults,
		log,
	)

	return a, nil
}

// Close releases the storage backend, if it holds a connection.
func (a *App) Close(ctx context.Context) error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore(ctx)
}
