package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Catalog CatalogConfig
	Search  SearchConfig
	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

// CatalogConfig points at the external book catalog.
type CatalogConfig struct {
	BaseURL   string `env:"CATALOG_BASE_URL, default=https://openlibrary.org"`
	CoversURL string `env:"CATALOG_COVERS_URL, default=https://covers.openlibrary.org"`
	// RequestsPerSecond throttles outbound catalog calls.
	RequestsPerSecond int `env:"CATALOG_RPS, default=5"`
}

// SearchConfig tunes the search coordinator.
type SearchConfig struct {
	// DebounceMillis is the quiet period before a search is issued.
	DebounceMillis int `env:"SEARCH_DEBOUNCE_MS, default=500"`
}

// StorageConfig selects the key-value backend: file, memory, redis or mongo.
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND, default=file"`
	// Dir is the directory used by the file backend.
	Dir string `env:"STORAGE_DIR, default=.library-data"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=library_system"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
