package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Catalog.BaseURL == "" {
		t.Error("expected a default catalog base URL")
	}
	if cfg.Catalog.CoversURL == "" {
		t.Error("expected a default covers URL")
	}
	if cfg.Search.DebounceMillis <= 0 {
		t.Errorf("expected a positive debounce default, got %d", cfg.Search.DebounceMillis)
	}
	if cfg.Storage.Backend == "" {
		t.Error("expected a default storage backend")
	}
}
