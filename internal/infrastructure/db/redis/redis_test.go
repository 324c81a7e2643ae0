package redis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openshelf/library-system/internal/core/ports"
	"github.com/openshelf/library-system/internal/infrastructure/config"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

func TestOpen_UnreachableInstance(t *testing.T) {
	// Port 1 is never a Redis instance; the ping must fail and no store
	// must be handed out.
	cfg := config.RedisConfig{Addr: "127.0.0.1:1", DB: 0}

	store, err := Open(context.Background(), cfg, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for an unreachable instance")
	}
	if store != nil {
		t.Error("expected no store on a failed open")
	}
}
