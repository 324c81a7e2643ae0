package ports

import "context"

// KeyValueStore is the persistence primitive every collection sits on. Values
// are serialized text; callers own the encoding.
//
// Failure containment is part of the contract: implementations never surface
// storage errors. A failed Get reports absence, a failed Set/Remove/Clear is
// a no-op, and the failure is logged for diagnostics only. Persistence here
// is a convenience layer; losing a write must not crash the application.
type KeyValueStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
	Clear(ctx context.Context)
}
