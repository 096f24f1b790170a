package port

import "context"

// KV is the persistence boundary: a string key-value store holding one JSON
// document per collection. It is an outbound port; drivers live under
// internal/adapter. Implementations must be safe for concurrent use, but
// callers get no read-modify-write atomicity from them.
type KV interface {
	// Get returns the value stored at key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set overwrites the value at key unconditionally.
	Set(ctx context.Context, key, value string) error
}
