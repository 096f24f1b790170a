// Package entitystore maps a storage key to a JSON-encoded collection. Every
// read re-parses the stored value and every write re-serialises the whole
// collection; nothing is cached between calls.
package entitystore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"admanager/internal/core/port"
	"admanager/internal/metrics"
)

// Store is the generic read/write layer over a port.KV. A Store with a nil
// KV behaves as an unavailable backend: reads return the default and writes
// are dropped.
type Store struct {
	kv      port.KV
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New returns a Store over kv. logger defaults to slog.Default; m may be nil.
func New(kv port.KV, logger *slog.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger, metrics: m}
}

// Read decodes the value stored at key into a T. It returns def when the key
// is absent, empty or JSON null, and also when the stored value does not
// parse: the failure is logged and counted but not returned. Errors from the
// KV itself are returned.
func Read[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	if s == nil || s.kv == nil {
		return def, nil
	}
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	s.metrics.StoreRead(key)
	if !ok || raw == "" || raw == "null" {
		return def, nil
	}
	var out T
	if err = json.Unmarshal([]byte(raw), &out); err != nil {
		s.metrics.StoreParseFailure(key)
		s.logger.ErrorContext(ctx, "failed to parse stored collection",
			slog.String("key", key), slog.Any("error", err))
		return def, nil
	}
	return out, nil
}

// Write serialises v and overwrites the value at key. There is no version
// check: the last writer wins.
func Write[T any](ctx context.Context, s *Store, key string, v T) error {
	if s == nil || s.kv == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err = s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	s.metrics.StoreWrite(key)
	return nil
}
