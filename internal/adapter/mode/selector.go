// Package mode persists the database mode next to the entity collections.
package mode

import (
	"context"
	"fmt"
	"log/slog"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// Key is the storage key of the mode. The value is the bare mode string, not
// JSON.
const Key = "databaseMode"

// Selector implements port.ModeSelector.
type Selector struct {
	kv     port.KV
	logger *slog.Logger
}

var _ port.ModeSelector = (*Selector)(nil)

func NewSelector(kv port.KV, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{kv: kv, logger: logger}
}

// Get returns the stored mode, falling back to local when nothing or an
// unknown value is stored.
func (s *Selector) Get(ctx context.Context) (domain.Mode, error) {
	if s.kv == nil {
		return domain.ModeLocal, nil
	}
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return "", fmt.Errorf("read mode: %w", err)
	}
	if !ok || raw == "" {
		return domain.ModeLocal, nil
	}
	m, err := domain.ParseMode(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring stored database mode", slog.String("value", raw))
		return domain.ModeLocal, nil
	}
	return m, nil
}

func (s *Selector) Set(ctx context.Context, m domain.Mode) error {
	if _, err := domain.ParseMode(string(m)); err != nil {
		return err
	}
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Set(ctx, Key, string(m)); err != nil {
		return fmt.Errorf("write mode: %w", err)
	}
	return nil
}
