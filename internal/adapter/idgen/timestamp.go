package idgen

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// Timestamp builds ids from the current epoch milliseconds and a random
// number below 1000. The millisecond part never repeats within one
// generator: when the clock has not advanced it is bumped past the last
// value handed out.
type Timestamp struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
	rand func(n int) int
}

var _ port.IDGenerator = (*Timestamp)(nil)

func NewTimestamp() *Timestamp {
	return &Timestamp{now: time.Now, rand: rand.IntN}
}

func (g *Timestamp) Next(_ context.Context, kind domain.Kind, parentID string) (string, error) {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()
	return domain.TimestampID(kind, parentID, ms, g.rand(1000)), nil
}
