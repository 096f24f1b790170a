package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestKVStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "k", "v")
			_, _, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()
	v, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
