package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/config/configs"
)

func newStore(t *testing.T) (*KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewKVStore(NewClient(configs.Redis{Addr: mr.Addr()}), "test:")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestKVStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)
	require.NoError(t, s.Ping(ctx))

	_, ok, err := s.Get(ctx, "databaseMode")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "databaseMode", "api"))
	v, ok, err := s.Get(ctx, "databaseMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "api", v)

	raw, err := mr.Get("test:databaseMode")
	require.NoError(t, err)
	assert.Equal(t, "api", raw)
}

func TestKVStoreTransportError(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()
	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
}
