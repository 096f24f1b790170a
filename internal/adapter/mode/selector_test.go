package mode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/adapter/memory"
	"admanager/internal/core/domain"
)

func TestDefaultsToLocal(t *testing.T) {
	m, err := NewSelector(memory.NewKVStore(), nil).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeLocal, m)
}

func TestSetPersistsRawString(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := NewSelector(kv, nil)

	require.NoError(t, s.Set(ctx, domain.ModeMockAPI))
	raw, ok, _ := kv.Get(ctx, Key)
	require.True(t, ok)
	assert.Equal(t, "mock-api", raw)

	m, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeMockAPI, m)
}

func TestSetRejectsUnknownMode(t *testing.T) {
	err := NewSelector(memory.NewKVStore(), nil).Set(context.Background(), domain.Mode("bigtable"))
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestUnknownStoredValueFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, Key, "garbage"))
	m, err := NewSelector(kv, nil).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeLocal, m)
}

func TestNilKV(t *testing.T) {
	s := NewSelector(nil, nil)
	require.NoError(t, s.Set(context.Background(), domain.ModeAPI))
	m, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeLocal, m)
}
