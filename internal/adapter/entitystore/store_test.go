package entitystore

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"admanager/internal/adapter/memory"
	"admanager/internal/core/port/mocks"
	"admanager/internal/metrics"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestReadMissingKeyReturnsDefault(t *testing.T) {
	s := New(memory.NewKVStore(), nil, nil)
	got, err := Read(context.Background(), s, "items", []item{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestWriteThenRead(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := New(kv, nil, nil)

	in := []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, Write(ctx, s, "items", in))

	raw, ok, _ := kv.Get(ctx, "items")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","name":"a"},{"id":"2","name":"b"}]`, raw)

	got, err := Read(ctx, s, "items", []item{})
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestReadMalformedJSONRecovers(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	reg := prometheus.NewRegistry()
	s := New(kv, nil, metrics.New(reg))

	require.NoError(t, kv.Set(ctx, "items", "{not json"))
	got, err := Read(ctx, s, "items", []item{})
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := testutil.GatherAndCount(reg, "admanager_store_parse_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReadNullReturnsDefault(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Set(ctx, "items", "null"))
	got, err := Read(ctx, New(kv, nil, nil), "items", []item{})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUnavailableBackendIsNoop(t *testing.T) {
	ctx := context.Background()
	s := New(nil, nil, nil)
	require.NoError(t, Write(ctx, s, "items", []item{{ID: "1"}}))
	got, err := Read(ctx, s, "items", []item{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKVErrorsAreReturned(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewMockKV(t)
	boom := errors.New("connection refused")

	kv.EXPECT().Get(mock.Anything, "items").Return("", false, boom)
	kv.EXPECT().Set(mock.Anything, "items", `[{"id":"1","name":""}]`).Return(boom)

	s := New(kv, nil, nil)
	_, err := Read(ctx, s, "items", []item{})
	assert.ErrorIs(t, err, boom)

	err = Write(ctx, s, "items", []item{{ID: "1"}})
	assert.ErrorIs(t, err, boom)
}
