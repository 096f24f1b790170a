package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/config/configs"
	"admanager/internal/db"
)

// TestKVStore runs against a real database named by ADMANAGER_TEST_PSQL.
func TestKVStore(t *testing.T) {
	addr := os.Getenv("ADMANAGER_TEST_PSQL")
	if addr == "" {
		t.Skip("ADMANAGER_TEST_PSQL not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := NewKVStore(pool)
	key := "test_" + t.Name()
	_, err = pool.Exec(ctx, `DELETE FROM state WHERE bucket = $1`, key)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, key, `[1]`))
	require.NoError(t, s.Set(ctx, key, `[1,2]`))
	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, v)
}
