package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/adapter/entitystore"
	"admanager/internal/adapter/idgen"
	"admanager/internal/adapter/memory"
	"admanager/internal/adapter/mode"
	"admanager/internal/adapter/remote"
	"admanager/internal/adapter/repository"
	"admanager/internal/adapter/usecase"
	"admanager/internal/config/configs"
	"admanager/internal/db"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	cat := repository.NewCatalog(entitystore.New(kv, nil, nil))
	uc := usecase.NewConsoleUseCase(cat, mode.NewSelector(kv, nil), idgen.NewCounting(cat),
		remote.NewWarehouse(configs.BigQuery{}), nil)

	res, err := db.Seed(ctx, uc)
	require.NoError(t, err)
	assert.Equal(t, []string{"cl00001", "cl00002"}, res.Clients)
	assert.Equal(t, []string{"cl00001_pr00001", "cl00002_pr00001"}, res.Projects)
	assert.Len(t, res.Campaigns, 4)
	assert.Len(t, res.AdSets, 4)
	assert.Len(t, res.Ads, 8)
	assert.Equal(t, "cl00002_pr00001_ca00002_as00001_ad00002", res.Ads[7])

	n, err := cat.Ads().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
