package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/config/configs"
	"admanager/internal/core/domain"
)

func TestCatalogReadsAreEmpty(t *testing.T) {
	ctx := context.Background()
	cat := NewCatalog(domain.ModeMockAPI)
	assert.Equal(t, domain.ModeMockAPI, cat.Mode())

	clients, err := cat.Clients().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NotNil(t, clients)

	ad, err := cat.Ads().ByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, ad)

	sets, err := cat.AdSets().ByParent(ctx, "x")
	require.NoError(t, err)
	assert.Empty(t, sets)

	n, err := cat.Projects().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCatalogWritesAreUnavailable(t *testing.T) {
	ctx := context.Background()
	cat := NewCatalog(domain.ModeAPI)

	err := cat.Campaigns().Save(ctx, domain.Campaign{CampaignID: "c"})
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "api")

	err = cat.Clients().Delete(ctx, "cl00001")
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestWarehouseNotConfigured(t *testing.T) {
	w := NewWarehouse(configs.BigQuery{ProjectID: "p"})
	st, err := w.Test(context.Background())
	assert.ErrorIs(t, err, domain.ErrWarehouseNotConfigured)
	require.NotNil(t, st)
	assert.False(t, st.Success)
	assert.True(t, st.ProjectIDSet)
	assert.False(t, st.DatasetIDSet)
	assert.Equal(t, DefaultRegion, st.Region)
}

func TestWarehouseConfigured(t *testing.T) {
	w := NewWarehouse(configs.BigQuery{ProjectID: "p", DatasetID: "d", Region: "us-central1"})
	st, err := w.Test(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Success)
	assert.Equal(t, "us-central1", st.Region)
	assert.Equal(t, "d", st.DatasetID)
}
