package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/adapter/entitystore"
	"admanager/internal/adapter/memory"
	"admanager/internal/core/domain"
)

func newCatalog(t *testing.T) (*Catalog, *memory.KVStore) {
	t.Helper()
	kv := memory.NewKVStore()
	return NewCatalog(entitystore.New(kv, nil, nil)), kv
}

func ts(s string) time.Time {
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleAdSet(id, campaignID string) domain.AdSet {
	age := 18
	end := ts("2025-03-31T00:00:00Z")
	return domain.AdSet{
		AdSetID:          id,
		CampaignID:       campaignID,
		CampaignName:     "Q1",
		AdSetName:        "Tokyo commuters",
		Budget:           domain.Budget{DailyBudget: "500"},
		StartTime:        ts("2025-01-01T00:00:00Z"),
		EndTime:          &end,
		BillingEvent:     domain.BillingImpressions,
		OptimizationGoal: domain.GoalReach,
		BidStrategy:      domain.BidLowestCostWithoutCap,
		Targeting: &domain.Targeting{
			AgeMin:       &age,
			Genders:      []int{domain.GenderMale, domain.GenderFemale},
			GeoLocations: &domain.GeoLocations{Countries: []string{"JP"}},
		},
		PacingType:       []domain.PacingType{domain.PacingStandard},
		Schedule:         []domain.Schedule{{Days: []int{1, 2, 3}, StartMinute: 480, EndMinute: 1020}},
		FrequencyControl: []domain.FrequencyControlSpec{{Event: "IMPRESSIONS", MaxFrequency: 3, TimeWindow: 7}},
		Status:           domain.StatusActive,
		CreatedAt:        ts("2025-01-01T09:00:00Z"),
		UpdatedAt:        ts("2025-01-01T09:00:00Z"),
	}
}

func TestSaveThenByIDIsDeepEqual(t *testing.T) {
	ctx := context.Background()
	cat, _ := newCatalog(t)

	in := sampleAdSet("cl00001_pr00001_ca00001_as00001", "cl00001_pr00001_ca00001")
	require.NoError(t, cat.AdSets().Save(ctx, in))

	got, err := cat.AdSets().ByID(ctx, in.AdSetID)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(in, *got); diff != "" {
		t.Fatalf("stored ad set mismatch (-want +got):\n%s", diff)
	}
}

func TestByIDMissReturnsNil(t *testing.T) {
	cat, _ := newCatalog(t)
	got, err := cat.Clients().ByID(context.Background(), "cl99999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	cat, _ := newCatalog(t)
	clients := cat.Clients()

	for _, id := range []string{"cl00001", "cl00002", "cl00003"} {
		require.NoError(t, clients.Save(ctx, domain.Client{ClientID: id, ClientName: id}))
	}
	require.NoError(t, clients.Save(ctx, domain.Client{ClientID: "cl00002", ClientName: "renamed"}))

	all, err := clients.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "cl00002", all[1].ClientID)
	assert.Equal(t, "renamed", all[1].ClientName)
}

func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cat, kv := newCatalog(t)
	c := domain.Client{ClientID: "cl00001", ClientName: "Acme"}

	require.NoError(t, cat.Clients().Save(ctx, c))
	once, _, _ := kv.Get(ctx, domain.KindClient.StorageKey())
	require.NoError(t, cat.Clients().Save(ctx, c))
	twice, _, _ := kv.Get(ctx, domain.KindClient.StorageKey())

	assert.Equal(t, once, twice)
}

func TestDeleteRemovesRecord(t *testing.T) {
	ctx := context.Background()
	cat, _ := newCatalog(t)
	projects := cat.Projects()

	require.NoError(t, projects.Save(ctx, domain.Project{ProjectID: "cl00001_pr00001", ClientID: "cl00001"}))
	require.NoError(t, projects.Save(ctx, domain.Project{ProjectID: "cl00001_pr00002", ClientID: "cl00001"}))
	require.NoError(t, projects.Delete(ctx, "cl00001_pr00001"))

	got, err := projects.ByID(ctx, "cl00001_pr00001")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := projects.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "cl00001_pr00002", all[0].ProjectID)

	// deleting an unknown id is not an error
	require.NoError(t, projects.Delete(ctx, "nope"))
}

func TestByParentFilters(t *testing.T) {
	ctx := context.Background()
	cat, _ := newCatalog(t)
	campaigns := cat.Campaigns()

	require.NoError(t, campaigns.Save(ctx, domain.Campaign{CampaignID: "a_ca00001", ProjectID: "a"}))
	require.NoError(t, campaigns.Save(ctx, domain.Campaign{CampaignID: "b_ca00001", ProjectID: "b"}))
	require.NoError(t, campaigns.Save(ctx, domain.Campaign{CampaignID: "a_ca00002", ProjectID: "a"}))

	got, err := campaigns.ByParent(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a_ca00001", got[0].CampaignID)
	assert.Equal(t, "a_ca00002", got[1].CampaignID)

	none, err := campaigns.ByParent(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	n, err := campaigns.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMalformedCollectionReadsEmpty(t *testing.T) {
	ctx := context.Background()
	cat, kv := newCatalog(t)

	require.NoError(t, kv.Set(ctx, domain.KindCampaign.StorageKey(), "[{oops"))
	all, err := cat.Campaigns().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeletingParentLeavesOrphans(t *testing.T) {
	ctx := context.Background()
	cat, _ := newCatalog(t)

	campaignID := "cl00001_pr00001_ca00001"
	require.NoError(t, cat.Campaigns().Save(ctx, domain.Campaign{CampaignID: campaignID, ProjectID: "cl00001_pr00001"}))
	adSet := sampleAdSet(campaignID+"_as00001", campaignID)
	require.NoError(t, cat.AdSets().Save(ctx, adSet))

	require.NoError(t, cat.Campaigns().Delete(ctx, campaignID))

	parent, err := cat.Campaigns().ByID(ctx, campaignID)
	require.NoError(t, err)
	assert.Nil(t, parent)

	orphans, err := cat.AdSets().ByParent(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	if diff := cmp.Diff(adSet, orphans[0]); diff != "" {
		t.Fatalf("orphaned ad set changed (-want +got):\n%s", diff)
	}
}

func TestStoredFormatMatchesLocalStorageLayout(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	legacy := `[{"client_id":"cl00001","client_name":"Acme","created_at":"2024-05-01T10:00:00.000Z","updated_at":"2024-05-02T10:00:00.000Z"}]`
	require.NoError(t, kv.Set(ctx, "ad_management_clients", legacy))

	cat := NewCatalog(entitystore.New(kv, nil, nil))
	c, err := cat.Clients().ByID(ctx, "cl00001")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Acme", c.ClientName)
	assert.True(t, c.UpdatedAt.After(c.CreatedAt))
}
