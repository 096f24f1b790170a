package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingID(t *testing.T) {
	assert.Equal(t, "cl00001", CountingID(KindClient, "", 1))
	assert.Equal(t, "cl00001_pr00003", CountingID(KindProject, "cl00001", 3))
	assert.Equal(t, "cl00001_pr00001_ca00001_as00001_ad00012",
		CountingID(KindAd, "cl00001_pr00001_ca00001_as00001", 12))
}

func TestTimestampID(t *testing.T) {
	assert.Equal(t, "cl_1700000000000_005", TimestampID(KindClient, "", 1700000000000, 5))
	assert.Equal(t, "as_x_1_999", TimestampID(KindAdSet, "x", 1, 999))
}

func TestKindHierarchy(t *testing.T) {
	for i, k := range Kinds {
		assert.NotEmpty(t, k.Tag())
		assert.NotEmpty(t, k.StorageKey())
		if i == 0 {
			assert.Empty(t, k.Parent())
			continue
		}
		assert.Equal(t, Kinds[i-1], k.Parent())
	}
	assert.Equal(t, "ad_management_ad_sets", KindAdSet.StorageKey())
}

func TestNewBudget(t *testing.T) {
	b, err := NewBudget(BudgetDaily, "1000", "5000")
	require.NoError(t, err)
	assert.Equal(t, Budget{DailyBudget: "1000"}, b)
	assert.Equal(t, BudgetDaily, b.BudgetType())

	b, err = NewBudget(BudgetLifetime, "1000", "5000")
	require.NoError(t, err)
	assert.Equal(t, Budget{LifetimeBudget: "5000"}, b)
	assert.Equal(t, BudgetLifetime, b.BudgetType())

	b, err = NewBudget("", "12.5", "")
	require.NoError(t, err)
	assert.Equal(t, "12.5", b.DailyBudget)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		_, err = NewBudget(BudgetDaily, bad, "")
		assert.Error(t, err, bad)
	}
	_, err = NewBudget("weekly", "1", "1")
	assert.Error(t, err)
}

func TestBudgetJSONKeepsOneField(t *testing.T) {
	data, err := json.Marshal(Campaign{CampaignID: "c", Budget: Budget{LifetimeBudget: "9"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lifetime_budget":"9"`)
	assert.NotContains(t, string(data), "daily_budget")
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("bigquery")
	assert.ErrorIs(t, err, ErrUnknownMode)

	assert.False(t, ModeLocal.Remote())
	assert.True(t, ModeMockAPI.Remote())
	assert.True(t, ModeAPI.Remote())
}

func TestOneOf(t *testing.T) {
	assert.True(t, OneOf(StatusCompleted, ProjectStatuses))
	assert.False(t, OneOf(StatusCompleted, CampaignStatuses))
	assert.False(t, OneOf(StatusScheduled, AdStatuses))
}
