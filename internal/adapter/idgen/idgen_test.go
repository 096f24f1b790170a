package idgen

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/adapter/entitystore"
	"admanager/internal/adapter/memory"
	"admanager/internal/adapter/repository"
	"admanager/internal/core/domain"
)

func newCatalog() *repository.Catalog {
	return repository.NewCatalog(entitystore.New(memory.NewKVStore(), nil, nil))
}

func TestCountingFirstClient(t *testing.T) {
	g := NewCounting(newCatalog())
	id, err := g.Next(context.Background(), domain.KindClient, "")
	require.NoError(t, err)
	assert.Equal(t, "cl00001", id)
}

func TestCountingSuffixIsSiblingsPlusOne(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog()
	g := NewCounting(cat)

	require.NoError(t, cat.Projects().Save(ctx, domain.Project{ProjectID: "cl00001_pr00001", ClientID: "cl00001"}))
	require.NoError(t, cat.Projects().Save(ctx, domain.Project{ProjectID: "cl00001_pr00002", ClientID: "cl00001"}))
	// another client's projects do not count
	require.NoError(t, cat.Projects().Save(ctx, domain.Project{ProjectID: "cl00002_pr00001", ClientID: "cl00002"}))

	id, err := g.Next(ctx, domain.KindProject, "cl00001")
	require.NoError(t, err)
	assert.Equal(t, "cl00001_pr00003", id)
}

func TestCountingTags(t *testing.T) {
	ctx := context.Background()
	g := NewCounting(newCatalog())
	tests := []struct {
		kind   domain.Kind
		parent string
		want   string
	}{
		{domain.KindProject, "cl00001", "cl00001_pr00001"},
		{domain.KindCampaign, "cl00001_pr00001", "cl00001_pr00001_ca00001"},
		{domain.KindAdSet, "cl00001_pr00001_ca00001", "cl00001_pr00001_ca00001_as00001"},
		{domain.KindAd, "cl00001_pr00001_ca00001_as00001", "cl00001_pr00001_ca00001_as00001_ad00001"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := g.Next(ctx, tt.kind, tt.parent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountingSkipsLiveIDAfterGap(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog()
	g := NewCounting(cat)

	for _, id := range []string{"cl00001", "cl00002", "cl00003"} {
		require.NoError(t, cat.Clients().Save(ctx, domain.Client{ClientID: id}))
	}
	require.NoError(t, cat.Clients().Delete(ctx, "cl00001"))

	// two live clients would give cl00003, which is still taken
	id, err := g.Next(ctx, domain.KindClient, "")
	require.NoError(t, err)
	assert.Equal(t, "cl00004", id)
}

func TestCountingReusesDeletedLastSlot(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog()
	g := NewCounting(cat)

	require.NoError(t, cat.Clients().Save(ctx, domain.Client{ClientID: "cl00001"}))
	require.NoError(t, cat.Clients().Save(ctx, domain.Client{ClientID: "cl00002"}))
	require.NoError(t, cat.Clients().Delete(ctx, "cl00002"))

	id, err := g.Next(ctx, domain.KindClient, "")
	require.NoError(t, err)
	assert.Equal(t, "cl00002", id)
}

func TestCountingUnknownKind(t *testing.T) {
	_, err := NewCounting(newCatalog()).Next(context.Background(), domain.Kind("x"), "")
	assert.Error(t, err)
}

func TestTimestampIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	g := NewTimestamp()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id, err := g.Next(ctx, domain.KindCampaign, "cl00001_pr00001")
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestTimestampConcurrentUnique(t *testing.T) {
	ctx := context.Background()
	g := NewTimestamp()
	var (
		mu   sync.Mutex
		seen = map[string]struct{}{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, _ := g.Next(ctx, domain.KindAd, "p")
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 800)
}

func TestTimestampFormat(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	g := &Timestamp{now: func() time.Time { return fixed }, rand: func(int) int { return 7 }}

	id, err := g.Next(context.Background(), domain.KindProject, "cl00001")
	require.NoError(t, err)
	assert.Equal(t, "pr_cl00001_1700000000000_007", id)

	// clock did not move: millis are bumped
	id, err = g.Next(context.Background(), domain.KindClient, "")
	require.NoError(t, err)
	assert.Equal(t, "cl_1700000000001_007", id)
	assert.True(t, strings.HasPrefix(id, "cl_"))
}
