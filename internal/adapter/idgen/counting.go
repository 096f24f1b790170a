// Package idgen produces hierarchical record identifiers.
//
// Two schemes are available. Counting ids are human readable and ordered:
// the n-th project of client cl00001 is cl00001_pr0000n. Timestamp ids are
// opaque but never need a scan of the siblings.
package idgen

import (
	"context"
	"fmt"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// Counting derives the next ordinal from the live siblings under the same
// parent. With no gaps the suffix is siblings+1. When that id is still held
// by a record, which happens after a non-last sibling was deleted, the
// ordinal moves forward until it is free. Ids of deleted records are not
// tombstoned and may be handed out again.
type Counting struct {
	catalog port.Catalog
}

var _ port.IDGenerator = (*Counting)(nil)

func NewCounting(catalog port.Catalog) *Counting {
	return &Counting{catalog: catalog}
}

func (g *Counting) Next(ctx context.Context, kind domain.Kind, parentID string) (string, error) {
	var (
		siblings int
		taken    map[string]struct{}
		err      error
	)
	switch kind {
	case domain.KindClient:
		siblings, taken, err = scan(ctx, g.catalog.Clients(), parentID)
	case domain.KindProject:
		siblings, taken, err = scan(ctx, g.catalog.Projects(), parentID)
	case domain.KindCampaign:
		siblings, taken, err = scan(ctx, g.catalog.Campaigns(), parentID)
	case domain.KindAdSet:
		siblings, taken, err = scan(ctx, g.catalog.AdSets(), parentID)
	case domain.KindAd:
		siblings, taken, err = scan(ctx, g.catalog.Ads(), parentID)
	default:
		return "", fmt.Errorf("idgen: unknown kind %q", kind)
	}
	if err != nil {
		return "", err
	}
	for n := siblings + 1; ; n++ {
		id := domain.CountingID(kind, parentID, n)
		if _, ok := taken[id]; !ok {
			return id, nil
		}
	}
}

// scan counts the records whose back-reference is parentID and collects the
// ids of the whole collection.
func scan[E domain.Record](ctx context.Context, col port.Collection[E], parentID string) (int, map[string]struct{}, error) {
	items, err := col.All(ctx)
	if err != nil {
		return 0, nil, err
	}
	siblings := 0
	taken := make(map[string]struct{}, len(items))
	for _, it := range items {
		taken[it.PrimaryKey()] = struct{}{}
		if it.ParentKey() == parentID {
			siblings++
		}
	}
	return siblings, taken, nil
}
