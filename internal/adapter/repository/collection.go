// Package repository implements the per-entity repositories on top of the
// entity store. Each collection is a flat JSON array scanned linearly.
package repository

import (
	"context"
	"slices"

	"admanager/internal/adapter/entitystore"
	"admanager/internal/core/domain"
)

// Collection implements port.Collection for one stored entity type.
type Collection[E domain.Record] struct {
	store *entitystore.Store
	key   string
}

// NewCollection returns a collection persisted under key.
func NewCollection[E domain.Record](store *entitystore.Store, key string) *Collection[E] {
	return &Collection[E]{store: store, key: key}
}

func (c *Collection[E]) All(ctx context.Context) ([]E, error) {
	items, err := entitystore.Read(ctx, c.store, c.key, []E{})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[E]) ByID(ctx context.Context, id string) (*E, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].PrimaryKey() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (c *Collection[E]) ByParent(ctx context.Context, parentID string) ([]E, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, len(items))
	for _, it := range items {
		if it.ParentKey() == parentID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Save replaces the record at its current position or appends it.
func (c *Collection[E]) Save(ctx context.Context, e E) error {
	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	id := e.PrimaryKey()
	if i := slices.IndexFunc(items, func(it E) bool { return it.PrimaryKey() == id }); i >= 0 {
		items[i] = e
	} else {
		items = append(items, e)
	}
	return entitystore.Write(ctx, c.store, c.key, items)
}

// Delete drops the record with id and writes the remaining collection back,
// whether or not anything matched.
func (c *Collection[E]) Delete(ctx context.Context, id string) error {
	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	items = slices.DeleteFunc(items, func(it E) bool { return it.PrimaryKey() == id })
	return entitystore.Write(ctx, c.store, c.key, items)
}

func (c *Collection[E]) Count(ctx context.Context) (int, error) {
	items, err := c.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
