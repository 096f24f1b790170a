package port

import (
	"context"

	"admanager/internal/core/domain"
)

// Collection is the per-entity repository over one stored collection.
// Lookups report a miss as a nil record, never as an error.
type Collection[E domain.Record] interface {
	// All returns every record in insertion order.
	All(ctx context.Context) ([]E, error)
	// ByID returns the record with the given primary key or nil.
	ByID(ctx context.Context, id string) (*E, error)
	// ByParent returns the records whose back-reference equals parentID.
	ByParent(ctx context.Context, parentID string) ([]E, error)
	// Save replaces the record with the same primary key in place, or
	// appends it when absent.
	Save(ctx context.Context, e E) error
	// Delete removes the record with the given id. Children are left in
	// place.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Catalog bundles the five collections of one backend.
type Catalog interface {
	Clients() Collection[domain.Client]
	Projects() Collection[domain.Project]
	Campaigns() Collection[domain.Campaign]
	AdSets() Collection[domain.AdSet]
	Ads() Collection[domain.Ad]
}

// IDGenerator produces the identifier for a new record of kind under
// parentID. parentID is empty for clients.
type IDGenerator interface {
	Next(ctx context.Context, kind domain.Kind, parentID string) (string, error)
}

// ModeSelector persists the active database mode.
type ModeSelector interface {
	Get(ctx context.Context) (domain.Mode, error)
	Set(ctx context.Context, mode domain.Mode) error
}
