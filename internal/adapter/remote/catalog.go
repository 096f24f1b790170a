// Package remote holds the stand-ins for the mock API and the warehouse
// backed API. Neither is implemented: reads come back empty and writes fail
// with domain.ErrRemoteUnavailable.
package remote

import (
	"context"
	"fmt"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// Catalog implements port.Catalog for a remote mode.
type Catalog struct {
	mode      domain.Mode
	clients   collection[domain.Client]
	projects  collection[domain.Project]
	campaigns collection[domain.Campaign]
	adSets    collection[domain.AdSet]
	ads       collection[domain.Ad]
}

var _ port.Catalog = (*Catalog)(nil)

func NewCatalog(mode domain.Mode) *Catalog {
	return &Catalog{
		mode:      mode,
		clients:   collection[domain.Client]{mode: mode, kind: domain.KindClient},
		projects:  collection[domain.Project]{mode: mode, kind: domain.KindProject},
		campaigns: collection[domain.Campaign]{mode: mode, kind: domain.KindCampaign},
		adSets:    collection[domain.AdSet]{mode: mode, kind: domain.KindAdSet},
		ads:       collection[domain.Ad]{mode: mode, kind: domain.KindAd},
	}
}

func (c *Catalog) Mode() domain.Mode                           { return c.mode }
func (c *Catalog) Clients() port.Collection[domain.Client]     { return c.clients }
func (c *Catalog) Projects() port.Collection[domain.Project]   { return c.projects }
func (c *Catalog) Campaigns() port.Collection[domain.Campaign] { return c.campaigns }
func (c *Catalog) AdSets() port.Collection[domain.AdSet]       { return c.adSets }
func (c *Catalog) Ads() port.Collection[domain.Ad]             { return c.ads }

type collection[E domain.Record] struct {
	mode domain.Mode
	kind domain.Kind
}

func (c collection[E]) All(context.Context) ([]E, error)              { return []E{}, nil }
func (c collection[E]) ByID(context.Context, string) (*E, error)      { return nil, nil }
func (c collection[E]) ByParent(context.Context, string) ([]E, error) { return []E{}, nil }
func (c collection[E]) Count(context.Context) (int, error)            { return 0, nil }

func (c collection[E]) Save(context.Context, E) error {
	return fmt.Errorf("save %s via %s: %w", c.kind, c.mode, domain.ErrRemoteUnavailable)
}

func (c collection[E]) Delete(context.Context, string) error {
	return fmt.Errorf("delete %s via %s: %w", c.kind, c.mode, domain.ErrRemoteUnavailable)
}
