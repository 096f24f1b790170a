package repository

import (
	"admanager/internal/adapter/entitystore"
	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// Catalog implements port.Catalog over a single entity store, one key per
// collection.
type Catalog struct {
	clients   *Collection[domain.Client]
	projects  *Collection[domain.Project]
	campaigns *Collection[domain.Campaign]
	adSets    *Collection[domain.AdSet]
	ads       *Collection[domain.Ad]
}

var _ port.Catalog = (*Catalog)(nil)

func NewCatalog(store *entitystore.Store) *Catalog {
	return &Catalog{
		clients:   NewCollection[domain.Client](store, domain.KindClient.StorageKey()),
		projects:  NewCollection[domain.Project](store, domain.KindProject.StorageKey()),
		campaigns: NewCollection[domain.Campaign](store, domain.KindCampaign.StorageKey()),
		adSets:    NewCollection[domain.AdSet](store, domain.KindAdSet.StorageKey()),
		ads:       NewCollection[domain.Ad](store, domain.KindAd.StorageKey()),
	}
}

func (c *Catalog) Clients() port.Collection[domain.Client]     { return c.clients }
func (c *Catalog) Projects() port.Collection[domain.Project]   { return c.projects }
func (c *Catalog) Campaigns() port.Collection[domain.Campaign] { return c.campaigns }
func (c *Catalog) AdSets() port.Collection[domain.AdSet]       { return c.adSets }
func (c *Catalog) Ads() port.Collection[domain.Ad]             { return c.ads }
