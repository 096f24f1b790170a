package domain

// Kind names one level of the Client → Project → Campaign → AdSet → Ad
// hierarchy. It carries the identifier tag and the storage key used for the
// collection of that level.
type Kind string

const (
	KindClient   Kind = "client"
	KindProject  Kind = "project"
	KindCampaign Kind = "campaign"
	KindAdSet    Kind = "adset"
	KindAd       Kind = "ad"
)

// Kinds lists every level from the root down.
var Kinds = []Kind{KindClient, KindProject, KindCampaign, KindAdSet, KindAd}

// Tag returns the two-letter identifier tag for the kind.
func (k Kind) Tag() string {
	switch k {
	case KindClient:
		return "cl"
	case KindProject:
		return "pr"
	case KindCampaign:
		return "ca"
	case KindAdSet:
		return "as"
	case KindAd:
		return "ad"
	default:
		return ""
	}
}

// StorageKey returns the key the collection is persisted under.
func (k Kind) StorageKey() string {
	switch k {
	case KindClient:
		return "ad_management_clients"
	case KindProject:
		return "ad_management_projects"
	case KindCampaign:
		return "ad_management_campaigns"
	case KindAdSet:
		return "ad_management_ad_sets"
	case KindAd:
		return "ad_management_ads"
	default:
		return ""
	}
}

// Parent returns the kind one level up, or "" for clients.
func (k Kind) Parent() Kind {
	switch k {
	case KindProject:
		return KindClient
	case KindCampaign:
		return KindProject
	case KindAdSet:
		return KindCampaign
	case KindAd:
		return KindAdSet
	default:
		return ""
	}
}

// Record is implemented by every stored entity. ParentKey is empty for
// clients.
type Record interface {
	PrimaryKey() string
	ParentKey() string
}
