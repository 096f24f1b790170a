package domain

// Targeting describes who should see an ad set.
type Targeting struct {
	AgeMin                   *int           `json:"age_min,omitempty"`
	AgeMax                   *int           `json:"age_max,omitempty"`
	Genders                  []int          `json:"genders,omitempty"` // 1 male, 2 female
	GeoLocations             *GeoLocations  `json:"geo_locations,omitempty"`
	DevicePlatforms          []string       `json:"device_platforms,omitempty"`
	PublisherPlatforms       []string       `json:"publisher_platforms,omitempty"`
	FacebookPositions        []string       `json:"facebook_positions,omitempty"`
	InstagramPositions       []string       `json:"instagram_positions,omitempty"`
	AudienceNetworkPositions []string       `json:"audience_network_positions,omitempty"`
	MessengerPositions       []string       `json:"messenger_positions,omitempty"`
	Interests                []AudienceItem `json:"interests,omitempty"`
	Behaviors                []AudienceItem `json:"behaviors,omitempty"`
	ExcludedInterests        []AudienceItem `json:"excluded_interests,omitempty"`
	ExcludedBehaviors        []AudienceItem `json:"excluded_behaviors,omitempty"`
}

type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
	Regions   []GeoKey `json:"regions,omitempty"`
	Cities    []GeoKey `json:"cities,omitempty"`
}

type GeoKey struct {
	Key string `json:"key"`
}

// AudienceItem is an interest or behaviour reference.
type AudienceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Gender codes used in Targeting.Genders.
const (
	GenderMale   = 1
	GenderFemale = 2
)
