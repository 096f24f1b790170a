package domain

import "time"

// Ad is a single creative placed in an ad set.
type Ad struct {
	AdID         string       `json:"ad_id"`
	AdSetID      string       `json:"adset_id"`
	AdSetName    string       `json:"adset_name,omitempty"`
	AdName       string       `json:"ad_name"`
	Status       Status       `json:"status"` // ACTIVE, PAUSED
	CreativeType CreativeType `json:"creative_type"`
	Creative     Creative     `json:"creative"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (a Ad) PrimaryKey() string { return a.AdID }
func (a Ad) ParentKey() string  { return a.AdSetID }
