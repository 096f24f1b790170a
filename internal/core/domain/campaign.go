package domain

import "time"

// Campaign represents an advertising campaign within a project.
// Budget amounts are decimal strings; only one of daily or lifetime is set.
type Campaign struct {
	CampaignID        string            `json:"campaign_id"`
	ProjectID         string            `json:"project_id"`
	ProjectName       string            `json:"project_name,omitempty"`
	CampaignName      string            `json:"campaign_name"`
	Objective         Objective         `json:"objective"`
	SpecialAdCategory SpecialAdCategory `json:"special_ad_category,omitempty"`
	Status            Status            `json:"status"` // ACTIVE, PAUSED, SCHEDULED
	Budget
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c Campaign) PrimaryKey() string { return c.CampaignID }
func (c Campaign) ParentKey() string  { return c.ProjectID }
