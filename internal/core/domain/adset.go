package domain

import "time"

// AdSet carries delivery settings for a group of ads: budget, bidding,
// targeting and optional schedule and frequency caps.
type AdSet struct {
	AdSetID      string `json:"adset_id"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdSetName    string `json:"adset_name"`
	Budget
	StartTime           time.Time              `json:"start_time"`
	EndTime             *time.Time             `json:"end_time,omitempty"`
	BillingEvent        BillingEvent           `json:"billing_event"`
	OptimizationGoal    OptimizationGoal       `json:"optimization_goal"`
	BidStrategy         BidStrategy            `json:"bid_strategy"`
	BidAmount           string                 `json:"bid_amount,omitempty"`
	Targeting           *Targeting             `json:"targeting,omitempty"`
	PacingType          []PacingType           `json:"pacing_type,omitempty"`
	Schedule            []Schedule             `json:"adset_schedule,omitempty"`
	FrequencyControl    []FrequencyControlSpec `json:"frequency_control_specs,omitempty"`
	DailyMinSpendTarget string                 `json:"daily_min_spend_target,omitempty"`
	DailySpendCap       string                 `json:"daily_spend_cap,omitempty"`
	PromotedObject      *PromotedObject        `json:"promoted_object,omitempty"`
	Status              Status                 `json:"status"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func (a AdSet) PrimaryKey() string { return a.AdSetID }
func (a AdSet) ParentKey() string  { return a.CampaignID }

// Schedule is a weekly delivery window. Days run 1 (Monday) to 7 (Sunday);
// minutes count from midnight, 0 to 1439.
type Schedule struct {
	Days        []int `json:"days"`
	StartMinute int   `json:"start_minute"`
	EndMinute   int   `json:"end_minute"`
}

// FrequencyControlSpec caps how often one person sees the ad set.
type FrequencyControlSpec struct {
	Event        string `json:"event"` // IMPRESSIONS
	MaxFrequency int    `json:"max_frequency"`
	TimeWindow   int    `json:"time_window"` // days
}

type PromotedObject struct {
	PixelID       string `json:"pixel_id,omitempty"`
	PageID        string `json:"page_id,omitempty"`
	ApplicationID string `json:"application_id,omitempty"`
	ProductSetID  string `json:"product_set_id,omitempty"`
}
