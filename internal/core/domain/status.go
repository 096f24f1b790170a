package domain

import "slices"

// Status is the delivery state shared by projects, campaigns and ads. Each
// kind accepts a different subset, see the *Statuses slices.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
)

var (
	ProjectStatuses  = []Status{StatusActive, StatusPaused, StatusScheduled, StatusCompleted}
	CampaignStatuses = []Status{StatusActive, StatusPaused, StatusScheduled}
	AdSetStatuses    = []Status{StatusActive, StatusPaused}
	AdStatuses       = []Status{StatusActive, StatusPaused}
)

// Objective is the marketing goal of a campaign.
type Objective string

const (
	ObjectiveAwareness     Objective = "AWARENESS"
	ObjectiveConsideration Objective = "CONSIDERATION"
	ObjectiveConversions   Objective = "CONVERSIONS"
	ObjectiveSales         Objective = "SALES"
)

var Objectives = []Objective{ObjectiveAwareness, ObjectiveConsideration, ObjectiveConversions, ObjectiveSales}

// SpecialAdCategory flags regulated campaign categories.
type SpecialAdCategory string

const (
	SpecialAdCategoryNone       SpecialAdCategory = "NONE"
	SpecialAdCategoryHousing    SpecialAdCategory = "HOUSING"
	SpecialAdCategoryEmployment SpecialAdCategory = "EMPLOYMENT"
	SpecialAdCategoryCredit     SpecialAdCategory = "CREDIT"
)

var SpecialAdCategories = []SpecialAdCategory{
	SpecialAdCategoryNone, SpecialAdCategoryHousing, SpecialAdCategoryEmployment, SpecialAdCategoryCredit,
}

type BillingEvent string

const (
	BillingImpressions    BillingEvent = "IMPRESSIONS"
	BillingLinkClicks     BillingEvent = "LINK_CLICKS"
	BillingAppInstalls    BillingEvent = "APP_INSTALLS"
	BillingConversions    BillingEvent = "CONVERSIONS"
	BillingPurchase       BillingEvent = "PURCHASE"
	BillingPageLikes      BillingEvent = "PAGE_LIKES"
	BillingPostEngagement BillingEvent = "POST_ENGAGEMENT"
)

var BillingEvents = []BillingEvent{
	BillingImpressions, BillingLinkClicks, BillingAppInstalls, BillingConversions,
	BillingPurchase, BillingPageLikes, BillingPostEngagement,
}

type OptimizationGoal string

const (
	GoalReach              OptimizationGoal = "REACH"
	GoalImpressions        OptimizationGoal = "IMPRESSIONS"
	GoalLinkClicks         OptimizationGoal = "LINK_CLICKS"
	GoalAppInstalls        OptimizationGoal = "APP_INSTALLS"
	GoalConversions        OptimizationGoal = "CONVERSIONS"
	GoalOffsiteConversions OptimizationGoal = "OFFSITE_CONVERSIONS"
	GoalPageLikes          OptimizationGoal = "PAGE_LIKES"
	GoalPostEngagement     OptimizationGoal = "POST_ENGAGEMENT"
	GoalValue              OptimizationGoal = "VALUE"
	GoalThruplay           OptimizationGoal = "THRUPLAY"
)

var OptimizationGoals = []OptimizationGoal{
	GoalReach, GoalImpressions, GoalLinkClicks, GoalAppInstalls, GoalConversions,
	GoalOffsiteConversions, GoalPageLikes, GoalPostEngagement, GoalValue, GoalThruplay,
}

type BidStrategy string

const (
	BidLowestCostWithoutCap BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidLowestCostWithBidCap BidStrategy = "LOWEST_COST_WITH_BID_CAP"
	BidCostCap              BidStrategy = "COST_CAP"
	BidTargetCost           BidStrategy = "TARGET_COST"
)

var BidStrategies = []BidStrategy{BidLowestCostWithoutCap, BidLowestCostWithBidCap, BidCostCap, BidTargetCost}

type PacingType string

const (
	PacingStandard PacingType = "STANDARD"
	PacingNone     PacingType = "NO_PACING"
)

var PacingTypes = []PacingType{PacingStandard, PacingNone}

type CreativeType string

const (
	CreativeImage    CreativeType = "IMAGE"
	CreativeVideo    CreativeType = "VIDEO"
	CreativeCarousel CreativeType = "CAROUSEL"
)

var CreativeTypes = []CreativeType{CreativeImage, CreativeVideo, CreativeCarousel}

// OneOf reports whether v is one of allowed.
func OneOf[T ~string](v T, allowed []T) bool {
	return slices.Contains(allowed, v)
}
