package port

import (
	"context"
	"time"

	"admanager/internal/core/domain"
)

// ConsoleUseCase defines the operations behind the console's list, detail,
// create and edit views. It is the primary port used by the HTTP and CLI
// adapters. Every call reads the database mode once and works against the
// matching backend.
type ConsoleUseCase interface {
	CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, in ClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	CreateProject(ctx context.Context, in ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	// ListProjects returns the projects of clientID, or all projects when
	// clientID is empty.
	ListProjects(ctx context.Context, clientID string) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, in CampaignInput) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, projectID string) ([]domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	CreateAdSet(ctx context.Context, in AdSetInput) (*domain.AdSet, error)
	UpdateAdSet(ctx context.Context, id string, in AdSetInput) (*domain.AdSet, error)
	GetAdSet(ctx context.Context, id string) (*domain.AdSet, error)
	ListAdSets(ctx context.Context, campaignID string) ([]domain.AdSet, error)
	DeleteAdSet(ctx context.Context, id string) error

	CreateAd(ctx context.Context, in AdInput) (*domain.Ad, error)
	UpdateAd(ctx context.Context, id string, in AdInput) (*domain.Ad, error)
	GetAd(ctx context.Context, id string) (*domain.Ad, error)
	ListAds(ctx context.Context, adSetID string) ([]domain.Ad, error)
	DeleteAd(ctx context.Context, id string) error

	Mode(ctx context.Context) (domain.Mode, error)
	SetMode(ctx context.Context, mode domain.Mode) error

	// TestWarehouse checks the warehouse configuration. The returned status
	// is populated even when the error is non-nil.
	TestWarehouse(ctx context.Context) (*WarehouseStatus, error)

	// Export returns every collection of the active backend.
	Export(ctx context.Context) (*Snapshot, error)
}

// ClientInput holds the fields of the client form.
type ClientInput struct {
	ClientName       string `json:"client_name"`
	IndustryCategory string `json:"industry_category,omitempty"`
	ContactPerson    string `json:"contact_person,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
}

// ProjectInput holds the fields of the project form. ClientID is required on
// create and must be empty or unchanged on update.
type ProjectInput struct {
	ClientID    string        `json:"client_id"`
	ProjectName string        `json:"project_name"`
	Description string        `json:"description,omitempty"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Status      domain.Status `json:"status,omitempty"`
}

// CampaignInput holds the fields of the campaign form. BudgetType decides
// which of the two amounts is kept.
type CampaignInput struct {
	ProjectID         string                   `json:"project_id"`
	CampaignName      string                   `json:"campaign_name"`
	Objective         domain.Objective         `json:"objective,omitempty"`
	SpecialAdCategory domain.SpecialAdCategory `json:"special_ad_category,omitempty"`
	Status            domain.Status            `json:"status,omitempty"`
	BudgetType        domain.BudgetType        `json:"budget_type,omitempty"`
	DailyBudget       string                   `json:"daily_budget,omitempty"`
	LifetimeBudget    string                   `json:"lifetime_budget,omitempty"`
	StartTime         time.Time                `json:"start_time"`
	EndTime           *time.Time               `json:"end_time,omitempty"`
}

// AdSetInput holds the fields of the ad set form. Targeting is given in the
// form's flat shape and expanded by the use case.
type AdSetInput struct {
	CampaignID          string                  `json:"campaign_id"`
	AdSetName           string                  `json:"adset_name"`
	BudgetType          domain.BudgetType       `json:"budget_type,omitempty"`
	DailyBudget         string                  `json:"daily_budget,omitempty"`
	LifetimeBudget      string                  `json:"lifetime_budget,omitempty"`
	StartTime           time.Time               `json:"start_time"`
	EndTime             *time.Time              `json:"end_time,omitempty"`
	BillingEvent        domain.BillingEvent     `json:"billing_event,omitempty"`
	OptimizationGoal    domain.OptimizationGoal `json:"optimization_goal,omitempty"`
	BidStrategy         domain.BidStrategy      `json:"bid_strategy,omitempty"`
	BidAmount           string                  `json:"bid_amount,omitempty"`
	PacingType          domain.PacingType       `json:"pacing_type,omitempty"`
	AgeMin              *int                    `json:"age_min,omitempty"`
	AgeMax              *int                    `json:"age_max,omitempty"`
	Gender              string                  `json:"gender,omitempty"` // all, male, female
	Countries           []string                `json:"countries,omitempty"`
	DevicePlatforms     []string                `json:"device_platforms,omitempty"`
	PublisherPlatforms  []string                `json:"publisher_platforms,omitempty"`
	DailyMinSpendTarget string                  `json:"daily_min_spend_target,omitempty"`
	DailySpendCap       string                  `json:"daily_spend_cap,omitempty"`
	Schedule            []domain.Schedule       `json:"adset_schedule,omitempty"`
	FrequencyCap        *FrequencyCapInput      `json:"frequency_cap,omitempty"`
	PromotedObject      *domain.PromotedObject  `json:"promoted_object,omitempty"`
	Status              domain.Status           `json:"status,omitempty"`
}

// FrequencyCapInput enables an impressions frequency cap. Zero values fall
// back to 3 impressions per 7 days.
type FrequencyCapInput struct {
	MaxFrequency int `json:"max_frequency,omitempty"`
	TimeWindow   int `json:"time_window,omitempty"`
}

// AdInput holds the fields of the ad form.
type AdInput struct {
	AdSetID      string              `json:"adset_id"`
	AdName       string              `json:"ad_name"`
	Status       domain.Status       `json:"status,omitempty"`
	CreativeType domain.CreativeType `json:"creative_type,omitempty"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	LinkURL      string              `json:"link_url,omitempty"`
}

// WarehouseStatus is the result of a warehouse connection test.
type WarehouseStatus struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	ProjectIDSet bool      `json:"project_id_set"`
	DatasetIDSet bool      `json:"dataset_id_set"`
	ProjectID    string    `json:"project_id,omitempty"`
	DatasetID    string    `json:"dataset_id,omitempty"`
	Region       string    `json:"region"`
	Timestamp    time.Time `json:"timestamp"`
}

// Snapshot holds every collection of one backend.
type Snapshot struct {
	Mode      domain.Mode       `json:"mode"`
	Clients   []domain.Client   `json:"clients"`
	Projects  []domain.Project  `json:"projects"`
	Campaigns []domain.Campaign `json:"campaigns"`
	AdSets    []domain.AdSet    `json:"ad_sets"`
	Ads       []domain.Ad       `json:"ads"`
}
