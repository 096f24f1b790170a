package usecase

import (
	"context"
	"log/slog"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// Targeting defaults applied when the form leaves a field empty.
var (
	DefaultAgeMin             = 18
	DefaultAgeMax             = 65
	DefaultCountries          = []string{"JP"}
	DefaultDevicePlatforms    = []string{"mobile", "desktop"}
	DefaultPublisherPlatforms = []string{"facebook", "instagram"}
)

const (
	defaultMaxFrequency = 3
	defaultTimeWindow   = 7
)

func (u *ConsoleUseCase) CreateAdSet(ctx context.Context, in port.AdSetInput) (*domain.AdSet, error) {
	as, err := u.adSetFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindAdSet)
	if err != nil {
		return nil, err
	}
	ca, err := parent(ctx, c.Campaigns(), domain.KindCampaign, in.CampaignID)
	if err != nil {
		return nil, err
	}
	id, err := u.ids.Next(ctx, domain.KindAdSet, ca.CampaignID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	as.AdSetID = id
	as.CampaignID, as.CampaignName = ca.CampaignID, ca.CampaignName
	as.CreatedAt, as.UpdatedAt = now, now
	if err = c.AdSets().Save(ctx, as); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "ad set created", slog.String("id", id))
	return &as, nil
}

func (u *ConsoleUseCase) UpdateAdSet(ctx context.Context, id string, in port.AdSetInput) (*domain.AdSet, error) {
	as, err := u.adSetFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindAdSet)
	if err != nil {
		return nil, err
	}
	old, err := get(ctx, c.AdSets(), domain.KindAdSet, id)
	if err != nil {
		return nil, err
	}
	if err = reparented(domain.KindAdSet, "campaign_id", old.CampaignID, in.CampaignID); err != nil {
		return nil, err
	}
	as.AdSetID, as.CampaignID, as.CampaignName = old.AdSetID, old.CampaignID, old.CampaignName
	if ca, err := c.Campaigns().ByID(ctx, old.CampaignID); err != nil {
		return nil, err
	} else if ca != nil {
		as.CampaignName = ca.CampaignName
	}
	// Fields the form does not edit survive the update.
	if old.Targeting != nil && as.Targeting != nil {
		as.Targeting.Interests = old.Targeting.Interests
		as.Targeting.Behaviors = old.Targeting.Behaviors
		as.Targeting.ExcludedInterests = old.Targeting.ExcludedInterests
		as.Targeting.ExcludedBehaviors = old.Targeting.ExcludedBehaviors
		as.Targeting.FacebookPositions = old.Targeting.FacebookPositions
		as.Targeting.InstagramPositions = old.Targeting.InstagramPositions
		as.Targeting.AudienceNetworkPositions = old.Targeting.AudienceNetworkPositions
		as.Targeting.MessengerPositions = old.Targeting.MessengerPositions
		if g := old.Targeting.GeoLocations; g != nil {
			as.Targeting.GeoLocations.Regions = g.Regions
			as.Targeting.GeoLocations.Cities = g.Cities
		}
	}
	as.CreatedAt, as.UpdatedAt = old.CreatedAt, u.now()
	if err = c.AdSets().Save(ctx, as); err != nil {
		return nil, err
	}
	return &as, nil
}

func (u *ConsoleUseCase) GetAdSet(ctx context.Context, id string) (*domain.AdSet, error) {
	return find(ctx, u, adSets, domain.KindAdSet, id)
}

func (u *ConsoleUseCase) ListAdSets(ctx context.Context, campaignID string) ([]domain.AdSet, error) {
	return list(ctx, u, adSets, campaignID)
}

func (u *ConsoleUseCase) DeleteAdSet(ctx context.Context, id string) error {
	return remove(ctx, u, adSets, domain.KindAdSet, id)
}

func (u *ConsoleUseCase) adSetFrom(in port.AdSetInput) (domain.AdSet, error) {
	var p problems
	p.required("adset_name", in.AdSetName)
	as := domain.AdSet{
		AdSetName:           in.AdSetName,
		Budget:              budget(&p, in.BudgetType, in.DailyBudget, in.LifetimeBudget),
		StartTime:           at(in.StartTime),
		EndTime:             utc(in.EndTime),
		BillingEvent:        enum(&p, "billing_event", in.BillingEvent, domain.BillingImpressions, domain.BillingEvents),
		OptimizationGoal:    enum(&p, "optimization_goal", in.OptimizationGoal, domain.GoalReach, domain.OptimizationGoals),
		BidStrategy:         enum(&p, "bid_strategy", in.BidStrategy, domain.BidLowestCostWithoutCap, domain.BidStrategies),
		BidAmount:           in.BidAmount,
		Targeting:           targeting(&p, in),
		PacingType:          []domain.PacingType{enum(&p, "pacing_type", in.PacingType, domain.PacingStandard, domain.PacingTypes)},
		Schedule:            in.Schedule,
		FrequencyControl:    frequency(&p, in.FrequencyCap),
		DailyMinSpendTarget: in.DailyMinSpendTarget,
		DailySpendCap:       in.DailySpendCap,
		PromotedObject:      in.PromotedObject,
		Status:              enum(&p, "status", in.Status, domain.StatusActive, domain.AdSetStatuses),
	}
	if as.StartTime.IsZero() {
		as.StartTime = u.now()
	}
	p.window(as.StartTime, as.EndTime, "start_time", "end_time")
	p.amount("bid_amount", in.BidAmount)
	p.amount("daily_min_spend_target", in.DailyMinSpendTarget)
	p.amount("daily_spend_cap", in.DailySpendCap)
	p.schedule(in.Schedule)
	return as, p.err()
}

func targeting(p *problems, in port.AdSetInput) *domain.Targeting {
	minAge, maxAge := DefaultAgeMin, DefaultAgeMax
	if in.AgeMin != nil {
		minAge = *in.AgeMin
	}
	if in.AgeMax != nil {
		maxAge = *in.AgeMax
	}
	if minAge < 13 || maxAge > 65 || minAge > maxAge {
		p.add("age range %d-%d must lie within 13-65", minAge, maxAge)
	}

	var genders []int
	switch in.Gender {
	case "", "all":
		genders = []int{domain.GenderMale, domain.GenderFemale}
	case "male":
		genders = []int{domain.GenderMale}
	case "female":
		genders = []int{domain.GenderFemale}
	default:
		p.add("gender %q is not all, male or female", in.Gender)
	}

	return &domain.Targeting{
		AgeMin:             &minAge,
		AgeMax:             &maxAge,
		Genders:            genders,
		GeoLocations:       &domain.GeoLocations{Countries: orDefault(in.Countries, DefaultCountries)},
		DevicePlatforms:    orDefault(in.DevicePlatforms, DefaultDevicePlatforms),
		PublisherPlatforms: orDefault(in.PublisherPlatforms, DefaultPublisherPlatforms),
	}
}

func frequency(p *problems, in *port.FrequencyCapInput) []domain.FrequencyControlSpec {
	if in == nil {
		return nil
	}
	spec := domain.FrequencyControlSpec{
		Event:        "IMPRESSIONS",
		MaxFrequency: in.MaxFrequency,
		TimeWindow:   in.TimeWindow,
	}
	if spec.MaxFrequency == 0 {
		spec.MaxFrequency = defaultMaxFrequency
	}
	if spec.TimeWindow == 0 {
		spec.TimeWindow = defaultTimeWindow
	}
	if spec.MaxFrequency < 0 || spec.TimeWindow < 0 {
		p.add("frequency cap must be positive")
	}
	return []domain.FrequencyControlSpec{spec}
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return append([]string(nil), def...)
	}
	return v
}
