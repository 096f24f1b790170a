package usecase

import (
	"context"
	"log/slog"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

func (u *ConsoleUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	ca, err := u.campaignFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindCampaign)
	if err != nil {
		return nil, err
	}
	pr, err := parent(ctx, c.Projects(), domain.KindProject, in.ProjectID)
	if err != nil {
		return nil, err
	}
	id, err := u.ids.Next(ctx, domain.KindCampaign, pr.ProjectID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	ca.CampaignID = id
	ca.ProjectID, ca.ProjectName = pr.ProjectID, pr.ProjectName
	ca.CreatedAt, ca.UpdatedAt = now, now
	if err = c.Campaigns().Save(ctx, ca); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "campaign created", slog.String("id", id))
	return &ca, nil
}

func (u *ConsoleUseCase) UpdateCampaign(ctx context.Context, id string, in port.CampaignInput) (*domain.Campaign, error) {
	ca, err := u.campaignFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindCampaign)
	if err != nil {
		return nil, err
	}
	old, err := get(ctx, c.Campaigns(), domain.KindCampaign, id)
	if err != nil {
		return nil, err
	}
	if err = reparented(domain.KindCampaign, "project_id", old.ProjectID, in.ProjectID); err != nil {
		return nil, err
	}
	ca.CampaignID, ca.ProjectID, ca.ProjectName = old.CampaignID, old.ProjectID, old.ProjectName
	if pr, err := c.Projects().ByID(ctx, old.ProjectID); err != nil {
		return nil, err
	} else if pr != nil {
		ca.ProjectName = pr.ProjectName
	}
	ca.CreatedAt, ca.UpdatedAt = old.CreatedAt, u.now()
	if err = c.Campaigns().Save(ctx, ca); err != nil {
		return nil, err
	}
	return &ca, nil
}

func (u *ConsoleUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return find(ctx, u, campaigns, domain.KindCampaign, id)
}

func (u *ConsoleUseCase) ListCampaigns(ctx context.Context, projectID string) ([]domain.Campaign, error) {
	return list(ctx, u, campaigns, projectID)
}

func (u *ConsoleUseCase) DeleteCampaign(ctx context.Context, id string) error {
	return remove(ctx, u, campaigns, domain.KindCampaign, id)
}

func (u *ConsoleUseCase) campaignFrom(in port.CampaignInput) (domain.Campaign, error) {
	var p problems
	p.required("campaign_name", in.CampaignName)
	ca := domain.Campaign{
		CampaignName:      in.CampaignName,
		Objective:         enum(&p, "objective", in.Objective, domain.ObjectiveAwareness, domain.Objectives),
		SpecialAdCategory: enum(&p, "special_ad_category", in.SpecialAdCategory, domain.SpecialAdCategoryNone, domain.SpecialAdCategories),
		Status:            enum(&p, "status", in.Status, domain.StatusActive, domain.CampaignStatuses),
		Budget:            budget(&p, in.BudgetType, in.DailyBudget, in.LifetimeBudget),
		StartTime:         at(in.StartTime),
		EndTime:           utc(in.EndTime),
	}
	if ca.StartTime.IsZero() {
		ca.StartTime = u.now()
	}
	p.window(ca.StartTime, ca.EndTime, "start_time", "end_time")
	return ca, p.err()
}
