package db

import (
	"context"
	"fmt"
	"time"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// SeedResult lists the ids created by Seed.
type SeedResult struct {
	Clients   []string
	Projects  []string
	Campaigns []string
	AdSets    []string
	Ads       []string
}

// Seed creates a small demo hierarchy through the console use case: two
// clients, each with one project, two campaigns, one ad set per campaign
// and two ads per ad set. Records go through the same rules as the forms.
func Seed(ctx context.Context, uc port.ConsoleUseCase) (*SeedResult, error) {
	res := &SeedResult{}
	start := time.Now().UTC().Truncate(24 * time.Hour)
	clients := []port.ClientInput{
		{ClientName: "Acme Foods", IndustryCategory: "food", ContactPerson: "Sato", Email: "ads@acme.example"},
		{ClientName: "Blue Travel", IndustryCategory: "travel", ContactPerson: "Kim", Email: "mkt@blue.example"},
	}
	for i, in := range clients {
		cl, err := uc.CreateClient(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed client: %w", err)
		}
		res.Clients = append(res.Clients, cl.ClientID)

		end := start.AddDate(0, 3, 0)
		pr, err := uc.CreateProject(ctx, port.ProjectInput{
			ClientID:    cl.ClientID,
			ProjectName: fmt.Sprintf("%s spring launch", in.ClientName),
			StartDate:   &start,
			EndDate:     &end,
		})
		if err != nil {
			return res, fmt.Errorf("seed project: %w", err)
		}
		res.Projects = append(res.Projects, pr.ProjectID)

		for j, obj := range []domain.Objective{domain.ObjectiveAwareness, domain.ObjectiveConversions} {
			ca, err := uc.CreateCampaign(ctx, port.CampaignInput{
				ProjectID:    pr.ProjectID,
				CampaignName: fmt.Sprintf("%s %d", obj, j+1),
				Objective:    obj,
				BudgetType:   domain.BudgetDaily,
				DailyBudget:  fmt.Sprintf("%d", (i+1)*5000),
				StartTime:    start,
			})
			if err != nil {
				return res, fmt.Errorf("seed campaign: %w", err)
			}
			res.Campaigns = append(res.Campaigns, ca.CampaignID)

			as, err := uc.CreateAdSet(ctx, port.AdSetInput{
				CampaignID:     ca.CampaignID,
				AdSetName:      "Core audience",
				BudgetType:     domain.BudgetLifetime,
				LifetimeBudget: "100000",
				StartTime:      start,
				Countries:      []string{"JP", "KR"},
				FrequencyCap:   &port.FrequencyCapInput{},
				Schedule:       []domain.Schedule{{Days: []int{1, 2, 3, 4, 5}, StartMinute: 540, EndMinute: 1260}},
			})
			if err != nil {
				return res, fmt.Errorf("seed ad set: %w", err)
			}
			res.AdSets = append(res.AdSets, as.AdSetID)

			for k := 1; k <= 2; k++ {
				ad, err := uc.CreateAd(ctx, port.AdInput{
					AdSetID: as.AdSetID,
					AdName:  fmt.Sprintf("Creative %d", k),
					Title:   fmt.Sprintf("%s offer %d", in.ClientName, k),
					LinkURL: "https://example.com/landing",
				})
				if err != nil {
					return res, fmt.Errorf("seed ad: %w", err)
				}
				res.Ads = append(res.Ads, ad.AdID)
			}
		}
	}
	return res, nil
}
