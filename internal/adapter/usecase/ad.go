package usecase

import (
	"context"
	"log/slog"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

func (u *ConsoleUseCase) CreateAd(ctx context.Context, in port.AdInput) (*domain.Ad, error) {
	ad, err := adFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindAd)
	if err != nil {
		return nil, err
	}
	as, err := parent(ctx, c.AdSets(), domain.KindAdSet, in.AdSetID)
	if err != nil {
		return nil, err
	}
	id, err := u.ids.Next(ctx, domain.KindAd, as.AdSetID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	ad.AdID = id
	ad.AdSetID, ad.AdSetName = as.AdSetID, as.AdSetName
	ad.CreatedAt, ad.UpdatedAt = now, now
	if err = c.Ads().Save(ctx, ad); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "ad created", slog.String("id", id))
	return &ad, nil
}

func (u *ConsoleUseCase) UpdateAd(ctx context.Context, id string, in port.AdInput) (*domain.Ad, error) {
	ad, err := adFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindAd)
	if err != nil {
		return nil, err
	}
	old, err := get(ctx, c.Ads(), domain.KindAd, id)
	if err != nil {
		return nil, err
	}
	if err = reparented(domain.KindAd, "adset_id", old.AdSetID, in.AdSetID); err != nil {
		return nil, err
	}
	ad.AdID, ad.AdSetID, ad.AdSetName = old.AdID, old.AdSetID, old.AdSetName
	if as, err := c.AdSets().ByID(ctx, old.AdSetID); err != nil {
		return nil, err
	} else if as != nil {
		ad.AdSetName = as.AdSetName
	}
	if old.Creative.ImageURL != "" {
		ad.Creative.ImageURL = old.Creative.ImageURL
	}
	ad.CreatedAt, ad.UpdatedAt = old.CreatedAt, u.now()
	if err = c.Ads().Save(ctx, ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (u *ConsoleUseCase) GetAd(ctx context.Context, id string) (*domain.Ad, error) {
	return find(ctx, u, ads, domain.KindAd, id)
}

func (u *ConsoleUseCase) ListAds(ctx context.Context, adSetID string) ([]domain.Ad, error) {
	return list(ctx, u, ads, adSetID)
}

func (u *ConsoleUseCase) DeleteAd(ctx context.Context, id string) error {
	return remove(ctx, u, ads, domain.KindAd, id)
}

func adFrom(in port.AdInput) (domain.Ad, error) {
	var p problems
	p.required("ad_name", in.AdName)
	p.required("title", in.Title)
	p.link("link_url", in.LinkURL)
	ad := domain.Ad{
		AdName:       in.AdName,
		Status:       enum(&p, "status", in.Status, domain.StatusActive, domain.AdStatuses),
		CreativeType: enum(&p, "creative_type", in.CreativeType, domain.CreativeImage, domain.CreativeTypes),
		Creative: domain.Creative{
			Title:       in.Title,
			Description: in.Description,
			LinkURL:     in.LinkURL,
			ImageURL:    domain.SampleImageURL,
		},
	}
	return ad, p.err()
}
