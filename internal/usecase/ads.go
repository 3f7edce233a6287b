package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const adsPath = "/api/admin/admin-ads"

type AdsUC struct {
	backend BackendAPI
	log     *logger.Logger
}

func NewAds(backend BackendAPI, log *logger.Logger) *AdsUC {
	return &AdsUC{
		backend: backend,
		log:     log,
	}
}

func (uc *AdsUC) ListAds(ctx context.Context, s *entity.Session) ([]entity.AdminAd, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	ads := []entity.AdminAd{}
	err = uc.backend.Get(ctx, adsPath, token, &ads)
	if err != nil {
		return nil, fromBackend(err)
	}
	return ads, nil
}

func (uc *AdsUC) CreateAd(ctx context.Context, s *entity.Session, ad entity.AdminAd) (*entity.AdminAd, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if err := validateAd(ad); err != nil {
		return nil, err
	}

	var created entity.AdminAd
	err = uc.backend.Post(ctx, adsPath, token, ad, &created)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &created, nil
}

func (uc *AdsUC) UpdateAd(ctx context.Context, s *entity.Session, id string, ad entity.AdminAd) (*entity.AdminAd, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid("ad id is required")
	}
	if err := validateAd(ad); err != nil {
		return nil, err
	}

	var updated entity.AdminAd
	err = uc.backend.Put(ctx, adsPath+"/"+url.PathEscape(id), token, ad, &updated)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &updated, nil
}

func (uc *AdsUC) DeleteAd(ctx context.Context, s *entity.Session, id string) error {
	token, err := tokenOf(s)
	if err != nil {
		return err
	}
	if id == "" {
		return invalid("ad id is required")
	}
	return fromBackend(uc.backend.Delete(ctx, adsPath+"/"+url.PathEscape(id), token, nil))
}

func (uc *AdsUC) ToggleAd(ctx context.Context, s *entity.Session, id string) (*entity.AdminAd, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid("ad id is required")
	}

	var ad entity.AdminAd
	err = uc.backend.Patch(ctx, adsPath+"/"+url.PathEscape(id)+"/toggle", token, nil, &ad)
	if err != nil {
		return nil, fromBackend(err)
	}
	return &ad, nil
}

func validateAd(ad entity.AdminAd) error {
	if strings.TrimSpace(ad.Title) == "" || strings.TrimSpace(ad.Placement) == "" {
		return invalid("title and placement are required")
	}
	if _, err := ValidateURL(ad.ImageURL); err != nil {
		return invalid("image URL must be absolute")
	}
	if ad.TargetURL != "" {
		if _, err := ValidateURL(ad.TargetURL); err != nil {
			return invalid("target URL must be absolute")
		}
	}
	return nil
}
