package actions

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// ActionService cria e altera campanhas, grupos de anúncio e anúncios.
// Toda falha volta como domain.ErrAction.
type ActionService interface {
	AddCampaign(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error)
	UpdateCampaign(ctx context.Context, accessToken, advertiserID, campaignID string, details map[string]any) (bool, error)
	AddAdGroup(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error)
	UpdateAdGroup(ctx context.Context, accessToken, advertiserID, adgroupID string, details map[string]any) (bool, error)
	AddAds(ctx context.Context, accessToken, advertiserID, adgroupID string, details map[string]any) ([]string, error)
	UpdateAds(ctx context.Context, accessToken, advertiserID, adgroupID string, details map[string]any) (bool, error)
	UpdateAdsStatus(ctx context.Context, accessToken, advertiserID string, details map[string]any) (bool, error)
}

type Service struct {
	integrators tiktok.IntegratorFactory
}

func NewService(integrators tiktok.IntegratorFactory) ActionService {
	return &Service{
		integrators: integrators,
	}
}

func (s *Service) AddCampaign(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error) {
	campaignID, err := s.integrators(accessToken).CreateCampaign(ctx, advertiserID, details)
	if err != nil {
		return "", domain.NewActionError("AddCampaign", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"campaign_id":   campaignID,
	}).Info("actions: campaign created")

	return campaignID, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, accessToken, advertiserID, campaignID string, details map[string]any) (bool, error) {
	updated, err := s.integrators(accessToken).UpdateCampaign(ctx, advertiserID, campaignID, details)
	if err != nil {
		return false, domain.NewActionError("UpdateCampaign", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"campaign_id":   campaignID,
		"success":       updated,
	}).Info("actions: campaign updated")

	return updated, nil
}

func (s *Service) AddAdGroup(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error) {
	adgroupID, err := s.integrators(accessToken).CreateAdGroup(ctx, advertiserID, details)
	if err != nil {
		return "", domain.NewActionError("AddAdGroup", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"adgroup_id":    adgroupID,
	}).Info("actions: adgroup created")

	return adgroupID, nil
}

func (s *Service) UpdateAdGroup(ctx context.Context, accessToken, advertiserID, adgroupID string, details map[string]any) (bool, error) {
	updated, err := s.integrators(accessToken).UpdateAdGroup(ctx, advertiserID, adgroupID, details)
	if err != nil {
		return false, domain.NewActionError("UpdateAdGroup", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"adgroup_id":    adgroupID,
		"success":       updated,
	}).Info("actions: adgroup updated")

	return updated, nil
}

func (s *Service) AddAds(ctx context.Context, accessToken, advertiserID, adgroupID string, details map[string]any) ([]string, error) {
	adIDs, err := s.integrators(accessToken).CreateAds(ctx, advertiserID, adgroupID, details)
	if err != nil {
		return nil, domain.NewActionError("AddAds", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"adgroup_id":    adgroupID,
		"ad_ids":        adIDs,
	}).Info("actions: ads created")

	return adIDs, nil
}

func (s *Service) UpdateAds(ctx context.Context, accessToken, advertiserID, adgroupID string, details map[string]any) (bool, error) {
	updated, err := s.integrators(accessToken).UpdateAds(ctx, advertiserID, adgroupID, details)
	if err != nil {
		return false, domain.NewActionError("UpdateAds", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"adgroup_id":    adgroupID,
		"success":       updated,
	}).Info("actions: ads updated")

	return updated, nil
}

func (s *Service) UpdateAdsStatus(ctx context.Context, accessToken, advertiserID string, details map[string]any) (bool, error) {
	updated, err := s.integrators(accessToken).UpdateAdsStatus(ctx, advertiserID, details)
	if err != nil {
		return false, domain.NewActionError("UpdateAdsStatus", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"success":       updated,
	}).Info("actions: ad statuses updated")

	return updated, nil
}
