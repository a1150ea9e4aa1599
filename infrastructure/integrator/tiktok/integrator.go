package tiktok

import (
	"context"
	"time"

	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
)

//go:generate mockgen -source=integrator.go -destination=mocks/integrator.go -package=mocks

type TiktokIntegrator interface {
	GetAccountIDs(ctx context.Context, appID, secret string) ([]string, error)
	GetDetails(ctx context.Context, advertiserID string, kind domain.ResourceType) ([]map[string]any, error)
	GetCampaignsDetails(ctx context.Context, advertiserID string) ([]map[string]any, error)
	GetAdGroupsDetails(ctx context.Context, advertiserID string) ([]map[string]any, error)
	GetAdsDetails(ctx context.Context, advertiserID string) ([]map[string]any, error)
	GetInsights(ctx context.Context, advertiserID string, kind domain.ResourceType, from, to time.Time) ([]map[string]any, error)

	CreateCampaign(ctx context.Context, advertiserID string, details map[string]any) (string, error)
	UpdateCampaign(ctx context.Context, advertiserID, campaignID string, details map[string]any) (bool, error)
	CreateAdGroup(ctx context.Context, advertiserID string, details map[string]any) (string, error)
	UpdateAdGroup(ctx context.Context, advertiserID, adgroupID string, details map[string]any) (bool, error)
	CreateAds(ctx context.Context, advertiserID, adgroupID string, details map[string]any) ([]string, error)
	UpdateAds(ctx context.Context, advertiserID, adgroupID string, details map[string]any) (bool, error)
	UpdateAdsStatus(ctx context.Context, advertiserID string, details map[string]any) (bool, error)

	CreateImage(ctx context.Context, advertiserID string, details map[string]any) (string, error)
	UpdateImageName(ctx context.Context, advertiserID, imageID, name string) (bool, error)
	GetImagesInfo(ctx context.Context, advertiserID string, imageIDs []string) ([]map[string]any, error)
	CreateVideo(ctx context.Context, advertiserID string, details map[string]any) (string, error)
	UpdateVideoName(ctx context.Context, advertiserID, videoID, name string) (bool, error)
	GetVideosInfo(ctx context.Context, advertiserID string, videoIDs []string) ([]map[string]any, error)
}

// IntegratorFactory builds one integrator per access token.
type IntegratorFactory func(accessToken string) TiktokIntegrator

// GatewayFactory opens the raw API connection for one access token.
type GatewayFactory func(accessToken string) (tiktokclient.Gateway, error)

func NewGatewayFactory(cfg config.Tiktok) GatewayFactory {
	return func(accessToken string) (tiktokclient.Gateway, error) {
		if accessToken == "" {
			return nil, ErrMissingAccessToken
		}
		return tiktokclient.NewClient(cfg, accessToken), nil
	}
}

func NewIntegratorFactory(gateways GatewayFactory) IntegratorFactory {
	return func(accessToken string) TiktokIntegrator {
		return New(accessToken, gateways)
	}
}
