package tiktok

import (
	"context"

	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokschema"
)

func (s *TiktokService) CreateCampaign(ctx context.Context, advertiserID string, details map[string]any) (string, error) {
	data, err := s.execute(ctx, operation{
		name:     "create campaign",
		subject:  "campaign_details",
		params:   []Param{{"advertiser_id", advertiserID}},
		payload:  details,
		request:  tiktokschema.MustRequest(tiktokschema.ResourceCampaign, tiktokschema.OperationCreate),
		response: tiktokschema.MustResponse(tiktokschema.ResourceCampaign, tiktokschema.OperationCreate),
		call:     tiktokclient.Gateway.CreateCampaign,
	})
	if err != nil {
		return "", err
	}

	return data["campaign_id"].(string), nil
}

func (s *TiktokService) UpdateCampaign(ctx context.Context, advertiserID, campaignID string, details map[string]any) (bool, error) {
	data, err := s.execute(ctx, operation{
		name:    "update campaign",
		subject: "campaign_details",
		params:  []Param{{"advertiser_id", advertiserID}, {"campaign_id", campaignID}},
		payload: details,
		request: tiktokschema.MustRequest(tiktokschema.ResourceCampaign, tiktokschema.OperationUpdate),
		call:    tiktokclient.Gateway.UpdateCampaign,
	})
	if err != nil {
		return false, err
	}

	return acknowledged(data), nil
}

func (s *TiktokService) CreateAdGroup(ctx context.Context, advertiserID string, details map[string]any) (string, error) {
	data, err := s.execute(ctx, operation{
		name:     "create adgroup",
		subject:  "adgroup_details",
		params:   []Param{{"advertiser_id", advertiserID}},
		payload:  details,
		request:  tiktokschema.MustRequest(tiktokschema.ResourceAdGroup, tiktokschema.OperationCreate),
		response: tiktokschema.MustResponse(tiktokschema.ResourceAdGroup, tiktokschema.OperationCreate),
		call:     tiktokclient.Gateway.CreateAdGroup,
	})
	if err != nil {
		return "", err
	}

	return data["adgroup_id"].(string), nil
}

func (s *TiktokService) UpdateAdGroup(ctx context.Context, advertiserID, adgroupID string, details map[string]any) (bool, error) {
	data, err := s.execute(ctx, operation{
		name:    "update adgroup",
		subject: "adgroup_details",
		params:  []Param{{"advertiser_id", advertiserID}, {"adgroup_id", adgroupID}},
		payload: details,
		request: tiktokschema.MustRequest(tiktokschema.ResourceAdGroup, tiktokschema.OperationUpdate),
		call:    tiktokclient.Gateway.UpdateAdGroup,
	})
	if err != nil {
		return false, err
	}

	return acknowledged(data), nil
}

func (s *TiktokService) CreateAds(ctx context.Context, advertiserID, adgroupID string, details map[string]any) ([]string, error) {
	data, err := s.execute(ctx, operation{
		name:     "create ads",
		subject:  "ad_details",
		params:   []Param{{"advertiser_id", advertiserID}, {"adgroup_id", adgroupID}},
		payload:  details,
		request:  tiktokschema.MustRequest(tiktokschema.ResourceAd, tiktokschema.OperationCreate),
		response: tiktokschema.MustResponse(tiktokschema.ResourceAd, tiktokschema.OperationCreate),
		call:     tiktokclient.Gateway.CreateAds,
	})
	if err != nil {
		return nil, err
	}

	return data["ad_ids"].([]string), nil
}

func (s *TiktokService) UpdateAds(ctx context.Context, advertiserID, adgroupID string, details map[string]any) (bool, error) {
	data, err := s.execute(ctx, operation{
		name:    "update ads",
		subject: "ad_details",
		params:  []Param{{"advertiser_id", advertiserID}, {"adgroup_id", adgroupID}},
		payload: details,
		request: tiktokschema.MustRequest(tiktokschema.ResourceAd, tiktokschema.OperationUpdate),
		call:    tiktokclient.Gateway.UpdateAds,
	})
	if err != nil {
		return false, err
	}

	return acknowledged(data), nil
}

// UpdateAdsStatus enables, disables or deletes ads. It reports true when the
// API acknowledged at least one ad.
func (s *TiktokService) UpdateAdsStatus(ctx context.Context, advertiserID string, details map[string]any) (bool, error) {
	data, err := s.execute(ctx, operation{
		name:     "update ads status",
		subject:  "ads_status_details",
		params:   []Param{{"advertiser_id", advertiserID}},
		payload:  details,
		request:  tiktokschema.MustRequest(tiktokschema.ResourceAd, tiktokschema.OperationStatusUpdate),
		response: tiktokschema.MustResponse(tiktokschema.ResourceAd, tiktokschema.OperationStatusUpdate),
		call:     tiktokclient.Gateway.UpdateAdsStatus,
	})
	if err != nil {
		return false, err
	}

	return len(data["ad_ids"].([]string)) > 0, nil
}
