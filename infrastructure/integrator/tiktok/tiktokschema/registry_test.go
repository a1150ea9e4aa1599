package tiktokschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/pkg/schema"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

func TestRegistry_Lookups(t *testing.T) {
	requestsWanted := []key{
		{ResourceAdvertiser, OperationAccounts},
		{ResourceCampaign, OperationCreate},
		{ResourceCampaign, OperationUpdate},
		{ResourceCampaign, OperationDetails},
		{ResourceAdGroup, OperationCreate},
		{ResourceAdGroup, OperationUpdate},
		{ResourceAdGroup, OperationDetails},
		{ResourceAd, OperationCreate},
		{ResourceAd, OperationUpdate},
		{ResourceAd, OperationStatusUpdate},
		{ResourceAd, OperationDetails},
		{ResourceImage, OperationCreate},
		{ResourceImage, OperationUpdate},
		{ResourceImage, OperationInfo},
		{ResourceVideo, OperationCreate},
		{ResourceVideo, OperationUpdate},
		{ResourceVideo, OperationInfo},
		{ResourceReport, OperationInsights},
	}
	for _, k := range requestsWanted {
		assert.NotPanics(t, func() { MustRequest(k.resource, k.operation) }, "%s/%s", k.resource, k.operation)
	}

	responsesWanted := []key{
		{ResourceAdvertiser, OperationAccounts},
		{ResourceCampaign, OperationCreate},
		{ResourceCampaign, OperationDetails},
		{ResourceAdGroup, OperationCreate},
		{ResourceAdGroup, OperationDetails},
		{ResourceAd, OperationCreate},
		{ResourceAd, OperationStatusUpdate},
		{ResourceAd, OperationDetails},
		{ResourceImage, OperationCreate},
		{ResourceImage, OperationInfo},
		{ResourceVideo, OperationCreate},
		{ResourceVideo, OperationInfo},
	}
	for _, k := range responsesWanted {
		assert.NotPanics(t, func() { MustResponse(k.resource, k.operation) }, "%s/%s", k.resource, k.operation)
	}
}

func TestRegistry_MissingLookupPanics(t *testing.T) {
	_, ok := Request(ResourceReport, OperationCreate)
	assert.False(t, ok)

	assert.Panics(t, func() { MustRequest(ResourceReport, OperationCreate) })
	assert.Panics(t, func() { MustResponse(ResourceImage, OperationUpdate) })
	assert.Panics(t, func() { DataLevel(domain.ResourceType("creative")) })
}

func TestCampaignCreate(t *testing.T) {
	d := MustRequest(ResourceCampaign, OperationCreate)

	missing := schema.Validate(map[string]any{"advertiser_id": "adv1", "objective_type": "TRAFFIC"}, d)
	assert.False(t, missing.Valid())

	ok := schema.Validate(map[string]any{
		"advertiser_id":  "adv1",
		"campaign_name":  "Black Friday",
		"objective_type": "TRAFFIC",
		"budget":         "100",
		"colour":         "red",
	}, d)
	require.True(t, ok.Valid(), ok.Reason())
	assert.Equal(t, map[string]any{
		"advertiser_id":  "adv1",
		"campaign_name":  "Black Friday",
		"objective_type": "TRAFFIC",
		"budget":         float64(100),
	}, ok.Map())
}

func TestAdStatusUpdate(t *testing.T) {
	d := MustRequest(ResourceAd, OperationStatusUpdate)

	bad := schema.Validate(map[string]any{"advertiser_id": "adv1", "ad_ids": []string{"1"}, "operation_status": "PAUSE"}, d)
	assert.False(t, bad.Valid())

	ok := schema.Validate(map[string]any{"advertiser_id": "adv1", "ad_ids": []string{"1", "2"}, "operation_status": "DISABLE"}, d)
	require.True(t, ok.Valid(), ok.Reason())
	assert.Equal(t, []string{"1", "2"}, ok.Map()["ad_ids"])
}

func TestImageInfoEncodesIDs(t *testing.T) {
	result := schema.Validate(map[string]any{
		"advertiser_id": "adv1",
		"image_ids":     []string{"img1", "img2"},
	}, MustRequest(ResourceImage, OperationInfo))
	require.True(t, result.Valid(), result.Reason())

	var ids []string
	require.NoError(t, utils.JSON.UnmarshalFromString(result.Map()["image_ids"].(string), &ids))
	assert.Equal(t, []string{"img1", "img2"}, ids)
}

func TestDetailFields(t *testing.T) {
	for _, kind := range domain.ResourceTypes {
		fields := DetailFields(kind)
		assert.Contains(t, fields, kind.String()+"_id")
	}
}

func TestInsightFields(t *testing.T) {
	dimensions, metrics := InsightFields(domain.ResourceTypeAdGroup)

	assert.Equal(t, []string{"adgroup_id", "stat_time_day"}, dimensions)
	assert.Contains(t, metrics, "spend")
	assert.Contains(t, metrics, "adgroup_name")

	// callers get their own copy
	dimensions[0] = "changed"
	again, _ := InsightFields(domain.ResourceTypeAdGroup)
	assert.Equal(t, "adgroup_id", again[0])
}

func TestDataLevel(t *testing.T) {
	assert.Equal(t, "AUCTION_CAMPAIGN", DataLevel(domain.ResourceTypeCampaign))
	assert.Equal(t, "AUCTION_ADGROUP", DataLevel(domain.ResourceTypeAdGroup))
	assert.Equal(t, "AUCTION_AD", DataLevel(domain.ResourceTypeAd))
}

func TestInsightsResponse(t *testing.T) {
	d := InsightsResponse(domain.ResourceTypeCampaign, "adv1")

	result := schema.Validate(map[string]any{
		"list": []any{
			map[string]any{
				"dimensions": map[string]any{"campaign_id": "c1", "stat_time_day": "2023-03-05 00:00:00"},
				"metrics":    map[string]any{"spend": "10.00", "impressions": "100", "campaign_name": "C1"},
			},
		},
		"page_info": map[string]any{"page": 1},
	}, d)
	require.True(t, result.Valid(), result.Reason())

	list := result.Map()["list"].([]map[string]any)
	assert.Equal(t, []map[string]any{{
		"campaign_id":   "c1",
		"stat_time_day": "2023-03-05 00:00:00",
		"spend":         "10.00",
		"impressions":   "100",
		"campaign_name": "C1",
		"advertiser_id": "adv1",
	}}, list)

	empty := schema.Validate(map[string]any{"list": []any{}}, d)
	assert.True(t, empty.Valid())

	missingDimension := schema.Validate(map[string]any{
		"list": []any{map[string]any{"dimensions": map[string]any{"campaign_id": "c1"}, "metrics": map[string]any{}}},
	}, d)
	assert.False(t, missingDimension.Valid())
}
