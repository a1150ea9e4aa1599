package tiktokschema

import "github.com/vfg2006/tiktok-manager-api/pkg/schema"

var adFormats = []string{"SINGLE_IMAGE", "SINGLE_VIDEO", "CAROUSEL_ADS", "CATALOG_CAROUSEL", "LIVE_CONTENT"}

func creativeFields(extra ...schema.Field) []schema.Field {
	return append(extra,
		text("identity_type"),
		text("identity_id"),
		text("display_name"),
		text("ad_text"),
		text("call_to_action"),
		text("landing_page_url"),
		text("deeplink"),
		texts("image_ids"),
		text("video_id"),
	)
}

var adCreative = &schema.Descriptor{
	Name: "ad_creative",
	Fields: creativeFields(
		requiredText("ad_name"),
		enum("ad_format", true, adFormats...),
	),
}

var adCreativeUpdate = &schema.Descriptor{
	Name: "ad_creative_update",
	Fields: creativeFields(
		requiredText("ad_id"),
		text("ad_name"),
		enum("ad_format", false, adFormats...),
	),
}

var adDetails = &schema.Descriptor{
	Name: "ad_details",
	Fields: []schema.Field{
		requiredText("ad_id"),
		text("ad_name"),
		text("adgroup_id"),
		text("campaign_id"),
		text("advertiser_id"),
		text("ad_format"),
		text("ad_text"),
		text("call_to_action"),
		text("landing_page_url"),
		text("display_name"),
		texts("image_ids"),
		text("video_id"),
		text("operation_status"),
		text("secondary_status"),
		text("create_time"),
		text("modify_time"),
	},
}

func init() {
	registerRequest(ResourceAd, OperationCreate, &schema.Descriptor{
		Name: "ad_create",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("adgroup_id"),
			listOf("creatives", adCreative),
		},
	})
	registerRequest(ResourceAd, OperationUpdate, &schema.Descriptor{
		Name: "ad_update",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("adgroup_id"),
			listOf("creatives", adCreativeUpdate),
		},
	})
	registerRequest(ResourceAd, OperationStatusUpdate, &schema.Descriptor{
		Name: "ad_status_update",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredTexts("ad_ids"),
			enum("operation_status", true, "ENABLE", "DISABLE", "DELETE"),
		},
	})
	registerRequest(ResourceAd, OperationDetails, detailsRequest("ad_details_params"))

	registerResponse(ResourceAd, OperationCreate, &schema.Descriptor{
		Name:   "ads_created",
		Fields: []schema.Field{requiredTexts("ad_ids")},
	})
	registerResponse(ResourceAd, OperationStatusUpdate, &schema.Descriptor{
		Name:   "ads_status_updated",
		Fields: []schema.Field{requiredTexts("ad_ids"), text("status")},
	})
	registerResponse(ResourceAd, OperationDetails, listResponse("ads_details", adDetails))
}
