package tiktokschema

import "github.com/vfg2006/tiktok-manager-api/pkg/schema"

var objectiveTypes = []string{
	"APP_PROMOTION",
	"WEB_CONVERSIONS",
	"REACH",
	"TRAFFIC",
	"VIDEO_VIEWS",
	"LEAD_GENERATION",
	"ENGAGEMENT",
	"PRODUCT_SALES",
	"RF_REACH",
}

var campaignDetails = &schema.Descriptor{
	Name: "campaign_details",
	Fields: []schema.Field{
		requiredText("campaign_id"),
		text("campaign_name"),
		text("advertiser_id"),
		text("objective_type"),
		number("budget"),
		text("budget_mode"),
		text("operation_status"),
		text("secondary_status"),
		text("create_time"),
		text("modify_time"),
	},
}

func init() {
	registerRequest(ResourceCampaign, OperationCreate, &schema.Descriptor{
		Name: "campaign_create",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("campaign_name"),
			enum("objective_type", true, objectiveTypes...),
			enum("budget_mode", false, budgetModes...),
			number("budget"),
			enum("operation_status", false, operationStatuses...),
			texts("special_industries"),
			text("request_id"),
		},
	})
	registerRequest(ResourceCampaign, OperationUpdate, &schema.Descriptor{
		Name: "campaign_update",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("campaign_id"),
			text("campaign_name"),
			enum("budget_mode", false, budgetModes...),
			number("budget"),
			texts("special_industries"),
		},
	})
	registerRequest(ResourceCampaign, OperationDetails, detailsRequest("campaign_details_params"))

	registerResponse(ResourceCampaign, OperationCreate, &schema.Descriptor{
		Name:   "campaign_created",
		Fields: []schema.Field{requiredText("campaign_id")},
	})
	registerResponse(ResourceCampaign, OperationDetails, listResponse("campaigns_details", campaignDetails))
}
