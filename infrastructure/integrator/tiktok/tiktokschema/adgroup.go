package tiktokschema

import "github.com/vfg2006/tiktok-manager-api/pkg/schema"

var scheduleTypes = []string{"SCHEDULE_START_END", "SCHEDULE_FROM_NOW"}

var adGroupDetails = &schema.Descriptor{
	Name: "adgroup_details",
	Fields: []schema.Field{
		requiredText("adgroup_id"),
		text("adgroup_name"),
		text("campaign_id"),
		text("advertiser_id"),
		number("budget"),
		text("budget_mode"),
		number("bid_price"),
		text("billing_event"),
		text("optimization_goal"),
		text("placement_type"),
		text("schedule_type"),
		text("schedule_start_time"),
		text("schedule_end_time"),
		text("operation_status"),
		text("secondary_status"),
		text("create_time"),
		text("modify_time"),
	},
}

func init() {
	registerRequest(ResourceAdGroup, OperationCreate, &schema.Descriptor{
		Name: "adgroup_create",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("campaign_id"),
			requiredText("adgroup_name"),
			enum("placement_type", false, "PLACEMENT_TYPE_AUTOMATIC", "PLACEMENT_TYPE_NORMAL"),
			texts("placements"),
			requiredTexts("location_ids"),
			enum("budget_mode", true, budgetModes...),
			number("budget"),
			enum("schedule_type", true, scheduleTypes...),
			requiredText("schedule_start_time"),
			text("schedule_end_time"),
			requiredText("optimization_goal"),
			requiredText("billing_event"),
			text("bid_type"),
			number("bid_price"),
			text("pacing"),
			text("gender"),
			texts("age_groups"),
			texts("languages"),
			enum("operation_status", false, operationStatuses...),
		},
	})
	registerRequest(ResourceAdGroup, OperationUpdate, &schema.Descriptor{
		Name: "adgroup_update",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("adgroup_id"),
			text("adgroup_name"),
			number("budget"),
			text("schedule_start_time"),
			text("schedule_end_time"),
			number("bid_price"),
			texts("location_ids"),
			texts("age_groups"),
			texts("languages"),
			text("gender"),
		},
	})
	registerRequest(ResourceAdGroup, OperationDetails, detailsRequest("adgroup_details_params"))

	registerResponse(ResourceAdGroup, OperationCreate, &schema.Descriptor{
		Name:   "adgroup_created",
		Fields: []schema.Field{requiredText("adgroup_id")},
	})
	registerResponse(ResourceAdGroup, OperationDetails, listResponse("adgroups_details", adGroupDetails))
}
