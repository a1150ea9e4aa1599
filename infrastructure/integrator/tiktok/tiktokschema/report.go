package tiktokschema

import (
	"fmt"
	"slices"

	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/pkg/schema"
)

const (
	ServiceTypeAuction = "AUCTION"
	ReportTypeBasic    = "BASIC"
)

var performanceMetrics = []string{
	"spend",
	"impressions",
	"clicks",
	"ctr",
	"cpc",
	"cpm",
	"reach",
	"frequency",
	"conversion",
	"cost_per_conversion",
	"conversion_rate",
}

type insightFields struct {
	dimensions []string
	metrics    []string
}

var insights = map[domain.ResourceType]insightFields{
	domain.ResourceTypeCampaign: {
		dimensions: []string{"campaign_id", "stat_time_day"},
		metrics:    append([]string{"campaign_name", "objective_type"}, performanceMetrics...),
	},
	domain.ResourceTypeAdGroup: {
		dimensions: []string{"adgroup_id", "stat_time_day"},
		metrics:    append([]string{"adgroup_name", "campaign_id", "campaign_name"}, performanceMetrics...),
	},
	domain.ResourceTypeAd: {
		dimensions: []string{"ad_id", "stat_time_day"},
		metrics:    append([]string{"ad_name", "adgroup_id", "adgroup_name", "campaign_id", "campaign_name"}, performanceMetrics...),
	},
}

var detailsResources = map[domain.ResourceType]Resource{
	domain.ResourceTypeCampaign: ResourceCampaign,
	domain.ResourceTypeAdGroup:  ResourceAdGroup,
	domain.ResourceTypeAd:       ResourceAd,
}

var dataLevels = map[domain.ResourceType]string{
	domain.ResourceTypeCampaign: "AUCTION_CAMPAIGN",
	domain.ResourceTypeAdGroup:  "AUCTION_ADGROUP",
	domain.ResourceTypeAd:       "AUCTION_AD",
}

func init() {
	registerRequest(ResourceReport, OperationInsights, &schema.Descriptor{
		Name: "insights_report_params",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			enum("service_type", true, ServiceTypeAuction),
			enum("report_type", true, ReportTypeBasic),
			enum("data_level", true, "AUCTION_CAMPAIGN", "AUCTION_ADGROUP", "AUCTION_AD"),
			encodedTexts("dimensions"),
			encodedTexts("metrics"),
			requiredText("start_date"),
			requiredText("end_date"),
			integer("page_size"),
		},
	})
}

// ResourceFor maps a resource kind to the registry resource holding its
// descriptors.
func ResourceFor(kind domain.ResourceType) Resource {
	r, ok := detailsResources[kind]
	if !ok {
		panic(fmt.Sprintf("tiktokschema: unknown resource type %q", kind))
	}
	return r
}

// DetailFields lists the fields requested from the /get/ endpoint of kind.
func DetailFields(kind domain.ResourceType) []string {
	response := MustResponse(ResourceFor(kind), OperationDetails)
	list, _ := response.Field("list")
	return fieldNames(list.Nested)
}

// InsightFields returns the report dimensions and metrics for kind.
func InsightFields(kind domain.ResourceType) (dimensions, metrics []string) {
	fields, ok := insights[kind]
	if !ok {
		panic(fmt.Sprintf("tiktokschema: no insight fields for %q", kind))
	}
	return slices.Clone(fields.dimensions), slices.Clone(fields.metrics)
}

// DataLevel is the report data_level of kind for auction ads.
func DataLevel(kind domain.ResourceType) string {
	level, ok := dataLevels[kind]
	if !ok {
		panic(fmt.Sprintf("tiktokschema: no data level for %q", kind))
	}
	return level
}

// InsightsResponse describes an integrated report of kind. Rows are flattened
// into a single record and tagged with advertiserID.
func InsightsResponse(kind domain.ResourceType, advertiserID string) *schema.Descriptor {
	dimensions, metrics := InsightFields(kind)

	dimensionFields := make([]schema.Field, 0, len(dimensions))
	for _, name := range dimensions {
		dimensionFields = append(dimensionFields, requiredText(name))
	}

	metricFields := make([]schema.Field, 0, len(metrics))
	for _, name := range metrics {
		metricFields = append(metricFields, text(name))
	}

	row := &schema.Descriptor{
		Name: kind.String() + "_insight",
		Fields: []schema.Field{
			{
				Name:     "dimensions",
				Type:     schema.Object,
				Required: true,
				Flatten:  true,
				Nested:   &schema.Descriptor{Name: "dimensions", Fields: dimensionFields},
			},
			{
				Name:     "metrics",
				Type:     schema.Object,
				Required: true,
				Flatten:  true,
				Nested:   &schema.Descriptor{Name: "metrics", Fields: metricFields},
			},
			requiredText("advertiser_id"),
		},
		Inject: map[string]any{"advertiser_id": advertiserID},
	}

	return listResponse(kind.String()+"_insights", row)
}
