package tiktokschema

import "github.com/vfg2006/tiktok-manager-api/pkg/schema"

func text(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.String}
}

func requiredText(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.String, Required: true}
}

func enum(name string, required bool, values ...string) schema.Field {
	return schema.Field{Name: name, Type: schema.String, Required: required, OneOf: values}
}

func number(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.Float}
}

func integer(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.Int}
}

func flag(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.Bool}
}

func texts(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.StringList}
}

func requiredTexts(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.StringList, Required: true}
}

// encodedTexts is a list that travels as a JSON string in the query string.
func encodedTexts(name string) schema.Field {
	return schema.Field{Name: name, Type: schema.StringList, Required: true, Encode: true}
}

func listOf(name string, item *schema.Descriptor) schema.Field {
	return schema.Field{Name: name, Type: schema.ObjectList, Required: true, Nested: item}
}

func fieldNames(d *schema.Descriptor) []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

var (
	operationStatuses = []string{"ENABLE", "DISABLE"}
	budgetModes       = []string{"BUDGET_MODE_INFINITE", "BUDGET_MODE_DAY", "BUDGET_MODE_TOTAL", "BUDGET_MODE_DYNAMIC_DAILY_BUDGET"}
	uploadTypes       = []string{"UPLOAD_BY_FILE", "UPLOAD_BY_URL", "UPLOAD_BY_FILE_ID"}
)

// detailsRequest is the query sent to the /get/ endpoints of campaigns,
// ad groups and ads.
func detailsRequest(name string) *schema.Descriptor {
	return &schema.Descriptor{
		Name: name,
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			encodedTexts("fields"),
		},
	}
}

// listResponse wraps the item descriptor of a paged /get/ endpoint.
func listResponse(name string, item *schema.Descriptor) *schema.Descriptor {
	return &schema.Descriptor{
		Name:   name,
		Fields: []schema.Field{listOf("list", item)},
	}
}
