package tiktokschema

import "github.com/vfg2006/tiktok-manager-api/pkg/schema"

var advertiserAccount = &schema.Descriptor{
	Name: "advertiser_account",
	Fields: []schema.Field{
		requiredText("advertiser_id"),
		text("advertiser_name"),
	},
}

func init() {
	registerRequest(ResourceAdvertiser, OperationAccounts, &schema.Descriptor{
		Name: "advertiser_accounts_params",
		Fields: []schema.Field{
			requiredText("app_id"),
			requiredText("secret"),
		},
	})
	registerResponse(ResourceAdvertiser, OperationAccounts, listResponse("advertiser_accounts", advertiserAccount))
}
