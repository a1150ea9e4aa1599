package tiktokclient

import "context"

const (
	pathAdvertisers = "/oauth2/advertiser/get/"
	pathCampaigns   = "/campaign/get/"
	pathAdGroups    = "/adgroup/get/"
	pathAds         = "/ad/get/"
)

func (c *TiktokClient) GetAdAccounts(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.get(c.req(ctx), pathAdvertisers, params)
}

func (c *TiktokClient) GetAdvertiserCampaigns(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.getAllPages(ctx, pathCampaigns, params)
}

func (c *TiktokClient) GetAdvertiserAdGroups(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.getAllPages(ctx, pathAdGroups, params)
}

func (c *TiktokClient) GetAdvertiserAds(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.getAllPages(ctx, pathAds, params)
}
