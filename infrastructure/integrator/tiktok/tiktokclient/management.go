package tiktokclient

import "context"

const (
	pathCampaignCreate = "/campaign/create/"
	pathCampaignUpdate = "/campaign/update/"
	pathAdGroupCreate  = "/adgroup/create/"
	pathAdGroupUpdate  = "/adgroup/update/"
	pathAdCreate       = "/ad/create/"
	pathAdUpdate       = "/ad/update/"
	pathAdStatusUpdate = "/ad/status/update/"
)

func (c *TiktokClient) CreateCampaign(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathCampaignCreate, params)
}

func (c *TiktokClient) UpdateCampaign(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathCampaignUpdate, params)
}

func (c *TiktokClient) CreateAdGroup(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathAdGroupCreate, params)
}

func (c *TiktokClient) UpdateAdGroup(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathAdGroupUpdate, params)
}

func (c *TiktokClient) CreateAds(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathAdCreate, params)
}

func (c *TiktokClient) UpdateAds(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathAdUpdate, params)
}

func (c *TiktokClient) UpdateAdsStatus(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathAdStatusUpdate, params)
}
