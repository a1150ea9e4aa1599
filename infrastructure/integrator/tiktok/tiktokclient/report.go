package tiktokclient

import "context"

const pathIntegratedReport = "/report/integrated/get/"

// GetInsightsReport runs a synchronous integrated report and returns every
// row across pages.
func (c *TiktokClient) GetInsightsReport(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.getAllPages(ctx, pathIntegratedReport, params)
}
