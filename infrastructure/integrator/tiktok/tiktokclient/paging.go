package tiktokclient

import (
	"context"
	"maps"

	"github.com/spf13/cast"
)

// getAllPages walks a paged GET endpoint and merges every data.list into one.
func (c *TiktokClient) getAllPages(ctx context.Context, path string, params map[string]any) (map[string]any, error) {
	query := maps.Clone(params)
	if query == nil {
		query = map[string]any{}
	}
	if _, ok := query["page_size"]; !ok {
		query["page_size"] = c.pageSize
	}

	list := make([]any, 0)
	var pageInfo any

	for page := 1; ; page++ {
		query["page"] = page

		data, err := c.get(c.req(ctx), path, query)
		if err != nil {
			return nil, err
		}

		if items, ok := data["list"].([]any); ok {
			list = append(list, items...)
		}
		pageInfo = data["page_info"]

		if page >= totalPages(pageInfo) {
			break
		}
	}

	out := map[string]any{"list": list}
	if pageInfo != nil {
		out["page_info"] = pageInfo
	}
	return out, nil
}

func totalPages(pageInfo any) int {
	info, ok := pageInfo.(map[string]any)
	if !ok {
		return 0
	}
	return cast.ToInt(info["total_page"])
}
