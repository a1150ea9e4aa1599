package tiktokclient

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

type envelope struct {
	Code      int64  `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Data      any    `json:"data"`
}

// handleError turns failing responses (>399 status code) into errors. Without
// this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, &APIError{
			Method:  res.Request.Method,
			Path:    res.Request.URL,
			Status:  res.StatusCode(),
			Message: strings.TrimSpace(truncate(res.String(), 512)),
		}
	}

	return res, nil
}

// decode unwraps the TikTok envelope. Array payloads are returned under
// "list" so every caller gets an object back.
func decode(res *resty.Response) (map[string]any, error) {
	var env envelope
	if err := utils.JSON.Unmarshal(res.Body(), &env); err != nil {
		return nil, &APIError{
			Method:  res.Request.Method,
			Path:    res.Request.URL,
			Status:  res.StatusCode(),
			Message: "invalid response body: " + err.Error(),
		}
	}

	if env.Code != 0 {
		return nil, &APIError{
			Method:    res.Request.Method,
			Path:      res.Request.URL,
			Status:    res.StatusCode(),
			Code:      env.Code,
			Message:   env.Message,
			RequestID: env.RequestID,
		}
	}

	switch data := env.Data.(type) {
	case map[string]any:
		return data, nil
	case []any:
		return map[string]any{"list": data}, nil
	case nil:
		return map[string]any{}, nil
	}

	return map[string]any{"value": env.Data}, nil
}

func (c *TiktokClient) get(req *resty.Request, path string, params map[string]any) (map[string]any, error) {
	res, err := handleError(req.SetQueryParams(queryParams(params)).Get(path))
	if err != nil {
		return nil, err
	}
	return decode(res)
}

func (c *TiktokClient) post(req *resty.Request, path string, body map[string]any) (map[string]any, error) {
	res, err := handleError(req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path))
	if err != nil {
		return nil, err
	}
	return decode(res)
}

func queryParams(params map[string]any) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch value := v.(type) {
		case nil:
			continue
		case string:
			out[k] = value
		case []any, []string, map[string]any, []map[string]any:
			// lists and objects travel JSON encoded
			encoded, err := utils.MarshalToString(value)
			if err == nil {
				out[k] = encoded
			}
		default:
			out[k] = cast.ToString(value)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
