package tiktokclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

//go:generate mockgen -source=client.go -destination=../mocks/gateway.go -package=mocks

// Gateway is the raw TikTok Business API. Every method receives the already
// validated parameters of one endpoint and returns the "data" object of the
// response envelope. List payloads come back under "list".
type Gateway interface {
	GetAdAccounts(ctx context.Context, params map[string]any) (map[string]any, error)
	GetAdvertiserCampaigns(ctx context.Context, params map[string]any) (map[string]any, error)
	GetAdvertiserAdGroups(ctx context.Context, params map[string]any) (map[string]any, error)
	GetAdvertiserAds(ctx context.Context, params map[string]any) (map[string]any, error)

	CreateCampaign(ctx context.Context, params map[string]any) (map[string]any, error)
	UpdateCampaign(ctx context.Context, params map[string]any) (map[string]any, error)
	CreateAdGroup(ctx context.Context, params map[string]any) (map[string]any, error)
	UpdateAdGroup(ctx context.Context, params map[string]any) (map[string]any, error)
	CreateAds(ctx context.Context, params map[string]any) (map[string]any, error)
	UpdateAds(ctx context.Context, params map[string]any) (map[string]any, error)
	UpdateAdsStatus(ctx context.Context, params map[string]any) (map[string]any, error)

	UploadImage(ctx context.Context, params map[string]any) (map[string]any, error)
	UpdateImageName(ctx context.Context, params map[string]any) (map[string]any, error)
	GetImagesInfo(ctx context.Context, params map[string]any) (map[string]any, error)
	UploadVideo(ctx context.Context, params map[string]any) (map[string]any, error)
	UpdateVideoName(ctx context.Context, params map[string]any) (map[string]any, error)
	GetVideosInfo(ctx context.Context, params map[string]any) (map[string]any, error)

	GetInsightsReport(ctx context.Context, params map[string]any) (map[string]any, error)
}

const (
	DefaultBaseURL  = "https://business-api.tiktok.com/open_api/v1.3"
	defaultPageSize = 1000
	// TikTok rejects page_size above this value on every paged endpoint.
	maxPageSize = 1000
)

type TiktokClient struct {
	httpClient *resty.Client
	pageSize   int
	uploadDir  string
}

func NewClient(cfg config.Tiktok, accessToken string) Gateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(res *resty.Response, err error) bool {
			return res != nil && (res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= http.StatusInternalServerError)
		}).
		SetJSONMarshaler(utils.JSON.Marshal).
		SetJSONUnmarshaler(utils.JSON.Unmarshal).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Access-Token": accessToken,
		})

	return &TiktokClient{
		httpClient: httpClient,
		pageSize:   pageSize,
		uploadDir:  cfg.UploadDir,
	}
}

func (c *TiktokClient) req(ctx context.Context) *resty.Request {
	return c.httpClient.NewRequest().SetContext(ctx)
}
