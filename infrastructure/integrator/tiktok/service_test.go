package tiktok

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/mocks"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*TiktokService, *mocks.MockGateway, *int) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)

	opened := 0
	service := New("tok1", func(accessToken string) (tiktokclient.Gateway, error) {
		assert.Equal(t, "tok1", accessToken)
		opened++
		return gateway, nil
	})

	return service, gateway, &opened
}

func TestCreateCampaign(t *testing.T) {
	rootErr := errors.New("advertiser is blocked")

	tests := []struct {
		name    string
		details map[string]any
		setup   func(gateway *mocks.MockGateway)
		want    string
		check   func(t *testing.T, err error, opened int)
	}{
		{
			name:    "missing required field never reaches the gateway",
			details: map[string]any{"objective_type": "TRAFFIC"},
			setup:   func(gateway *mocks.MockGateway) {},
			check: func(t *testing.T, err error, opened int) {
				assert.ErrorIs(t, err, ErrResponseDataNotValid)
				assert.NotErrorIs(t, err, ErrProvider)

				var clientErr *ClientError
				require.True(t, errors.As(err, &clientErr))
				assert.Equal(t, StageRequest, clientErr.Stage)
				assert.Contains(t, err.Error(), "before calling provider")
				assert.Contains(t, err.Error(), "campaign_name")
				assert.Equal(t, 0, opened)
			},
		},
		{
			name:    "provider failure",
			details: map[string]any{"campaign_name": "Summer", "objective_type": "TRAFFIC"},
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil, rootErr)
			},
			check: func(t *testing.T, err error, opened int) {
				assert.ErrorIs(t, err, ErrProvider)
				assert.ErrorIs(t, err, rootErr)
				assert.Contains(t, err.Error(), "Unable to create campaign")
				assert.Contains(t, err.Error(), "user_access_token=tok1")
				assert.Contains(t, err.Error(), "advertiser_id=adv1")
				assert.Contains(t, err.Error(), "advertiser is blocked")

				var clientErr *ClientError
				require.True(t, errors.As(err, &clientErr))
				assert.Equal(t, "adv1", clientErr.AdvertiserID())
			},
		},
		{
			name:    "acknowledgement without id",
			details: map[string]any{"campaign_name": "Summer", "objective_type": "TRAFFIC"},
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(map[string]any{}, nil)
			},
			check: func(t *testing.T, err error, opened int) {
				assert.ErrorIs(t, err, ErrResponseDataNotValid)

				var clientErr *ClientError
				require.True(t, errors.As(err, &clientErr))
				assert.Equal(t, StageResponse, clientErr.Stage)
			},
		},
		{
			name:    "created",
			details: map[string]any{"campaign_name": "Summer", "objective_type": "TRAFFIC", "budget": 10},
			setup: func(gateway *mocks.MockGateway) {
				gateway.EXPECT().
					CreateCampaign(gomock.Any(), map[string]any{
						"advertiser_id":  "adv1",
						"campaign_name":  "Summer",
						"objective_type": "TRAFFIC",
						"budget":         float64(10),
					}).
					Return(map[string]any{"campaign_id": "c1"}, nil)
			},
			want: "c1",
			check: func(t *testing.T, err error, opened int) {
				assert.NoError(t, err)
				assert.Equal(t, 1, opened)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, gateway, opened := newTestService(t)
			tt.setup(gateway)

			got, err := service.CreateCampaign(context.Background(), "adv1", tt.details)

			assert.Equal(t, tt.want, got)
			tt.check(t, err, *opened)
			assert.NotContains(t, tt.details, "advertiser_id")
		})
	}
}

func TestGetCampaignsDetails_InvalidResponse(t *testing.T) {
	service, gateway, _ := newTestService(t)

	gateway.EXPECT().
		GetAdvertiserCampaigns(gomock.Any(), gomock.Any()).
		Return(map[string]any{"list": []any{map[string]any{"campaign_name": "no id"}}}, nil)

	details, err := service.GetCampaignsDetails(context.Background(), "adv1")

	assert.Nil(t, details)
	assert.ErrorIs(t, err, ErrResponseDataNotValid)
	assert.NotErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "response_data=")
	assert.Contains(t, err.Error(), "no id")
}

func TestGetCampaignsDetails_Idempotent(t *testing.T) {
	service, gateway, opened := newTestService(t)

	gateway.EXPECT().
		GetAdvertiserCampaigns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params map[string]any) (map[string]any, error) {
			assert.Equal(t, "adv1", params["advertiser_id"])
			assert.Contains(t, params["fields"], `"campaign_id"`)
			return map[string]any{
				"list": []any{
					map[string]any{"campaign_id": "c1", "campaign_name": "One", "budget": "12.5"},
				},
			}, nil
		}).
		Times(2)

	first, err := service.GetCampaignsDetails(context.Background(), "adv1")
	require.NoError(t, err)

	second, err := service.GetCampaignsDetails(context.Background(), "adv1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []map[string]any{{"campaign_id": "c1", "campaign_name": "One", "budget": 12.5}}, first)
	assert.Equal(t, 1, *opened)
}

func TestGetAccountIDs(t *testing.T) {
	t.Run("returns advertiser ids", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().
			GetAdAccounts(gomock.Any(), map[string]any{"app_id": "app1", "secret": "s1"}).
			Return(map[string]any{"list": []any{
				map[string]any{"advertiser_id": "adv1", "advertiser_name": "A"},
				map[string]any{"advertiser_id": "adv2"},
			}}, nil)

		ids, err := service.GetAccountIDs(context.Background(), "app1", "s1")

		require.NoError(t, err)
		assert.Equal(t, []string{"adv1", "adv2"}, ids)
	})

	t.Run("provider error hides the secret", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().GetAdAccounts(gomock.Any(), gomock.Any()).Return(nil, errors.New("invalid app"))

		_, err := service.GetAccountIDs(context.Background(), "app1", "topsecret")

		assert.ErrorIs(t, err, ErrProvider)
		assert.Contains(t, err.Error(), "app_id=app1")
		assert.NotContains(t, err.Error(), "topsecret")
	})
}

func TestGetInsights(t *testing.T) {
	service, gateway, _ := newTestService(t)

	from := time.Date(2023, 3, 5, 14, 30, 0, 0, time.UTC)
	to := time.Date(2023, 3, 6, 0, 0, 0, 0, time.UTC)

	gateway.EXPECT().
		GetInsightsReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params map[string]any) (map[string]any, error) {
			assert.Equal(t, "2023-03-05", params["start_date"])
			assert.Equal(t, "2023-03-06", params["end_date"])
			assert.Equal(t, "AUCTION_AD", params["data_level"])
			assert.Equal(t, `["ad_id","stat_time_day"]`, params["dimensions"])
			assert.NotContains(t, params, "resource_type")

			return map[string]any{"list": []any{
				map[string]any{
					"dimensions": map[string]any{"ad_id": "ad1", "stat_time_day": "2023-03-05 00:00:00"},
					"metrics":    map[string]any{"spend": "3.10", "clicks": "4"},
				},
			}}, nil
		})

	records, err := service.GetInsights(context.Background(), "adv1", domain.ResourceTypeAd, from, to)

	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{
		"ad_id":         "ad1",
		"stat_time_day": "2023-03-05 00:00:00",
		"spend":         "3.10",
		"clicks":        "4",
		"advertiser_id": "adv1",
	}}, records)
}

func TestGetInsights_EmptyReportIsValid(t *testing.T) {
	service, gateway, _ := newTestService(t)

	gateway.EXPECT().GetInsightsReport(gomock.Any(), gomock.Any()).Return(map[string]any{"list": []any{}}, nil)

	records, err := service.GetInsights(context.Background(), "adv1", domain.ResourceTypeCampaign, time.Now(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestGatewayFactoryErrorPropagates(t *testing.T) {
	factoryErr := errors.New("no connection")
	service := New("tok1", func(string) (tiktokclient.Gateway, error) {
		return nil, factoryErr
	})

	_, err := service.GetAdsDetails(context.Background(), "adv1")

	assert.Same(t, factoryErr, err)
}

func TestWrites(t *testing.T) {
	t.Run("update image name with empty acknowledgement", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().
			UpdateImageName(gomock.Any(), map[string]any{"advertiser_id": "adv1", "image_id": "img1", "file_name": "new.png"}).
			Return(map[string]any{}, nil)

		ok, err := service.UpdateImageName(context.Background(), "adv1", "img1", "new.png")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update ads status", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().
			UpdateAdsStatus(gomock.Any(), gomock.Any()).
			Return(map[string]any{"ad_ids": []any{"1"}, "status": "DISABLE"}, nil)

		ok, err := service.UpdateAdsStatus(context.Background(), "adv1", map[string]any{
			"ad_ids":           []string{"1"},
			"operation_status": "DISABLE",
		})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("create ads", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().
			CreateAds(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params map[string]any) (map[string]any, error) {
				assert.Equal(t, "ag1", params["adgroup_id"])
				return map[string]any{"ad_ids": []any{"a1", "a2"}}, nil
			})

		ids, err := service.CreateAds(context.Background(), "adv1", "ag1", map[string]any{
			"creatives": []any{map[string]any{"ad_name": "A", "ad_format": "SINGLE_IMAGE", "image_ids": []string{"img1"}}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2"}, ids)
	})

	t.Run("create video without videos in the answer", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().UploadVideo(gomock.Any(), gomock.Any()).Return(map[string]any{"list": []any{}}, nil)

		id, err := service.CreateVideo(context.Background(), "adv1", map[string]any{"upload_type": "UPLOAD_BY_URL", "video_url": "https://x/v.mp4"})

		assert.Empty(t, id)
		assert.ErrorIs(t, err, ErrResponseDataNotValid)
	})

	t.Run("images info", func(t *testing.T) {
		service, gateway, _ := newTestService(t)

		gateway.EXPECT().
			GetImagesInfo(gomock.Any(), map[string]any{"advertiser_id": "adv1", "image_ids": `["img1"]`}).
			Return(map[string]any{"list": []any{map[string]any{"image_id": "img1", "width": 100}}}, nil)

		images, err := service.GetImagesInfo(context.Background(), "adv1", []string{"img1"})

		require.NoError(t, err)
		assert.Equal(t, []map[string]any{{"image_id": "img1", "width": int64(100)}}, images)
	})
}

func TestCreateImage_UploadPathRefusedIsRequestError(t *testing.T) {
	service, gateway, _ := newTestService(t)

	gateway.EXPECT().
		UploadImage(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: \"/etc/passwd\" must be relative to the upload directory", tiktokclient.ErrUploadPathNotAllowed))

	id, err := service.CreateImage(context.Background(), "adv1", map[string]any{
		"upload_type": "UPLOAD_BY_FILE",
		"image_file":  "/etc/passwd",
	})

	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrResponseDataNotValid)
	assert.NotErrorIs(t, err, ErrProvider)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, StageRequest, clientErr.Stage)
	assert.ErrorIs(t, err, tiktokclient.ErrUploadPathNotAllowed)
}
