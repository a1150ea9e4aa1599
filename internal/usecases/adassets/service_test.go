package adassets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/mocks"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (AdAssetsService, *mocks.MockTiktokIntegrator) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockTiktokIntegrator(ctrl)

	return NewService(func(string) tiktok.TiktokIntegrator { return integrator }), integrator
}

func TestService_Images(t *testing.T) {
	ctx := context.Background()

	t.Run("AddImage", func(t *testing.T) {
		service, integrator := newTestService(t)
		details := map[string]any{"upload_type": "UPLOAD_BY_URL", "image_url": "https://cdn/x.png"}
		integrator.EXPECT().CreateImage(ctx, "adv1", details).Return("img1", nil)

		id, err := service.AddImage(ctx, "tok1", "adv1", details)

		require.NoError(t, err)
		assert.Equal(t, "img1", id)
	})

	t.Run("UpdateImageName", func(t *testing.T) {
		service, integrator := newTestService(t)
		integrator.EXPECT().UpdateImageName(ctx, "adv1", "img1", "banner").Return(true, nil)

		updated, err := service.UpdateImageName(ctx, "tok1", "adv1", "img1", "banner")

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("GetImagesInfo", func(t *testing.T) {
		service, integrator := newTestService(t)
		info := []map[string]any{{"image_id": "img1"}, {"image_id": "img2"}}
		integrator.EXPECT().GetImagesInfo(ctx, "adv1", []string{"img1", "img2"}).Return(info, nil)

		got, err := service.GetImagesInfo(ctx, "tok1", "adv1", []string{"img1", "img2"})

		require.NoError(t, err)
		assert.Equal(t, info, got)
	})
}

func TestService_Videos(t *testing.T) {
	ctx := context.Background()

	t.Run("AddVideo", func(t *testing.T) {
		service, integrator := newTestService(t)
		details := map[string]any{"upload_type": "UPLOAD_BY_FILE_ID", "file_id": "f1"}
		integrator.EXPECT().CreateVideo(ctx, "adv1", details).Return("v1", nil)

		id, err := service.AddVideo(ctx, "tok1", "adv1", details)

		require.NoError(t, err)
		assert.Equal(t, "v1", id)
	})

	t.Run("UpdateVideoName", func(t *testing.T) {
		service, integrator := newTestService(t)
		integrator.EXPECT().UpdateVideoName(ctx, "adv1", "v1", "teaser").Return(true, nil)

		updated, err := service.UpdateVideoName(ctx, "tok1", "adv1", "v1", "teaser")

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("GetVideosInfo vazio é válido", func(t *testing.T) {
		service, integrator := newTestService(t)
		integrator.EXPECT().GetVideosInfo(ctx, "adv1", []string{"v9"}).Return([]map[string]any{}, nil)

		got, err := service.GetVideosInfo(ctx, "tok1", "adv1", []string{"v9"})

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestService_FailuresAreAdAssetsErrors(t *testing.T) {
	ctx := context.Background()
	cause := &tiktok.ClientError{Kind: tiktok.ErrorKindProvider, Operation: "create image", Err: errors.New("timeout")}

	tests := []struct {
		name  string
		setup func(integrator *mocks.MockTiktokIntegrator)
		call  func(service AdAssetsService) error
	}{
		{
			name: "AddImage",
			setup: func(integrator *mocks.MockTiktokIntegrator) {
				integrator.EXPECT().CreateImage(gomock.Any(), gomock.Any(), gomock.Any()).Return("", cause)
			},
			call: func(service AdAssetsService) error {
				_, err := service.AddImage(ctx, "tok1", "adv1", map[string]any{})
				return err
			},
		},
		{
			name: "GetImagesInfo",
			setup: func(integrator *mocks.MockTiktokIntegrator) {
				integrator.EXPECT().GetImagesInfo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause)
			},
			call: func(service AdAssetsService) error {
				_, err := service.GetImagesInfo(ctx, "tok1", "adv1", []string{"img1"})
				return err
			},
		},
		{
			name: "UpdateVideoName",
			setup: func(integrator *mocks.MockTiktokIntegrator) {
				integrator.EXPECT().UpdateVideoName(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, cause)
			},
			call: func(service AdAssetsService) error {
				_, err := service.UpdateVideoName(ctx, "tok1", "adv1", "v1", "name")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, integrator := newTestService(t)
			tt.setup(integrator)

			err := tt.call(service)

			assert.ErrorIs(t, err, domain.ErrAdAssets)
			assert.ErrorIs(t, err, tiktok.ErrProvider)
			assert.NotErrorIs(t, err, domain.ErrAction)
			assert.Equal(t, cause.Error(), err.Error())
		})
	}
}
