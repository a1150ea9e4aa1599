package actions

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

func newTestService(t *testing.T) (ActionService, *mocks.MockTiktokIntegrator, *[]string) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockTiktokIntegrator(ctrl)

	tokens := []string{}
	factory := func(accessToken string) tiktok.TiktokIntegrator {
		tokens = append(tokens, accessToken)
		return integrator
	}

	return NewService(factory), integrator, &tokens
}

func TestService_AddCampaign(t *testing.T) {
	details := map[string]any{"campaign_name": "Black Friday", "objective_type": "TRAFFIC"}

	tests := []struct {
		name    string
		setup   func(integrator *mocks.MockTiktokIntegrator)
		want    string
		wantErr error
	}{
		{
			name: "Campanha criada devolve o id",
			setup: func(integrator *mocks.MockTiktokIntegrator) {
				integrator.EXPECT().
					CreateCampaign(gomock.Any(), "adv1", details).
					Return("c1", nil)
			},
			want: "c1",
		},
		{
			name: "Falha do provedor vira erro de ação",
			setup: func(integrator *mocks.MockTiktokIntegrator) {
				integrator.EXPECT().
					CreateCampaign(gomock.Any(), "adv1", details).
					Return("", &tiktok.ClientError{Kind: tiktok.ErrorKindProvider, Operation: "create campaign", Err: errors.New("boom")})
			},
			wantErr: tiktok.ErrProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, integrator, tokens := newTestService(t)
			tt.setup(integrator)

			got, err := service.AddCampaign(context.Background(), "tok1", "adv1", details)

			assert.Equal(t, []string{"tok1"}, *tokens)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, domain.ErrAction)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, domain.ErrImporter)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ErrorMessageIsProviderMessage(t *testing.T) {
	service, integrator, _ := newTestService(t)

	cause := &tiktok.ClientError{
		Kind:        tiktok.ErrorKindProvider,
		Operation:   "update campaign",
		AccessToken: "tok1",
		Params:      []tiktok.Param{{Name: "advertiser_id", Value: "adv1"}, {Name: "campaign_id", Value: "c1"}},
		Err:         errors.New("rate limited"),
	}
	integrator.EXPECT().
		UpdateCampaign(gomock.Any(), "adv1", "c1", gomock.Any()).
		Return(false, cause)

	updated, err := service.UpdateCampaign(context.Background(), "tok1", "adv1", "c1", map[string]any{})

	assert.False(t, updated)
	assert.Equal(t, cause.Error(), err.Error())

	var clientErr *tiktok.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, "adv1", clientErr.AdvertiserID())
}

func TestService_Writes(t *testing.T) {
	ctx := context.Background()
	details := map[string]any{"any": "value"}

	t.Run("AddAdGroup", func(t *testing.T) {
		service, integrator, _ := newTestService(t)
		integrator.EXPECT().CreateAdGroup(ctx, "adv1", details).Return("ag1", nil)

		id, err := service.AddAdGroup(ctx, "tok1", "adv1", details)

		require.NoError(t, err)
		assert.Equal(t, "ag1", id)
	})

	t.Run("UpdateAdGroup", func(t *testing.T) {
		service, integrator, _ := newTestService(t)
		integrator.EXPECT().UpdateAdGroup(ctx, "adv1", "ag1", details).Return(true, nil)

		updated, err := service.UpdateAdGroup(ctx, "tok1", "adv1", "ag1", details)

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("AddAds", func(t *testing.T) {
		service, integrator, _ := newTestService(t)
		integrator.EXPECT().CreateAds(ctx, "adv1", "ag1", details).Return([]string{"a1", "a2"}, nil)

		ids, err := service.AddAds(ctx, "tok1", "adv1", "ag1", details)

		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2"}, ids)
	})

	t.Run("UpdateAds", func(t *testing.T) {
		service, integrator, _ := newTestService(t)
		integrator.EXPECT().UpdateAds(ctx, "adv1", "ag1", details).Return(true, nil)

		updated, err := service.UpdateAds(ctx, "tok1", "adv1", "ag1", details)

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("UpdateAdsStatus falha", func(t *testing.T) {
		service, integrator, _ := newTestService(t)
		integrator.EXPECT().
			UpdateAdsStatus(ctx, "adv1", details).
			Return(false, &tiktok.ClientError{Kind: tiktok.ErrorKindResponseDataNotValid, Stage: tiktok.StageRequest})

		updated, err := service.UpdateAdsStatus(ctx, "tok1", "adv1", details)

		assert.False(t, updated)
		assert.ErrorIs(t, err, domain.ErrAction)
		assert.ErrorIs(t, err, tiktok.ErrResponseDataNotValid)
	})
}
