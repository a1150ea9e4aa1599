package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, lookbackDays int) (*TiktokImportSyncService, *mocks.MockImporter) {
	ctrl := gomock.NewController(t)
	importer := mocks.NewMockImporter(ctrl)

	cfg := &config.Config{
		Tiktok:  config.Tiktok{AccessToken: "tok1", AppID: "app1", AppSecret: "s1"},
		Storage: config.Storage{S3Path: "s3://reports/exports"},
		TiktokImportSync: config.TiktokImportSync{
			CronSchedule: "0 3 * * *",
			LookbackDays: lookbackDays,
			Enabled:      true,
		},
	}

	service := NewTiktokImportSyncService(importer, cfg)
	service.now = func() time.Time { return time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC) }

	return service, importer
}

var syncRequest = importing.Request{
	AccessToken: "tok1",
	AppID:       "app1",
	Secret:      "s1",
	S3Path:      "s3://reports/exports",
}

func TestTiktokImportSyncService_lookbackWindow(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "Sete dias terminando ontem",
			days:     7,
			wantFrom: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Zero dias vira apenas ontem",
			days:     0,
			wantFrom: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestSyncService(t, tt.days)

			dates := service.lookbackWindow()

			assert.Equal(t, tt.wantFrom, dates.From)
			assert.Equal(t, tt.wantTo, dates.To)
		})
	}
}

func TestTiktokImportSyncService_runSyncAll(t *testing.T) {
	ctx := context.Background()
	service, importer := newTestSyncService(t, 7)
	dates := domain.DateRange{
		From: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}

	for _, kind := range domain.ResourceTypes {
		importer.EXPECT().
			ImportDetails(ctx, syncRequest, kind).
			Return(&domain.ImportResult{Paths: []string{"s3://reports/d.json"}, Ok: true}, nil)
	}
	importer.EXPECT().
		ImportInsights(ctx, syncRequest, domain.ResourceTypeCampaign, dates).
		Return(nil, domain.NewImporterError("ImportInsights", errors.New("rate limited")))
	importer.EXPECT().
		ImportInsights(ctx, syncRequest, domain.ResourceTypeAdGroup, dates).
		Return(&domain.ImportResult{Ok: true}, nil)
	importer.EXPECT().
		ImportInsights(ctx, syncRequest, domain.ResourceTypeAd, dates).
		Return(&domain.ImportResult{Ok: true}, nil)

	service.runSync(ctx, SyncScopeAll)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, []string{"rate limited"}, status["last_sync_errors"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestTiktokImportSyncService_runSyncDetailsOnly(t *testing.T) {
	ctx := context.Background()
	service, importer := newTestSyncService(t, 7)

	importer.EXPECT().ImportDetails(ctx, syncRequest, gomock.Any()).Return(&domain.ImportResult{Ok: true}, nil).Times(3)

	service.runSync(ctx, SyncScopeDetails)

	assert.Nil(t, service.GetStatus()["last_sync_errors"])
}

func TestTiktokImportSyncService_runSyncSkipsWhenRunning(t *testing.T) {
	service, _ := newTestSyncService(t, 7)
	service.syncRunning = true

	service.runSync(context.Background(), SyncScopeAll)

	assert.True(t, service.GetStatus()["sync_running"].(bool))
}

func TestTiktokImportSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Escopo inválido", func(t *testing.T) {
		service, _ := newTestSyncService(t, 7)

		err := service.TriggerManualSync(SyncScope("weekly"))

		assert.Error(t, err)
		assert.False(t, service.GetStatus()["sync_running"].(bool))
	})

	t.Run("Já em andamento", func(t *testing.T) {
		service, _ := newTestSyncService(t, 7)
		service.syncRunning = true

		err := service.TriggerManualSync(SyncScopeDetails)

		assert.ErrorIs(t, err, ErrSyncRunning)
	})

	t.Run("Executa em segundo plano", func(t *testing.T) {
		service, importer := newTestSyncService(t, 7)
		done := make(chan struct{}, 3)
		importer.EXPECT().
			ImportDetails(gomock.Any(), syncRequest, gomock.Any()).
			DoAndReturn(func(context.Context, importing.Request, domain.ResourceType) (*domain.ImportResult, error) {
				done <- struct{}{}
				return &domain.ImportResult{Ok: true}, nil
			}).
			Times(3)

		require.NoError(t, service.TriggerManualSync(SyncScopeDetails))

		for i := 0; i < 3; i++ {
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("importação manual não executou")
			}
		}

		assert.Eventually(t, func() bool {
			return !service.GetStatus()["sync_running"].(bool)
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestTiktokImportSyncService_StartDisabled(t *testing.T) {
	service, _ := newTestSyncService(t, 7)
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}
