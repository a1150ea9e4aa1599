package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
)

// SyncScope define o que uma execução importa.
type SyncScope string

const (
	SyncScopeDetails  SyncScope = "details"
	SyncScopeInsights SyncScope = "insights"
	SyncScopeAll      SyncScope = "all"
)

func (s SyncScope) IsValid() bool {
	switch s {
	case SyncScopeDetails, SyncScopeInsights, SyncScopeAll:
		return true
	}
	return false
}

var ErrSyncRunning = errors.New("tiktok import sync already running")

// TiktokImportSyncConfig representa a configuração do agendador de importação do TikTok
type TiktokImportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
	Request      importing.Request
}

// TiktokImportSyncService agenda a exportação diária de detalhes e insights do TikTok para o S3
type TiktokImportSyncService struct {
	scheduler *gocron.Scheduler
	config    TiktokImportSyncConfig
	importer  importing.Importer
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncErrors      []string
}

func NewTiktokImportSyncService(importer importing.Importer, appConfig *config.Config) *TiktokImportSyncService {
	syncConfig := TiktokImportSyncConfig{
		CronSchedule: appConfig.TiktokImportSync.CronSchedule,
		LookbackDays: appConfig.TiktokImportSync.LookbackDays,
		SyncEnabled:  appConfig.TiktokImportSync.Enabled,
		Request: importing.Request{
			AccessToken: appConfig.Tiktok.AccessToken,
			AppID:       appConfig.Tiktok.AppID,
			Secret:      appConfig.Tiktok.AppSecret,
			S3Path:      appConfig.Storage.S3Path,
		},
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
		"s3_path":       syncConfig.Request.S3Path,
	}).Info("scheduler: configuração da importação do TikTok carregada")

	return &TiktokImportSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		importer:  importer,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *TiktokImportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: importação do TikTok desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando agendador da importação do TikTok")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx, SyncScopeAll)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação do TikTok: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando agendador da importação do TikTok")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução em segundo plano.
func (s *TiktokImportSyncService) TriggerManualSync(scope SyncScope) error {
	if !scope.IsValid() {
		return fmt.Errorf("invalid sync scope %q", scope)
	}

	if !s.begin() {
		return ErrSyncRunning
	}

	logrus.WithField("scope", scope).Info("scheduler: importação manual do TikTok iniciada")

	go s.sync(context.Background(), scope)

	return nil
}

func (s *TiktokImportSyncService) runSync(ctx context.Context, scope SyncScope) {
	if !s.begin() {
		logrus.Info("scheduler: importação do TikTok já em andamento, ignorando")
		return
	}
	s.sync(ctx, scope)
}

func (s *TiktokImportSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// sync roda as importações; cada lote é independente e uma falha não impede os demais.
func (s *TiktokImportSyncService) sync(ctx context.Context, scope SyncScope) {
	var failures []string

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncErrors = failures
		s.syncMutex.Unlock()
	}()

	startTime := s.now()

	if scope == SyncScopeDetails || scope == SyncScopeAll {
		for _, kind := range domain.ResourceTypes {
			result, err := s.importer.ImportDetails(ctx, s.config.Request, kind)
			if err != nil {
				failures = append(failures, err.Error())
				logrus.WithFields(logrus.Fields{
					"resource_type": kind,
					"error":         err.Error(),
				}).Error("scheduler: erro ao importar detalhes do TikTok")
				continue
			}
			logrus.WithFields(logrus.Fields{
				"resource_type": kind,
				"paths":         result.Paths,
			}).Info("scheduler: detalhes do TikTok exportados")
		}
	}

	if scope == SyncScopeInsights || scope == SyncScopeAll {
		dates := s.lookbackWindow()
		for _, kind := range domain.ResourceTypes {
			result, err := s.importer.ImportInsights(ctx, s.config.Request, kind, dates)
			if err != nil {
				failures = append(failures, err.Error())
				logrus.WithFields(logrus.Fields{
					"resource_type": kind,
					"start_date":    dates.From.Format(time.DateOnly),
					"end_date":      dates.To.Format(time.DateOnly),
					"error":         err.Error(),
				}).Error("scheduler: erro ao importar insights do TikTok")
				continue
			}
			logrus.WithFields(logrus.Fields{
				"resource_type": kind,
				"paths":         result.Paths,
			}).Info("scheduler: insights do TikTok exportados")
		}
	}

	logrus.WithFields(logrus.Fields{
		"scope":    scope,
		"duration": s.now().Sub(startTime).String(),
		"failures": len(failures),
	}).Info("scheduler: importação do TikTok concluída")
}

// lookbackWindow vai de hoje-N até ontem, em datas UTC.
func (s *TiktokImportSyncService) lookbackWindow() domain.DateRange {
	days := s.config.LookbackDays
	if days < 1 {
		days = 1
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return domain.DateRange{
		From: today.AddDate(0, 0, -days),
		To:   today.AddDate(0, 0, -1),
	}
}

// GetStatus retorna o status atual do agendador
func (s *TiktokImportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_errors":       s.lastSyncErrors,
	}
}
