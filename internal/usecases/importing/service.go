package importing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/storage/s3store"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Request identifica de onde vêm os dados (credencial e app) e para onde vão (S3).
type Request struct {
	AccessToken string
	AppID       string
	Secret      string
	S3Path      string
}

type Importer interface {
	GetAccountIDs(ctx context.Context, accessToken, appID, secret string) ([]string, error)

	ImportDetails(ctx context.Context, req Request, kind domain.ResourceType) (*domain.ImportResult, error)
	ImportCampaigns(ctx context.Context, req Request) (*domain.ImportResult, error)
	ImportAdGroups(ctx context.Context, req Request) (*domain.ImportResult, error)
	ImportAds(ctx context.Context, req Request) (*domain.ImportResult, error)

	ImportInsights(ctx context.Context, req Request, kind domain.ResourceType, dates domain.DateRange) (*domain.ImportResult, error)
	ImportCampaignInsights(ctx context.Context, req Request, dates domain.DateRange) (*domain.ImportResult, error)
	ImportAdGroupInsights(ctx context.Context, req Request, dates domain.DateRange) (*domain.ImportResult, error)
	ImportAdInsights(ctx context.Context, req Request, dates domain.DateRange) (*domain.ImportResult, error)
}

type Service struct {
	integrators tiktok.IntegratorFactory
	uploaders   s3store.UploaderFactory
	runs        repository.ImportRunRepository // opcional
	now         func() time.Time
}

// NewService monta o importador. runs pode ser nil quando o banco está desativado.
func NewService(
	integrators tiktok.IntegratorFactory,
	uploaders s3store.UploaderFactory,
	runs repository.ImportRunRepository,
) Importer {
	return &Service{
		integrators: integrators,
		uploaders:   uploaders,
		runs:        runs,
		now:         time.Now,
	}
}

func (s *Service) GetAccountIDs(ctx context.Context, accessToken, appID, secret string) ([]string, error) {
	ids, err := s.integrators(accessToken).GetAccountIDs(ctx, appID, secret)
	if err != nil {
		return nil, domain.NewImporterError("GetAccountIDs", err)
	}
	return ids, nil
}

func (s *Service) ImportCampaigns(ctx context.Context, req Request) (*domain.ImportResult, error) {
	return s.importDetails(ctx, "ImportCampaigns", req, domain.ResourceTypeCampaign)
}

func (s *Service) ImportAdGroups(ctx context.Context, req Request) (*domain.ImportResult, error) {
	return s.importDetails(ctx, "ImportAdGroups", req, domain.ResourceTypeAdGroup)
}

func (s *Service) ImportAds(ctx context.Context, req Request) (*domain.ImportResult, error) {
	return s.importDetails(ctx, "ImportAds", req, domain.ResourceTypeAd)
}

func (s *Service) ImportDetails(ctx context.Context, req Request, kind domain.ResourceType) (*domain.ImportResult, error) {
	return s.importDetails(ctx, "ImportDetails", req, kind)
}

func (s *Service) ImportCampaignInsights(ctx context.Context, req Request, dates domain.DateRange) (*domain.ImportResult, error) {
	return s.importInsights(ctx, "ImportCampaignInsights", req, domain.ResourceTypeCampaign, dates)
}

func (s *Service) ImportAdGroupInsights(ctx context.Context, req Request, dates domain.DateRange) (*domain.ImportResult, error) {
	return s.importInsights(ctx, "ImportAdGroupInsights", req, domain.ResourceTypeAdGroup, dates)
}

func (s *Service) ImportAdInsights(ctx context.Context, req Request, dates domain.DateRange) (*domain.ImportResult, error) {
	return s.importInsights(ctx, "ImportAdInsights", req, domain.ResourceTypeAd, dates)
}

func (s *Service) ImportInsights(ctx context.Context, req Request, kind domain.ResourceType, dates domain.DateRange) (*domain.ImportResult, error) {
	return s.importInsights(ctx, "ImportInsights", req, kind, dates)
}

func (s *Service) importDetails(ctx context.Context, op string, req Request, kind domain.ResourceType) (*domain.ImportResult, error) {
	if !kind.IsValid() {
		return nil, domain.NewImporterError(op, fmt.Errorf("unsupported resource type %q", kind))
	}

	uploader, err := s.uploaders(req.S3Path)
	if err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	integrator := s.integrators(req.AccessToken)
	advertiserIDs, err := s.advertiserIDs(ctx, op, integrator, req)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0)
	for _, advertiserID := range advertiserIDs {
		details, err := integrator.GetDetails(ctx, advertiserID, kind)
		if err != nil {
			return nil, domain.NewImporterError(op, err)
		}
		records = append(records, details...)
	}

	logrus.WithFields(logrus.Fields{
		"resource_type": kind,
		"records":       len(records),
	}).Info("importing: details fetched")

	createdAt := s.now().UTC()
	path, err := uploader.UploadResourceDetails(ctx, records, kind, createdAt)
	if err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	run := &domain.ImportRun{
		Kind:            domain.ImportKindDetails,
		ResourceType:    kind,
		AdvertiserCount: len(advertiserIDs),
		RecordCount:     len(records),
		Paths:           []string{path},
		CreatedAt:       createdAt,
	}
	if err := s.record(ctx, run); err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	return &domain.ImportResult{Paths: run.Paths, Ok: true}, nil
}

func (s *Service) importInsights(ctx context.Context, op string, req Request, kind domain.ResourceType, dates domain.DateRange) (*domain.ImportResult, error) {
	if !kind.IsValid() {
		return nil, domain.NewImporterError(op, fmt.Errorf("unsupported resource type %q", kind))
	}

	if dates.From.After(dates.To) {
		return nil, domain.NewImporterError(op, fmt.Errorf("date_from %s is after date_to %s",
			dates.From.Format(time.DateOnly), dates.To.Format(time.DateOnly)))
	}

	uploader, err := s.uploaders(req.S3Path)
	if err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	integrator := s.integrators(req.AccessToken)
	advertiserIDs, err := s.advertiserIDs(ctx, op, integrator, req)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0)
	for _, advertiserID := range advertiserIDs {
		insights, err := integrator.GetInsights(ctx, advertiserID, kind, dates.From, dates.To)
		if err != nil {
			return nil, domain.NewImporterError(op, err)
		}
		records = append(records, insights...)
	}

	logrus.WithFields(logrus.Fields{
		"resource_type": kind,
		"records":       len(records),
		"date_from":     dates.From.Format(time.DateOnly),
		"date_to":       dates.To.Format(time.DateOnly),
	}).Info("importing: insights fetched")

	createdAt := s.now().UTC()
	paths, err := uploader.UploadResourcePerformance(ctx, records, kind, createdAt)
	if err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	from, to := dates.From, dates.To
	run := &domain.ImportRun{
		Kind:            domain.ImportKindPerformance,
		ResourceType:    kind,
		AdvertiserCount: len(advertiserIDs),
		RecordCount:     len(records),
		Paths:           paths,
		DateFrom:        &from,
		DateTo:          &to,
		CreatedAt:       createdAt,
	}
	if err := s.record(ctx, run); err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	return &domain.ImportResult{Paths: paths, Ok: true}, nil
}

func (s *Service) advertiserIDs(ctx context.Context, op string, integrator tiktok.TiktokIntegrator, req Request) ([]string, error) {
	ids, err := integrator.GetAccountIDs(ctx, req.AppID, req.Secret)
	if err != nil {
		return nil, domain.NewImporterError(op, err)
	}

	logrus.WithField("advertisers", len(ids)).Info("importing: advertiser ids fetched")

	return ids, nil
}

func (s *Service) record(ctx context.Context, run *domain.ImportRun) error {
	if s.runs == nil {
		return nil
	}
	return s.runs.Save(ctx, run)
}
