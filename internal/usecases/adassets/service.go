package adassets

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type AdAssetsService interface {
	AddImage(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error)
	UpdateImageName(ctx context.Context, accessToken, advertiserID, imageID, name string) (bool, error)
	GetImagesInfo(ctx context.Context, accessToken, advertiserID string, imageIDs []string) ([]map[string]any, error)
	AddVideo(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error)
	UpdateVideoName(ctx context.Context, accessToken, advertiserID, videoID, name string) (bool, error)
	GetVideosInfo(ctx context.Context, accessToken, advertiserID string, videoIDs []string) ([]map[string]any, error)
}

type Service struct {
	integrators tiktok.IntegratorFactory
}

func NewService(integrators tiktok.IntegratorFactory) AdAssetsService {
	return &Service{
		integrators: integrators,
	}
}

func (s *Service) AddImage(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error) {
	imageID, err := s.integrators(accessToken).CreateImage(ctx, advertiserID, details)
	if err != nil {
		return "", domain.NewAdAssetsError("AddImage", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"image_id":      imageID,
	}).Info("adassets: image created")

	return imageID, nil
}

func (s *Service) UpdateImageName(ctx context.Context, accessToken, advertiserID, imageID, name string) (bool, error) {
	updated, err := s.integrators(accessToken).UpdateImageName(ctx, advertiserID, imageID, name)
	if err != nil {
		return false, domain.NewAdAssetsError("UpdateImageName", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"image_id":      imageID,
		"success":       updated,
	}).Info("adassets: image name updated")

	return updated, nil
}

func (s *Service) GetImagesInfo(ctx context.Context, accessToken, advertiserID string, imageIDs []string) ([]map[string]any, error) {
	info, err := s.integrators(accessToken).GetImagesInfo(ctx, advertiserID, imageIDs)
	if err != nil {
		return nil, domain.NewAdAssetsError("GetImagesInfo", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"image_ids":     imageIDs,
		"found":         len(info),
	}).Debug("adassets: images info fetched")

	return info, nil
}

func (s *Service) AddVideo(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error) {
	videoID, err := s.integrators(accessToken).CreateVideo(ctx, advertiserID, details)
	if err != nil {
		return "", domain.NewAdAssetsError("AddVideo", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"video_id":      videoID,
	}).Info("adassets: video created")

	return videoID, nil
}

func (s *Service) UpdateVideoName(ctx context.Context, accessToken, advertiserID, videoID, name string) (bool, error) {
	updated, err := s.integrators(accessToken).UpdateVideoName(ctx, advertiserID, videoID, name)
	if err != nil {
		return false, domain.NewAdAssetsError("UpdateVideoName", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"video_id":      videoID,
		"success":       updated,
	}).Info("adassets: video name updated")

	return updated, nil
}

func (s *Service) GetVideosInfo(ctx context.Context, accessToken, advertiserID string, videoIDs []string) ([]map[string]any, error) {
	info, err := s.integrators(accessToken).GetVideosInfo(ctx, advertiserID, videoIDs)
	if err != nil {
		return nil, domain.NewAdAssetsError("GetVideosInfo", err)
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"video_ids":     videoIDs,
		"found":         len(info),
	}).Debug("adassets: videos info fetched")

	return info, nil
}
