package tiktok

import (
	"context"

	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokschema"
)

func (s *TiktokService) CreateImage(ctx context.Context, advertiserID string, details map[string]any) (string, error) {
	data, err := s.execute(ctx, operation{
		name:     "create image",
		subject:  "image_details",
		params:   []Param{{"advertiser_id", advertiserID}},
		payload:  details,
		request:  tiktokschema.MustRequest(tiktokschema.ResourceImage, tiktokschema.OperationCreate),
		response: tiktokschema.MustResponse(tiktokschema.ResourceImage, tiktokschema.OperationCreate),
		call:     tiktokclient.Gateway.UploadImage,
	})
	if err != nil {
		return "", err
	}

	return data["image_id"].(string), nil
}

func (s *TiktokService) UpdateImageName(ctx context.Context, advertiserID, imageID, name string) (bool, error) {
	data, err := s.execute(ctx, operation{
		name:    "update image",
		subject: "image_details",
		params:  []Param{{"advertiser_id", advertiserID}, {"image_id", imageID}, {"file_name", name}},
		request: tiktokschema.MustRequest(tiktokschema.ResourceImage, tiktokschema.OperationUpdate),
		call:    tiktokclient.Gateway.UpdateImageName,
	})
	if err != nil {
		return false, err
	}

	return acknowledged(data), nil
}

func (s *TiktokService) GetImagesInfo(ctx context.Context, advertiserID string, imageIDs []string) ([]map[string]any, error) {
	data, err := s.execute(ctx, operation{
		name:     "get images info details",
		subject:  "image_params",
		params:   []Param{{"advertiser_id", advertiserID}, {"image_ids", imageIDs}},
		request:  tiktokschema.MustRequest(tiktokschema.ResourceImage, tiktokschema.OperationInfo),
		response: tiktokschema.MustResponse(tiktokschema.ResourceImage, tiktokschema.OperationInfo),
		call:     tiktokclient.Gateway.GetImagesInfo,
	})
	if err != nil {
		return nil, err
	}

	return listOf(data), nil
}

func (s *TiktokService) CreateVideo(ctx context.Context, advertiserID string, details map[string]any) (string, error) {
	op := operation{
		name:     "create video",
		subject:  "video_details",
		params:   []Param{{"advertiser_id", advertiserID}},
		payload:  details,
		request:  tiktokschema.MustRequest(tiktokschema.ResourceVideo, tiktokschema.OperationCreate),
		response: tiktokschema.MustResponse(tiktokschema.ResourceVideo, tiktokschema.OperationCreate),
		call:     tiktokclient.Gateway.UploadVideo,
	}

	data, err := s.execute(ctx, op)
	if err != nil {
		return "", err
	}

	videos := listOf(data)
	if len(videos) == 0 {
		return "", s.newError(op, ErrorKindResponseDataNotValid, StageResponse, data, "no video returned", nil)
	}

	return videos[0]["video_id"].(string), nil
}

func (s *TiktokService) UpdateVideoName(ctx context.Context, advertiserID, videoID, name string) (bool, error) {
	data, err := s.execute(ctx, operation{
		name:    "update video",
		subject: "video_details",
		params:  []Param{{"advertiser_id", advertiserID}, {"video_id", videoID}, {"file_name", name}},
		request: tiktokschema.MustRequest(tiktokschema.ResourceVideo, tiktokschema.OperationUpdate),
		call:    tiktokclient.Gateway.UpdateVideoName,
	})
	if err != nil {
		return false, err
	}

	return acknowledged(data), nil
}

func (s *TiktokService) GetVideosInfo(ctx context.Context, advertiserID string, videoIDs []string) ([]map[string]any, error) {
	data, err := s.execute(ctx, operation{
		name:     "get video details",
		subject:  "video_params",
		params:   []Param{{"advertiser_id", advertiserID}, {"video_ids", videoIDs}},
		request:  tiktokschema.MustRequest(tiktokschema.ResourceVideo, tiktokschema.OperationInfo),
		response: tiktokschema.MustResponse(tiktokschema.ResourceVideo, tiktokschema.OperationInfo),
		call:     tiktokclient.Gateway.GetVideosInfo,
	})
	if err != nil {
		return nil, err
	}

	return listOf(data), nil
}
