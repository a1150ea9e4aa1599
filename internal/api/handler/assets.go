package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/adassets"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
)

type (
	createAsset func(ctx context.Context, accessToken, advertiserID string, details map[string]any) (string, error)
	renameAsset func(ctx context.Context, accessToken, advertiserID, assetID, name string) (bool, error)
	assetsInfo  func(ctx context.Context, accessToken, advertiserID string, ids []string) ([]map[string]any, error)
)

func CreateImage(service adassets.AdAssetsService) http.HandlerFunc {
	return createAssetHandler("image_id", service.AddImage)
}

func UpdateImageName(service adassets.AdAssetsService) http.HandlerFunc {
	return renameAssetHandler("imageID", service.UpdateImageName)
}

func GetImagesInfo(service adassets.AdAssetsService) http.HandlerFunc {
	return assetsInfoHandler("images", service.GetImagesInfo)
}

func CreateVideo(service adassets.AdAssetsService) http.HandlerFunc {
	return createAssetHandler("video_id", service.AddVideo)
}

func UpdateVideoName(service adassets.AdAssetsService) http.HandlerFunc {
	return renameAssetHandler("videoID", service.UpdateVideoName)
}

func GetVideosInfo(service adassets.AdAssetsService) http.HandlerFunc {
	return assetsInfoHandler("videos", service.GetVideosInfo)
}

func createAssetHandler(idField string, create createAsset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		id, err := create(r.Context(), token, param(r, "advertiserID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{idField: id, "ok": true})
	}
}

func renameAssetHandler(idParam string, rename renameAsset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var req domain.RenameRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name é obrigatório", nil)
			return
		}

		updated, err := rename(r.Context(), token, param(r, "advertiserID"), param(r, idParam), req.Name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": updated})
	}
}

// assetsInfoHandler lê os ids de ?ids=a,b ou ?ids=a&ids=b.
func assetsInfoHandler(listField string, info assetsInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var ids []string
		for _, value := range r.URL.Query()["ids"] {
			for _, id := range strings.Split(value, ",") {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}
		}

		if len(ids) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos um id em ?ids=", nil)
			return
		}

		assets, err := info(r.Context(), token, param(r, "advertiserID"), ids)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{listField: assets})
	}
}
