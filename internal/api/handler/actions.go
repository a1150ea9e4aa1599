package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-manager-api/internal/usecases/actions"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
)

// details lê o token e o corpo livre que será validado pelos descritores do TikTok.
func details(w http.ResponseWriter, r *http.Request) (string, map[string]any, bool) {
	token, ok := accessToken(w, r)
	if !ok {
		return "", nil, false
	}

	body := map[string]any{}
	if err := decodeBody(r, &body); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
		return "", nil, false
	}

	return token, body, true
}

func CreateCampaign(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		campaignID, err := service.AddCampaign(r.Context(), token, param(r, "advertiserID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"campaign_id": campaignID, "ok": true})
	}
}

func UpdateCampaign(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		updated, err := service.UpdateCampaign(r.Context(), token, param(r, "advertiserID"), param(r, "campaignID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": updated})
	}
}

func CreateAdGroup(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		adgroupID, err := service.AddAdGroup(r.Context(), token, param(r, "advertiserID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"adgroup_id": adgroupID, "ok": true})
	}
}

func UpdateAdGroup(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		updated, err := service.UpdateAdGroup(r.Context(), token, param(r, "advertiserID"), param(r, "adgroupID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": updated})
	}
}

func CreateAds(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		adIDs, err := service.AddAds(r.Context(), token, param(r, "advertiserID"), param(r, "adgroupID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"ad_ids": adIDs, "ok": true})
	}
}

func UpdateAds(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		updated, err := service.UpdateAds(r.Context(), token, param(r, "advertiserID"), param(r, "adgroupID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": updated})
	}
}

func UpdateAdsStatus(service actions.ActionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, body, ok := details(w, r)
		if !ok {
			return
		}

		updated, err := service.UpdateAdsStatus(r.Context(), token, param(r, "advertiserID"), body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": updated})
	}
}
