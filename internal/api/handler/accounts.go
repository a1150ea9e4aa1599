package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
)

// GetAccountIDs lista os advertisers autorizados para o app.
func GetAccountIDs(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := accessToken(w, r)
		if !ok {
			return
		}

		var req domain.AccountIDsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		if req.AppID == "" || req.Secret == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "app_id e secret são obrigatórios", nil)
			return
		}

		ids, err := service.GetAccountIDs(r.Context(), token, req.AppID, req.Secret)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"advertiser_ids": ids})
	}
}
