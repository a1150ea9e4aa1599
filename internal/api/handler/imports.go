package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

// ImportDetails exporta os detalhes de um tipo de recurso para o S3.
func ImportDetails(service importing.Importer, defaultS3Path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, kind, _, ok := importRequest(w, r, defaultS3Path)
		if !ok {
			return
		}

		result, err := service.ImportDetails(r.Context(), req, kind)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ImportInsights exporta os insights diários de um tipo de recurso para o S3.
func ImportInsights(service importing.Importer, defaultS3Path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, kind, body, ok := importRequest(w, r, defaultS3Path)
		if !ok {
			return
		}

		dates, err := parseDateRange(body.DateFrom, body.DateTo)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.ImportInsights(r.Context(), req, kind, dates)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func importRequest(w http.ResponseWriter, r *http.Request, defaultS3Path string) (importing.Request, domain.ResourceType, domain.ImportRequest, bool) {
	var body domain.ImportRequest

	token, ok := accessToken(w, r)
	if !ok {
		return importing.Request{}, "", body, false
	}

	kind, err := domain.ParseResourceType(param(r, "resource"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return importing.Request{}, "", body, false
	}

	if err := decodeBody(r, &body); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
		return importing.Request{}, "", body, false
	}

	if body.AppID == "" || body.Secret == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "app_id e secret são obrigatórios", nil)
		return importing.Request{}, "", body, false
	}

	s3Path := body.S3Path
	if s3Path == "" {
		s3Path = defaultS3Path
	}

	return importing.Request{
		AccessToken: token,
		AppID:       body.AppID,
		Secret:      body.Secret,
		S3Path:      s3Path,
	}, kind, body, true
}

func parseDateRange(from, to string) (domain.DateRange, error) {
	if from == "" || to == "" {
		return domain.DateRange{}, errors.New("date_from e date_to são obrigatórios (YYYY-MM-DD)")
	}

	start, err := utils.ParseDate(from)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("date_from inválida: %w", err)
	}

	end, err := utils.ParseDate(to)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("date_to inválida: %w", err)
	}

	return domain.DateRange{From: *start, To: *end}, nil
}
