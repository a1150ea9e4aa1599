package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/storage/s3store"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-manager-api/pkg/log"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

// AccessTokenHeader carrega a credencial do TikTok usada na requisição.
const AccessTokenHeader = "Access-Token"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := utils.JSON.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("handler: error writing response")
	}
}

// decodeBody lê o corpo JSON. Números chegam como json.Number e são
// convertidos depois pela validação dos descritores.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("request body is empty")
	}
	return utils.JSON.Unmarshal(body, dst)
}

func accessToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := r.Header.Get(AccessTokenHeader)
	if token == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingAccessToken, "Header Access-Token é obrigatório", nil)
		return "", false
	}
	return token, true
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// writeServiceError traduz os erros das camadas de serviço para o código da API.
// É aqui, e só aqui, que as falhas das requisições são registradas.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)

	fields := log.Fields{"error": err.Error(), "path": r.URL.Path}
	var clientErr *tiktok.ClientError
	if errors.As(err, &clientErr) {
		fields["advertiser_id"] = clientErr.AdvertiserID()
	}
	log.ForContext(r.Context()).WithFields(fields).Error("handler: request failed")

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func errorCode(err error) string {
	var clientErr *tiktok.ClientError

	switch {
	case errors.Is(err, tiktok.ErrMissingAccessToken):
		return apiErrors.ErrMissingAccessToken
	case errors.As(err, &clientErr):
		if clientErr.Kind == tiktok.ErrorKindProvider {
			return apiErrors.ErrProviderRequest
		}
		if clientErr.Stage == tiktok.StageRequest {
			return apiErrors.ErrPayloadNotValid
		}
		return apiErrors.ErrProviderResponse
	case errors.Is(err, s3store.ErrPathNotValid):
		return apiErrors.ErrStoragePath
	case errors.Is(err, s3store.ErrClient):
		return apiErrors.ErrStorageUpload
	}

	return apiErrors.ErrInternalServer
}
