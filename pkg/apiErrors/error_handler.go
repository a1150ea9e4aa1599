package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrMissingAccessToken    = "AUTH_011" // Header Access-Token do TikTok ausente

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadNotValid     = "VAL_004" // Payload recusado antes de chamar o TikTok

	// Erros do TikTok (3000-3999)
	ErrProviderRequest  = "TIK_001" // TikTok recusou ou falhou a chamada
	ErrProviderResponse = "TIK_002" // Resposta do TikTok fora do formato esperado

	// Erros de armazenamento (4000-4999)
	ErrStoragePath   = "STO_001" // Caminho S3 inválido
	ErrStorageUpload = "STO_002" // Falha ao gravar no S3

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrSyncRunning    = "SRV_005" // Sincronização já em andamento
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrMissingAccessToken:    http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrPayloadNotValid:       http.StatusUnprocessableEntity,
	ErrProviderRequest:       http.StatusBadGateway,
	ErrProviderResponse:      http.StatusBadGateway,
	ErrStoragePath:           http.StatusBadRequest,
	ErrStorageUpload:         http.StatusBadGateway,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrSyncRunning:           http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status devolve o status HTTP do código, ou 500 para códigos desconhecidos
func Status(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteErrorWithStatus(w, Status(code), code, message, details)
}

// WriteErrorWithStatus escreve o erro com um status explícito, para casos em
// que o status não deriva do código (404 e 405 do router).
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}
