package handler

import (
	"net/http"

	"github.com/spf13/cast"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-manager-api/pkg/log"
)

const maxImportRunsLimit = 500

// ListImportRuns devolve as últimas exportações registradas. ?limit=N, padrão 50.
func ListImportRuns(runs repository.ImportRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := cast.ToUint64E(raw)
			if err != nil || parsed == 0 || parsed > maxImportRunsLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro entre 1 e 500", nil)
				return
			}
			limit = parsed
		}

		list, err := runs.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao listar execuções de importação")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar execuções de importação", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"runs": list})
	}
}
