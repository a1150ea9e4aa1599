package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/internal/scheduler"
	"github.com/vfg2006/tiktok-manager-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron que podem ser disparados manualmente
type CronJobServices struct {
	TiktokImportSyncService *scheduler.TiktokImportSyncService
}

// RunCronJob dispara manualmente a importação: details, insights ou all.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.TiktokImportSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de importação do TikTok não disponível", nil)
			return
		}

		scope := scheduler.SyncScope(param(r, "type"))
		if !scope.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: details, insights, all", nil)
			return
		}

		if err := services.TiktokImportSyncService.TriggerManualSync(scope); err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Importação do TikTok já em andamento", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logrus.WithField("type", scope).Info("handler: cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    scope,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.TiktokImportSyncService != nil {
			status["tiktok_import"] = services.TiktokImportSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
