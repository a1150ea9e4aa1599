package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-manager-api/internal/api/handler"
	"github.com/vfg2006/tiktok-manager-api/internal/api/handler/router"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/internal/scheduler"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/actions"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/adassets"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
	"github.com/vfg2006/tiktok-manager-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	importer importing.Importer,
	actionService actions.ActionService,
	assetsService adassets.AdAssetsService,
	authenticator authenticating.Authenticator,
	tiktokSyncService *scheduler.TiktokImportSyncService,
	runs repository.ImportRunRepository,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		TiktokImportSyncService: tiktokSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Imports(importer, config.Storage.S3Path)...),
		router.WithRoutes(handler.Actions(actionService)...),
		router.WithRoutes(handler.AdAssets(assetsService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithRoutes(handler.ImportRuns(runs)...),
	)

	for _, route := range rt.Routes() {
		logrus.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("api: rota registrada")
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
