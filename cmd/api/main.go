package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/storage/s3store"
	"github.com/vfg2006/tiktok-manager-api/internal/api"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/internal/scheduler"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/actions"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/adassets"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s3Client, err := s3store.NewS3Client(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente S3")
	}
	uploaders := s3store.NewUploaderFactory(s3Client)

	integrators := tiktok.NewIntegratorFactory(tiktok.NewGatewayFactory(cfg.Tiktok))

	var runs repository.ImportRunRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		importRunRepo := repository.NewImportRunRepository(pgConn)
		if err := importRunRepo.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar tabela de execuções de importação")
		}
		runs = importRunRepo
	} else {
		logrus.Info("Banco de dados desativado: execuções de importação não serão registradas")
	}

	authenticator := authenticating.NewService(cfg.Auth)
	importer := importing.NewService(integrators, uploaders, runs)
	actionService := actions.NewService(integrators)
	assetsService := adassets.NewService(integrators)

	tiktokSyncService := scheduler.NewTiktokImportSyncService(importer, cfg)
	if err := tiktokSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação do TikTok")
	}

	server, err := api.New(
		cfg,
		importer,
		actionService,
		assetsService,
		authenticator,
		tiktokSyncService,
		runs,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
