package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

// Cria a tabela de execuções de importação e, opcionalmente, lista as últimas.
func main() {
	list := flag.Uint64("list", 0, "quantidade de execuções recentes a listar após a migração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	runs := repository.NewImportRunRepository(conn)
	if err := runs.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}
	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída")

	if *list == 0 {
		return
	}

	recent, err := runs.ListRecent(ctx, *list)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao listar execuções")
	}

	for _, run := range recent {
		logrus.Info(utils.PrettyJson(run))
	}
}
