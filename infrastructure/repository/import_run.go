package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

//go:generate mockgen -source=import_run.go -destination=mocks/import_run.go -package=mocks

const (
	importRunsTable = "tiktok_import_runs"

	createImportRunsTable = `CREATE TABLE IF NOT EXISTS tiktok_import_runs (
	id               VARCHAR(32) PRIMARY KEY,
	kind             VARCHAR(32) NOT NULL,
	resource_type    VARCHAR(32) NOT NULL,
	advertiser_count INTEGER     NOT NULL DEFAULT 0,
	record_count     INTEGER     NOT NULL DEFAULT 0,
	paths            TEXT[]      NOT NULL DEFAULT '{}',
	date_from        DATE,
	date_to          DATE,
	created_at       TIMESTAMPTZ NOT NULL
)`
)

var importRunColumns = []string{
	"id",
	"kind",
	"resource_type",
	"advertiser_count",
	"record_count",
	"paths",
	"date_from",
	"date_to",
	"created_at",
}

type ImportRunRepository interface {
	Migrate(ctx context.Context) error
	Save(ctx context.Context, run *domain.ImportRun) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.ImportRun, error)
}

type importRunRepository struct {
	conn postgres.Queryer
}

func NewImportRunRepository(conn postgres.Queryer) ImportRunRepository {
	return &importRunRepository{
		conn: conn,
	}
}

func (r *importRunRepository) Migrate(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createImportRunsTable); err != nil {
		return errors.Wrap(err, "repository: create import runs table")
	}
	return nil
}

// Save grava a execução, gerando ID e data de criação quando ausentes.
func (r *importRunRepository) Save(ctx context.Context, run *domain.ImportRun) error {
	if run == nil {
		return errors.New("repository: import run is required")
	}

	if run.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "repository: generate import run id")
		}
		run.ID = id
	}

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query, args, err := insertImportRunQuery(run)
	if err != nil {
		return errors.Wrap(err, "repository: build import run insert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "repository: save import run %s", run.ID)
	}

	logrus.WithFields(logrus.Fields{
		"id":            run.ID,
		"kind":          run.Kind,
		"resource_type": run.ResourceType,
	}).Debug("repository: import run saved")

	return nil
}

func (r *importRunRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.ImportRun, error) {
	query, args, err := listRecentImportRunsQuery(limit)
	if err != nil {
		return nil, errors.Wrap(err, "repository: build import runs select")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "repository: list import runs")
	}
	defer rows.Close()

	runs := make([]*domain.ImportRun, 0)
	for rows.Next() {
		run, err := deserializeImportRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func insertImportRunQuery(run *domain.ImportRun) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert(importRunsTable).
		Columns(importRunColumns...).
		Values(
			run.ID,
			string(run.Kind),
			string(run.ResourceType),
			run.AdvertiserCount,
			run.RecordCount,
			pq.Array(run.Paths),
			nullDate(run.DateFrom),
			nullDate(run.DateTo),
			run.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listRecentImportRunsQuery(limit uint64) (string, []any, error) {
	if limit == 0 {
		limit = 50
	}

	return squirrel.
		Select(importRunColumns...).
		From(importRunsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deserializeImportRun(rows *sql.Rows) (*domain.ImportRun, error) {
	var (
		run          domain.ImportRun
		kind         string
		resourceType string
		paths        pq.StringArray
		dateFrom     sql.NullTime
		dateTo       sql.NullTime
	)

	if err := rows.Scan(
		&run.ID,
		&kind,
		&resourceType,
		&run.AdvertiserCount,
		&run.RecordCount,
		&paths,
		&dateFrom,
		&dateTo,
		&run.CreatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "repository: scan import run")
	}

	run.Kind = domain.ImportKind(kind)
	run.ResourceType = domain.ResourceType(resourceType)
	run.Paths = []string(paths)
	if dateFrom.Valid {
		run.DateFrom = &dateFrom.Time
	}
	if dateTo.Valid {
		run.DateTo = &dateTo.Time
	}

	return &run, nil
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
