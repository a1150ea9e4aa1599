package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
)

type execCall struct {
	query string
	args  []any
}

type fakeQueryer struct {
	execs []execCall
	err   error
}

type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

func (f *fakeQueryer) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return fakeResult{}, nil
}

func (f *fakeQueryer) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQueryer) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func TestImportRunRepository_Save(t *testing.T) {
	conn := &fakeQueryer{}
	repo := NewImportRunRepository(conn)

	from := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	run := &domain.ImportRun{
		Kind:            domain.ImportKindPerformance,
		ResourceType:    domain.ResourceTypeAd,
		AdvertiserCount: 2,
		RecordCount:     10,
		Paths:           []string{"s3://bucket/a.json"},
		DateFrom:        &from,
		DateTo:          &to,
	}

	err := repo.Save(context.Background(), run)

	require.NoError(t, err)
	assert.Len(t, run.ID, 12)
	assert.False(t, run.CreatedAt.IsZero())

	require.Len(t, conn.execs, 1)
	call := conn.execs[0]
	assert.Contains(t, call.query, "INSERT INTO tiktok_import_runs")
	assert.Contains(t, call.query, "$9")
	require.Len(t, call.args, 9)
	assert.Equal(t, run.ID, call.args[0])
	assert.Equal(t, "performance", call.args[1])
	assert.Equal(t, "ad", call.args[2])
	assert.Equal(t, pq.Array([]string{"s3://bucket/a.json"}), call.args[5])
	assert.Equal(t, sql.NullTime{Time: from, Valid: true}, call.args[6])
}

func TestImportRunRepository_SaveKeepsIDAndNullDates(t *testing.T) {
	conn := &fakeQueryer{}
	repo := NewImportRunRepository(conn)

	createdAt := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	run := &domain.ImportRun{
		ID:           "run1",
		Kind:         domain.ImportKindDetails,
		ResourceType: domain.ResourceTypeCampaign,
		CreatedAt:    createdAt,
	}

	require.NoError(t, repo.Save(context.Background(), run))

	assert.Equal(t, "run1", run.ID)
	assert.Equal(t, createdAt, run.CreatedAt)
	assert.Equal(t, sql.NullTime{}, conn.execs[0].args[6])
	assert.Equal(t, sql.NullTime{}, conn.execs[0].args[7])
}

func TestImportRunRepository_SaveError(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewImportRunRepository(&fakeQueryer{err: cause})

	err := repo.Save(context.Background(), &domain.ImportRun{ID: "run1"})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "run1")
}

func TestImportRunRepository_SaveNil(t *testing.T) {
	conn := &fakeQueryer{}

	err := NewImportRunRepository(conn).Save(context.Background(), nil)

	assert.Error(t, err)
	assert.Empty(t, conn.execs)
}

func TestImportRunRepository_Migrate(t *testing.T) {
	conn := &fakeQueryer{}

	require.NoError(t, NewImportRunRepository(conn).Migrate(context.Background()))

	require.Len(t, conn.execs, 1)
	assert.Contains(t, conn.execs[0].query, "CREATE TABLE IF NOT EXISTS tiktok_import_runs")
}

func TestListRecentImportRunsQuery(t *testing.T) {
	query, args, err := listRecentImportRunsQuery(0)

	require.NoError(t, err)
	assert.Contains(t, query, "FROM tiktok_import_runs")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Contains(t, query, "LIMIT 50")
	assert.Empty(t, args)
}
