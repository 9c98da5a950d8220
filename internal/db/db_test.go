package db_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yigit/uniadmin/internal/config"
	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
	"github.com/yigit/uniadmin/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.Database.Driver = "oracle"

	_, err := db.Open(cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestConnector_Placeholder(t *testing.T) {
	cfg := testutil.Config(t)
	lite, err := db.Open(cfg)
	require.NoError(t, err)
	defer lite.Close()
	assert.Equal(t, squirrel.Question, lite.Placeholder())
	assert.Equal(t, config.DriverSQLite, lite.Driver())

	cfg.Database.Driver = config.DriverPostgres
	cfg.Database.Host = "localhost"
	pg, err := db.Open(cfg)
	require.NoError(t, err)
	defer pg.Close()
	assert.Equal(t, squirrel.Dollar, pg.Placeholder())
}

func TestWithConn_ReleasesConnection(t *testing.T) {
	c := testutil.NewConnector(t)

	err := c.WithConn(context.Background(), func(ctx context.Context, conn *sql.Conn) error {
		assert.Equal(t, 1, c.Stats().OpenConnections)
		return errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 0, c.Stats().OpenConnections)
	assert.Equal(t, 0, c.Stats().InUse)
}

func TestWithConn_ReleasesOnPanic(t *testing.T) {
	c := testutil.NewConnector(t)

	assert.Panics(t, func() {
		_ = c.WithConn(context.Background(), func(context.Context, *sql.Conn) error {
			panic("exploded")
		})
	})
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestWithTransaction_CommitAndRollback(t *testing.T) {
	c := testutil.NewConnector(t)
	ctx := context.Background()

	err := c.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM REGISTRATION WHERE RegistrationID = 2")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.Count(t, c, "REGISTRATION"))

	err = c.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM REGISTRATION"); err != nil {
			return err
		}
		return errors.New("abort")
	})
	assert.EqualError(t, err, "abort")
	assert.Equal(t, 1, testutil.Count(t, c, "REGISTRATION"))
	assert.Equal(t, 0, c.Stats().OpenConnections)
}

func TestAcquire_Unreachable(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "missing", "dir", "university.db")

	c, err := db.Open(cfg)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Acquire(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseUnavailable)
	assert.Contains(t, err.Error(), "Database Connection Error")

	assert.ErrorIs(t, c.Ping(context.Background()), apperrors.ErrDatabaseUnavailable)
}

func TestQueryTable(t *testing.T) {
	c := testutil.NewConnector(t)

	var table *db.Table
	err := c.WithConn(context.Background(), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		table, err = db.QueryTable(ctx, conn,
			"SELECT DeptID, DeptName FROM DEPARTMENT WHERE DeptID = ? ORDER BY DeptID", "01")
		return err
	})
	require.NoError(t, err)

	want := &db.Table{
		Columns: []string{"DeptID", "DeptName"},
		Rows:    [][]any{{"01", "Computer Science"}},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("QueryTable mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, table.Len())
}

func TestQueryTable_EmptyResultHasColumns(t *testing.T) {
	c := testutil.NewConnector(t)

	var table *db.Table
	err := c.WithConn(context.Background(), func(ctx context.Context, conn *sql.Conn) error {
		var err error
		table, err = db.QueryTable(ctx, conn, "SELECT StudentID FROM STUDENT WHERE StudentID < 0")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"StudentID"}, table.Columns)
	assert.NotNil(t, table.Rows)
	assert.Zero(t, table.Len())
}

func TestTable_StringRows(t *testing.T) {
	table := &db.Table{
		Columns: []string{"a", "b"},
		Rows:    [][]any{{int64(3), nil}, {"x", 1.5}},
	}

	assert.Equal(t, [][]string{{"3", "NULL"}, {"x", "1.5"}}, table.StringRows())
}
