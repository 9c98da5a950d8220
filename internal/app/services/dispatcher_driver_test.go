package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// explodingDriver opens connections whose statements panic inside the driver.
type explodingDriver struct{}

func (explodingDriver) Open(string) (driver.Conn, error) { return explodingConn{}, nil }

type explodingConn struct{}

func (explodingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (explodingConn) Close() error              { return nil }
func (explodingConn) Begin() (driver.Tx, error) { return explodingTx{}, nil }

func (explodingConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	panic("driver exploded during exec")
}

type explodingTx struct{}

func (explodingTx) Commit() error   { return nil }
func (explodingTx) Rollback() error { return nil }

func init() {
	sql.Register("uniadmin-exploding", explodingDriver{})
}

type poolAcquirer struct {
	db *sql.DB
}

func (a poolAcquirer) Acquire(ctx context.Context) (*sql.Conn, error) {
	return a.db.Conn(ctx)
}

func TestDispatch_RecoversPanicInsideWrite(t *testing.T) {
	sqlDB, err := sql.Open("uniadmin-exploding", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	d := NewDispatcher(poolAcquirer{db: sqlDB}, zerolog.Nop())

	done := make(chan *Outcome, 1)
	go func() {
		done <- d.Dispatch(context.Background(), "UPDATE STUDENT SET Phone = NULL")
	}()

	select {
	case out := <-done:
		assert.True(t, out.Failed)
		assert.Equal(t, KindWrite, out.Kind)
		assert.Equal(t, "An unexpected error occurred: driver exploded during exec", out.Message)
	case <-time.After(3 * time.Second):
		t.Fatal("Dispatch did not return after a panic inside the write transaction")
	}

	assert.Equal(t, 0, sqlDB.Stats().InUse)
}
