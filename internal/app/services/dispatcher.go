package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/uniadmin/internal/db"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
)

// StatementKind is the execution branch chosen for a statement
type StatementKind string

const (
	// KindRead statements produce a row set
	KindRead StatementKind = "read"
	// KindWrite statements produce an affected-row count and are committed
	KindWrite StatementKind = "write"
)

const readKeyword = "SELECT"

// Classify picks the execution branch from the statement's first keyword.
//
// Only a leading SELECT takes the read path. A CTE (WITH ...) or a statement
// preceded by a comment therefore goes down the write path, and a
// data-modifying statement disguised behind SELECT goes down the read path.
func Classify(statement string) StatementKind {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(statement)), readKeyword) {
		return KindRead
	}
	return KindWrite
}

// Outcome is the report of one dispatched statement. Failures are reported
// here rather than returned as errors.
type Outcome struct {
	Statement    string        `json:"statement"`
	Kind         StatementKind `json:"kind"`
	Failed       bool          `json:"failed"`
	Message      string        `json:"message"`
	Error        string        `json:"error,omitempty"` // database error text, verbatim
	Result       *db.Table     `json:"result,omitempty"`
	RowCount     int           `json:"rowCount"`
	RowsAffected int64         `json:"rowsAffected"`
	Duration     time.Duration `json:"durationNs"`
}

// Acquirer hands out a dedicated connection per call
type Acquirer interface {
	Acquire(ctx context.Context) (*sql.Conn, error)
}

// Dispatcher executes free-form SQL on a connection of its own
type Dispatcher struct {
	connector Acquirer
	log       zerolog.Logger
}

// NewDispatcher creates a dispatcher drawing connections from connector
func NewDispatcher(connector Acquirer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		connector: connector,
		log:       log.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch classifies and executes statement exactly as given. The
// connection it acquires is closed before Dispatch returns.
func (d *Dispatcher) Dispatch(ctx context.Context, statement string) (outcome *Outcome) {
	start := time.Now()
	outcome = &Outcome{Statement: statement, Kind: Classify(statement)}

	defer func() {
		if r := recover(); r != nil {
			outcome.fail("An unexpected error occurred", fmt.Errorf("%v", r))
		}
		outcome.Duration = time.Since(start)
		d.logOutcome(outcome)
	}()

	if strings.TrimSpace(statement) == "" {
		outcome.fail("Database execution error", apperrors.ErrEmptyStatement)
		return outcome
	}

	conn, err := d.connector.Acquire(ctx)
	if err != nil {
		outcome.fail("Database Connection Error", unwrapCause(err))
		return outcome
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			d.log.Warn().Err(cerr).Msg("Failed to release dispatcher connection")
		}
	}()

	switch outcome.Kind {
	case KindRead:
		d.read(ctx, conn, outcome)
	default:
		d.write(ctx, conn, outcome)
	}
	return outcome
}

func (d *Dispatcher) read(ctx context.Context, conn *sql.Conn, outcome *Outcome) {
	table, err := db.QueryTable(ctx, conn, outcome.Statement)
	if err != nil {
		outcome.fail("Database execution error", err)
		return
	}

	outcome.Result = table
	outcome.RowCount = table.Len()
	outcome.Message = fmt.Sprintf("Execution Successful. Records found: %d", outcome.RowCount)
}

func (d *Dispatcher) write(ctx context.Context, conn *sql.Conn, outcome *Outcome) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		outcome.fail("Database execution error", err)
		return
	}

	// The transaction must end before the connection can be closed, even
	// when the driver panics. After Commit this is a no-op (sql.ErrTxDone).
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, outcome.Statement)
	if err == nil {
		outcome.RowsAffected, err = res.RowsAffected()
	}
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.Warn().Err(rbErr).Msg("Failed to rollback failed statement")
		}
		outcome.RowsAffected = 0
		outcome.fail("Database execution error", err)
		return
	}

	if err := tx.Commit(); err != nil {
		outcome.RowsAffected = 0
		outcome.fail("Database execution error", err)
		return
	}

	outcome.Message = fmt.Sprintf("Action executed successfully. Rows affected: %d", outcome.RowsAffected)
}

func (o *Outcome) fail(prefix string, err error) {
	o.Failed = true
	o.Error = err.Error()
	o.Message = prefix + ": " + o.Error
	o.Result = nil
	o.RowCount = 0
}

func (d *Dispatcher) logOutcome(o *Outcome) {
	if o.Failed {
		d.log.Warn().
			Str("kind", string(o.Kind)).
			Str("error", o.Error).
			Dur("duration", o.Duration).
			Msg("Statement failed")
		return
	}
	d.log.Info().
		Str("kind", string(o.Kind)).
		Int("rowCount", o.RowCount).
		Int64("rowsAffected", o.RowsAffected).
		Dur("duration", o.Duration).
		Msg("Statement executed")
}

// unwrapCause returns the driver error behind an acquisition failure
func unwrapCause(err error) error {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Cause != nil {
		return ce.Cause
	}
	return err
}
