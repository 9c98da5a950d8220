package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/yigit/uniadmin/internal/config"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
	"github.com/yigit/uniadmin/internal/pkg/logger"
)

// Connector hands out one database connection per console action.
//
// Idle connections are disabled, so a connection returned by Acquire is
// physically closed as soon as it is released.
type Connector struct {
	db             *sql.DB
	driver         string
	connectTimeout time.Duration
	log            zerolog.Logger
}

// Open prepares a connector for the configured driver. It does not dial the
// database; the first Acquire does.
func Open(cfg *config.Config) (*Connector, error) {
	var driverName, dsn string
	driver := strings.ToLower(cfg.Database.Driver)

	switch driver {
	case config.DriverPostgres:
		driverName, dsn = "pgx", cfg.GetPostgresConnectionString()
	case config.DriverSQLite:
		driverName, dsn = "sqlite", cfg.GetSQLiteConnectionString()
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	sqlDB.SetMaxIdleConns(0)

	return &Connector{
		db:             sqlDB,
		driver:         driver,
		connectTimeout: cfg.ConnectTimeout(),
		log:            logger.Component("db"),
	}, nil
}

// Driver returns the configured driver name ("postgres" or "sqlite")
func (c *Connector) Driver() string {
	return c.driver
}

// Placeholder returns the bind variable style the driver expects
func (c *Connector) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// Stats exposes the pool counters; OpenConnections is 0 between actions.
func (c *Connector) Stats() sql.DBStats {
	return c.db.Stats()
}

// Acquire opens a dedicated connection and verifies it is alive. Failure is
// reported as ErrDatabaseUnavailable with the driver error attached.
func (c *Connector) Acquire(ctx context.Context) (*sql.Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	conn, err := c.db.Conn(dialCtx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to acquire database connection")
		return nil, apperrors.NewCustomError(apperrors.ErrDatabaseUnavailable, "Database Connection Error").WithCause(err)
	}

	if err := conn.PingContext(dialCtx); err != nil {
		_ = conn.Close()
		c.log.Error().Err(err).Msg("Database connection is not usable")
		return nil, apperrors.NewCustomError(apperrors.ErrDatabaseUnavailable, "Database Connection Error").WithCause(err)
	}

	return conn, nil
}

// Ping checks that the database is reachable without keeping a connection
func (c *Connector) Ping(ctx context.Context) error {
	return c.WithConn(ctx, func(context.Context, *sql.Conn) error { return nil })
}

// Close closes the underlying handle
func (c *Connector) Close() error {
	return c.db.Close()
}

// ConnFn is a function that runs on a dedicated connection
type ConnFn func(ctx context.Context, conn *sql.Conn) error

// WithConn acquires a connection, runs fn and releases the connection on
// every exit path, panics included.
func (c *Connector) WithConn(ctx context.Context, fn ConnFn) error {
	conn, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("Failed to release database connection")
		}
	}()

	return fn(ctx, conn)
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs fn inside a transaction on a dedicated connection.
// The transaction is committed only when fn succeeds.
func (c *Connector) WithTransaction(ctx context.Context, fn TransactionFn) error {
	return c.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r)
			}
		}()

		if err := fn(ctx, tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				c.log.Error().Err(rbErr).Msg("Failed to rollback transaction")
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	})
}
