package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// sqlStateUniqueViolation is the Postgres SQLSTATE for unique_violation.
const sqlStateUniqueViolation = "23505"

// sqlStateForeignKeyViolation is the Postgres SQLSTATE for foreign_key_violation.
const sqlStateForeignKeyViolation = "23503"

// TxRunner runs a function inside a single database transaction. The
// transaction handle is passed to fn and must be threaded through every
// repository call of the unit of work. *bun.DB satisfies it.
type TxRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

var _ TxRunner = (*bun.DB)(nil)

// Open connects to Postgres with the pgdriver connector and verifies the
// connection with a ping.
func Open(ctx context.Context, dsn string) (*bun.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres DSN is empty")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// IsUniqueViolation reports whether err carries a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, sqlStateUniqueViolation)
}

// IsForeignKeyViolation reports whether err carries a Postgres foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	return hasSQLState(err, sqlStateForeignKeyViolation)
}

// IsIntegrityViolation reports whether err is any class 23 constraint error.
func IsIntegrityViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.IntegrityViolation()
	}
	return false
}

func hasSQLState(err error, state string) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == state
	}
	return false
}
