package turboquery

import (
	"context"
	"database/sql"
)

// DB is the connection source used by every executor, compatible with
// database/sql.DB. Each call takes a dedicated connection from it.
type DB interface {
	Conn(context.Context) (*sql.Conn, error)
	PingContext(context.Context) error
	Close() error
}

var _ DB = (*sql.DB)(nil)

// conn is the subset of *sql.Conn and *sql.Tx a single command needs.
type conn interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}

var (
	_ conn = (*sql.Conn)(nil)
	_ conn = (*sql.Tx)(nil)
)
