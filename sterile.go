package turboquery

import (
	"context"
	"database/sql"
)

// Sterile executes statements that return no rows.
type Sterile struct {
	c *Client
}

// NewSterile non-query executor
func NewSterile(c *Client) *Sterile {
	return &Sterile{c: c}
}

// Exec is ExecContext with a background context.
func (s *Sterile) Exec(query string, bind BindFunc) (int64, error) {
	return s.ExecContext(context.Background(), query, bind)
}

// ExecContext executes query with the parameters bound by bind and returns
// the number of affected rows.
func (s *Sterile) ExecContext(ctx context.Context, query string, bind BindFunc) (int64, error) {
	return s.exec(ctx, OpExec, query, bindArgs(bind))
}

func (s *Sterile) exec(ctx context.Context, op Operation, query string, args []any) (int64, error) {
	var affected int64
	err := s.c.run(ctx, command{op: op, query: query, args: args}, func(ctx context.Context, conn *sql.Conn) (int64, error) {
		n, err := execAffected(ctx, conn, query, args)
		affected = n
		return n, err
	})
	return affected, err
}

func execAffected(ctx context.Context, db conn, query string, args []any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
