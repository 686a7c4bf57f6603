package turboquery

import (
	"context"
	"database/sql"
)

// OrphanReader maps only the first row of a result set.
type OrphanReader[T any] struct {
	c *Client
}

// NewOrphanReader for a single row mapped to T
func NewOrphanReader[T any](c *Client) *OrphanReader[T] {
	return &OrphanReader[T]{c: c}
}

// First is FirstContext with a background context.
func (o *OrphanReader[T]) First(query string, bind BindFunc, mapFn MapFunc[T]) (T, error) {
	return o.FirstContext(context.Background(), query, bind, mapFn)
}

// FirstContext executes query and returns mapFn applied to the first row, or
// the zero value of T when there are no rows. Remaining rows are not read.
func (o *OrphanReader[T]) FirstContext(ctx context.Context, query string, bind BindFunc, mapFn MapFunc[T]) (T, error) {
	var result T
	if mapFn == nil {
		return result, ErrNilMapper
	}
	args := bindArgs(bind)
	err := o.c.run(ctx, command{op: OpOrphan, query: query, args: args}, func(ctx context.Context, conn *sql.Conn) (int64, error) {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		defer rows.Close()

		if !rows.Next() {
			return 0, rows.Err()
		}
		row, err := newRow(rows)
		if err != nil {
			return 0, err
		}
		rec, err := mapFn(row)
		if err != nil {
			return 0, err
		}
		result = rec
		return 1, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
