package turboquery

import (
	"context"
	"database/sql"
)

// Reader maps every row of a result set to a T.
type Reader[T any] struct {
	c *Client
}

// NewReader for rows mapped to T
func NewReader[T any](c *Client) *Reader[T] {
	return &Reader[T]{c: c}
}

// Read is ReadContext with a background context.
func (r *Reader[T]) Read(query string, bind BindFunc, mapFn MapFunc[T]) ([]T, error) {
	return r.ReadContext(context.Background(), query, bind, mapFn)
}

// ReadContext executes query and returns mapFn applied to each row, in
// result-set order. The whole result set is held in memory.
func (r *Reader[T]) ReadContext(ctx context.Context, query string, bind BindFunc, mapFn MapFunc[T]) ([]T, error) {
	return r.read(ctx, OpRead, query, bindArgs(bind), mapFn)
}

func (r *Reader[T]) read(ctx context.Context, op Operation, query string, args []any, mapFn MapFunc[T]) ([]T, error) {
	if mapFn == nil {
		return nil, ErrNilMapper
	}
	results := []T{}
	err := r.c.run(ctx, command{op: op, query: query, args: args}, func(ctx context.Context, conn *sql.Conn) (int64, error) {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		defer rows.Close()

		row, err := newRow(rows)
		if err != nil {
			return 0, err
		}
		for rows.Next() {
			rec, err := mapFn(row)
			if err != nil {
				return int64(len(results)), err
			}
			results = append(results, rec)
		}
		return int64(len(results)), rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
