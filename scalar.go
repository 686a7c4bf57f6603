package turboquery

import (
	"context"
	"database/sql"
)

// Scalar reads the first column of the first row as a T.
type Scalar[T any] struct {
	c *Client
}

// NewScalar executor for values of type T
func NewScalar[T any](c *Client) *Scalar[T] {
	return &Scalar[T]{c: c}
}

// Get is GetContext with a background context.
func (s *Scalar[T]) Get(query string, bind BindFunc) (T, error) {
	return s.GetContext(context.Background(), query, bind)
}

// GetContext executes query and converts the first column of the first row
// to T. It returns the zero value of T when there is no row or the value is
// NULL, and an error wrapping ErrConversion when the value does not convert.
func (s *Scalar[T]) GetContext(ctx context.Context, query string, bind BindFunc) (T, error) {
	var result T
	args := bindArgs(bind)
	err := s.c.run(ctx, command{op: OpScalar, query: query, args: args}, func(ctx context.Context, conn *sql.Conn) (int64, error) {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		defer rows.Close()

		if !rows.Next() {
			return 0, rows.Err()
		}
		cols, err := rows.Columns()
		if err != nil {
			return 0, err
		}
		v, err := scanColumn[T](rows, len(cols), 0)
		if err != nil {
			return 0, err
		}
		result = v
		return 1, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
