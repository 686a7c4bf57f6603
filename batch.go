package turboquery

import (
	"context"
	"database/sql"
	"errors"
)

// BatchWriter executes one statement per input element over a single connection.
type BatchWriter[E any] struct {
	c *Client
}

// NewBatchWriter for elements of type E
func NewBatchWriter[E any](c *Client) *BatchWriter[E] {
	return &BatchWriter[E]{c: c}
}

// Write is WriteContext with a background context.
func (w *BatchWriter[E]) Write(query string, items []E, bind func(E, *Params)) (int64, error) {
	return w.WriteContext(context.Background(), query, items, bind)
}

// WriteContext executes query once per element of items, in order, binding
// each element's parameters with bind, and returns the total affected rows.
//
// The first failing element aborts the batch with a *BatchError. Unless the
// client was created WithAtomicBatches, elements executed before the failure
// stay committed and their count is returned along with the error.
func (w *BatchWriter[E]) WriteContext(ctx context.Context, query string, items []E, bind func(E, *Params)) (int64, error) {
	var total int64
	cmd := command{op: OpBatch, query: query}
	err := w.c.run(ctx, cmd, func(ctx context.Context, conn *sql.Conn) (int64, error) {
		if !w.c.atomicBatch {
			n, err := writeAll(ctx, conn, query, items, bind)
			total = n
			return n, err
		}

		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return 0, err
		}
		n, err := writeAll(ctx, tx, query, items, bind)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
			return 0, err
		}
		if err := tx.Commit(); err != nil {
			return 0, err
		}
		total = n
		return n, nil
	})
	return total, err
}

func writeAll[E any](ctx context.Context, db conn, query string, items []E, bind func(E, *Params)) (int64, error) {
	var total int64
	for i, item := range items {
		p := &Params{}
		if bind != nil {
			bind(item, p)
		}
		n, err := execAffected(ctx, db, query, p.args)
		if err != nil {
			return total, &BatchError{Index: i, Err: err}
		}
		total += n
	}
	return total, nil
}
