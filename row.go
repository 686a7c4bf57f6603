package turboquery

import (
	"database/sql"
	"fmt"
	"strings"
)

// MapFunc maps the current row to a value of type T.
type MapFunc[T any] func(r *Row) (T, error)

// Row is the result row handed to a MapFunc. It is only valid for the
// duration of the call.
type Row struct {
	rows    *sql.Rows
	columns []string
}

func newRow(rows *sql.Rows) (*Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	return &Row{rows: rows, columns: cols}, nil
}

// Scan copies the columns of the current row into dest, see sql.Rows.Scan.
func (r *Row) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

// Columns returns the column names of the result set.
func (r *Row) Columns() []string {
	return r.columns
}

// Ordinal returns the index of the named column. An exact match wins over a
// case-insensitive one.
func (r *Row) Ordinal(column string) (int, error) {
	for i, c := range r.columns {
		if c == column {
			return i, nil
		}
	}
	for i, c := range r.columns {
		if strings.EqualFold(c, column) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

// Value returns the named column of the current row converted to T,
// or the zero value of T when the column is NULL.
func Value[T any](r *Row, column string) (T, error) {
	var zero T
	i, err := r.Ordinal(column)
	if err != nil {
		return zero, err
	}
	return scanColumn[T](r.rows, len(r.columns), i)
}

// scanColumn scans column i of the current row into T, discarding the others.
func scanColumn[T any](rows *sql.Rows, n, i int) (T, error) {
	var v sql.Null[T]
	dest := make([]any, n)
	for j := range dest {
		if j == i {
			dest[j] = &v
			continue
		}
		dest[j] = new(any)
	}
	if err := rows.Scan(dest...); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return v.V, nil
}
