package turboquery

import (
	"context"
	"database/sql"
)

// Paging procedure parameter names.
const (
	ParamQuery      = "Query"
	ParamPageNumber = "PageNumber"
	ParamPageSize   = "PageSize"
)

// Pager reads one page of a query's results through the configured stored
// procedure. Offsets and ordering are computed by the procedure.
//
// The query text is handed to the procedure as @Query. The bundled
// SetupProcedure wraps it as a derived table, so it must be a complete
// SELECT without ORDER BY; pages are ordered by its first column.
type Pager[T any] struct {
	r *Reader[T]
}

// NewPager for rows mapped to T
func NewPager[T any](c *Client) *Pager[T] {
	return &Pager[T]{r: NewReader[T](c)}
}

// Page is PageContext with a background context.
func (p *Pager[T]) Page(query string, pageNumber, pageSize int, mapFn MapFunc[T]) ([]T, error) {
	return p.PageContext(context.Background(), query, pageNumber, pageSize, mapFn)
}

// PageContext calls the paging procedure with @Query, @PageNumber (1-based)
// and @PageSize, in that order, and maps the returned rows.
func (p *Pager[T]) PageContext(ctx context.Context, query string, pageNumber, pageSize int, mapFn MapFunc[T]) ([]T, error) {
	args := []any{
		sql.Named(ParamQuery, query),
		sql.Named(ParamPageNumber, pageNumber),
		sql.Named(ParamPageSize, pageSize),
	}
	return p.r.read(ctx, OpPage, p.r.c.opts.ProcedureName, args, mapFn)
}
