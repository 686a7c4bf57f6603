package turboquery

import (
	"context"
	"fmt"
	"strings"
)

// Routine is a stored procedure or function listed in information_schema.routines.
type Routine struct {
	Catalog string
	Schema  string
	Name    string
	Type    string
}

// RoutineFilter narrows Routines. Empty fields match everything; Schema and
// Name are LIKE patterns.
type RoutineFilter struct {
	Schema string
	Name   string
	Types  []string
}

// placeholder for the n-th positional argument, as go-mssqldb expects it
func placeholder(n int) string {
	return fmt.Sprintf("@p%d", n)
}

func routineConditions(f RoutineFilter) ([]string, []any) {
	conds := []string{}
	vals := []any{}
	n := 1
	if f.Schema != "" {
		vals = append(vals, f.Schema)
		conds = append(conds, "routine_schema LIKE "+placeholder(n))
		n++
	}
	if f.Name != "" {
		vals = append(vals, f.Name)
		conds = append(conds, "routine_name LIKE "+placeholder(n))
		n++
	}
	if len(f.Types) != 0 {
		pholders := []string{}
		for _, t := range f.Types {
			vals = append(vals, t)
			pholders = append(pholders, placeholder(n))
			n++
		}
		conds = append(conds, fmt.Sprintf("routine_type IN (%s)", strings.Join(pholders, ", ")))
	}
	return conds, vals
}

// Routines from the current database matching f, ordered by schema and name.
func (c *Client) Routines(ctx context.Context, f RoutineFilter) ([]Routine, error) {
	qstr := `SELECT
  routine_catalog,
  routine_schema,
  routine_name,
  COALESCE(routine_type, '')
FROM information_schema.routines`
	conds, vals := routineConditions(f)
	if len(conds) != 0 {
		qstr += "\nWHERE " + strings.Join(conds, " AND ")
	}
	qstr += "\nORDER BY routine_schema, routine_name"

	return NewReader[Routine](c).read(ctx, OpCatalog, qstr, vals, func(r *Row) (Routine, error) {
		rec := Routine{}
		err := r.Scan(&rec.Catalog, &rec.Schema, &rec.Name, &rec.Type)
		return rec, err
	})
}

// escapeLike quotes the LIKE wildcards in s so it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer("[", "[[]", "%", "[%]", "_", "[_]").Replace(s)
}

// splitProcedureName splits [db.][schema.]name, brackets removed. The
// database part is dropped since information_schema is per database.
func splitProcedureName(name string) (schema, proc string) {
	name = strings.NewReplacer("[", "", "]", "").Replace(name)
	parts := strings.Split(name, ".")
	proc = parts[len(parts)-1]
	if len(parts) > 1 {
		schema = parts[len(parts)-2]
	}
	return schema, proc
}

// ProcedureExists reports whether Options.ProcedureName is installed. A name
// without a schema matches the procedure in any schema.
func (c *Client) ProcedureExists(ctx context.Context) (bool, error) {
	schema, name := splitProcedureName(c.opts.ProcedureName)
	f := RoutineFilter{Name: escapeLike(name), Types: []string{"PROCEDURE"}}
	if schema != "" {
		f.Schema = escapeLike(schema)
	}
	routines, err := c.Routines(ctx, f)
	if err != nil {
		return false, err
	}
	return len(routines) != 0, nil
}
