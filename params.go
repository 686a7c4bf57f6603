package turboquery

import (
	"database/sql"
	"strings"
)

// Params collects the arguments bound to one command, in binding order.
type Params struct {
	args []any
}

// BindFunc binds the parameters of a command. A nil BindFunc binds nothing.
type BindFunc func(p *Params)

// Add binds a named parameter. A leading '@' is accepted and stripped, so
// "@Id" and "Id" both bind @Id.
func (p *Params) Add(name string, value any) *Params {
	p.args = append(p.args, sql.Named(strings.TrimPrefix(name, "@"), value))
	return p
}

// AddPositional binds the next ordinal parameter (@p1, @p2, ...).
func (p *Params) AddPositional(value any) *Params {
	p.args = append(p.args, value)
	return p
}

// Args returns the bound arguments in database/sql form.
func (p *Params) Args() []any {
	return p.args
}

// Len is the number of bound arguments.
func (p *Params) Len() int {
	return len(p.args)
}

func bindArgs(bind BindFunc) []any {
	if bind == nil {
		return nil
	}
	p := &Params{}
	bind(p)
	return p.args
}
