package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates predicates as an ordered list and renders them
// into a parameterized WHERE clause. User input is always positionally
// bound, never interpolated into the statement text.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add appends "column op $n" with one bound value.
func (b *whereBuilder) add(column, op string, value interface{}) {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s %s $%d", column, op, len(b.args)))
}

// addRaw appends an expression whose placeholders were produced by bind.
func (b *whereBuilder) addRaw(expr string) {
	b.conds = append(b.conds, expr)
}

// bind registers a value and returns its placeholder for use inside a raw
// expression (OR groups, BETWEEN pairs).
func (b *whereBuilder) bind(value interface{}) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// clause renders the accumulated predicates. With no predicates it renders
// empty, so an unfiltered query stays valid.
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// arguments returns the bind values in placeholder order.
func (b *whereBuilder) arguments() []interface{} {
	return b.args
}
