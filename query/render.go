package query

import (
	"github.com/quelgo/quel/dialect"
	"github.com/quelgo/quel/expr"
)

// Mode is the statement kind.
type Mode int

const (
	Select Mode = iota
	SelectDistinct
	Delete
)

// Columns supplies the select list. Projections satisfy it.
type Columns interface {
	WriteColumns(w *expr.Writer)
}

// Render compiles the query into SQL text plus its bound parameters. The
// parameter order always matches placeholder order in the text: both are
// produced by the same left-to-right pass over one Writer.
func (q *Query) Render(mode Mode, d dialect.Dialect, cols Columns) (string, []any, error) {
	resolved, err := q.resolve()
	if err != nil {
		return "", nil, err
	}
	w := expr.NewWriter(d)
	q.emit(w, mode, cols, resolved)
	return w.SQL(), w.Args(), nil
}

// Debug renders with parameters inlined as literals, for logs and tests.
// Never execute its output.
func (q *Query) Debug(mode Mode, d dialect.Dialect, cols Columns) (string, error) {
	resolved, err := q.resolve()
	if err != nil {
		return "", err
	}
	w := expr.NewDebugWriter(d)
	q.emit(w, mode, cols, resolved)
	return w.SQL(), nil
}

func (q *Query) emit(w *expr.Writer, mode Mode, cols Columns, froms []fromNode) {
	switch mode {
	case SelectDistinct:
		w.WriteString("SELECT DISTINCT ")
	case Delete:
		w.WriteString("DELETE")
	default:
		w.WriteString("SELECT ")
	}
	if mode != Delete && cols != nil {
		cols.WriteColumns(w)
	}

	if len(froms) > 0 {
		w.WriteString(" FROM ")
		for i, n := range froms {
			if i > 0 {
				w.WriteString(", ")
			}
			emitFrom(w, n)
		}
	}

	if q.where != nil {
		w.WriteString(" WHERE ")
		q.where.Operand(w)
	}

	if len(q.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		for i, ord := range q.orderBy {
			if i > 0 {
				w.WriteString(", ")
			}
			ord.Frag.Operand(w)
			if ord.Desc {
				w.WriteString(" DESC")
			} else {
				w.WriteString(" ASC")
			}
		}
	}
}

func emitFrom(w *expr.Writer, n fromNode) {
	switch node := n.(type) {
	case *tableNode:
		w.Ident(node.meta.Name)
		if node.alias != node.meta.Name {
			w.WriteString(" AS ")
			w.Ident(node.alias)
		}
	case *joinNode:
		// Parenthesize a nested left side to keep arbitrarily chained
		// joins left-associative.
		if _, isJoin := node.left.(*joinNode); isJoin {
			w.WriteByte('(')
			emitFrom(w, node.left)
			w.WriteByte(')')
		} else {
			emitFrom(w, node.left)
		}
		w.WriteByte(' ')
		w.WriteString(node.kind.keyword())
		w.WriteByte(' ')
		emitFrom(w, node.right)
		if node.on != nil {
			w.WriteString(" ON ")
			node.on.Operand(w)
		}
	}
}
