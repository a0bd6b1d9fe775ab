// Package expr holds the expression model: raw SQL fragments, entity
// references, and ordering terms. Every shape carries its role as a distinct
// Go type, so a fragment cannot be used where an entity reference is
// expected and vice versa.
package expr

import "github.com/quelgo/quel/schema"

// Fragment is a raw piece of scalar SQL: a render function plus a flag
// saying whether the fragment must be parenthesized when used as an operand.
type Fragment struct {
	Grouped bool
	Write   func(w *Writer)
}

// Operand writes the fragment, parenthesized if it is itself compound.
func (f Fragment) Operand(w *Writer) {
	if f.Grouped {
		w.WriteByte('(')
		f.Write(w)
		w.WriteByte(')')
		return
	}
	f.Write(w)
}

// Ref denotes all columns of one table under one alias.
type Ref struct {
	Alias string
	Meta  *schema.Meta
}

// Col references a single column of this table as alias.column.
func (r Ref) Col(column string) Fragment {
	alias := r.Alias
	return Fragment{Write: func(w *Writer) {
		w.Ident(alias)
		w.WriteByte('.')
		w.Ident(column)
	}}
}

// Key references the table's primary-key column.
func (r Ref) Key() Fragment {
	return r.Col(r.Meta.Key)
}

// Maybe marks an entity reference as nullable, the shape the outer-joined
// side of a query has. Column access behaves exactly like Ref: outer joins
// surface NULL on their own, no extra SQL is needed.
type Maybe struct {
	Ref
}

// Ordering pairs a scalar fragment with a direction for ORDER BY.
type Ordering struct {
	Frag Fragment
	Desc bool
}

func Asc(f Fragment) Ordering {
	return Ordering{Frag: f}
}

func Desc(f Fragment) Ordering {
	return Ordering{Frag: f, Desc: true}
}
