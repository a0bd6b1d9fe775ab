// Package query assembles relational queries from composable operations and
// compiles them to parameterized SQL.
package query

import (
	"github.com/quelgo/quel/expr"
	"github.com/quelgo/quel/schema"
)

// JoinKind selects the join keyword.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	CrossJoin
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
)

func (k JoinKind) keyword() string {
	switch k {
	case CrossJoin:
		return "CROSS JOIN"
	case LeftOuterJoin:
		return "LEFT OUTER JOIN"
	case RightOuterJoin:
		return "RIGHT OUTER JOIN"
	case FullOuterJoin:
		return "FULL OUTER JOIN"
	default:
		return "INNER JOIN"
	}
}

// fromNode is one element of the from-clause list: a base table, a join
// tree, or a free ON predicate awaiting resolution.
type fromNode interface {
	fromNode()
}

type tableNode struct {
	alias string
	meta  *schema.Meta
}

type joinNode struct {
	left  fromNode
	right fromNode
	kind  JoinKind
	on    *expr.Fragment
}

type onNode struct {
	pred expr.Fragment
}

func (*tableNode) fromNode() {}
func (*joinNode) fromNode()  {}
func (*onNode) fromNode()    {}

// Query accumulates the clauses of one statement. A Query is built, rendered
// once, and thrown away; concurrent compilations each get their own.
type Query struct {
	aliases *expr.AliasSet
	froms   []fromNode
	where   *expr.Fragment
	orderBy []expr.Ordering
}

func New() *Query {
	return &Query{aliases: expr.NewAliasSet()}
}

// From is a pre-join placeholder: an expression shape paired with the
// from-clause tree that produces it. It only leaves the builder through Use,
// which commits the tree and strips the handle.
type From[E any] struct {
	Expr E
	node fromNode
}

// Joined is the expression shape of a join: both sides, side by side.
type Joined[L, R any] struct {
	L L
	R R
}

// Table starts a from-clause on the given entity, allocating a fresh alias.
func Table(q *Query, m *schema.Meta) From[expr.Ref] {
	alias := q.aliases.Claim(m.Name)
	return From[expr.Ref]{
		Expr: expr.Ref{Alias: alias, Meta: m},
		node: &tableNode{alias: alias, meta: m},
	}
}

// TableMaybe starts a from-clause whose rows may be absent, the shape to
// use for the nullable side of an outer join.
func TableMaybe(q *Query, m *schema.Meta) From[expr.Maybe] {
	f := Table(q, m)
	return From[expr.Maybe]{Expr: expr.Maybe{Ref: f.Expr}, node: f.node}
}

// Join combines two placeholders into one join tree. The ON predicate is
// attached later, by the resolver, from the nearest following On call.
func Join[L, R any](kind JoinKind, l From[L], r From[R]) From[Joined[L, R]] {
	return From[Joined[L, R]]{
		Expr: Joined[L, R]{L: l.Expr, R: r.Expr},
		node: &joinNode{left: l.node, right: r.node, kind: kind},
	}
}

// Use commits the placeholder's from tree to the query and hands back the
// bare expression for further composition.
func Use[E any](q *Query, f From[E]) E {
	q.froms = append(q.froms, f.node)
	return f.Expr
}

// On declares a join predicate. It must follow the join it qualifies; the
// resolver attaches it to the correct join node.
func (q *Query) On(pred expr.Fragment) {
	q.froms = append(q.froms, &onNode{pred: pred})
}

// Where adds a filter; repeated calls are AND-ed in declaration order.
func (q *Query) Where(pred expr.Fragment) {
	if q.where == nil {
		q.where = &pred
		return
	}
	combined := expr.And(*q.where, pred)
	q.where = &combined
}

// OrderBy appends ordering terms; their order is preserved verbatim in the
// rendered clause.
func (q *Query) OrderBy(ords ...expr.Ordering) {
	q.orderBy = append(q.orderBy, ords...)
}

// SubSelect embeds q as a parenthesized sub-select fragment of an outer
// query, splicing its bound values at the point of embedding. Join
// resolution happens now, so a malformed inner query fails here rather than
// at the outer render.
func SubSelect(q *Query, cols Columns) (expr.Fragment, error) {
	resolved, err := q.resolve()
	if err != nil {
		return expr.Fragment{}, err
	}
	return expr.Fragment{Write: func(w *expr.Writer) {
		w.WriteByte('(')
		q.emit(w, Select, cols, resolved)
		w.WriteByte(')')
	}}, nil
}
