package query

import "github.com/quelgo/quel/expr"

// resolve replays the accumulated from list, attaching each free ON
// predicate to its join node. A predicate attaches to the nearest preceding
// element that can take it, trying each join's right subtree first, then its
// own empty slot, then its left subtree, so the most recently added and most
// deeply nested join wins. A predicate with no home fails the compilation.
func (q *Query) resolve() ([]fromNode, error) {
	out := make([]fromNode, 0, len(q.froms))
	for _, n := range q.froms {
		on, ok := n.(*onNode)
		if !ok {
			// Work on a copy so the accumulated query can be rendered
			// more than once.
			out = append(out, cloneFrom(n))
			continue
		}
		attached := false
		for i := len(out) - 1; i >= 0; i-- {
			if attach(out[i], on.pred) {
				attached = true
				break
			}
		}
		if !attached {
			return nil, &UnmatchedOnError{pred: on.pred}
		}
	}
	return out, nil
}

func cloneFrom(n fromNode) fromNode {
	j, ok := n.(*joinNode)
	if !ok {
		return n
	}
	return &joinNode{
		left:  cloneFrom(j.left),
		right: cloneFrom(j.right),
		kind:  j.kind,
		on:    j.on,
	}
}

// attach tries to place pred somewhere in the subtree rooted at n. The
// search backtracks structurally through return values; nothing is mutated
// until a home is found. Cross joins take no predicate.
func attach(n fromNode, pred expr.Fragment) bool {
	j, ok := n.(*joinNode)
	if !ok {
		return false
	}
	if attach(j.right, pred) {
		return true
	}
	if j.on == nil && j.kind != CrossJoin {
		p := pred
		j.on = &p
		return true
	}
	return attach(j.left, pred)
}
