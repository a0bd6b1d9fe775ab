package project

import "github.com/quelgo/quel/expr"

// Map derives a projection by converting another projection's decoded value.
// Columns and width pass through unchanged.
func Map[S, T any](p Projection[S], f func(S) T) Projection[T] {
	return mapped[S, T]{inner: p, f: f}
}

type mapped[S, T any] struct {
	inner Projection[S]
	f     func(S) T
}

func (m mapped[S, T]) WriteColumns(w *expr.Writer) {
	m.inner.WriteColumns(w)
}

func (m mapped[S, T]) Width() int {
	return m.inner.Width()
}

func (m mapped[S, T]) Decode(row []any) (T, error) {
	var zero T
	v, err := m.inner.Decode(row)
	if err != nil {
		return zero, err
	}
	return m.f(v), nil
}

// Pair2 through Pair8 hold the decoded parts of a tuple projection.
type Pair2[A, B any] struct {
	A A
	B B
}

type Pair3[A, B, C any] struct {
	A A
	B B
	C C
}

type Pair4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Pair5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Pair6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type Pair7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

type Pair8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// Tuple2 concatenates two projections; width is the sum of the parts and
// decoding splits the row slice at the first part's width. Wider shapes
// nest Tuple2 internally, so the split rule holds at every level.
func Tuple2[A, B any](a Projection[A], b Projection[B]) Projection[Pair2[A, B]] {
	return tuple2[A, B]{a: a, b: b}
}

type tuple2[A, B any] struct {
	a Projection[A]
	b Projection[B]
}

func (t tuple2[A, B]) WriteColumns(w *expr.Writer) {
	t.a.WriteColumns(w)
	w.WriteString(", ")
	t.b.WriteColumns(w)
}

func (t tuple2[A, B]) Width() int {
	return t.a.Width() + t.b.Width()
}

func (t tuple2[A, B]) Decode(row []any) (Pair2[A, B], error) {
	var zero Pair2[A, B]
	split := t.a.Width()
	if len(row) != split+t.b.Width() {
		return zero, widthErr("tuple", split+t.b.Width(), len(row))
	}
	av, err := t.a.Decode(row[:split])
	if err != nil {
		return zero, err
	}
	bv, err := t.b.Decode(row[split:])
	if err != nil {
		return zero, err
	}
	return Pair2[A, B]{A: av, B: bv}, nil
}

func Tuple3[A, B, C any](a Projection[A], b Projection[B], c Projection[C]) Projection[Pair3[A, B, C]] {
	return Map(Tuple2(a, Tuple2(b, c)), func(p Pair2[A, Pair2[B, C]]) Pair3[A, B, C] {
		return Pair3[A, B, C]{A: p.A, B: p.B.A, C: p.B.B}
	})
}

func Tuple4[A, B, C, D any](a Projection[A], b Projection[B], c Projection[C], d Projection[D]) Projection[Pair4[A, B, C, D]] {
	return Map(Tuple2(Tuple2(a, b), Tuple2(c, d)), func(p Pair2[Pair2[A, B], Pair2[C, D]]) Pair4[A, B, C, D] {
		return Pair4[A, B, C, D]{A: p.A.A, B: p.A.B, C: p.B.A, D: p.B.B}
	})
}

func Tuple5[A, B, C, D, E any](a Projection[A], b Projection[B], c Projection[C], d Projection[D], e Projection[E]) Projection[Pair5[A, B, C, D, E]] {
	return Map(Tuple2(a, Tuple4(b, c, d, e)), func(p Pair2[A, Pair4[B, C, D, E]]) Pair5[A, B, C, D, E] {
		return Pair5[A, B, C, D, E]{A: p.A, B: p.B.A, C: p.B.B, D: p.B.C, E: p.B.D}
	})
}

func Tuple6[A, B, C, D, E, F any](a Projection[A], b Projection[B], c Projection[C], d Projection[D], e Projection[E], f Projection[F]) Projection[Pair6[A, B, C, D, E, F]] {
	return Map(Tuple2(Tuple2(a, b), Tuple4(c, d, e, f)), func(p Pair2[Pair2[A, B], Pair4[C, D, E, F]]) Pair6[A, B, C, D, E, F] {
		return Pair6[A, B, C, D, E, F]{A: p.A.A, B: p.A.B, C: p.B.A, D: p.B.B, E: p.B.C, F: p.B.D}
	})
}

func Tuple7[A, B, C, D, E, F, G any](a Projection[A], b Projection[B], c Projection[C], d Projection[D], e Projection[E], f Projection[F], g Projection[G]) Projection[Pair7[A, B, C, D, E, F, G]] {
	return Map(Tuple2(Tuple3(a, b, c), Tuple4(d, e, f, g)), func(p Pair2[Pair3[A, B, C], Pair4[D, E, F, G]]) Pair7[A, B, C, D, E, F, G] {
		return Pair7[A, B, C, D, E, F, G]{A: p.A.A, B: p.A.B, C: p.A.C, D: p.B.A, E: p.B.B, F: p.B.C, G: p.B.D}
	})
}

func Tuple8[A, B, C, D, E, F, G, H any](a Projection[A], b Projection[B], c Projection[C], d Projection[D], e Projection[E], f Projection[F], g Projection[G], h Projection[H]) Projection[Pair8[A, B, C, D, E, F, G, H]] {
	return Map(Tuple2(Tuple4(a, b, c, d), Tuple4(e, f, g, h)), func(p Pair2[Pair4[A, B, C, D], Pair4[E, F, G, H]]) Pair8[A, B, C, D, E, F, G, H] {
		return Pair8[A, B, C, D, E, F, G, H]{A: p.A.A, B: p.A.B, C: p.A.C, D: p.A.D, E: p.B.A, F: p.B.B, G: p.B.C, H: p.B.D}
	})
}
