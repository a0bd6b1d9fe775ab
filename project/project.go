// Package project defines the projection protocol: each result shape knows
// the columns it selects, how many result columns it consumes, and how to
// decode a row slice of that width into a typed value. The column list a
// projection writes and the width it reports must always agree; decoding
// checks the width before touching any value.
package project

import (
	"fmt"
	"reflect"

	"github.com/quelgo/quel/expr"
	"github.com/quelgo/quel/schema"
)

// Projection describes one result shape.
type Projection[T any] interface {
	// WriteColumns writes the comma-joined column list, binding any
	// parameters embedded in projected expressions.
	WriteColumns(w *expr.Writer)
	// Width reports the number of result columns, computable before any
	// row is seen.
	Width() int
	// Decode turns a row slice of exactly Width raw values into T.
	Decode(row []any) (T, error)
}

// DecodeError reports a row slice that did not match its projection. It is
// a per-row, recoverable condition: the caller decides whether to abort the
// stream.
type DecodeError struct {
	Shape string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("project: decoding %s: %v", e.Shape, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func widthErr(shape string, want, got int) *DecodeError {
	return &DecodeError{Shape: shape, Err: fmt.Errorf("want %d columns, got %d", want, got)}
}

// Unit selects nothing and decodes every row successfully.
func Unit() Projection[struct{}] {
	return unit{}
}

type unit struct{}

func (unit) WriteColumns(w *expr.Writer) {}

func (unit) Width() int { return 0 }

func (unit) Decode(row []any) (struct{}, error) {
	if len(row) != 0 {
		return struct{}{}, widthErr("unit", 0, len(row))
	}
	return struct{}{}, nil
}

// Scalar projects a single expression into one value of type T.
func Scalar[T any](f expr.Fragment) Projection[T] {
	return scalar[T]{frag: f}
}

type scalar[T any] struct {
	frag expr.Fragment
}

func (s scalar[T]) WriteColumns(w *expr.Writer) {
	s.frag.Operand(w)
}

func (s scalar[T]) Width() int { return 1 }

func (s scalar[T]) Decode(row []any) (T, error) {
	var zero T
	if len(row) != 1 {
		return zero, widthErr("scalar", 1, len(row))
	}
	v, err := schema.DecodeAs[T](row[0])
	if err != nil {
		return zero, &DecodeError{Shape: "scalar", Err: err}
	}
	return v, nil
}

// Entity projects every column of ref into a T value: primary key first,
// then the declared fields in schema order.
func Entity[T any](ref expr.Ref) Projection[T] {
	return entity[T]{ref: ref}
}

type entity[T any] struct {
	ref expr.Ref
}

func (e entity[T]) WriteColumns(w *expr.Writer) {
	for i, col := range e.ref.Meta.Columns() {
		if i > 0 {
			w.WriteString(", ")
		}
		w.Ident(e.ref.Alias)
		w.WriteByte('.')
		w.Ident(col)
	}
}

func (e entity[T]) Width() int {
	return len(e.ref.Meta.Fields) + 1
}

func (e entity[T]) Decode(row []any) (T, error) {
	var zero T
	m := e.ref.Meta
	shape := "entity " + m.Type.Name()
	if len(row) != e.Width() {
		return zero, widthErr(shape, e.Width(), len(row))
	}

	out := reflect.New(m.Type).Elem()
	if err := schema.Decode(out.FieldByIndex(m.KeyIndex), row[0]); err != nil {
		return zero, &DecodeError{Shape: shape + " key", Err: err}
	}
	for i, f := range m.Fields {
		if err := schema.Decode(out.FieldByIndex(f.Index), row[i+1]); err != nil {
			return zero, &DecodeError{Shape: shape + "." + f.Name, Err: err}
		}
	}

	v, ok := out.Interface().(T)
	if !ok {
		return zero, &DecodeError{Shape: shape, Err: fmt.Errorf("metadata for %s does not produce %T", m.Type, zero)}
	}
	return v, nil
}

// MaybeEntity projects an outer-joined entity; a row slice of all NULLs
// decodes to nil without attempting any field decode.
func MaybeEntity[T any](ref expr.Maybe) Projection[*T] {
	return maybeEntity[T]{inner: entity[T]{ref: ref.Ref}}
}

type maybeEntity[T any] struct {
	inner entity[T]
}

func (m maybeEntity[T]) WriteColumns(w *expr.Writer) {
	m.inner.WriteColumns(w)
}

func (m maybeEntity[T]) Width() int {
	return m.inner.Width()
}

func (m maybeEntity[T]) Decode(row []any) (*T, error) {
	if len(row) != m.inner.Width() {
		return nil, widthErr("maybe entity", m.inner.Width(), len(row))
	}
	absent := true
	for _, v := range row {
		if v != nil {
			absent = false
			break
		}
	}
	if absent {
		return nil, nil
	}
	v, err := m.inner.Decode(row)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
