package engine

import (
	"github.com/quelgo/quel/database"
	"github.com/quelgo/quel/project"
)

// Rows streams decoded values from a result set. Scan failures end the
// stream; decode failures are returned per row so callers can skip or stop.
type Rows[T any] struct {
	rows database.Rows
	p    project.Projection[T]
	buf  []any
	err  error
}

// Next advances to the next row.
func (r *Rows[T]) Next() bool {
	if r.err != nil {
		return false
	}
	return r.rows.Next()
}

// Row decodes the current row through the projection.
func (r *Rows[T]) Row() (T, error) {
	var zero T
	ptrs := make([]any, len(r.buf))
	for i := range r.buf {
		r.buf[i] = nil
		ptrs[i] = &r.buf[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		r.err = err
		return zero, err
	}
	return r.p.Decode(r.buf)
}

// Err returns the first error hit while iterating or scanning.
func (r *Rows[T]) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}

// Close releases the underlying result set.
func (r *Rows[T]) Close() error {
	return r.rows.Close()
}
