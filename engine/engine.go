// Package engine executes rendered queries against a Database and decodes
// result rows through projections.
package engine

import (
	"context"

	"github.com/quelgo/quel/database"
	"github.com/quelgo/quel/dialect"
	"github.com/quelgo/quel/project"
	"github.com/quelgo/quel/query"
)

// Engine pairs a database with the dialect its SQL is rendered in.
type Engine struct {
	db database.Database
	d  dialect.Dialect
}

func New(db database.Database, d dialect.Dialect) *Engine {
	return &Engine{db: db, d: d}
}

// Dialect returns the dialect queries render with.
func (e *Engine) Dialect() dialect.Dialect { return e.d }

// Ping verifies the database connection.
func (e *Engine) Ping(ctx context.Context) error { return e.db.PingContext(ctx) }

// Close releases the underlying database.
func (e *Engine) Close() error { return e.db.Close() }

// Select builds a query with fn, runs it, and returns a cursor over the
// decoded rows.
func Select[T any](ctx context.Context, e *Engine, fn func(q *query.Query) (project.Projection[T], error)) (*Rows[T], error) {
	return run(ctx, e, query.Select, fn)
}

// SelectDistinct is Select with duplicate result rows removed.
func SelectDistinct[T any](ctx context.Context, e *Engine, fn func(q *query.Query) (project.Projection[T], error)) (*Rows[T], error) {
	return run(ctx, e, query.SelectDistinct, fn)
}

func run[T any](ctx context.Context, e *Engine, mode query.Mode, fn func(q *query.Query) (project.Projection[T], error)) (*Rows[T], error) {
	q := query.New()
	p, err := fn(q)
	if err != nil {
		return nil, err
	}
	sql, args, err := q.Render(mode, e.d, p)
	if err != nil {
		return nil, err
	}
	rows, err := e.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &Rows[T]{rows: rows, p: p, buf: make([]any, p.Width())}, nil
}

// All collects every row from Select, stopping at the first decode error.
func All[T any](ctx context.Context, e *Engine, fn func(q *query.Query) (project.Projection[T], error)) ([]T, error) {
	rows, err := Select(ctx, e, fn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := rows.Row()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete builds a query with fn, renders it as a DELETE, and returns the
// number of affected rows.
func (e *Engine) Delete(ctx context.Context, fn func(q *query.Query) error) (int64, error) {
	q := query.New()
	if err := fn(q); err != nil {
		return 0, err
	}
	sql, args, err := q.Render(query.Delete, e.d, nil)
	if err != nil {
		return 0, err
	}
	res, err := e.db.ExecContext(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
