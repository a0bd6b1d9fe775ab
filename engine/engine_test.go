package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quelgo/quel/database"
	"github.com/quelgo/quel/dialect"
	"github.com/quelgo/quel/engine"
	"github.com/quelgo/quel/expr"
	"github.com/quelgo/quel/project"
	"github.com/quelgo/quel/query"
	"github.com/quelgo/quel/schema"
)

type Person struct {
	ID   int64
	Name string
	Age  int64
}

func (Person) TableName() string { return "person" }

type fakeRows struct {
	data [][]any
	pos  int
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.pos-1]
	for i, d := range dest {
		*(d.(*any)) = row[i]
	}
	return nil
}

func (f *fakeRows) Err() error                 { return nil }
func (f *fakeRows) Close() error               { return nil }
func (f *fakeRows) Columns() ([]string, error) { return nil, nil }

type fakeDB struct {
	queries  []string
	args     [][]any
	rows     *fakeRows
	affected int64
}

func (f *fakeDB) Query(q string, args ...any) (database.Rows, error) {
	return f.QueryContext(context.Background(), q, args...)
}

func (f *fakeDB) QueryContext(_ context.Context, q string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, q)
	f.args = append(f.args, args)
	return f.rows, nil
}

func (f *fakeDB) Exec(q string, args ...any) (database.Result, error) {
	return f.ExecContext(context.Background(), q, args...)
}

func (f *fakeDB) ExecContext(_ context.Context, q string, args ...any) (database.Result, error) {
	f.queries = append(f.queries, q)
	f.args = append(f.args, args)
	return fakeResult{affected: f.affected}, nil
}

func (f *fakeDB) PingContext(context.Context) error { return nil }
func (f *fakeDB) Close() error                      { return nil }

type fakeResult struct {
	affected int64
}

func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

func adults(q *query.Query) (project.Projection[Person], error) {
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
	q.Where(expr.Ge(p.Col("age"), expr.Val(18)))
	return project.Entity[Person](p), nil
}

func TestSelectStreamsRows(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][]any{
		{int64(1), "ann", int64(30)},
		{int64(2), "bob", int64(41)},
	}}}
	e := engine.New(db, dialect.NewPostgresDialect())

	rows, err := engine.Select(context.Background(), e, adults)
	require.NoError(t, err)
	defer rows.Close()

	require.Equal(t,
		[]string{`SELECT "person"."id", "person"."name", "person"."age" FROM "person" WHERE ("person"."age" >= $1)`},
		db.queries)
	require.Equal(t, [][]any{{18}}, db.args)

	var got []Person
	for rows.Next() {
		v, err := rows.Row()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []Person{
		{ID: 1, Name: "ann", Age: 30},
		{ID: 2, Name: "bob", Age: 41},
	}, got)
}

func TestSelectDistinctKeyword(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}
	e := engine.New(db, dialect.NewPostgresDialect())

	_, err := engine.SelectDistinct(context.Background(), e, adults)
	require.NoError(t, err)
	assert.Contains(t, db.queries[0], "SELECT DISTINCT ")
}

// A row that fails to decode is reported for that row only; the caller can
// keep iterating past it.
func TestRowDecodeErrorIsRecoverable(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][]any{
		{int64(1), "ann", "bad"},
		{int64(2), "bob", int64(41)},
	}}}
	e := engine.New(db, dialect.NewPostgresDialect())

	rows, err := engine.Select(context.Background(), e, adults)
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	_, err = rows.Row()
	var decErr *project.DecodeError
	require.True(t, errors.As(err, &decErr))

	require.True(t, rows.Next())
	v, err := rows.Row()
	require.NoError(t, err)
	assert.Equal(t, Person{ID: 2, Name: "bob", Age: 41}, v)

	require.NoError(t, rows.Err())
}

func TestAllStopsAtDecodeError(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][]any{
		{int64(1), "ann", "bad"},
		{int64(2), "bob", int64(41)},
	}}}
	e := engine.New(db, dialect.NewPostgresDialect())

	_, err := engine.All(context.Background(), e, adults)
	require.Error(t, err)
}

func TestAllCollects(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][]any{
		{int64(1), "ann", int64(30)},
	}}}
	e := engine.New(db, dialect.NewPostgresDialect())

	got, err := engine.All(context.Background(), e, adults)
	require.NoError(t, err)
	assert.Equal(t, []Person{{ID: 1, Name: "ann", Age: 30}}, got)
}

func TestDelete(t *testing.T) {
	db := &fakeDB{affected: 3}
	e := engine.New(db, dialect.NewPostgresDialect())

	n, err := e.Delete(context.Background(), func(q *query.Query) error {
		p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
		q.Where(expr.Lt(p.Col("age"), expr.Val(18)))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.Equal(t,
		[]string{`DELETE FROM "person" WHERE ("person"."age" < $1)`},
		db.queries)
}

// Compilation failures surface before anything reaches the database.
func TestUnmatchedOnFailsBeforeExecution(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}
	e := engine.New(db, dialect.NewPostgresDialect())

	_, err := engine.Select(context.Background(), e, func(q *query.Query) (project.Projection[Person], error) {
		p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
		q.On(expr.Eq(p.Col("id"), expr.Val(1)))
		return project.Entity[Person](p), nil
	})

	var onErr *query.UnmatchedOnError
	require.True(t, errors.As(err, &onErr))
	assert.Empty(t, db.queries)
}

func TestBuilderErrorShortCircuits(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}
	e := engine.New(db, dialect.NewPostgresDialect())

	boom := errors.New("boom")
	_, err := engine.Select(context.Background(), e, func(q *query.Query) (project.Projection[Person], error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, db.queries)
}
