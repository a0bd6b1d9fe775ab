package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quelgo/quel/dialect"
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

type Pet struct {
	ID      int64
	OwnerID int64
	Name    string
}

func (Pet) TableName() string { return "pet" }

type Toy struct {
	ID    int64
	PetID int64
	Name  string
}

func (Toy) TableName() string { return "toy" }

var pg = dialect.NewPostgresDialect()

func TestRenderSelectJoin(t *testing.T) {
	q := query.New()
	people := query.Table(q, schema.MustOf[Person]())
	pets := query.Table(q, schema.MustOf[Pet]())
	j := query.Use(q, query.Join(query.InnerJoin, people, pets))
	p, pet := j.L, j.R

	q.On(expr.Eq(pet.Col("owner_id"), p.Col("id")))
	q.Where(expr.Ge(p.Col("age"), expr.Val(18)))
	q.OrderBy(expr.Asc(p.Col("name")))

	cols := project.Tuple2(project.Entity[Person](p), project.Entity[Pet](pet))
	sql, args, err := q.Render(query.Select, pg, cols)
	require.NoError(t, err)

	require.Equal(t,
		`SELECT "person"."id", "person"."name", "person"."age", `+
			`"pet"."id", "pet"."owner_id", "pet"."name" `+
			`FROM "person" INNER JOIN "pet" ON ("pet"."owner_id" = "person"."id") `+
			`WHERE ("person"."age" >= $1) `+
			`ORDER BY "person"."name" ASC`,
		sql)
	require.Equal(t, []any{18}, args)
}

func TestRenderIsRepeatable(t *testing.T) {
	q := query.New()
	people := query.Table(q, schema.MustOf[Person]())
	pets := query.Table(q, schema.MustOf[Pet]())
	j := query.Use(q, query.Join(query.LeftOuterJoin, people, pets))

	q.On(expr.Eq(j.R.Col("owner_id"), j.L.Col("id")))
	q.Where(expr.Gt(j.L.Col("age"), expr.Val(21)))

	cols := project.Entity[Person](j.L)
	sql1, args1, err := q.Render(query.Select, pg, cols)
	require.NoError(t, err)
	sql2, args2, err := q.Render(query.Select, pg, cols)
	require.NoError(t, err)

	assert.Equal(t, sql1, sql2)
	assert.Equal(t, args1, args2)
	assert.Contains(t, sql1, "LEFT OUTER JOIN")
}

func TestSelectDistinct(t *testing.T) {
	q := query.New()
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))

	sql, _, err := q.Render(query.SelectDistinct, pg, project.Scalar[string](p.Col("name")))
	require.NoError(t, err)
	require.Equal(t, `SELECT DISTINCT "person"."name" FROM "person"`, sql)
}

func TestRenderDelete(t *testing.T) {
	q := query.New()
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
	q.Where(expr.Lt(p.Col("age"), expr.Val(18)))

	sql, args, err := q.Render(query.Delete, pg, nil)
	require.NoError(t, err)
	require.Equal(t, `DELETE FROM "person" WHERE ("person"."age" < $1)`, sql)
	require.Equal(t, []any{18}, args)
}

func TestSelfJoinAliases(t *testing.T) {
	q := query.New()
	m := schema.MustOf[Person]()
	p1 := query.Use(q, query.Table(q, m))
	p2 := query.Use(q, query.Table(q, m))
	q.Where(expr.Eq(p1.Col("name"), p2.Col("name")))

	sql, _, err := q.Render(query.Select, pg, project.Scalar[int64](p1.Col("id")))
	require.NoError(t, err)
	require.Equal(t,
		`SELECT "person"."id" FROM "person", "person" AS "person2" `+
			`WHERE ("person"."name" = "person2"."name")`,
		sql)
}

func TestWhereCallsAreConjoined(t *testing.T) {
	q := query.New()
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
	q.Where(expr.Ge(p.Col("age"), expr.Val(18)))
	q.Where(expr.Lt(p.Col("age"), expr.Val(65)))

	sql, args, err := q.Render(query.Select, pg, project.Scalar[int64](p.Col("id")))
	require.NoError(t, err)
	require.Equal(t,
		`SELECT "person"."id" FROM "person" `+
			`WHERE (("person"."age" >= $1) AND ("person"."age" < $2))`,
		sql)
	require.Equal(t, []any{18, 65}, args)
}

func TestOrderByMultipleTerms(t *testing.T) {
	q := query.New()
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
	q.OrderBy(expr.Desc(p.Col("age")), expr.Asc(p.Col("name")))

	sql, _, err := q.Render(query.Select, pg, project.Scalar[int64](p.Col("id")))
	require.NoError(t, err)
	assert.Contains(t, sql, `ORDER BY "person"."age" DESC, "person"."name" ASC`)
}

func TestSubSelectSplicesArguments(t *testing.T) {
	inner := query.New()
	pet := query.Use(inner, query.Table(inner, schema.MustOf[Pet]()))
	inner.Where(expr.Eq(pet.Col("name"), expr.Val("rex")))
	sub, err := query.SubSelect(inner, project.Scalar[int64](pet.Col("owner_id")))
	require.NoError(t, err)

	q := query.New()
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
	q.Where(expr.Gt(p.Col("age"), expr.Val(1)))
	q.Where(expr.Eq(p.Col("id"), sub))
	q.Where(expr.Lt(p.Col("age"), expr.Val(99)))

	sql, args, err := q.Render(query.Select, pg, project.Scalar[int64](p.Col("id")))
	require.NoError(t, err)

	// Inner placeholders continue the outer numbering at the embed point.
	assert.Contains(t, sql, `(SELECT "pet"."owner_id" FROM "pet" WHERE ("pet"."name" = $2))`)
	require.Equal(t, []any{1, "rex", 99}, args)
}

func TestSubSelectFailsOnMalformedInner(t *testing.T) {
	inner := query.New()
	pet := query.Use(inner, query.Table(inner, schema.MustOf[Pet]()))
	inner.On(expr.Eq(pet.Col("owner_id"), expr.Val(1)))

	_, err := query.SubSelect(inner, project.Scalar[int64](pet.Col("id")))
	require.Error(t, err)
}

func TestDebugInlinesArguments(t *testing.T) {
	q := query.New()
	p := query.Use(q, query.Table(q, schema.MustOf[Person]()))
	q.Where(expr.Eq(p.Col("name"), expr.Val("ann")))

	sql, err := q.Debug(query.Select, pg, project.Scalar[int64](p.Col("id")))
	require.NoError(t, err)
	require.Equal(t, `SELECT "person"."id" FROM "person" WHERE ("person"."name" = 'ann')`, sql)
}
