package dialect_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quelgo/quel/dialect"
)

func TestPostgresQuoteIdentifier(t *testing.T) {
	d := dialect.NewPostgresDialect()

	assert.Equal(t, `"users"`, d.QuoteIdentifier("users"))
	assert.Equal(t, `"a""b"`, d.QuoteIdentifier(`a"b`))
}

func TestPostgresPlaceholder(t *testing.T) {
	d := dialect.NewPostgresDialect()

	assert.Equal(t, "$1", d.Placeholder(1))
	assert.Equal(t, "$12", d.Placeholder(12))
}

func TestPostgresRenderValue(t *testing.T) {
	d := dialect.NewPostgresDialect()

	assert.Equal(t, "NULL", d.RenderValue(nil))
	assert.Equal(t, "'o''brien'", d.RenderValue("o'brien"))
	assert.Equal(t, "TRUE", d.RenderValue(true))
	assert.Equal(t, "FALSE", d.RenderValue(false))
	assert.Equal(t, "42", d.RenderValue(42))
	assert.Equal(t, "3.5", d.RenderValue(3.5))

	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "'2024-03-01 12:30:00.000000'", d.RenderValue(ts))

	assert.Equal(t, `E'\\x01ff'`, d.RenderValue([]byte{0x01, 0xff}))
}

func TestMySQLDialect(t *testing.T) {
	d := dialect.NewMySQLDialect()

	assert.Equal(t, "`users`", d.QuoteIdentifier("users"))
	assert.Equal(t, "?", d.Placeholder(1))
	assert.Equal(t, "?", d.Placeholder(7))
	assert.Equal(t, "'x'", d.RenderValue("x"))
}
