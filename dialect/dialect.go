package dialect

// Dialect supplies the database-specific pieces of rendered SQL: identifier
// quoting, bind-parameter placeholders, and inline literal formatting.
type Dialect interface {
	QuoteIdentifier(name string) string
	Placeholder(n int) string
	RenderValue(v any) string
}
