package query

import (
	"fmt"

	"github.com/quelgo/quel/dialect"
	"github.com/quelgo/quel/expr"
)

// UnmatchedOnError reports an ON predicate that found no join node to attach
// to. The whole compilation fails; the predicate is never silently dropped.
type UnmatchedOnError struct {
	pred expr.Fragment
}

func (e *UnmatchedOnError) Error() string {
	return fmt.Sprintf("query: ON clause without a matching JOIN: %s", e.Pred())
}

// Pred renders the orphaned predicate for diagnostics. The Postgres dialect
// is fixed here; the text is for humans, not for execution.
func (e *UnmatchedOnError) Pred() string {
	w := expr.NewDebugWriter(dialect.NewPostgresDialect())
	e.pred.Write(w)
	return w.SQL()
}
