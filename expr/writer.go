package expr

import (
	"strings"

	"github.com/quelgo/quel/dialect"
)

// Writer accumulates SQL text and bound arguments during one rendering pass.
// Arguments are appended at the moment their placeholder is written, so the
// final argument order always matches placeholder order in the text.
type Writer struct {
	sb     strings.Builder
	args   []any
	d      dialect.Dialect
	inline bool
}

func NewWriter(d dialect.Dialect) *Writer {
	return &Writer{d: d, args: make([]any, 0, 8)}
}

// NewDebugWriter returns a Writer that inlines values as literals instead of
// binding them. Debug output only, never for execution.
func NewDebugWriter(d dialect.Dialect) *Writer {
	return &Writer{d: d, inline: true}
}

func (w *Writer) WriteString(s string) {
	w.sb.WriteString(s)
}

func (w *Writer) WriteByte(b byte) {
	_ = w.sb.WriteByte(b)
}

// Ident writes a quoted identifier.
func (w *Writer) Ident(name string) {
	w.sb.WriteString(w.d.QuoteIdentifier(name))
}

// Bind writes a placeholder and records its argument.
func (w *Writer) Bind(v any) {
	if w.inline {
		w.sb.WriteString(w.d.RenderValue(v))
		return
	}
	w.sb.WriteString(w.d.Placeholder(len(w.args) + 1))
	w.args = append(w.args, v)
}

func (w *Writer) SQL() string {
	return w.sb.String()
}

func (w *Writer) Args() []any {
	return w.args
}
