package expr

import "github.com/quelgo/quel/schema"

// Val injects a literal as a bound parameter, encoded for the driver.
func Val(v any) Fragment {
	return Fragment{Write: func(w *Writer) {
		w.Bind(schema.Encode(v))
	}}
}

// Null renders the SQL NULL literal, for comparisons against absence.
func Null() Fragment {
	return Fragment{Write: func(w *Writer) {
		w.WriteString("NULL")
	}}
}

func binary(op string, l, r Fragment) Fragment {
	return Fragment{Grouped: true, Write: func(w *Writer) {
		l.Operand(w)
		w.WriteByte(' ')
		w.WriteString(op)
		w.WriteByte(' ')
		r.Operand(w)
	}}
}

func Eq(l, r Fragment) Fragment { return binary("=", l, r) }
func Ne(l, r Fragment) Fragment { return binary("!=", l, r) }
func Lt(l, r Fragment) Fragment { return binary("<", l, r) }
func Le(l, r Fragment) Fragment { return binary("<=", l, r) }
func Gt(l, r Fragment) Fragment { return binary(">", l, r) }
func Ge(l, r Fragment) Fragment { return binary(">=", l, r) }

func And(l, r Fragment) Fragment { return binary("AND", l, r) }
func Or(l, r Fragment) Fragment  { return binary("OR", l, r) }

func Add(l, r Fragment) Fragment { return binary("+", l, r) }
func Sub(l, r Fragment) Fragment { return binary("-", l, r) }
func Mul(l, r Fragment) Fragment { return binary("*", l, r) }
func Div(l, r Fragment) Fragment { return binary("/", l, r) }

// Not negates a boolean expression.
func Not(f Fragment) Fragment {
	return Fragment{Grouped: true, Write: func(w *Writer) {
		w.WriteString("NOT ")
		f.Operand(w)
	}}
}

func postfix(op string, f Fragment) Fragment {
	return Fragment{Grouped: true, Write: func(w *Writer) {
		f.Operand(w)
		w.WriteByte(' ')
		w.WriteString(op)
	}}
}

// IsNull tests a nullable expression for absence.
func IsNull(f Fragment) Fragment {
	return postfix("IS NULL", f)
}

// IsNotNull tests a nullable expression for presence.
func IsNotNull(f Fragment) Fragment {
	return postfix("IS NOT NULL", f)
}
