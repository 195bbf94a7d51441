package value

import (
	"math"
	"strconv"
	"strings"
)

// Value is an immutable tagged union of Int, Float, Bool, and Text.
// The zero Value has kind Invalid. Values are comparable with ==, which
// is structural equality (so a NaN Float is not equal to itself).
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Int returns an Int value.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float returns a Float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Text returns a Text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds one of the four variants.
func (v Value) IsValid() bool { return v.kind != Invalid }

// The As accessors return the payload of v, or the zero payload when v
// holds a different kind.

func (v Value) AsInt() int64     { return v.i }
func (v Value) AsFloat() float64 { return v.f }
func (v Value) AsBool() bool     { return v.b }
func (v Value) AsText() string   { return v.s }

// Equal reports whether v and w hold the same kind and payload.
func (v Value) Equal(w Value) bool { return v == w }

// String returns the display form of v: 42, 2.5, True, or the raw text.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindText:
		return v.s
	}
	return "<invalid>"
}

// GoString returns the debug form of v, e.g. Int(42) or Text("hi").
func (v Value) GoString() string {
	switch v.kind {
	case KindInt:
		return "Int(" + strconv.FormatInt(v.i, 10) + ")"
	case KindFloat:
		return "Float(" + formatFloat(v.f) + ")"
	case KindBool:
		return "Bool(" + strconv.FormatBool(v.b) + ")"
	case KindText:
		return "Text(" + strconv.Quote(v.s) + ")"
	}
	return "Invalid"
}

// formatFloat always shows a fractional part for finite values so that
// Float(3) and Int(3) print differently.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
