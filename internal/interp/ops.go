package interp

import (
	"github.com/you-not-fish/aqa/internal/syntax"
	"github.com/you-not-fish/aqa/internal/value"
)

// binaryFunc computes a binary operation on operands whose kinds have
// already been matched against the table.
type binaryFunc func(x, y value.Value) (value.Value, error)

type binaryKey struct {
	left  value.Kind
	op    syntax.TokenKind
	right value.Kind
}

type binaryOp struct {
	result value.Kind
	fn     binaryFunc
}

// binaryOps is the closed dispatch table for binary operators. It is built
// once by init and only read afterwards. A triple missing from the table is
// a mismatched-type error.
var binaryOps = map[binaryKey]binaryOp{}

var (
	arithmeticOps = []syntax.TokenKind{syntax.Add, syntax.Sub, syntax.Mul, syntax.Div}
	comparisonOps = []syntax.TokenKind{syntax.Lss, syntax.Leq, syntax.Gtr, syntax.Geq, syntax.Eql, syntax.Neq}
)

func init() {
	for _, k := range value.Kinds() {
		info := k.Info()
		switch {
		case info&value.IsInteger != 0:
			for _, op := range arithmeticOps {
				def(k, op, k, k, intArith(op))
			}
			for _, op := range comparisonOps {
				op := op // per-iteration copy for the closure (pre-Go 1.22 loop semantics)
				def(k, op, k, value.KindBool, func(x, y value.Value) (value.Value, error) {
					return value.Bool(compare(op, x.AsInt(), y.AsInt())), nil
				})
			}

		case info&value.IsFloat != 0:
			for _, op := range arithmeticOps {
				op := op // per-iteration copy for the closure (pre-Go 1.22 loop semantics)
				def(k, op, k, k, func(x, y value.Value) (value.Value, error) {
					return value.Float(arith(op, x.AsFloat(), y.AsFloat())), nil
				})
			}
			for _, op := range comparisonOps {
				op := op // per-iteration copy for the closure (pre-Go 1.22 loop semantics)
				def(k, op, k, value.KindBool, func(x, y value.Value) (value.Value, error) {
					return value.Bool(compare(op, x.AsFloat(), y.AsFloat())), nil
				})
			}

		case info&value.IsText != 0:
			def(k, syntax.Add, k, k, func(x, y value.Value) (value.Value, error) {
				return value.Text(x.AsText() + y.AsText()), nil
			})

		case info&value.IsBoolean != 0:
			// no binary operators

		default:
			panic("interp: no dispatch rules for kind " + k.String())
		}
	}
}

func def(left value.Kind, op syntax.TokenKind, right, result value.Kind, fn binaryFunc) {
	key := binaryKey{left, op, right}
	if _, dup := binaryOps[key]; dup {
		panic("interp: duplicate dispatch rule for " + left.String() + " " + op.String() + " " + right.String())
	}
	binaryOps[key] = binaryOp{result: result, fn: fn}
}

// Lookup reports the result kind of applying op to operands of kinds left
// and right, and whether that combination is defined at all.
func Lookup(left value.Kind, op syntax.TokenKind, right value.Kind) (value.Kind, bool) {
	o, ok := binaryOps[binaryKey{left, op, right}]
	return o.result, ok
}

// intArith returns the integer form of an arithmetic operator. Results wrap
// on overflow, and division truncates toward zero.
func intArith(op syntax.TokenKind) binaryFunc {
	return func(x, y value.Value) (value.Value, error) {
		if op == syntax.Div && y.AsInt() == 0 {
			return value.Value{}, ErrDivisionByZero
		}
		return value.Int(arith(op, x.AsInt(), y.AsInt())), nil
	}
}

type number interface {
	~int64 | ~float64
}

func arith[T number](op syntax.TokenKind, x, y T) T {
	switch op {
	case syntax.Add:
		return x + y
	case syntax.Sub:
		return x - y
	case syntax.Mul:
		return x * y
	case syntax.Div:
		return x / y
	}
	panic("interp: not an arithmetic operator: " + op.String())
}

func compare[T number](op syntax.TokenKind, x, y T) bool {
	switch op {
	case syntax.Lss:
		return x < y
	case syntax.Leq:
		return x <= y
	case syntax.Gtr:
		return x > y
	case syntax.Geq:
		return x >= y
	case syntax.Eql:
		return x == y
	case syntax.Neq:
		return x != y
	}
	panic("interp: not a comparison operator: " + op.String())
}

// unaryOp applies a prefix operator. Negation is defined for Int and
// Float, NOT for Bool. Nothing else is, so AND as a prefix always fails.
func unaryOp(op syntax.TokenKind, x value.Value) (value.Value, bool) {
	switch {
	case op == syntax.Sub && x.Kind() == value.KindInt:
		return value.Int(-x.AsInt()), true
	case op == syntax.Sub && x.Kind() == value.KindFloat:
		return value.Float(-x.AsFloat()), true
	case op == syntax.Not && x.Kind() == value.KindBool:
		return value.Bool(!x.AsBool()), true
	}
	return value.Value{}, false
}
