// Package interp evaluates expression trees produced by package syntax.
package interp

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/aqa/internal/syntax"
	"github.com/you-not-fish/aqa/internal/value"
)

// Eval evaluates e and returns its value.
//
// Eval is a pure function of the tree: it reads no external state and never
// modifies e. Operands are evaluated left before right and both are always
// evaluated. The first error aborts evaluation.
func Eval(e syntax.Expr) (value.Value, error) {
	switch e := e.(type) {
	case *syntax.BasicLit:
		return e.Value, nil

	case *syntax.UnaryExpr:
		x, err := Eval(e.X)
		if err != nil {
			return value.Value{}, err
		}
		return unary(e.Op, x)

	case *syntax.BinaryExpr:
		x, err := Eval(e.X)
		if err != nil {
			return value.Value{}, err
		}
		y, err := Eval(e.Y)
		if err != nil {
			return value.Value{}, err
		}
		return binary(e.Op, x, y)
	}
	return value.Value{}, fmt.Errorf("interp: cannot evaluate %T", e)
}

func unary(op syntax.Token, x value.Value) (value.Value, error) {
	v, ok := unaryOp(op.Kind, x)
	if !ok {
		return value.Value{}, &RuntimeError{
			Pos:   op.Pos,
			Kind:  MismatchedType,
			Op:    op.Kind,
			Unary: true,
			Left:  x.Kind(),
		}
	}
	return v, nil
}

func binary(op syntax.Token, x, y value.Value) (value.Value, error) {
	o, ok := binaryOps[binaryKey{x.Kind(), op.Kind, y.Kind()}]
	if !ok {
		return value.Value{}, &RuntimeError{
			Pos:   op.Pos,
			Kind:  MismatchedType,
			Op:    op.Kind,
			Left:  x.Kind(),
			Right: y.Kind(),
		}
	}
	v, err := o.fn(x, y)
	if err != nil {
		kind := MismatchedType
		if errors.Is(err, ErrDivisionByZero) {
			kind = DivisionByZero
		}
		return value.Value{}, &RuntimeError{
			Pos:   op.Pos,
			Kind:  kind,
			Op:    op.Kind,
			Left:  x.Kind(),
			Right: y.Kind(),
		}
	}
	return v, nil
}
