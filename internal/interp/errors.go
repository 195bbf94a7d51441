package interp

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/aqa/internal/syntax"
	"github.com/you-not-fish/aqa/internal/value"
)

// Sentinel errors matched by errors.Is against a *RuntimeError.
var (
	ErrMismatchedType = errors.New("mismatched type")
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrorKind classifies run-time errors.
type ErrorKind uint8

const (
	MismatchedType ErrorKind = iota
	DivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case MismatchedType:
		return "MismatchedType"
	case DivisionByZero:
		return "DivisionByZero"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// RuntimeError is an evaluation error positioned at the operator that
// caused it.
type RuntimeError struct {
	Pos   syntax.Pos
	Kind  ErrorKind
	Op    syntax.TokenKind
	Unary bool       // Op was applied as a prefix operator to Left
	Left  value.Kind // operand kind for unary operators
	Right value.Kind // unset for unary operators
}

func (e *RuntimeError) Error() string {
	return e.Pos.Describe() + ": " + e.Msg()
}

// Msg returns the error message without its position.
func (e *RuntimeError) Msg() string {
	switch e.Kind {
	case DivisionByZero:
		return "division by zero"
	case MismatchedType:
		if e.Unary {
			return fmt.Sprintf("mismatched type: cannot apply %s to %s", e.Op, e.Left)
		}
		return fmt.Sprintf("mismatched type: cannot apply %s to %s and %s", e.Op, e.Left, e.Right)
	}
	return e.Kind.String()
}

// Unwrap returns the sentinel error for e's kind.
func (e *RuntimeError) Unwrap() error {
	if e.Kind == DivisionByZero {
		return ErrDivisionByZero
	}
	return ErrMismatchedType
}
