package aqa

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/aqa/internal/interp"
	"github.com/you-not-fish/aqa/internal/syntax"
)

// Stage identifies the pipeline stage an error came from.
type Stage uint8

const (
	StageScanner Stage = iota
	StageParser
	StageInterpreter
)

func (s Stage) String() string {
	switch s {
	case StageScanner:
		return "scanner"
	case StageParser:
		return "parser"
	case StageInterpreter:
		return "interpreter"
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// Error is a pipeline error tagged with the stage that produced it.
// Err is a *syntax.ScanError, *syntax.ParseError, or *interp.RuntimeError.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Pos returns the source position of the underlying error, or the zero
// Pos if it has none.
func (e *Error) Pos() syntax.Pos {
	var (
		se *syntax.ScanError
		pe *syntax.ParseError
		re *interp.RuntimeError
	)
	switch {
	case errors.As(e.Err, &se):
		return se.Pos
	case errors.As(e.Err, &pe):
		return pe.Pos
	case errors.As(e.Err, &re):
		return re.Pos
	}
	return syntax.Pos{}
}

// Msg returns the underlying message without its position.
func (e *Error) Msg() string {
	if m, ok := e.Err.(interface{ Msg() string }); ok {
		return m.Msg()
	}
	return e.Err.Error()
}

// StageOf reports the stage of the first *Error in err's chain.
func StageOf(err error) (Stage, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage, true
	}
	return 0, false
}
