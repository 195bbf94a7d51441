package syntax

import "fmt"

// ScanErrorKind classifies lexical errors.
type ScanErrorKind uint8

const (
	UnexpectedEOF ScanErrorKind = iota
	UnexpectedChar
	FailedToParseFloat
	FailedToParseInt
)

var scanErrorNames = [...]string{
	UnexpectedEOF:      "UnexpectedEOF",
	UnexpectedChar:     "UnexpectedChar",
	FailedToParseFloat: "FailedToParseFloat",
	FailedToParseInt:   "FailedToParseInt",
}

func (k ScanErrorKind) String() string {
	if int(k) < len(scanErrorNames) {
		return scanErrorNames[k]
	}
	return fmt.Sprintf("ScanErrorKind(%d)", k)
}

// ScanError is a positioned lexical error.
type ScanError struct {
	Pos  Pos
	Kind ScanErrorKind
	Char rune // offending character for UnexpectedChar; unclosed ' or ! for UnexpectedEOF
}

func (e *ScanError) Error() string {
	return e.Pos.Describe() + ": " + e.Msg()
}

// Msg returns the error message without its position.
func (e *ScanError) Msg() string {
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected end of input"
	case UnexpectedChar:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case FailedToParseFloat:
		return "failed to parse float"
	case FailedToParseInt:
		return "failed to parse int"
	}
	return e.Kind.String()
}

// ParseErrorKind classifies syntax errors.
type ParseErrorKind uint8

const (
	UnexpectedToken ParseErrorKind = iota
	ExpectedRightParen
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case ExpectedRightParen:
		return "ExpectedRightParen"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", k)
}

// ParseError is a syntax error positioned at the offending token.
type ParseError struct {
	Pos  Pos
	Kind ParseErrorKind
	Tok  Token
}

func (e *ParseError) Error() string {
	return e.Pos.Describe() + ": " + e.Msg()
}

// Msg returns the error message without its position.
func (e *ParseError) Msg() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token '%s'", e.Tok)
	case ExpectedRightParen:
		return "expected right parenthesis"
	}
	return e.Kind.String()
}
