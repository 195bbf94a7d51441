// Package syntax implements lexical and syntactic analysis for AQA pseudocode
// expressions.
package syntax

import (
	"fmt"

	"github.com/you-not-fish/aqa/internal/value"
)

// TokenKind identifies the lexical class of a token.
type TokenKind uint8

const (
	// Special tokens
	EOF       TokenKind = iota // end of input
	LineBreak                  // \n

	// Payload-carrying tokens
	Literal // True, 42, 2.5, 'text'
	Ident   // identifier

	// Assignment
	Assign // <-

	// Arithmetic operators
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	IntDiv // DIV
	Mod    // MOD

	// Comparison operators
	Lss // <
	Gtr // >
	Eql // =
	Neq // !=
	Leq // <=
	Geq // >=

	// Logical operators
	And // AND
	Or  // OR
	Not // NOT

	// Delimiters
	Lparen // (
	Rparen // )

	// Statement keywords
	Constant
	Repeat
	Until
	While
	EndWhile
	For
	To
	In
	EndFor
	If
	Then
	Else
	EndIf
	Output

	tokenCount
)

var tokenNames = [tokenCount]string{
	EOF:       "EOF",
	LineBreak: "newline",

	Literal: "literal",
	Ident:   "identifier",

	Assign: "<-",

	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	IntDiv: "DIV",
	Mod:    "MOD",

	Lss: "<",
	Gtr: ">",
	Eql: "=",
	Neq: "!=",
	Leq: "<=",
	Geq: ">=",

	And: "AND",
	Or:  "OR",
	Not: "NOT",

	Lparen: "(",
	Rparen: ")",

	Constant: "CONSTANT",
	Repeat:   "REPEAT",
	Until:    "UNTIL",
	While:    "WHILE",
	EndWhile: "ENDWHILE",
	For:      "FOR",
	To:       "TO",
	In:       "IN",
	EndFor:   "ENDFOR",
	If:       "IF",
	Then:     "THEN",
	Else:     "ELSE",
	EndIf:    "ENDIF",
	Output:   "OUTPUT",
}

// String returns the source spelling of the kind, or a descriptive name for
// kinds without one.
func (k TokenKind) String() string {
	if k < tokenCount {
		return tokenNames[k]
	}
	return fmt.Sprintf("token(%d)", k)
}

// IsKeyword reports whether k is spelled as a reserved word.
func (k TokenKind) IsKeyword() bool {
	return k == IntDiv || k == Mod || (k >= And && k <= Not) || (k >= Constant && k <= Output)
}

// IsOperator reports whether k is an assignment, arithmetic, comparison, or
// logical operator.
func (k TokenKind) IsOperator() bool {
	return k >= Assign && k <= Not
}

// Operator precedences, lowest to highest. Tokens that are not binary
// operators have precedence 0.
const (
	_ = iota
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
)

// Precedence returns the binary precedence of k, or 0 if the parser does
// not accept k as a binary operator.
func (k TokenKind) Precedence() int {
	switch k {
	case Eql, Neq:
		return PrecEquality
	case Lss, Leq, Gtr, Geq:
		return PrecComparison
	case Add, Sub:
		return PrecTerm
	case Mul, Div:
		return PrecFactor
	}
	return 0
}

// keywords maps reserved words to their kinds. Matching is case-sensitive.
var keywords = map[string]TokenKind{
	"CONSTANT": Constant,
	"DIV":      IntDiv,
	"MOD":      Mod,
	"AND":      And,
	"OR":       Or,
	"NOT":      Not,
	"REPEAT":   Repeat,
	"UNTIL":    Until,
	"WHILE":    While,
	"ENDWHILE": EndWhile,
	"FOR":      For,
	"TO":       To,
	"IN":       In,
	"ENDFOR":   EndFor,
	"IF":       If,
	"THEN":     Then,
	"ELSE":     Else,
	"ENDIF":    EndIf,
	"OUTPUT":   Output,
}

// boolWords are words that scan directly as Bool literals.
var boolWords = map[string]bool{
	"True":  true,
	"False": false,
}

// LookupKeyword returns the kind for a scanned word: a keyword kind,
// Literal for True and False, or Ident.
func LookupKeyword(word string) TokenKind {
	if k, ok := keywords[word]; ok {
		return k
	}
	if _, ok := boolWords[word]; ok {
		return Literal
	}
	return Ident
}

// Token is a classified lexeme and the position of its first character.
// Tokens are never modified after the scanner returns them.
type Token struct {
	Kind TokenKind
	Val  value.Value // set when Kind == Literal
	Name string      // set when Kind == Ident
	Pos  Pos
}

// String returns a short description: the literal's debug form, the
// identifier name, or the kind's spelling.
func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return t.Val.GoString()
	case Ident:
		return "Ident(" + t.Name + ")"
	}
	return t.Kind.String()
}
