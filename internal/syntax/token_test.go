package syntax

import (
	"testing"

	"github.com/you-not-fish/aqa/internal/value"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{EOF, "EOF"},
		{LineBreak, "newline"},
		{Literal, "literal"},
		{Ident, "identifier"},
		{Assign, "<-"},
		{Neq, "!="},
		{Leq, "<="},
		{IntDiv, "DIV"},
		{Not, "NOT"},
		{EndWhile, "ENDWHILE"},
		{Output, "OUTPUT"},
		{tokenCount, "token(36)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for k := TokenKind(0); k < tokenCount; k++ {
		if tokenNames[k] == "" {
			t.Errorf("TokenKind(%d) has no name", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want TokenKind
	}{
		{"CONSTANT", Constant},
		{"DIV", IntDiv},
		{"MOD", Mod},
		{"AND", And},
		{"OR", Or},
		{"NOT", Not},
		{"REPEAT", Repeat},
		{"UNTIL", Until},
		{"WHILE", While},
		{"ENDWHILE", EndWhile},
		{"FOR", For},
		{"TO", To},
		{"IN", In},
		{"ENDFOR", EndFor},
		{"IF", If},
		{"THEN", Then},
		{"ELSE", Else},
		{"ENDIF", EndIf},
		{"OUTPUT", Output},
		{"True", Literal},
		{"False", Literal},

		// Keywords are case-sensitive.
		{"not", Ident},
		{"true", Ident},
		{"TRUE", Ident},
		{"counter", Ident},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.word); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	for word, k := range keywords {
		if !k.IsKeyword() {
			t.Errorf("%s: IsKeyword() = false", word)
		}
		if k.String() != word {
			t.Errorf("keyword %q spells as %q", word, k.String())
		}
	}
	for _, k := range []TokenKind{Add, Lss, Lparen, Literal, EOF} {
		if k.IsKeyword() {
			t.Errorf("%v: IsKeyword() = true", k)
		}
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want int
	}{
		{Eql, PrecEquality},
		{Neq, PrecEquality},
		{Lss, PrecComparison},
		{Geq, PrecComparison},
		{Add, PrecTerm},
		{Sub, PrecTerm},
		{Mul, PrecFactor},
		{Div, PrecFactor},
		{IntDiv, 0},
		{Mod, 0},
		{And, 0},
		{Or, 0},
		{Assign, 0},
		{EOF, 0},
	}

	for _, tt := range tests {
		if got := tt.kind.Precedence(); got != tt.want {
			t.Errorf("%v.Precedence() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Literal, Val: value.Int(3)}, "Int(3)"},
		{Token{Kind: Literal, Val: value.Text("a")}, `Text("a")`},
		{Token{Kind: Ident, Name: "x"}, "Ident(x)"},
		{Token{Kind: Rparen}, ")"},
		{Token{Kind: EOF}, "EOF"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
