package syntax

import (
	"strconv"
	"strings"

	"github.com/you-not-fish/aqa/internal/value"
)

// Scanner performs lexical analysis on AQA pseudocode source text.
// Each call to Scan returns the next token, left to right.
type Scanner struct {
	source // embedded character cursor

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for src. filename is used only in
// positions and may be empty.
func NewScanner(filename, src string) *Scanner {
	s := new(Scanner)
	s.source.init(filename, src)
	return s
}

// Scan skips whitespace and returns the next token. Once the input is
// exhausted it returns an EOF token, and keeps doing so on every later call.
func (s *Scanner) Scan() (Token, error) {
	s.skipWhitespace()

	pos := s.pos()
	tok := Token{Pos: pos}

	switch {
	case s.ch < 0:
		tok.Kind = EOF
		return tok, nil

	case isLetter(s.ch):
		word := s.scanWord()
		tok.Kind = LookupKeyword(word)
		switch tok.Kind {
		case Literal:
			tok.Val = value.Bool(boolWords[word])
		case Ident:
			tok.Name = word
		}
		return tok, nil

	case isDigit(s.ch):
		v, err := s.scanNumber(pos)
		if err != nil {
			return Token{}, err
		}
		tok.Kind, tok.Val = Literal, v
		return tok, nil

	case s.ch == '\'':
		v, err := s.scanText(pos)
		if err != nil {
			return Token{}, err
		}
		tok.Kind, tok.Val = Literal, v
		return tok, nil
	}

	kind, err := s.scanOperator(pos)
	if err != nil {
		return Token{}, err
	}
	tok.Kind = kind
	return tok, nil
}

// ScanAll scans src to the end and returns every token, including the
// final EOF. The first error aborts scanning and no tokens are returned.
func ScanAll(filename, src string) ([]Token, error) {
	s := NewScanner(filename, src)
	var toks []Token
	for {
		tok, err := s.Scan()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// skipWhitespace skips space, tab, and the other blank characters.
// Newline is not skipped; it scans as LineBreak.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// scanWord scans an identifier, keyword, or boolean word.
func (s *Scanner) scanWord() string {
	s.litBuf.Reset()
	for isAlnum(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	return s.litBuf.String()
}

// scanNumber scans an integer or float literal starting at pos.
//
// Digits and dots are accumulated; any dot makes the literal a float. A
// letter glued to the literal is an error, while any other character ends
// it. Malformed text such as "1.2.3" is reported by the conversion.
func (s *Scanner) scanNumber(pos Pos) (value.Value, error) {
	s.litBuf.Reset()
	isFloat := false
	for {
		switch {
		case isDigit(s.ch):
		case s.ch == '.':
			isFloat = true
		case isLetter(s.ch):
			return value.Value{}, &ScanError{Pos: s.pos(), Kind: UnexpectedChar, Char: s.ch}
		default:
			return convertNumber(s.litBuf.String(), isFloat, pos)
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

func convertNumber(lit string, isFloat bool, pos Pos) (value.Value, error) {
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return value.Value{}, &ScanError{Pos: pos, Kind: FailedToParseFloat}
		}
		return value.Float(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return value.Value{}, &ScanError{Pos: pos, Kind: FailedToParseInt}
	}
	return value.Int(n), nil
}

// scanText scans a quoted text literal whose opening quote is at pos.
// \n is a newline; a backslash before any other character copies it.
func (s *Scanner) scanText(pos Pos) (value.Value, error) {
	s.nextch() // consume opening '
	s.litBuf.Reset()
	for {
		switch s.ch {
		case -1:
			return value.Value{}, &ScanError{Pos: pos, Kind: UnexpectedEOF, Char: '\''}
		case '\'':
			s.nextch()
			return value.Text(s.litBuf.String()), nil
		case '\\':
			s.nextch()
			switch s.ch {
			case -1:
				return value.Value{}, &ScanError{Pos: pos, Kind: UnexpectedEOF, Char: '\''}
			case 'n':
				s.litBuf.WriteByte('\n')
			default:
				s.litBuf.WriteRune(s.ch)
			}
		default:
			s.litBuf.WriteRune(s.ch)
		}
		s.nextch()
	}
}

// scanOperator scans an operator, delimiter, or line break.
func (s *Scanner) scanOperator(pos Pos) (TokenKind, error) {
	ch := s.ch
	s.nextch()

	switch ch {
	case '\n':
		return LineBreak, nil
	case '(':
		return Lparen, nil
	case ')':
		return Rparen, nil
	case '+':
		return Add, nil
	case '-':
		return Sub, nil
	case '*':
		return Mul, nil
	case '/':
		return Div, nil
	case '=':
		return Eql, nil

	case '<':
		switch s.ch {
		case '-':
			s.nextch()
			return Assign, nil
		case '=':
			s.nextch()
			return Leq, nil
		}
		return Lss, nil

	case '>':
		if s.ch == '=' {
			s.nextch()
			return Geq, nil
		}
		return Gtr, nil

	case '!':
		switch s.ch {
		case '=':
			s.nextch()
			return Neq, nil
		case -1:
			return 0, &ScanError{Pos: pos, Kind: UnexpectedEOF, Char: '!'}
		}
		return 0, &ScanError{Pos: s.pos(), Kind: UnexpectedChar, Char: s.ch}
	}

	return 0, &ScanError{Pos: pos, Kind: UnexpectedChar, Char: ch}
}
