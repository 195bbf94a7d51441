package syntax

import (
	"unicode"
	"unicode/utf8"
)

// source is a character cursor over decoded source text. nextch is the only
// way to advance it, and it updates line and column together.
type source struct {
	buf      string
	filename string
	line     int
	col      int

	ch   rune // current character, -1 at end of input
	offs int  // byte offset of the character after ch
	eof  bool
}

// init positions the cursor on the first character of buf.
func (s *source) init(filename, buf string) {
	*s = source{
		buf:      buf,
		filename: filename,
		line:     1,
		col:      0, // becomes 1 on the first nextch
		ch:       -1,
	}
	s.nextch()
}

// nextch advances to the next character.
//
// (line, col) always refers to s.ch. At end of input the position stays on
// the column just past the last character, however often nextch is called.
func (s *source) nextch() {
	if s.eof {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		s.eof = true
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// isLetter reports whether r may start a word.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r >= utf8.RuneSelf && unicode.IsLetter(r)
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isAlnum reports whether r may continue a word.
func isAlnum(r rune) bool {
	return isLetter(r) || isDigit(r) || r >= utf8.RuneSelf && unicode.IsDigit(r)
}

// isWhitespace reports whether r separates tokens.
// '\n' is not whitespace: it scans as a LineBreak token.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
}
