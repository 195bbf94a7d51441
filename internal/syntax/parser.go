package syntax

// Parser performs syntax analysis over a scanned token sequence.
//
// Parsing is fail-fast: the first error is returned and no partial tree is
// produced. The cursor only moves forward and never passes the final EOF.
type Parser struct {
	toks []Token
	i    int   // index of the current token
	tok  Token // toks[i]
}

// NewParser creates a new Parser over toks. If toks does not end in EOF,
// an EOF token is appended so the cursor cannot run off the end.
func NewParser(toks []Token) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Kind != EOF {
		var pos Pos
		if n > 0 {
			pos = toks[n-1].Pos
		} else {
			pos = NewPos("", 1, 1)
		}
		toks = append(toks[:n:n], Token{Kind: EOF, Pos: pos})
	}
	p := &Parser{toks: toks}
	p.tok = toks[0]
	return p
}

// ParseSource scans and parses src as a single expression.
func ParseSource(filename, src string) (Expr, error) {
	toks, err := ScanAll(filename, src)
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. It stays on EOF once reached.
func (p *Parser) next() {
	if p.tok.Kind == EOF {
		return
	}
	p.i++
	p.tok = p.toks[p.i]
}

// got reports whether the current token has kind k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k TokenKind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// skipLineBreaks consumes a run of LineBreak tokens.
func (p *Parser) skipLineBreaks() {
	for p.got(LineBreak) {
	}
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) unexpected() error {
	return &ParseError{Pos: p.tok.Pos, Kind: UnexpectedToken, Tok: p.tok}
}

// ----------------------------------------------------------------------------
// Parsing entry points

// Parse parses one complete expression. Line breaks before and after it
// are ignored; any other token after it is an error.
func (p *Parser) Parse() (Expr, error) {
	p.skipLineBreaks()
	x, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipLineBreaks()
	if p.tok.Kind != EOF {
		return nil, p.unexpected()
	}
	return x, nil
}

// ParseExpr parses one expression starting at the current token and
// leaves the cursor on the first token after it.
func (p *Parser) ParseExpr() (Expr, error) {
	return p.binaryExpr(0)
}

// ----------------------------------------------------------------------------
// Expressions

// binaryExpr parses a binary expression whose operators all bind tighter
// than prec. Operators of equal precedence fold to the left.
func (p *Parser) binaryExpr(prec int) (Expr, error) {
	x, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		oprec := p.tok.Kind.Precedence()
		if oprec <= prec {
			return x, nil
		}

		op := p.tok
		p.next() // consume operator

		y, err := p.binaryExpr(oprec)
		if err != nil {
			return nil, err
		}
		x = NewBinary(x, op, y)
	}
}

// unaryExpr parses a prefix operation or an operand.
//
//	unary := ( "NOT" | "AND" | "-" ) unary | primary
//
// Prefix "-" goes beyond the NOT/AND grammar of the exam dialect so that
// numeric negation can be written; without it "-1" is an unexpected token.
func (p *Parser) unaryExpr() (Expr, error) {
	switch p.tok.Kind {
	case Not, And, Sub:
		op := p.tok
		p.next()
		x, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		return NewUnary(op, x), nil
	}
	return p.operand()
}

// operand parses a literal or a parenthesized expression.
func (p *Parser) operand() (Expr, error) {
	switch p.tok.Kind {
	case Literal:
		x := NewBasicLit(p.tok.Val, p.tok.Pos)
		p.next()
		return x, nil

	case Lparen:
		p.next()
		x, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if !p.got(Rparen) {
			return nil, &ParseError{Pos: p.tok.Pos, Kind: ExpectedRightParen, Tok: p.tok}
		}
		return x, nil
	}
	return nil, p.unexpected()
}
