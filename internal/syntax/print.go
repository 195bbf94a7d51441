package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/aqa/internal/value"
)

// Fprint writes an indented textual representation of the tree to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *BasicLit:
		p.printf("BasicLit %s %#v\n", n.pos, n.Value)

	case *UnaryExpr:
		p.printf("UnaryOp %s %s\n", n.pos, n.Op.Kind)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryOp %s %s\n", n.pos, n.Op.Kind)
		p.indent++
		p.printf("X:\n")
		p.indent++
		p.print(n.X)
		p.indent--
		p.printf("Y:\n")
		p.indent++
		p.print(n.Y)
		p.indent--
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns a fully parenthesized one-line form of e, such as
// ((1 + 2) * 3). Text literals are quoted and escaped so that the result
// scans back to the same tree.
func ExprString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch x := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *BasicLit:
		b.WriteString(litString(x))
	case *UnaryExpr:
		b.WriteByte('(')
		b.WriteString(x.Op.Kind.String())
		if x.Op.Kind.IsKeyword() {
			b.WriteByte(' ')
		}
		writeExpr(b, x.X)
		b.WriteByte(')')
	case *BinaryExpr:
		b.WriteByte('(')
		writeExpr(b, x.X)
		b.WriteByte(' ')
		b.WriteString(x.Op.Kind.String())
		b.WriteByte(' ')
		writeExpr(b, x.Y)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

// litString returns the source form of a literal.
func litString(x *BasicLit) string {
	if x.Value.Kind() != value.KindText {
		return x.Value.String()
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range x.Value.AsText() {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// FprintTokens writes one line per token to w: position, kind, and the
// literal or identifier payload when there is one.
func FprintTokens(w io.Writer, toks []Token) error {
	for _, t := range toks {
		var err error
		switch t.Kind {
		case Literal:
			_, err = fmt.Fprintf(w, "%-8s %-10s %#v\n", t.Pos, t.Kind, t.Val)
		case Ident:
			_, err = fmt.Fprintf(w, "%-8s %-10s %s\n", t.Pos, t.Kind, t.Name)
		default:
			_, err = fmt.Fprintf(w, "%-8s %s\n", t.Pos, t.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
