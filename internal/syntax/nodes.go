package syntax

import "github.com/you-not-fish/aqa/internal/value"

// ----------------------------------------------------------------------------
// Interfaces
//
// Only expressions exist so far. Statement keywords are scanned but have no
// productions, so there is no Stmt interface yet.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the node's defining token
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Expressions

// BasicLit represents a literal: 42, 2.5, True, 'text'.
type BasicLit struct {
	expr
	Value value.Value
}

// UnaryExpr represents a prefix operation: NOT X, -X, AND X.
// Its position is that of the operator.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// BinaryExpr represents a binary operation: X Op Y.
// Its position is that of the operator.
type BinaryExpr struct {
	expr
	X  Expr
	Op Token
	Y  Expr
}

// NewBasicLit returns a literal node for v at pos.
func NewBasicLit(v value.Value, pos Pos) *BasicLit {
	n := &BasicLit{Value: v}
	n.pos = pos
	return n
}

// NewUnary returns a prefix operation node positioned at op.
func NewUnary(op Token, x Expr) *UnaryExpr {
	n := &UnaryExpr{Op: op, X: x}
	n.pos = op.Pos
	return n
}

// NewBinary returns a binary operation node positioned at op.
func NewBinary(x Expr, op Token, y Expr) *BinaryExpr {
	n := &BinaryExpr{X: x, Op: op, Y: y}
	n.pos = op.Pos
	return n
}

// Op returns a payload-free operator token of kind k at pos, for building
// trees without scanning.
func Op(k TokenKind, pos Pos) Token {
	return Token{Kind: k, Pos: pos}
}
