package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first order, left operand before right.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *BasicLit:
		// leaf

	case *UnaryExpr:
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)
	}
}

// Inspect calls f for every node in the tree, in the order Walk visits
// them.
func Inspect(node Node, f func(Node)) {
	Walk(node, func(n Node) bool {
		f(n)
		return true
	})
}
