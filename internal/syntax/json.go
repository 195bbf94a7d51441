package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toMap(node))
}

// toMap converts a tree into nested maps shared by the JSON and YAML
// printers. Literal values are rendered as strings so that non-finite
// floats survive encoding.
func toMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Value.Kind().String(),
			"value": n.Value.String(),
		}

	case *UnaryExpr:
		return map[string]interface{}{
			"type": "UnaryOp",
			"pos":  n.pos.String(),
			"op":   n.Op.Kind.String(),
			"x":    toMap(n.X),
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type": "BinaryOp",
			"pos":  n.pos.String(),
			"op":   n.Op.Kind.String(),
			"x":    toMap(n.X),
			"y":    toMap(n.Y),
		}
	}

	return map[string]interface{}{"type": "unknown"}
}
