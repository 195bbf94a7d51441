// Package value implements the run-time value model shared by the scanner,
// parser, and evaluator.
package value

import "fmt"

// Kind describes which variant a Value holds.
type Kind uint8

const (
	Invalid Kind = iota // zero Value

	KindInt   // 64-bit signed integer
	KindFloat // 64-bit binary floating point
	KindBool  // True or False
	KindText  // string

	kindCount
)

// Info describes properties of a kind.
type Info uint8

const (
	IsInteger Info = 1 << iota
	IsFloat
	IsBoolean
	IsText
	IsNumeric = IsInteger | IsFloat
)

// kinds is indexed by Kind. Every Kind except Invalid must set at least
// one info flag; the evaluator refuses to start otherwise.
var kinds = [kindCount]struct {
	name string
	info Info
}{
	Invalid:   {"invalid", 0},
	KindInt:   {"int", IsInteger},
	KindFloat: {"float", IsFloat},
	KindBool:  {"bool", IsBoolean},
	KindText:  {"text", IsText},
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Info returns the property flags of the kind.
func (k Kind) Info() Info {
	if k < kindCount {
		return kinds[k].info
	}
	return 0
}

// IsNumeric reports whether k is KindInt or KindFloat.
func (k Kind) IsNumeric() bool {
	return k.Info()&IsNumeric != 0
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, kindCount-1)
	for k := Invalid + 1; k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}
