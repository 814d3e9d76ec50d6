package loopflow

import (
	"golang.org/x/exp/slices"
)

// ConstructHint describes how a host editor or formatter should treat one of
// the library's looping constructs at a call site: BodyIndex is the argument
// index at which the loop body starts (arguments from there on indent as
// body), and Keyword indicates the construct name should be colored as a
// keyword. The core never consumes these hints; they are provided outward
// for tooling only.
type ConstructHint struct {
	Name      string
	BodyIndex int
	Keyword   bool
}

// constructHints is the static formatting table, in declaration order.
var constructHints = []ConstructHint{
	{Name: `Spin`, BodyIndex: 2, Keyword: true},
	{Name: `While`, BodyIndex: 1, Keyword: true},
	{Name: `WhileLabeled`, BodyIndex: 2, Keyword: true},
	{Name: `Until`, BodyIndex: 1, Keyword: true},
}

// Constructs returns the formatting hints for every looping construct, in a
// stable order. The result is a copy.
func Constructs() []ConstructHint {
	return slices.Clone(constructHints)
}

// BodyIndex reports the body-start argument index for the named construct,
// and whether the name is known.
func BodyIndex(name string) (int, bool) {
	for _, h := range constructHints {
		if h.Name == name {
			return h.BodyIndex, true
		}
	}
	return 0, false
}

// IsKeyword reports whether the named construct should be rendered as a
// keyword.
func IsKeyword(name string) bool {
	for _, h := range constructHints {
		if h.Name == name {
			return h.Keyword
		}
	}
	return false
}
