package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeKind identifies the variant of a pattern tree node.
type NodeKind int

const (
	KindLiteral    NodeKind = iota // exact text match against one input item
	KindVariable                   // matches any single item and records a capture
	KindOperator                   // like a literal, but drawn from the operator symbol set
	KindSequence                   // ordered children matched consecutively
	KindOptional                   // nested sequence whose failure is not a match failure
	KindRepetition                 // single child matched greedily, bounded by a quantifier
)

func (k NodeKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindVariable:
		return "variable"
	case KindOperator:
		return "operator"
	case KindSequence:
		return "sequence"
	case KindOptional:
		return "optional"
	case KindRepetition:
		return "repetition"
	default:
		return "unknown"
	}
}

// Node is a single node in a parsed pattern tree. The tree is strictly
// parent-owned with no cycles, and is read-only after parsing, so one tree
// may be shared by any number of concurrent matchers.
//
// Text holds the literal or operator text, the variable name, or the
// quantifier symbol ("*", "+" or "?") for repetition nodes. Pos is the byte
// offset into the original pattern text and is used only for diagnostics.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
	Pos      int
}

// NewLiteral returns a literal leaf matching items whose content equals text.
func NewLiteral(text string, pos int) *Node {
	return &Node{Kind: KindLiteral, Text: text, Pos: pos}
}

// NewVariable returns a variable leaf capturing one item under name.
func NewVariable(name string, pos int) *Node {
	return &Node{Kind: KindVariable, Text: name, Pos: pos}
}

// NewOperator returns an operator leaf for one of the symbols in OperatorSet.
func NewOperator(symbol string, pos int) *Node {
	return &Node{Kind: KindOperator, Text: symbol, Pos: pos}
}

// NewSequence returns a sequence node over the given children.
func NewSequence(pos int, children ...*Node) *Node {
	return &Node{Kind: KindSequence, Children: children, Pos: pos}
}

// NewOptional returns an optional node whose children form one nested sequence.
func NewOptional(pos int, children ...*Node) *Node {
	return &Node{Kind: KindOptional, Children: children, Pos: pos}
}

// NewRepetition returns a repetition of child bounded by quantifier,
// one of "*", "+" or "?".
func NewRepetition(quantifier string, child *Node, pos int) *Node {
	return &Node{Kind: KindRepetition, Text: quantifier, Children: []*Node{child}, Pos: pos}
}

// Equal reports structural equality: same kind, text, and children, in order.
// Positions are diagnostic metadata and do not participate.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text || len(n.Children) != len(other.Children) {
		return false
	}
	for i, child := range n.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree with indented children, for debugging output.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (n *Node) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case KindSequence, KindOptional:
		fmt.Fprintf(sb, "%s%s(%d children):\n", indent, n.Kind, len(n.Children))
	case KindRepetition:
		fmt.Fprintf(sb, "%s%s(%s):\n", indent, n.Kind, n.Text)
	default:
		fmt.Fprintf(sb, "%s%s(%s)\n", indent, n.Kind, strconv.Quote(n.Text))
	}
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
}

// OperatorSet holds the symbols recognized as operator leaves.
var OperatorSet = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '=': true,
}

// repetitionSet holds the quantifier symbols eligible for postfix attachment.
var repetitionSet = map[byte]bool{
	'*': true, '+': true, '?': true,
}

// IsOperator reports whether c is in the operator symbol set.
func IsOperator(c byte) bool {
	return OperatorSet[c]
}
