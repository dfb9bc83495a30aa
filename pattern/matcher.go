package pattern

import "fmt"

// Capture is one (name, value) pair recorded by a variable node. Captures
// are order-preserving and not deduplicated: the same name appears once per
// item it matched, e.g. under a repetition.
type Capture[T any] struct {
	Name  string
	Value T
}

// Matcher walks a pattern tree over one input sequence. The tree is shared
// and read-only; all mutable state (cursor, captures, error) belongs to the
// matcher instance, so concurrent matches against one tree need one matcher
// each. A matcher is meant for a single Match call and discarded afterwards.
type Matcher[T any] struct {
	root    *Node
	input   []T
	content func(T) string

	pos      int
	captures []Capture[T]
	err      *Diagnostic
}

// NewMatcher returns a matcher for root over input. content projects an
// input item to the text compared against literal and operator nodes; the
// item itself, not its projection, is stored in captures.
func NewMatcher[T any](root *Node, input []T, content func(T) string) *Matcher[T] {
	return &Matcher[T]{root: root, input: input, content: content}
}

// MatchStrings is a convenience constructor for plain string inputs, where
// each element is its own content.
func MatchStrings(root *Node, input []string) *Matcher[string] {
	return NewMatcher(root, input, func(s string) string { return s })
}

// Match runs the pattern over the input from the start. Trailing input
// beyond what the pattern consumes is not an error. On failure Err holds
// the diagnostic of the failing node.
func (m *Matcher[T]) Match() bool {
	m.pos = 0
	m.captures = nil
	m.err = nil
	return m.matchNode(m.root)
}

// Captures returns the captures recorded by the last Match call, in match
// order.
func (m *Matcher[T]) Captures() []Capture[T] {
	return m.captures
}

// Err returns the diagnostic from the last failed Match call, or nil.
func (m *Matcher[T]) Err() *Diagnostic {
	return m.err
}

func (m *Matcher[T]) matchNode(n *Node) bool {
	switch n.Kind {
	case KindLiteral, KindOperator:
		return m.matchContent(n)
	case KindVariable:
		return m.matchVariable(n)
	case KindSequence:
		return m.matchSequence(n)
	case KindOptional:
		return m.matchOptional(n)
	case KindRepetition:
		return m.matchRepetition(n)
	default:
		return m.fail(n.Pos, "unknown node type")
	}
}

func (m *Matcher[T]) matchContent(n *Node) bool {
	if m.pos >= len(m.input) {
		return m.fail(n.Pos, "unexpected end of input")
	}
	got := m.content(m.input[m.pos])
	if got != n.Text {
		return m.fail(n.Pos, "expected %q, got %q", n.Text, got)
	}
	m.pos++
	return true
}

func (m *Matcher[T]) matchVariable(n *Node) bool {
	if m.pos >= len(m.input) {
		return m.fail(n.Pos, "unexpected end of input")
	}
	m.captures = append(m.captures, Capture[T]{Name: n.Text, Value: m.input[m.pos]})
	m.pos++
	return true
}

// matchSequence matches children strictly in order. The first child failure
// aborts the whole sequence, restores the cursor, and propagates the
// child's diagnostic unchanged.
func (m *Matcher[T]) matchSequence(n *Node) bool {
	saved := m.pos
	for _, child := range n.Children {
		if !m.matchNode(child) {
			m.pos = saved
			return false
		}
	}
	return true
}

// matchOptional attempts its children like a sequence but always succeeds.
// On a child failure the cursor is restored and the child's diagnostic is
// cleared; captures recorded by children that succeeded before the failing
// one are kept. That capture retention mirrors the reference behavior and
// is pinned down by tests; see DESIGN.md before changing it.
func (m *Matcher[T]) matchOptional(n *Node) bool {
	saved := m.pos
	for _, child := range n.Children {
		if !m.matchNode(child) {
			m.pos = saved
			m.err = nil
			break
		}
	}
	return true
}

// matchRepetition greedily matches its single child zero or more times,
// then checks the quantifier bound. The failure that stops the loop is
// discarded, not propagated. Once stopped there is no backtracking: a
// quantified variable followed by a literal will consume the items the
// literal needed.
func (m *Matcher[T]) matchRepetition(n *Node) bool {
	if len(n.Children) != 1 {
		return m.fail(n.Pos, "repetition requires exactly one child")
	}
	child := n.Children[0]

	matches := 0
	for m.pos < len(m.input) {
		before := m.pos
		savedErr := m.err
		if !m.matchNode(child) {
			m.pos = before
			m.err = savedErr
			break
		}
		matches++
		if m.pos == before {
			// zero-width child match; stop instead of looping forever
			break
		}
	}

	switch n.Text {
	case "*":
		return true
	case "+":
		if matches < 1 {
			return m.fail(n.Pos, "expected one or more matches")
		}
		return true
	case "?":
		if matches > 1 {
			return m.fail(n.Pos, "expected zero or one match, got multiple")
		}
		return true
	default:
		return m.fail(n.Pos, "unknown quantifier %q", n.Text)
	}
}

func (m *Matcher[T]) fail(pos int, format string, args ...any) bool {
	m.err = &Diagnostic{Message: fmt.Sprintf(format, args...), Pos: pos}
	return false
}
