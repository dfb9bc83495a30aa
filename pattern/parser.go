package pattern

import "unicode"

// Parse builds a pattern tree from text. Parsing is a single left-to-right
// pass and never aborts on malformed input: the best-effort tree built so
// far is always returned, along with the first diagnostic encountered (or
// nil when the pattern is well formed). Parsing the same text twice yields
// structurally identical trees.
func Parse(text string) (*Node, *Diagnostic) {
	p := &parser{input: text}
	root := p.parseSequence()
	p.skipWhitespace()
	if p.pos < len(p.input) {
		p.fail("unexpected characters at end of pattern", p.pos)
	}
	return root, p.err
}

type parser struct {
	input string
	pos   int
	err   *Diagnostic
}

// fail records a diagnostic. Only the first one is kept; parsing keeps
// progressing so the caller still receives a usable partial tree.
func (p *parser) fail(msg string, pos int) {
	if p.err == nil {
		p.err = &Diagnostic{Message: msg, Pos: pos}
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// parseSequence consumes elements until end of text or a closing
// delimiter, so nested groups terminate correctly.
func (p *parser) parseSequence() *Node {
	seq := &Node{Kind: KindSequence, Pos: p.pos}

	for p.pos < len(p.input) {
		c := p.peek()
		if c == ')' || c == '}' || c == ']' {
			break
		}
		if isSpace(c) {
			p.pos++
			continue
		}

		// A quantifier adjacent to the previous element wraps it into a
		// repetition; with whitespace in between (or nothing to attach to)
		// the same character reads as an operator token. This adjacency
		// rule is the sole disambiguation between the two.
		if repetitionSet[c] && p.postfixAttachable(seq) {
			prev := seq.Children[len(seq.Children)-1]
			seq.Children[len(seq.Children)-1] = NewRepetition(string(c), prev, p.pos)
			p.pos++
			continue
		}
		if IsOperator(c) {
			seq.Children = append(seq.Children, NewOperator(string(c), p.pos))
			p.pos++
			continue
		}

		if node := p.parseAtom(); node != nil {
			seq.Children = append(seq.Children, node)
		}
	}
	return seq
}

func (p *parser) postfixAttachable(seq *Node) bool {
	if len(seq.Children) == 0 {
		return false
	}
	return p.pos > 0 && !isSpace(p.input[p.pos-1])
}

func (p *parser) parseAtom() *Node {
	start := p.pos

	switch p.peek() {
	case '$':
		p.pos++
		return p.parseVariable(start)

	case '\\':
		p.pos++
		if p.pos >= len(p.input) {
			p.fail("unexpected end of pattern after escape character", start)
			return nil
		}
		lit := NewLiteral(string(p.input[p.pos]), start)
		p.pos++
		return lit

	case '(':
		p.pos++
		group := p.parseSequence()
		group.Pos = start
		p.skipWhitespace()
		if p.peek() == ')' {
			p.pos++
		} else {
			p.fail("unclosed group", start)
		}
		return group

	case '[':
		p.pos++
		inner := p.parseSequence()
		p.skipWhitespace()
		if p.peek() == ']' {
			p.pos++
		} else {
			p.fail("unclosed optional group", start)
		}
		return &Node{Kind: KindOptional, Children: inner.Children, Pos: start}

	default:
		return p.parseLiteral(start)
	}
}

// parseVariable scans the identifier after '$'. A zero-length name is a
// parse error, but the degenerate node is still kept in the tree.
func (p *parser) parseVariable(start int) *Node {
	nameStart := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[nameStart:p.pos]
	if name == "" {
		p.fail("empty variable name", start)
	}
	return NewVariable(name, start)
}

// parseLiteral scans a run of non-structural characters. A lone structural
// character with no other reading (a bare comma, a dangling quantifier)
// becomes a one-character literal so scanning always advances.
func (p *parser) parseLiteral(start int) *Node {
	for p.pos < len(p.input) && !isStructural(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		p.pos++
	}
	return NewLiteral(p.input[start:p.pos], start)
}

func isStructural(c byte) bool {
	switch c {
	case '$', '(', ')', '[', ']', '\\', '?', ',', '}':
		return true
	}
	return IsOperator(c) || isSpace(c)
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// isSpace checks if the given byte is a space, tab, newline, etc. using unicode.IsSpace.
func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}
