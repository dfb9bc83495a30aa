// Package macrex pairs patterns from the pattern package with generator
// functions and expands inputs by trying an ordered rule list, first match
// wins. It is the Go analogue of declarative macro rules: a rule's pattern
// describes the shape of the input and its generator builds the result from
// the captured pieces.
package macrex

import (
	"fmt"

	"github.com/gnoverse/macrex/pattern"
)

// Generator consumes the original input and the ordered captures of a
// successful match and produces the rule's result. Generators are opaque to
// the matching core; any error they return is handed back to the Expand
// caller unchanged.
type Generator[T, R any] func(input []T, caps []pattern.Capture[T]) (R, error)

// Rule is an immutable pairing of one pattern with one generator. The
// pattern is parsed once, at construction, so a rule list can be built at
// program start and shared by concurrent Expand calls with no further
// parsing or locking.
type Rule[T, R any] struct {
	name string
	src  string
	tree *pattern.Node
	gen  Generator[T, R]
}

// NewRule parses src eagerly and binds it to gen. Patterns with parse
// diagnostics are rejected here rather than surfacing later during
// dispatch.
func NewRule[T, R any](src string, gen Generator[T, R]) (*Rule[T, R], error) {
	return NewNamedRule(src, src, gen)
}

// NewNamedRule is NewRule with a display name used in error messages and
// rule listings.
func NewNamedRule[T, R any](name, src string, gen Generator[T, R]) (*Rule[T, R], error) {
	tree, diag := pattern.Parse(src)
	if diag != nil {
		return nil, fmt.Errorf("rule %q: parsing pattern: %w", name, diag)
	}
	return &Rule[T, R]{name: name, src: src, tree: tree, gen: gen}, nil
}

// Name returns the rule's display name.
func (r *Rule[T, R]) Name() string { return r.name }

// Pattern returns the rule's pattern source text.
func (r *Rule[T, R]) Pattern() string { return r.src }

// Tree returns the parsed pattern tree. The tree is shared and must not be
// mutated.
func (r *Rule[T, R]) Tree() *pattern.Node { return r.tree }
