package macrex

import (
	"errors"
	"fmt"

	"github.com/gnoverse/macrex/pattern"
)

// ErrNoMatchingRule is returned (wrapped) by Expand when every rule in the
// list has been tried without a match. Individual rule mismatches are not
// surfaced; exhaustion is the only dispatch failure.
var ErrNoMatchingRule = errors.New("no matching rule")

// Expander tries an ordered list of rules against an input and invokes the
// first generator whose pattern matches. Rule order is significant and
// fixed at construction; an Expander is safe for concurrent use.
type Expander[T, R any] struct {
	content func(T) string
	rules   []*Rule[T, R]
}

// NewExpander builds an expander over rules, using content to project an
// input element to the text the patterns compare against.
func NewExpander[T, R any](content func(T) string, rules ...*Rule[T, R]) *Expander[T, R] {
	return &Expander[T, R]{content: content, rules: rules}
}

// NewStringExpander builds an expander for plain string inputs.
func NewStringExpander[R any](rules ...*Rule[string, R]) *Expander[string, R] {
	return NewExpander(func(s string) string { return s }, rules...)
}

// Rules returns the rule list in dispatch order.
func (e *Expander[T, R]) Rules() []*Rule[T, R] { return e.rules }

// Expand runs the rules in list order against input. The first rule whose
// pattern matches has its generator invoked with the input and the ordered
// captures, and its result is returned immediately; later rules are not
// attempted. If no rule matches, the returned error wraps ErrNoMatchingRule.
func (e *Expander[T, R]) Expand(input []T) (R, error) {
	for _, rule := range e.rules {
		m := pattern.NewMatcher(rule.tree, input, e.content)
		if m.Match() {
			return rule.gen(input, m.Captures())
		}
	}
	var zero R
	return zero, fmt.Errorf("expanding %d-item input: %w", len(input), ErrNoMatchingRule)
}
