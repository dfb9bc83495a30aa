/*
Package pattern implements a small pattern-description language and the
matching engine that recognizes structural shapes in a sequence of input
items, extracting named sub-values along the way.

# Pattern Syntax

A pattern is a whitespace-separated sequence of elements:

  - $name — variable: matches any single input item and records a
    (name, item) capture
  - \x — escape: the next character becomes a literal regardless of its
    normal meaning
  - ( ... ) — group: a nested sequence
  - [ ... ] — optional: a nested sequence whose failure never fails the
    overall match
  - + - * / = — operator tokens, matched against an item's text
  - anything else — a literal, matched against an item's text byte-exactly

A quantifier written directly after an element, with no intervening
whitespace, repeats that element:

	$item+ $last     one-or-more items, then one more
	(a b)*           the group, zero or more times

With whitespace before it the same character is an ordinary operator
token; adjacency is the sole disambiguation.

# Parsing

Parse is resilient: malformed input produces a best-effort tree plus the
first Diagnostic encountered, never a hard failure. Callers decide whether
a partial tree is still useful.

# Matching

A Matcher is built per attempt from a shared, read-only tree, an input
slice of any element type, and a projection from element to comparable
text. Matching is greedy with structural backtrack-to-saved-position
semantics only: sequences and optionals restore the cursor on failure, but
a stopped repetition is never re-run shorter.

	tree, diag := pattern.Parse("$lhs + $rhs")
	if diag != nil { ... }
	m := pattern.MatchStrings(tree, []string{"10", "+", "20"})
	if m.Match() {
		for _, c := range m.Captures() { ... }
	}
*/
package pattern
