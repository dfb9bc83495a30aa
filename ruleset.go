package macrex

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gnoverse/macrex/fmtstr"
	"github.com/gnoverse/macrex/pattern"
)

// RuleSpec is one rule in a YAML rule-set file: a pattern and a text
// template expanded with the captures of a successful match. Template
// placeholders are written {name}; a name captured more than once (under a
// repetition) expands to the values joined with single spaces.
type RuleSpec struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// RuleSetFile is the top-level document of a rule-set file.
type RuleSetFile struct {
	Rules []RuleSpec `yaml:"rules"`
}

// LoadRuleSet reads a YAML rule-set file and builds a string expander from
// it, preserving file order.
func LoadRuleSet(path string) (*Expander[string, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRuleSet(data)
}

// ParseRuleSet builds a string expander from YAML rule-set data. A rule
// whose pattern has a parse diagnostic fails the whole load, naming the
// rule and the offending position.
func ParseRuleSet(data []byte) (*Expander[string, string], error) {
	var file RuleSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshaling rule set: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rule set has no rules")
	}

	rules := make([]*Rule[string, string], 0, len(file.Rules))
	for _, spec := range file.Rules {
		rule, err := NewNamedRule(spec.Name, spec.Pattern, templateGenerator(spec.Template))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return NewStringExpander(rules...), nil
}

// templateGenerator builds a generator substituting captures into a {name}
// template.
func templateGenerator(template string) Generator[string, string] {
	return func(_ []string, caps []pattern.Capture[string]) (string, error) {
		joined := make(map[string]string, len(caps))
		for _, c := range caps {
			if prev, ok := joined[c.Name]; ok {
				joined[c.Name] = prev + " " + c.Value
			} else {
				joined[c.Name] = c.Value
			}
		}
		return fmtstr.FormatNamed(template, joined), nil
	}
}

// Describe renders the rule list, one "name: pattern" line each, for
// listings and watch-mode logging.
func (e *Expander[T, R]) Describe() string {
	var sb strings.Builder
	for _, rule := range e.rules {
		fmt.Fprintf(&sb, "%s: %s\n", rule.name, rule.src)
	}
	return strings.TrimRight(sb.String(), "\n")
}
