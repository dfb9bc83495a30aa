package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnoverse/macrex"
	"github.com/gnoverse/macrex/expr"
	"github.com/gnoverse/macrex/pattern"
	"github.com/gnoverse/macrex/tokenizer"
)

var envVars []string

var calcCmd = &cobra.Command{
	Use:   "calc <expression>",
	Short: "Evaluate a binary arithmetic expression via rule dispatch",
	Long: `Evaluate a binary arithmetic expression via rule dispatch.

The expression is tokenized, matched against one rule per operator, and the
winning rule builds and evaluates an expression tree. Variables are supplied
with --var name=value.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := expr.Env{}
		for _, v := range envVars {
			name, value, ok := strings.Cut(v, "=")
			if !ok {
				color.Red("error: malformed --var %q, want name=value", v)
				os.Exit(1)
			}
			parsed, err := expr.ParseOperand(value).Eval(nil)
			if err != nil {
				color.Red("error: --var %s: %v", name, err)
				os.Exit(1)
			}
			env[name] = parsed
		}

		tokens, err := tokenizer.Tokenize(args[0])
		if err != nil {
			color.Red("error: %v", err)
			os.Exit(1)
		}

		result, err := calcExpander(env).Expand(tokenizer.Contents(tokens))
		if err != nil {
			color.Red("error: %v", err)
			os.Exit(1)
		}
		fmt.Println(result)
	},
}

// calcExpander builds one rule per operator symbol; each generator turns
// its captured operands into an expression tree and evaluates it.
func calcExpander(env expr.Env) *macrex.Expander[string, float64] {
	rules := make([]*macrex.Rule[string, float64], 0, 4)
	for _, op := range []string{"+", "-", "*", "/"} {
		op := op
		rule, err := macrex.NewNamedRule(op, fmt.Sprintf(`$lhs \%s $rhs`, op),
			func(_ []string, caps []pattern.Capture[string]) (float64, error) {
				tree, err := expr.Binary(op, expr.ParseOperand(caps[0].Value), expr.ParseOperand(caps[1].Value))
				if err != nil {
					return 0, err
				}
				return tree.Eval(env)
			})
		if err != nil {
			panic(err) // patterns are fixed at compile time
		}
		rules = append(rules, rule)
	}
	return macrex.NewStringExpander(rules...)
}

func init() {
	calcCmd.Flags().StringArrayVar(&envVars, "var", nil, "Variable binding name=value (repeatable)")
	rootCmd.AddCommand(calcCmd)
}
