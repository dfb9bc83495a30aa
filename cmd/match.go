package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/macrex/pattern"
	"github.com/gnoverse/macrex/tokenizer"
)

var tokenizeInput bool

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input...>",
	Short: "Match a pattern against input items and print the captures",
	Long: `Match a pattern against input items and print the captures.

By default each remaining argument is one input item. With --tokenize the
single remaining argument is scanned into tokens first and the pattern is
matched over the token contents.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		tree, diag := pattern.Parse(src)
		if diag != nil {
			printDiagnostic(src, diag)
			os.Exit(1)
		}

		input := args[1:]
		if tokenizeInput {
			if len(input) != 1 {
				color.Red("error: --tokenize expects exactly one input argument")
				os.Exit(1)
			}
			tokens, err := tokenizer.Tokenize(input[0])
			if err != nil {
				logger.Error("tokenizing input", zap.Error(err))
				os.Exit(1)
			}
			input = tokenizer.Contents(tokens)
		}

		m := pattern.MatchStrings(tree, input)
		if !m.Match() {
			color.Red("no match: %s", m.Err().Error())
			os.Exit(1)
		}

		color.Green("match")
		for _, c := range m.Captures() {
			color.Cyan("  %s = %q", c.Name, c.Value)
		}
	},
}

func init() {
	matchCmd.Flags().BoolVar(&tokenizeInput, "tokenize", false, "Scan a single input argument into tokens first")
}
