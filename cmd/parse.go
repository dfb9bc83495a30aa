package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnoverse/macrex/pattern"
)

var parseCmd = &cobra.Command{
	Use:   "parse <pattern>",
	Short: "Parse a pattern and print its tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		tree, diag := pattern.Parse(src)
		fmt.Println(tree)

		if diag != nil {
			printDiagnostic(src, diag)
			os.Exit(1)
		}
	},
}

// printDiagnostic shows the pattern with a caret under the offending
// position.
func printDiagnostic(src string, diag *pattern.Diagnostic) {
	color.Red("error: %s", diag.Error())
	fmt.Fprintln(os.Stderr, src)
	pos := diag.Pos
	if pos > len(src) {
		pos = len(src)
	}
	fmt.Fprintln(os.Stderr, strings.Repeat(" ", pos)+"^")
}
