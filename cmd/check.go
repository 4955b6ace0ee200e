package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/answer"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check <answer> <correct-answer>",
	Short: "Check whether an answer is equivalent to the correct answer",
	Long: `Check whether an answer is equivalent to the correct answer.

Decimals, fractions, ratios and arithmetic expressions are compared by value,
so "1/2", "0.5" and "2/4" all match 0.5. Exits with status 1 when the answers
differ.`,
	Example: `  middlemath check 1/2 0.5
  middlemath check "2(3+4)" 14
  middlemath check 6:9 2:3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if answer.Equivalent(args[0], args[1]) {
			fmt.Fprintln(out, theme.Correct.Render("✓ equivalent"))
			return nil
		}
		fmt.Fprintln(out, theme.Incorrect.Render("✗ not equivalent"))
		return exitError{code: 1}
	},
}
