package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Generate many problems per generator and validate each one",
	Long: `Runs every generator of every topic repeatedly and checks each problem:
non-empty text, a well-formed answer, an answer that matches itself in its
displayed form, and generator-specific structure checks.

Exits non-zero when any problem fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trials, _ := cmd.Flags().GetInt("trials")
		seed, _ := cmd.Flags().GetUint64("seed")

		s := sampler.Default()
		if seed != 0 {
			s = sampler.NewSeeded(seed)
		}
		acfg := problemgen.DefaultAuditConfig()
		if trials > 0 {
			acfg.Trials = trials
		}

		report := problemgen.Audit(problemgen.Default(), s, acfg)
		out := cmd.OutOrStdout()

		for _, f := range report.Findings {
			fmt.Fprintln(out, theme.Incorrect.Render("✗ ")+f.String())
			fmt.Fprintf(out, "    question: %s\n", f.Problem.Question)
		}
		if !report.OK() {
			fmt.Fprintf(out, "%d of %d problems failed\n", len(report.Findings), report.Checked)
			return exitError{code: 1}
		}
		fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf("✓ %d problems checked", report.Checked)))
		return nil
	},
}

func init() {
	auditCmd.Flags().Int("trials", 0, "Problems per generator (default 200)")
	auditCmd.Flags().Uint64("seed", 0, "Seed for a reproducible run (0 = random)")
}
