package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics by grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		gradeVal, _ := cmd.Flags().GetInt("grade")
		reg := problemgen.Default()

		grades := reg.Grades()
		if gradeVal != 0 {
			g, err := reg.ParseGrade(gradeVal)
			if err != nil {
				return err
			}
			grades = []problemgen.Grade{g}
		}

		out := cmd.OutOrStdout()
		for i, g := range grades {
			if i > 0 {
				fmt.Fprintln(out)
			}
			topics, err := reg.Topics(g)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Grade %d", g)))
			for _, t := range topics {
				fmt.Fprintf(out, "  %-12s  %s\n", t.ID, t.Title)
			}
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().Int("grade", 0, "Only list topics for this grade (7 or 8)")
}
