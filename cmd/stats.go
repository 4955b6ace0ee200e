package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("sessions")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		events := st.EventRepo()

		topics, err := events.TopicAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("topic accuracy: %w", err)
		}
		sessions, err := events.RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("recent sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(topics) == 0 && len(sessions) == 0 {
			fmt.Fprintln(out, "No practice recorded yet. Try `middlemath practice`.")
			return nil
		}

		fmt.Fprintln(out, theme.Title.Render("By topic"))
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "GRADE\tTOPIC\tATTEMPTS\tCORRECT\tACCURACY")
		for _, t := range topics {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.0f%%\n", t.Grade, t.Topic, t.Attempts, t.Correct, t.Accuracy()*100)
		}
		tw.Flush()

		if len(sessions) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Title.Render("Recent sessions"))
			tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tGRADE\tTOPIC\tSCORE\tTIME")
			for _, s := range sessions {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d/%d\t%s\n",
					s.Timestamp.Local().Format("2006-01-02 15:04"),
					s.Grade, s.Topic, s.Correct, s.Served,
					time.Duration(s.DurationSecs)*time.Second)
			}
			tw.Flush()
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to show")
}
