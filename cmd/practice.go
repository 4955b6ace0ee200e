package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/app"
	"github.com/abhisek/middlemath/internal/practice"
	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/screens/home"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice problems for a grade and topic",
	Long: `Practice problems one at a time. Answers are checked by value and every
attempt is written to the practice log.

At the prompt, type ? for a hint or q to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := readPracticeFlags(cmd)
		if err != nil {
			return err
		}
		if flags.tui {
			return runTUI(cmd, flags)
		}
		return runPracticeLoop(cmd, flags)
	},
}

func init() {
	f := practiceCmd.Flags()
	f.Int("grade", 0, "Grade level: 7 or 8 (required)")
	f.String("topic", "", "Topic ID (required)")
	f.Int("count", -1, "Problems per session, 0 = endless (default from config)")
	f.Uint64("seed", 0, "Seed for reproducible problems (0 = random)")
	f.Bool("tui", false, "Use the full-screen practice screen")
	_ = practiceCmd.MarkFlagRequired("grade")
	_ = practiceCmd.MarkFlagRequired("topic")
}

type practiceFlags struct {
	grade problemgen.Grade
	topic problemgen.TopicID
	count int
	seed  uint64
	tui   bool
}

func readPracticeFlags(cmd *cobra.Command) (practiceFlags, error) {
	gradeVal, _ := cmd.Flags().GetInt("grade")
	topicVal, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	tui, _ := cmd.Flags().GetBool("tui")

	if count < 0 {
		count = cfg.Practice.Count
	}

	reg := problemgen.Default()
	grade, err := reg.ParseGrade(gradeVal)
	if err != nil {
		return practiceFlags{}, err
	}
	topic, err := reg.ParseTopicID(grade, topicVal)
	if err != nil {
		return practiceFlags{}, err
	}
	return practiceFlags{grade: grade, topic: topic, count: count, seed: seed, tui: tui}, nil
}

func (f practiceFlags) sampler() *sampler.Sampler {
	if f.seed != 0 {
		return sampler.NewSeeded(f.seed)
	}
	return sampler.Default()
}

// runTUI opens the practice log and starts the terminal UI. An empty topic
// opens the topic picker.
func runTUI(cmd *cobra.Command, flags practiceFlags) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Deps: home.Deps{
			Registry: problemgen.Default(),
			Events:   st.EventRepo(),
			Sampler:  flags.sampler(),
			Count:    flags.count,
			Logger:   slog.Default(),
		},
		Grade: flags.grade,
		Topic: flags.topic,
	})
}

// runPracticeLoop is the line-based practice loop.
func runPracticeLoop(cmd *cobra.Command, flags practiceFlags) error {
	ctx := cmd.Context()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	reg := problemgen.Default()
	set, err := reg.Lookup(flags.grade, flags.topic)
	if err != nil {
		return err
	}

	session := practice.New(ctx, reg, practice.Config{
		Grade:    flags.grade,
		Topic:    flags.topic,
		Count:    flags.count,
		Sampler:  flags.sampler(),
		Recorder: st.EventRepo(),
	})

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "Grade %d · %s\n", flags.grade, set.Title)
	fmt.Fprintln(out, theme.Subtitle.Render("Type ? for a hint, q to stop."))
	fmt.Fprintln(out)

	err = practiceLoop(ctx, out, in, session, flags.count)
	sum := session.End(ctx)

	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("── Score: %s ──", sum.Score())))
	if sum.Served > 0 {
		fmt.Fprintln(out, theme.Accuracy(sum.Accuracy()).Render(fmt.Sprintf("Accuracy: %.0f%%", sum.Accuracy()*100)))
	}
	return err
}

func practiceLoop(ctx context.Context, out io.Writer, in *bufio.Scanner, session *practice.Session, count int) error {
	for i := 1; ; i++ {
		if ctx.Err() != nil {
			return nil
		}
		p, err := session.Next()
		if errors.Is(err, practice.ErrSessionOver) {
			return nil
		}
		if err != nil {
			return err
		}

		header := fmt.Sprintf("── Problem %d ──", i)
		if count > 0 {
			header = fmt.Sprintf("── Problem %d/%d ──", i, count)
		}
		fmt.Fprintln(out, theme.Title.Render(header))
		fmt.Fprintln(out, theme.Question.Render(p.Question))

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !in.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return in.Err()
			}
			input := strings.TrimSpace(in.Text())

			switch strings.ToLower(input) {
			case "":
				continue
			case "q", "quit":
				return nil
			case "?", "hint":
				hint, err := session.Hint()
				if err != nil {
					return fmt.Errorf("hint: %w", err)
				}
				fmt.Fprintln(out, theme.Hint.Render("Hint: "+hint))
				continue
			}

			res, err := session.Submit(ctx, input)
			if err != nil {
				return err
			}
			if res.Correct {
				fmt.Fprintln(out, theme.Correct.Render("✓ Correct! "+res.Answer))
			} else {
				fmt.Fprintf(out, "%s Answer: %s\n", theme.Incorrect.Render("✗ Not quite."), res.Answer)
				fmt.Fprintln(out, theme.Solution.Render(res.Solution))
			}
			fmt.Fprintln(out)
			break
		}
	}
}
