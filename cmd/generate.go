package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate practice problems for a grade and topic",
	Example: `  middlemath generate --grade 7 --topic ratios
  middlemath generate --grade 8 --topic functions --count 5 --seed 42 --json`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Int("grade", 0, "Grade level: 7 or 8 (required)")
	f.String("topic", "", "Topic ID as listed by the topics command (required)")
	f.Int("count", 1, "Number of problems")
	f.Uint64("seed", 0, "Seed for reproducible problems (0 = random)")
	f.Bool("json", false, "Print one JSON object per line")
	_ = generateCmd.MarkFlagRequired("grade")
	_ = generateCmd.MarkFlagRequired("topic")
}

// generatedProblem is the JSON line written by generate --json.
type generatedProblem struct {
	Grade int    `json:"grade"`
	Topic string `json:"topic"`
	problemgen.Problem
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gradeVal, _ := cmd.Flags().GetInt("grade")
	topicVal, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	asJSON, _ := cmd.Flags().GetBool("json")

	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	reg := problemgen.Default()
	grade, err := reg.ParseGrade(gradeVal)
	if err != nil {
		return err
	}
	topic, err := reg.ParseTopicID(grade, topicVal)
	if err != nil {
		return err
	}

	s := sampler.Default()
	if seed != 0 {
		s = sampler.NewSeeded(seed)
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for i := 1; i <= count; i++ {
		p, err := reg.GenerateWith(s, grade, topic)
		if err != nil {
			return err
		}
		if asJSON {
			if err := enc.Encode(generatedProblem{Grade: int(grade), Topic: string(topic), Problem: p}); err != nil {
				return fmt.Errorf("encode problem: %w", err)
			}
			continue
		}
		printProblem(out, i, count, p)
	}
	return nil
}

func printProblem(w io.Writer, i, count int, p problemgen.Problem) {
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("── Problem %d/%d ──", i, count)))
	fmt.Fprintln(w, theme.Question.Render(p.Question))
	fmt.Fprintf(w, "%s %s\n", theme.Subtitle.Render("Answer:"), p.Answer.Display())
	fmt.Fprintf(w, "%s %s\n", theme.Subtitle.Render("Hint:"), theme.Hint.Render(p.Hint))
	fmt.Fprintln(w, theme.Subtitle.Render("Solution:"))
	for _, line := range strings.Split(p.Solution, "\n") {
		fmt.Fprintln(w, "  "+theme.Solution.Render(line))
	}
	fmt.Fprintln(w)
}
