package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/middlemath/internal/ui/components"
	"github.com/abhisek/middlemath/internal/ui/layout"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return layout.Center(theme.Incorrect.Render("\n\nError: "+s.errMsg), width)
	case s.problem == nil:
		return layout.Center(theme.Subtitle.Render("\n\nNo problem available."), width)
	case s.confirmQuit:
		return layout.Center(theme.Card.Render(
			theme.Question.Render("End this session?")+"\n\n"+
				theme.Subtitle.Render("Y to see your summary, N to keep going")), width)
	}

	textWidth := min(width-8, 70)
	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Question.Width(textWidth).Render(s.problem.Question), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Center("Answer: "+s.input.View(), width))
	b.WriteString("\n\n")

	if s.hint != "" {
		b.WriteString(layout.Center(theme.Hint.Width(textWidth).Render("Hint: "+s.hint), width))
		b.WriteString("\n\n")
	}

	if s.result != nil {
		b.WriteString(s.renderFeedback(width, textWidth))
	}
	return b.String()
}

func (s *PracticeScreen) renderProgress(width int) string {
	sum := s.session.Summary()
	if s.count > 0 {
		bar := components.ProgressBar{
			Label:   "Progress",
			Current: sum.Served,
			Total:   s.count,
			Width:   min(width-8, 60),
		}
		return layout.Center(bar.View(), width)
	}
	return layout.Center(theme.Subtitle.Render(fmt.Sprintf("Answered %d", sum.Served)), width)
}

func (s *PracticeScreen) renderFeedback(width, textWidth int) string {
	var b strings.Builder
	if s.result.Correct {
		b.WriteString(layout.Center(theme.Correct.Render("Correct! "+s.result.Answer), width))
	} else {
		b.WriteString(layout.Center(theme.Incorrect.Render("Not quite."), width))
		b.WriteString("\n")
		b.WriteString(layout.Center(theme.Subtitle.Render("Correct answer: "+s.result.Answer), width))
	}
	b.WriteString("\n\n")

	if s.showSolution {
		sol := theme.Solution.Width(textWidth).Render(s.result.Solution)
		b.WriteString(layout.Center(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(sol), width))
	}
	return b.String()
}
