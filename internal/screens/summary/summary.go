package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/middlemath/internal/practice"
	"github.com/abhisek/middlemath/internal/router"
	"github.com/abhisek/middlemath/internal/screen"
	"github.com/abhisek/middlemath/internal/ui/layout"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

// SummaryScreen shows the result of a finished practice session.
type SummaryScreen struct {
	summary    practice.Summary
	topicTitle string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(summary practice.Summary, topicTitle string) *SummaryScreen {
	return &SummaryScreen{summary: summary, topicTitle: topicTitle}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Title.Render("Session complete!"), width))
	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Subtitle.Render(
		fmt.Sprintf("Grade %d · %s", sum.Grade, s.topicTitle)), width))
	b.WriteString("\n\n")

	if sum.Served == 0 {
		b.WriteString(layout.Center(theme.Subtitle.Italic(true).Render("No problems answered."), width))
		return b.String()
	}

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60

	lines := []string{
		fmt.Sprintf("Score:     %s", sum.Score()),
		fmt.Sprintf("Accuracy:  %s", theme.Accuracy(sum.Accuracy()).Render(fmt.Sprintf("%.0f%%", sum.Accuracy()*100))),
		fmt.Sprintf("Hints:     %d", sum.Hints),
		fmt.Sprintf("Duration:  %d:%02d", mins, secs),
	}
	b.WriteString(layout.Center(theme.Card.Render(theme.Body.Render(strings.Join(lines, "\n"))), width))
	return b.String()
}
