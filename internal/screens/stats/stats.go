package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/middlemath/internal/router"
	"github.com/abhisek/middlemath/internal/screen"
	"github.com/abhisek/middlemath/internal/store"
	"github.com/abhisek/middlemath/internal/ui/layout"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

// recentLimit is how many finished sessions are listed.
const recentLimit = 10

type statsLoadedMsg struct {
	Topics   []store.TopicAccuracy
	Sessions []store.SessionSummary
	Err      error
}

// StatsScreen shows per-topic accuracy and recent sessions from the
// practice log.
type StatsScreen struct {
	events   store.EventRepo
	topics   []store.TopicAccuracy
	sessions []store.SessionSummary
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(events store.EventRepo) *StatsScreen {
	return &StatsScreen{events: events}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		topics, err := s.events.TopicAccuracy(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		sessions, err := s.events.RecentSessions(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Topics: topics, Sessions: sessions}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.topics = msg.Topics
			s.sessions = msg.Sessions
		}
		s.loaded = true

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return layout.Center(theme.Incorrect.Render("\n\nError: "+s.errMsg), width)
	case !s.loaded:
		return layout.Center(theme.Subtitle.Render("\n\nLoading stats..."), width)
	case len(s.topics) == 0:
		return layout.Center(theme.Subtitle.Italic(true).Render("\n\nNo practice yet. Pick a topic to start!"), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Title.Render("Accuracy by topic"), width))
	b.WriteString("\n\n")
	for _, t := range s.topics {
		acc := theme.Accuracy(t.Accuracy()).Render(fmt.Sprintf("%3.0f%%", t.Accuracy()*100))
		line := fmt.Sprintf("Grade %d  %-12s %4d/%-4d %s", t.Grade, t.Topic, t.Correct, t.Attempts, acc)
		b.WriteString(layout.Center(theme.Body.Render(line), width))
		b.WriteString("\n")
	}

	if len(s.sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Center(theme.Title.Render("Recent sessions"), width))
		b.WriteString("\n\n")
		for _, sess := range s.sessions {
			line := fmt.Sprintf("%s  Grade %d  %-12s %d/%d  %d:%02d",
				sess.Timestamp.Local().Format("Jan 02 15:04"),
				sess.Grade, sess.Topic,
				sess.Correct, sess.Served,
				sess.DurationSecs/60, sess.DurationSecs%60)
			b.WriteString(layout.Center(theme.Body.Render(line), width))
			b.WriteString("\n")
		}
	}
	return b.String()
}
