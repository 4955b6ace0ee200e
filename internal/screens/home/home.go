package home

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/middlemath/internal/practice"
	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/router"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/screen"
	practicescreen "github.com/abhisek/middlemath/internal/screens/practice"
	"github.com/abhisek/middlemath/internal/screens/stats"
	"github.com/abhisek/middlemath/internal/store"
	"github.com/abhisek/middlemath/internal/ui/components"
	"github.com/abhisek/middlemath/internal/ui/layout"
	"github.com/abhisek/middlemath/internal/ui/theme"
)

// Deps are the collaborators the home screen hands to the screens it opens.
type Deps struct {
	Registry *problemgen.Registry
	Events   store.EventRepo // optional; enables recording and stats
	Sampler  *sampler.Sampler
	Count    int // problems per session, 0 = endless
	Logger   *slog.Logger
}

// HomeScreen lists every grade and topic and starts practice sessions.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	var items []components.MenuItem
	for _, g := range deps.Registry.Grades() {
		items = append(items, components.MenuItem{Label: fmt.Sprintf("Grade %d", g), Header: true})
		topics, err := deps.Registry.Topics(g)
		if err != nil {
			continue
		}
		for _, t := range topics {
			items = append(items, components.MenuItem{
				Label:  t.Title,
				Action: h.startAction(g, t),
			})
		}
	}

	items = append(items, components.MenuItem{Label: "", Header: true})
	if deps.Events != nil {
		items = append(items, components.MenuItem{
			Label: "Practice stats",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: stats.New(deps.Events)} }
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

// StartPractice returns a practice screen for grade and topic.
func StartPractice(deps Deps, grade problemgen.Grade, topic problemgen.Topic) screen.Screen {
	cfg := sess.Config{
		Grade:   grade,
		Topic:   topic.ID,
		Count:   deps.Count,
		Sampler: deps.Sampler,
		Logger:  deps.Logger,
	}
	if deps.Events != nil {
		cfg.Recorder = deps.Events
	}
	ctx := context.Background()
	return practicescreen.New(ctx, sess.New(ctx, deps.Registry, cfg), topic.Title, deps.Count)
}

func (h *HomeScreen) startAction(grade problemgen.Grade, topic problemgen.Topic) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: StartPractice(h.deps, grade, topic)}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Pick a topic"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Title.Render("Grade 7-8 math practice"), width))
	b.WriteString("\n")
	count := "endless"
	if h.deps.Count > 0 {
		count = fmt.Sprintf("%d problems per session", h.deps.Count)
	}
	b.WriteString(layout.Center(theme.Subtitle.Render(count), width))
	b.WriteString("\n")
	b.WriteString(layout.Center(h.menu.View(), width))
	return b.String()
}
