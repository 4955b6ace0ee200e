// Package app hosts the Bubble Tea program for interactive practice.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/router"
	"github.com/abhisek/middlemath/internal/screen"
	"github.com/abhisek/middlemath/internal/screens/home"
	"github.com/abhisek/middlemath/internal/ui/layout"
)

// Options configure the program. Grade and Topic, when both set, skip the
// topic picker and start practicing right away.
type Options struct {
	home.Deps
	Grade problemgen.Grade
	Topic problemgen.TopicID
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) (AppModel, error) {
	m := AppModel{router: router.New(home.New(opts.Deps))}
	if opts.Topic == "" {
		return m, nil
	}

	set, err := opts.Registry.Lookup(opts.Grade, opts.Topic)
	if err != nil {
		return m, err
	}
	m.router.Push(home.StartPractice(opts.Deps, opts.Grade, problemgen.Topic{ID: opts.Topic, Title: set.Title}))
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the frame for the current size, or nothing before the first
// WindowSizeMsg.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			hints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
