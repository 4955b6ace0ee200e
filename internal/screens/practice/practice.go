// Package practice is the terminal practice screen: one problem at a time
// with hints, feedback and a running score.
package practice

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/middlemath/internal/practice"
	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/router"
	"github.com/abhisek/middlemath/internal/screen"
	"github.com/abhisek/middlemath/internal/screens/summary"
	"github.com/abhisek/middlemath/internal/ui/components"
	"github.com/abhisek/middlemath/internal/ui/layout"
)

// PracticeScreen implements screen.Screen for an active practice session.
type PracticeScreen struct {
	ctx        context.Context
	session    *sess.Session
	topicTitle string
	count      int

	input        components.TextInput
	problem      *problemgen.Problem
	result       *sess.Result
	hint         string
	showSolution bool
	confirmQuit  bool
	errMsg       string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over a started session. count is the
// session length for the progress bar, 0 for endless.
func New(ctx context.Context, session *sess.Session, topicTitle string, count int) *PracticeScreen {
	return &PracticeScreen{
		ctx:        ctx,
		session:    session,
		topicTitle: topicTitle,
		count:      count,
		input:      newInput(),
	}
}

func newInput() components.TextInput {
	return components.NewTextInput("Type your answer...", components.AnswerChars, 40)
}

func (s *PracticeScreen) Init() tea.Cmd {
	s.next()
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return s.topicTitle
}

// Status shows the running score.
func (s *PracticeScreen) Status() string {
	sum := s.session.Summary()
	return fmt.Sprintf("✓ %s", sum.Score())
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.result != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "S", Description: "Solution"},
			{Key: "Esc", Description: "End"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "?", Description: "Hint"},
			{Key: "Esc", Description: "End"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.answering() {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	key := kmsg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.end()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.result != nil {
		switch key {
		case "s", "S":
			s.showSolution = !s.showSolution
			return s, nil
		case "esc":
			return s, s.end()
		case "enter", "space", "n":
			if s.session.Phase() == sess.PhaseDone {
				return s, s.end()
			}
			s.next()
			return s, s.input.Init()
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s, s.submit()
	case "?":
		if hint, err := s.session.Hint(); err == nil {
			s.hint = hint
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) answering() bool {
	return s.errMsg == "" && s.problem != nil && s.result == nil && !s.confirmQuit
}

// next serves the next problem and resets per-problem state.
func (s *PracticeScreen) next() {
	p, err := s.session.Next()
	if err != nil {
		if !errors.Is(err, sess.ErrSessionOver) {
			s.errMsg = err.Error()
		}
		return
	}
	s.problem = &p
	s.result = nil
	s.hint = ""
	s.showSolution = false
	s.input = newInput()
}

func (s *PracticeScreen) submit() tea.Cmd {
	value := s.input.Value()
	if value == "" {
		return nil
	}
	res, err := s.session.Submit(s.ctx, value)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.result = &res
	s.input.Mark(res.Correct)
	s.showSolution = !res.Correct
	return nil
}

// end finishes the session and swaps in the summary screen.
func (s *PracticeScreen) end() tea.Cmd {
	sum := s.session.End(s.ctx)
	title := s.topicTitle
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, title)}
	}
}
