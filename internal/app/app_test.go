package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/screens/home"
)

func testOptions() Options {
	return Options{Deps: home.Deps{
		Registry: problemgen.Default(),
		Sampler:  sampler.NewSeeded(3),
		Count:    3,
	}}
}

func TestNewAppModel_Home(t *testing.T) {
	m, err := newAppModel(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if m.router.Depth() != 1 || m.router.Active().Title() != "Pick a topic" {
		t.Errorf("unexpected initial screen %q", m.router.Active().Title())
	}
}

func TestNewAppModel_DirectToTopic(t *testing.T) {
	opts := testOptions()
	opts.Grade = problemgen.Grade8
	opts.Topic = problemgen.TopicFunctions

	m, err := newAppModel(opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.router.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", m.router.Depth())
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := updated.(AppModel).render()
	for _, want := range []string{"middlemath", "Functions", "✓ 0/0", "Submit"} {
		if !strings.Contains(out, want) {
			t.Errorf("render() missing %q", want)
		}
	}
}

func TestNewAppModel_UnknownTopic(t *testing.T) {
	opts := testOptions()
	opts.Grade = problemgen.Grade8
	opts.Topic = problemgen.TopicRatios

	_, err := newAppModel(opts)
	if !errors.Is(err, problemgen.ErrUnknownTopic) {
		t.Errorf("err = %v, want ErrUnknownTopic", err)
	}
}

func TestView_TooSmall(t *testing.T) {
	m, _ := newAppModel(testOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "too small") {
		t.Error("expected the too-small message")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("got %T, want tea.QuitMsg", cmd())
	}
}
