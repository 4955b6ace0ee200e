package practice

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/middlemath/internal/practice"
	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/router"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/screen"
	"github.com/abhisek/middlemath/internal/store"
)

// fixedSource always serves the same problem.
type fixedSource struct{ p problemgen.Problem }

func (f fixedSource) GenerateWith(*sampler.Sampler, problemgen.Grade, problemgen.TopicID) (problemgen.Problem, error) {
	return f.p, nil
}

type mockRecorder struct {
	attempts []store.AttemptData
	events   []store.SessionEventData
}

func (m *mockRecorder) AppendAttempt(_ context.Context, d store.AttemptData) error {
	m.attempts = append(m.attempts, d)
	return nil
}

func (m *mockRecorder) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.events = append(m.events, d)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, count int) (*PracticeScreen, *mockRecorder) {
	t.Helper()
	return testScreenWith(t, count, problemgen.Problem{
		Question: "Solve for x: 2x + 3 = 11",
		Answer:   problemgen.Number(4),
		Hint:     "Undo the addition first.",
		Solution: "2x = 8\nx = 4",
	})
}

func testScreenWith(t *testing.T, count int, p problemgen.Problem) (*PracticeScreen, *mockRecorder) {
	t.Helper()
	rec := &mockRecorder{}
	src := fixedSource{p: p}
	session := sess.New(context.Background(), src, sess.Config{
		Grade:    problemgen.Grade7,
		Topic:    problemgen.TopicExpressions,
		Count:    count,
		Recorder: rec,
	})
	s := New(context.Background(), session, "Expressions & Equations", count)
	s.Init()
	return s, rec
}

func typeAnswer(s screen.Screen, answer string) screen.Screen {
	for _, r := range answer {
		s, _ = s.Update(keyPress(r))
	}
	return s
}

func TestPracticeScreen_Title(t *testing.T) {
	s, _ := testScreen(t, 3)
	if s.Title() != "Expressions & Equations" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestPracticeScreen_ShowsProblem(t *testing.T) {
	s, _ := testScreen(t, 3)
	view := s.View(80, 24)
	if !strings.Contains(view, "2x + 3 = 11") {
		t.Errorf("view missing the question:\n%s", view)
	}
}

func TestPracticeScreen_CorrectAnswer(t *testing.T) {
	s, rec := testScreen(t, 3)

	var scr screen.Screen = typeAnswer(s, "16/4")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.result == nil || !ps.result.Correct {
		t.Fatalf("result = %+v, want correct", ps.result)
	}
	if ps.showSolution {
		t.Error("solution should stay hidden after a correct answer")
	}
	if len(rec.attempts) != 1 || !rec.attempts[0].Correct {
		t.Errorf("attempts = %+v, want one correct", rec.attempts)
	}
	if !strings.Contains(ps.View(80, 24), "Correct!") {
		t.Error("view missing Correct!")
	}
	if ps.Status() != "✓ 1/1" {
		t.Errorf("Status() = %q, want ✓ 1/1", ps.Status())
	}
}

func TestPracticeScreen_InequalityAnswer(t *testing.T) {
	p := problemgen.Problem{
		Question: "Solve the inequality: x + 3 ≤ 8",
		Answer:   problemgen.Text("x ≤ 5"),
		Hint:     "Solve it like an equation.",
		Solution: "x + 3 ≤ 8\nx ≤ 8 - 3\nx ≤ 5",
	}

	for _, typed := range []string{"x ≤ 5", "x<=5", "x >= 5"} {
		t.Run(typed, func(t *testing.T) {
			s, rec := testScreenWith(t, 3, p)

			var scr screen.Screen = typeAnswer(s, typed)
			ps := scr.(*PracticeScreen)
			if got := ps.input.Value(); got != typed {
				t.Fatalf("input = %q, want %q", got, typed)
			}

			scr, _ = scr.Update(specialKey(tea.KeyEnter))
			ps = scr.(*PracticeScreen)
			if ps.result == nil {
				t.Fatal("answer was not submitted")
			}
			want := typed != "x >= 5"
			if ps.result.Correct != want {
				t.Errorf("Correct = %v, want %v", ps.result.Correct, want)
			}
			if len(rec.attempts) != 1 {
				t.Errorf("attempts = %d, want 1", len(rec.attempts))
			}
		})
	}
}

func TestPracticeScreen_WrongAnswerShowsSolution(t *testing.T) {
	s, _ := testScreen(t, 3)

	var scr screen.Screen = typeAnswer(s, "5")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.result == nil || ps.result.Correct {
		t.Fatalf("result = %+v, want incorrect", ps.result)
	}
	if !ps.showSolution {
		t.Error("solution should be shown after a wrong answer")
	}
	view := ps.View(80, 24)
	if !strings.Contains(view, "Correct answer: 4") || !strings.Contains(view, "x = 4") {
		t.Errorf("view missing answer or solution:\n%s", view)
	}
}

func TestPracticeScreen_EmptySubmitIgnored(t *testing.T) {
	s, rec := testScreen(t, 3)
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	if scr.(*PracticeScreen).result != nil || len(rec.attempts) != 0 {
		t.Error("empty answers should not be graded")
	}
}

func TestPracticeScreen_Hint(t *testing.T) {
	s, rec := testScreen(t, 3)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('?'))
	ps := scr.(*PracticeScreen)
	if ps.hint == "" || !strings.Contains(ps.View(80, 24), "Undo the addition") {
		t.Error("hint not shown")
	}
	if ps.input.Value() != "" {
		t.Errorf("? should not be typed into the answer, got %q", ps.input.Value())
	}

	scr = typeAnswer(scr, "4")
	scr.Update(specialKey(tea.KeyEnter))
	if len(rec.attempts) != 1 || !rec.attempts[0].HintUsed {
		t.Errorf("attempts = %+v, want hint used", rec.attempts)
	}
}

func TestPracticeScreen_NextAndFinish(t *testing.T) {
	s, rec := testScreen(t, 2)

	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < 2; i++ {
		scr = typeAnswer(scr, "4")
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
		scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	}

	if cmd == nil {
		t.Fatal("expected a command after the last problem")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
	}
	if msg.Screen.Title() != "Session Summary" {
		t.Errorf("replacement screen = %q", msg.Screen.Title())
	}
	if len(rec.events) != 2 || rec.events[1].Action != store.SessionEnd {
		t.Errorf("events = %+v, want start and end", rec.events)
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	s, _ := testScreen(t, 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	if !scr.(*PracticeScreen).confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = scr.Update(keyPress('n'))
	if scr.(*PracticeScreen).confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("confirming should replace the screen with the summary")
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(t, 1)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
