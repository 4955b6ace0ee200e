package problemgen

import "testing"

type stubValidator struct {
	name string
	fail bool
	runs *int
}

func (s *stubValidator) Name() string { return s.name }

func (s *stubValidator) Validate(*Problem) *ValidationError {
	*s.runs++
	if s.fail {
		return &ValidationError{Validator: s.name, Message: "stub failure"}
	}
	return nil
}

func TestRunValidators_StopsAtFirstFailure(t *testing.T) {
	var runs int
	chain := []Validator{
		&stubValidator{name: "a", runs: &runs},
		&stubValidator{name: "b", fail: true, runs: &runs},
		&stubValidator{name: "c", runs: &runs},
	}
	err := RunValidators(validProblem(), chain)
	if err == nil || err.Validator != "b" {
		t.Fatalf("expected failure from b, got %v", err)
	}
	if runs != 2 {
		t.Errorf("expected 2 validators to run, got %d", runs)
	}
}

func TestDefaultValidators(t *testing.T) {
	want := []string{"structural", "answer-format", "solution-check"}
	got := DefaultValidators()
	if len(got) != len(want) {
		t.Fatalf("got %d validators, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.Name() != want[i] {
			t.Errorf("validator %d = %q, want %q", i, v.Name(), want[i])
		}
	}
	if err := RunValidators(validProblem(), got); err != nil {
		t.Errorf("valid problem failed: %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "question is empty"}
	want := `validator "structural": question is empty`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
