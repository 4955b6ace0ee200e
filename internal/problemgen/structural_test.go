package problemgen

import (
	"strings"
	"testing"
)

func validProblem() *Problem {
	return &Problem{
		Question: "Find √144",
		Answer:   Number(12),
		Hint:     "Find the number that, multiplied by itself, gives 144.",
		Solution: "12 × 12 = 144\nTherefore, √144 = 12",
	}
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyQuestion(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Question = "  "
	err := v.Validate(p)
	if err == nil {
		t.Fatal("expected error for empty question")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
}

func TestStructural_QuestionTooLong(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Question = strings.Repeat("a", 501)
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for long question")
	}
}

func TestStructural_MultilineQuestion(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Question = "line one\nline two"
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for multi-line question")
	}
}

func TestStructural_EmptyHint(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Hint = ""
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for empty hint")
	}
}

func TestStructural_EmptySolution(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Solution = ""
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for empty solution")
	}
}

func TestStructural_SolutionTooLong(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Solution = strings.Repeat("a", 1001)
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for long solution")
	}
}
