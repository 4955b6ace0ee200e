package problemgen

import "strings"

// StructuralValidator checks that every text field is present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	if strings.TrimSpace(p.Question) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if len(p.Question) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "question exceeds 500 characters"}
	}
	if strings.TrimSpace(p.Hint) == "" {
		return &ValidationError{Validator: v.Name(), Message: "hint is empty"}
	}
	if strings.TrimSpace(p.Solution) == "" {
		return &ValidationError{Validator: v.Name(), Message: "solution is empty"}
	}
	if len(p.Solution) > 1000 {
		return &ValidationError{Validator: v.Name(), Message: "solution exceeds 1000 characters"}
	}
	if strings.Contains(p.Question, "\n") {
		return &ValidationError{Validator: v.Name(), Message: "question spans multiple lines"}
	}
	return nil
}
