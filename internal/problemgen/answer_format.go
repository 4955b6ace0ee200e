package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/middlemath/internal/answer"
)

var (
	fractionPattern = regexp.MustCompile(`^(-?\d+)/(\d+)$`)
	ratioPattern    = regexp.MustCompile(`^(\d+):(\d+)$`)
)

// AnswerFormatValidator checks that numeric answers are finite and that
// text answers are single-line and, when they are fractions or ratios, in
// lowest terms.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(p *Problem) *ValidationError {
	if p.Answer.IsNumber() {
		if !p.Answer.IsFinite() {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %s is not finite", p.Answer),
			}
		}
		return nil
	}

	text := p.Answer.String()
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Validator: v.Name(), Message: "text answer is empty"}
	}
	if strings.TrimSpace(text) != text || strings.Contains(text, "\n") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("text answer %q has stray whitespace", text),
		}
	}
	if m := fractionPattern.FindStringSubmatch(text); m != nil {
		if err := lowestTerms(m[1], m[2]); err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("invalid fraction answer %q: %s", text, err),
			}
		}
	}
	if m := ratioPattern.FindStringSubmatch(text); m != nil {
		if err := lowestTerms(m[1], m[2]); err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("invalid ratio answer %q: %s", text, err),
			}
		}
	}
	return nil
}

// lowestTerms checks that a over b has a positive b and no common factor.
func lowestTerms(a, b string) error {
	num, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return fmt.Errorf("bad numerator")
	}
	den, err := strconv.ParseInt(b, 10, 64)
	if err != nil {
		return fmt.Errorf("bad denominator")
	}
	if den <= 0 {
		return fmt.Errorf("denominator must be positive")
	}
	if answer.GCD(num, den) != 1 {
		return fmt.Errorf("not in lowest terms")
	}
	return nil
}
