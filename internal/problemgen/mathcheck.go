package problemgen

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/middlemath/internal/answer"
)

// SolutionCheckValidator checks that the worked solution arrives at the
// canonical answer. For numeric answers the last number on the final line
// must be equivalent to the answer; for text answers the final line must
// end with the answer text as a whole word.
type SolutionCheckValidator struct{}

func (v *SolutionCheckValidator) Name() string { return "solution-check" }

// numberRe matches signed decimals as they appear in solution text.
var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

func (v *SolutionCheckValidator) Validate(p *Problem) *ValidationError {
	last := FinalLine(p.Solution)
	if last == "" {
		return &ValidationError{Validator: v.Name(), Message: "solution has no final line"}
	}

	if p.Answer.IsNumber() {
		got, ok := FinalNumber(last)
		if !ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("final line %q has no number", last),
			}
		}
		if !answer.Equivalent(got, p.Answer.String()) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("solution ends with %s but answer is %s", got, p.Answer),
			}
		}
		return nil
	}

	want := p.Answer.String()
	if !endsWithWord(last, want) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("final line %q does not end with answer %q", last, want),
		}
	}
	return nil
}

// FinalLine returns the last non-blank line of a solution, trimmed.
func FinalLine(solution string) string {
	ls := strings.Split(strings.TrimSpace(solution), "\n")
	for i := len(ls) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(ls[i]); l != "" {
			return l
		}
	}
	return ""
}

// FinalNumber returns the last number in line.
func FinalNumber(line string) (string, bool) {
	nums := numberRe.FindAllString(line, -1)
	if len(nums) == 0 {
		return "", false
	}
	return nums[len(nums)-1], true
}

// endsWithWord reports whether line ends with suffix and the suffix is not
// the tail of a longer word ("irrational" does not end with "rational").
func endsWithWord(line, suffix string) bool {
	if !strings.HasSuffix(line, suffix) {
		return false
	}
	rest := line[:len(line)-len(suffix)]
	if rest == "" {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(rest)
	first, _ := utf8.DecodeRuneInString(suffix)
	if unicode.IsLetter(first) && unicode.IsLetter(prev) {
		return false
	}
	if unicode.IsDigit(first) && unicode.IsDigit(prev) {
		return false
	}
	if first == '-' || unicode.IsDigit(first) {
		// "12 - 3" must not pass for "-3" or "2"
		return prev == ' ' || prev == '=' || prev == ':' || prev == '(' || prev == '>'
	}
	return true
}
