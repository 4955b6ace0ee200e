package problemgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/middlemath/internal/answer"
)

// Answer is a canonical answer: either a finite number or a text form such
// as "3:4", "1/2", "x < 5", "(3, -2)", "C(m) = 2.5m + 4" or "5^7".
type Answer struct {
	num    float64
	text   string
	isText bool
}

// Number returns a numeric answer.
func Number(v float64) Answer {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return Answer{num: v}
}

// Text returns a text answer.
func Text(s string) Answer {
	return Answer{text: s, isText: true}
}

// IsNumber reports whether the answer is numeric.
func (a Answer) IsNumber() bool { return !a.isText }

// Float returns the numeric value and whether the answer is numeric.
func (a Answer) Float() (float64, bool) {
	if a.isText {
		return 0, false
	}
	return a.num, true
}

// IsFinite reports whether a numeric answer is a finite number. Text
// answers are always finite.
func (a Answer) IsFinite() bool {
	return a.isText || !(math.IsNaN(a.num) || math.IsInf(a.num, 0))
}

// String renders the answer the way it is displayed and compared.
func (a Answer) String() string {
	if a.isText {
		return a.text
	}
	return answer.FormatNumber(a.num)
}

// Matches reports whether the learner's input is equivalent to the answer.
// Text answers are compared without whitespace and with "<=" and ">=" read
// as "≤" and "≥". A percent answer also accepts the bare number.
func (a Answer) Matches(userAnswer string) bool {
	if !a.isText {
		return answer.Equivalent(userAnswer, a.String())
	}
	want, user := foldText(a.text), foldText(userAnswer)
	if pct, ok := strings.CutSuffix(want, "%"); ok {
		want, user = pct, strings.TrimSuffix(user, "%")
	}
	return answer.Equivalent(user, want)
}

// typedOperators maps keyboard spellings to the glyphs text answers use.
var typedOperators = strings.NewReplacer("<=", "≤", ">=", "≥")

func foldText(s string) string {
	return strings.Join(strings.Fields(typedOperators.Replace(s)), "")
}

// Display renders the answer with an alternate form where one exists,
// e.g. "0.5 or 1/2".
func (a Answer) Display() string {
	if a.isText {
		return a.text
	}
	return answer.Format(a.num)
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isText {
		return json.Marshal(a.text)
	}
	if !a.IsFinite() {
		return nil, fmt.Errorf("non-finite answer %v", a.num)
	}
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Text(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("answer must be a number or a string: %w", err)
	}
	*a = Number(v)
	return nil
}

// Equal reports whether two answers have the same kind and value.
func (a Answer) Equal(b Answer) bool {
	if a.isText != b.isText {
		return false
	}
	if a.isText {
		return strings.EqualFold(a.text, b.text)
	}
	return a.num == b.num
}
