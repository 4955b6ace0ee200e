package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/middlemath/internal/answer"
	"github.com/abhisek/middlemath/internal/sampler"
)

// maxResample bounds every resampling loop in the generators. When it is
// exhausted the generator falls back to a fixed parameter set known to be
// valid.
const maxResample = 32

// piApprox is the value of pi the geometry questions tell learners to use.
const piApprox = 3.14

// num renders a float the way answers are rendered.
func num(v float64) string {
	return answer.FormatNumber(v)
}

// fixed renders v with exactly d decimals.
func fixed(v float64, d int) string {
	return strconv.FormatFloat(v, 'f', d, 64)
}

// paren wraps negative numbers in parentheses: 5, (-3).
func paren(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return strconv.Itoa(n)
}

// signed renders n as a trailing term: "+ 5", "- 5".
func signed(n int) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}

// coefTerm renders coef·v with the usual conventions: 3x, x, -x.
func coefTerm(coef int, v string) string {
	switch coef {
	case 1:
		return v
	case -1:
		return "-" + v
	default:
		return strconv.Itoa(coef) + v
	}
}

// linear renders coef·v + c in canonical form: "3x + 5", "x - 2", "-x",
// "7", "0".
func linear(coef int, v string, c int) string {
	switch {
	case coef == 0:
		return strconv.Itoa(c)
	case c == 0:
		return coefTerm(coef, v)
	default:
		return coefTerm(coef, v) + " " + signed(c)
	}
}

// reduce divides num and den by their GCD and moves the sign to the
// numerator. den must be non-zero.
func reduce(num, den int) (int, int) {
	if den < 0 {
		num, den = -num, -den
	}
	g := int(answer.GCD(int64(absInt(num)), int64(den)))
	if g > 1 {
		num /= g
		den /= g
	}
	return num, den
}

// fraction renders num/den in lowest terms; whole values render without a
// denominator.
func fraction(num, den int) string {
	n, d := reduce(num, den)
	if d == 1 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%d/%d", n, d)
}

// fractionSteps renders "a/b" followed by " = reduced" when reducing
// changes it.
func fractionSteps(num, den int) string {
	raw := fmt.Sprintf("%d/%d", num, den)
	if r := fraction(num, den); r != raw {
		return raw + " = " + r
	}
	return raw
}

// nonZero samples an integer in [min, max] other than zero.
func nonZero(s *sampler.Sampler, min, max int) int {
	for i := 0; i < maxResample; i++ {
		if n := s.Int(min, max); n != 0 {
			return n
		}
	}
	if max > 0 {
		return max
	}
	return min
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func joinInts(ns []int, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}
