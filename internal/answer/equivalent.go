// Package answer decides whether a typed answer denotes the same value as a
// canonical answer.
package answer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/middlemath/internal/mathexpr"
)

// Tolerance is the absolute difference under which two numeric answers are
// considered equal. It absorbs generator rounding (cents, pi ≈ 3.14) without
// merging distinct answers.
const Tolerance = 1e-4

var (
	fractionPattern = regexp.MustCompile(`^(-?\d+)\s*/\s*(\d+)$`)
	ratioPattern    = regexp.MustCompile(`^(-?\d+)\s*:\s*(-?\d+)$`)
)

// Equivalent reports whether userAnswer and correctAnswer denote the same
// value. Rules are tried in order and the first one that decides wins:
//
//  1. exact match after trimming and case folding
//  2. both sides evaluate as expressions and agree within Tolerance
//  3. one side is an integer fraction whose value matches the other side
//  4. both sides are integer ratios with the same reduced form
//
// Input that no rule can decide is not equivalent.
func Equivalent(userAnswer, correctAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))

	if user == correct {
		return true
	}
	if user == "" || correct == "" {
		return false
	}

	if u, err := mathexpr.Evaluate(user); err == nil {
		if c, err := mathexpr.Evaluate(correct); err == nil {
			return withinTolerance(u, c)
		}
	}

	if fractionMatches(user, correct) || fractionMatches(correct, user) {
		return true
	}

	if ur, ok := reduceRatio(user); ok {
		if cr, ok := reduceRatio(correct); ok {
			return ur == cr
		}
	}

	return false
}

// fractionMatches reports whether frac is an integer fraction a/b whose
// value equals other parsed as a plain number.
func fractionMatches(frac, other string) bool {
	v, ok := fractionValue(frac)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(other, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return withinTolerance(v, f)
}

func fractionValue(s string) (float64, bool) {
	m := fractionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	num, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	den, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// reduceRatio reduces a:b by the GCD of the absolute values. Each part keeps
// its own sign.
func reduceRatio(s string) (string, bool) {
	m := ratioPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	a, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return "", false
	}
	b, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return "", false
	}
	if g := GCD(abs(a), abs(b)); g > 1 {
		a /= g
		b /= g
	}
	return strconv.FormatInt(a, 10) + ":" + strconv.FormatInt(b, 10), true
}

func withinTolerance(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
