package problemgen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade8Numbers = TopicSet{
	Title: "Number System & Exponents",
	Generators: []Generator{
		rationalOrIrrational,
		squareRoot,
		cubeRoot,
		exponentRules,
		scientificNotation,
	},
}

var nonSquares = []int{2, 3, 5, 6, 7, 8, 10, 11, 12, 13, 15, 17}

func rationalOrIrrational(s *sampler.Sampler) Problem {
	var value, reason, kind string

	switch s.Int(0, 4) {
	case 0:
		root := s.Int(2, 12)
		value = fmt.Sprintf("√%d", root*root)
		reason = fmt.Sprintf("√%d = %d, a whole number, which can be written as %d/1.", root*root, root, root)
		kind = "rational"
	case 1:
		n := sampler.MustChoice(s, nonSquares)
		value = fmt.Sprintf("√%d", n)
		reason = fmt.Sprintf("%d is not a perfect square, so √%d is a non-terminating, non-repeating decimal.", n, n)
		kind = "irrational"
	case 2:
		a, b := s.Int(1, 9), s.Int(2, 9)
		value = fmt.Sprintf("%d/%d", a, b)
		reason = fmt.Sprintf("%d/%d is a ratio of two integers.", a, b)
		kind = "rational"
	case 3:
		value = "π"
		reason = "π never terminates and never repeats."
		kind = "irrational"
	default:
		d := s.Int(11, 98)
		digits := strconv.Itoa(d)
		value = fmt.Sprintf("0.%s%s%s...", digits, digits, digits)
		reason = fmt.Sprintf("The digits %s repeat forever, so it equals %d/99.", digits, d)
		kind = "rational"
	}

	return Problem{
		Question: fmt.Sprintf("Is %s rational or irrational?", value),
		Answer:   Text(kind),
		Hint:     "A rational number can be written as a fraction of two integers. Its decimal either ends or repeats.",
		Solution: lines(
			reason,
			fmt.Sprintf("So %s is %s", value, kind),
		),
	}
}

func squareRoot(s *sampler.Sampler) Problem {
	root := s.Int(1, 20)
	square := root * root

	return Problem{
		Question: fmt.Sprintf("Find √%d", square),
		Answer:   Number(float64(root)),
		Hint:     "Find the number that, multiplied by itself, gives the number under the radical.",
		Solution: lines(
			fmt.Sprintf("%d × %d = %d", root, root, square),
			fmt.Sprintf("Therefore, √%d = %d", square, root),
		),
	}
}

var cubeRoots = []int{1, 2, 3, 4, 5, -2, -3, -4, -5}

func cubeRoot(s *sampler.Sampler) Problem {
	root := sampler.MustChoice(s, cubeRoots)
	cube := root * root * root

	return Problem{
		Question: fmt.Sprintf("Find ∛%d", cube),
		Answer:   Number(float64(root)),
		Hint:     "Find the number that, multiplied by itself three times, gives the number under the radical.",
		Solution: lines(
			fmt.Sprintf("%s × %s × %s = %d", paren(root), paren(root), paren(root), cube),
			fmt.Sprintf("Therefore, ∛%d = %d", cube, root),
		),
	}
}

func exponentRules(s *sampler.Sampler) Problem {
	base := s.Int(2, 9)
	a := s.Int(2, 6)
	b := s.Int(2, 6)

	switch s.Int(0, 2) {
	case 0:
		result := fmt.Sprintf("%d^%d", base, a+b)
		return Problem{
			Question: fmt.Sprintf("Simplify: %d^%d × %d^%d. Write your answer as a power.", base, a, base, b),
			Answer:   Text(result),
			Hint:     "When multiplying powers with the same base, add the exponents.",
			Solution: lines(
				"Same base, so add the exponents.",
				fmt.Sprintf("%d^%d × %d^%d = %d^(%d + %d) = %s", base, a, base, b, base, a, b, result),
			),
		}
	case 1:
		if a < b {
			a, b = b, a
		}
		result := fmt.Sprintf("%d^%d", base, a-b)
		return Problem{
			Question: fmt.Sprintf("Simplify: %d^%d ÷ %d^%d. Write your answer as a power.", base, a, base, b),
			Answer:   Text(result),
			Hint:     "When dividing powers with the same base, subtract the exponents.",
			Solution: lines(
				"Same base, so subtract the exponents.",
				fmt.Sprintf("%d^%d ÷ %d^%d = %d^(%d - %d) = %s", base, a, base, b, base, a, b, result),
			),
		}
	default:
		result := fmt.Sprintf("%d^%d", base, a*b)
		return Problem{
			Question: fmt.Sprintf("Simplify: (%d^%d)^%d. Write your answer as a power.", base, a, b),
			Answer:   Text(result),
			Hint:     "When raising a power to a power, multiply the exponents.",
			Solution: lines(
				"Power of a power, so multiply the exponents.",
				fmt.Sprintf("(%d^%d)^%d = %d^(%d × %d) = %s", base, a, b, base, a, b, result),
			),
		}
	}
}

func scientificNotation(s *sampler.Sampler) Problem {
	if s.Bool() {
		var standard, coef string
		var exp int
		switch s.Int(0, 3) {
		case 0:
			n := s.Int(1000, 9999)
			standard, coef, exp = strconv.Itoa(n), num(float64(n)/1000), 3
		case 1:
			n := s.Int(10000, 99999)
			standard, coef, exp = strconv.Itoa(n), num(float64(n)/10000), 4
		case 2:
			d := s.Int(1, 9)
			standard, coef, exp = fmt.Sprintf("0.00%d", d), strconv.Itoa(d), -3
		default:
			d := s.Int(1, 9)
			standard, coef, exp = fmt.Sprintf("0.000%d", d), strconv.Itoa(d), -4
		}
		result := fmt.Sprintf("%s × 10^%d", coef, exp)
		return Problem{
			Question: fmt.Sprintf("Write %s in scientific notation.", standard),
			Answer:   Text(result),
			Hint:     "Move the decimal point so exactly one non-zero digit is to its left. Count how many places you moved it.",
			Solution: lines(
				fmt.Sprintf("Move the decimal point %d places to get a number between 1 and 10.", absInt(exp)),
				fmt.Sprintf("%s = %s", standard, result),
			),
		}
	}

	coef := s.Float(1, 9.9, 1)
	exp := s.Int(-4, 4)
	value := sampler.Round(coef*math.Pow10(exp), 5)
	dir := "right"
	if exp < 0 {
		dir = "left"
	}
	return Problem{
		Question: fmt.Sprintf("Write %s × 10^%d in standard form.", num(coef), exp),
		Answer:   Number(value),
		Hint:     "A positive exponent moves the decimal point right. A negative exponent moves it left.",
		Solution: lines(
			fmt.Sprintf("Move the decimal point %d places to the %s.", absInt(exp), dir),
			fmt.Sprintf("%s × 10^%d = %s", num(coef), exp, num(value)),
		),
	}
}
