package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade7Numbers = TopicSet{
	Title: "The Number System",
	Generators: []Generator{
		signedAddSubtract,
		signedMultiplyDivide,
		fractionDecimal,
		absoluteValue,
	},
}

func signedAddSubtract(s *sampler.Sampler) Problem {
	a := s.Int(-20, 20)
	b := s.Int(-20, 20)

	if s.Bool() {
		r := a + b
		return Problem{
			Question: fmt.Sprintf("Calculate: %d + %s", a, paren(b)),
			Answer:   Number(float64(r)),
			Hint:     "Adding a negative number is the same as subtracting its absolute value.",
			Solution: lines(
				"Add the two integers, keeping track of their signs.",
				fmt.Sprintf("%d + %s = %d", a, paren(b), r),
			),
		}
	}
	r := a - b
	return Problem{
		Question: fmt.Sprintf("Calculate: %d - %s", a, paren(b)),
		Answer:   Number(float64(r)),
		Hint:     "Subtracting a number is the same as adding its opposite.",
		Solution: lines(
			"Rewrite the subtraction as adding the opposite.",
			fmt.Sprintf("%d - %s = %d + %s = %d", a, paren(b), a, paren(-b), r),
		),
	}
}

var signedFactors = []int{-12, -10, -8, -6, -5, -4, -3, -2, 2, 3, 4, 5, 6, 8, 10, 12}

func signRule(a, b int) string {
	if (a < 0) == (b < 0) {
		return "Same signs give a positive result."
	}
	return "Different signs give a negative result."
}

func signedMultiplyDivide(s *sampler.Sampler) Problem {
	a := sampler.MustChoice(s, signedFactors)
	b := sampler.MustChoice(s, signedFactors)
	product := a * b

	if s.Bool() {
		return Problem{
			Question: fmt.Sprintf("Calculate: %d × %s", a, paren(b)),
			Answer:   Number(float64(product)),
			Hint:     "Multiply the absolute values, then apply the sign rule.",
			Solution: lines(
				signRule(a, b),
				fmt.Sprintf("%d × %s = %d", a, paren(b), product),
			),
		}
	}
	return Problem{
		Question: fmt.Sprintf("Calculate: %d ÷ %s", product, paren(a)),
		Answer:   Number(float64(b)),
		Hint:     "Divide the absolute values, then apply the sign rule.",
		Solution: lines(
			signRule(product, a),
			fmt.Sprintf("%d ÷ %s = %d", product, paren(a), b),
		),
	}
}

type commonFraction struct {
	num, den int
}

// every denominator divides 1000
var conversionFractions = []commonFraction{
	{1, 2}, {1, 4}, {3, 4}, {1, 5}, {2, 5}, {3, 5}, {4, 5},
	{1, 8}, {3, 8}, {5, 8}, {7, 8},
}

func fractionDecimal(s *sampler.Sampler) Problem {
	f := sampler.MustChoice(s, conversionFractions)
	dec := float64(f.num) / float64(f.den)

	if s.Bool() {
		return Problem{
			Question: fmt.Sprintf("Convert %d/%d to a decimal.", f.num, f.den),
			Answer:   Number(dec),
			Hint:     "Divide the numerator by the denominator.",
			Solution: lines(
				"Divide the numerator by the denominator.",
				fmt.Sprintf("%d ÷ %d = %s", f.num, f.den, num(dec)),
			),
		}
	}
	thousandths := f.num * 1000 / f.den
	return Problem{
		Question: fmt.Sprintf("Convert %s to a fraction in simplest form.", num(dec)),
		Answer:   Text(fmt.Sprintf("%d/%d", f.num, f.den)),
		Hint:     "Write the decimal over a power of 10, then simplify.",
		Solution: lines(
			"Write the decimal as thousandths, then divide by the GCF.",
			fmt.Sprintf("%s = %d/1000 = %d/%d", num(dec), thousandths, f.num, f.den),
		),
	}
}

func absoluteValue(s *sampler.Sampler) Problem {
	values := []int{s.Int(-20, -1), s.Int(-20, -1), s.Int(1, 20)}
	a := sampler.MustChoice(s, values)
	b := sampler.MustChoice(s, values)
	absA, absB := absInt(a), absInt(b)

	op, r := "+", absA+absB
	if s.Bool() {
		op, r = "-", absA-absB
	}

	return Problem{
		Question: fmt.Sprintf("Calculate: |%d| %s |%d|", a, op, b),
		Answer:   Number(float64(r)),
		Hint:     "The absolute value of a number is its distance from zero, so it is never negative.",
		Solution: lines(
			fmt.Sprintf("|%d| = %d", a, absA),
			fmt.Sprintf("|%d| = %d", b, absB),
			fmt.Sprintf("%d %s %d = %d", absA, op, absB, r),
		),
	}
}
