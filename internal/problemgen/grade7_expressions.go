package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade7Expressions = TopicSet{
	Title: "Expressions & Equations",
	Generators: []Generator{
		combineLikeTerms,
		oneStepEquation,
		twoStepEquation,
		oneStepInequality,
	},
}

var variables = []string{"x", "y", "n", "a", "m"}

func combineLikeTerms(s *sampler.Sampler) Problem {
	v := sampler.MustChoice(s, variables)
	c1 := s.Int(2, 9)
	c2 := s.Int(2, 9)
	c3 := s.Int(-9, -2)
	k := nonZero(s, -10, 10)
	total := c1 + c2 + c3
	result := linear(total, v, k)

	return Problem{
		Question: fmt.Sprintf("Simplify: %d%s + %d%s - %d%s %s", c1, v, c2, v, -c3, v, signed(k)),
		Answer:   Text(result),
		Hint:     "Combine the terms that have the same variable, then keep the constant.",
		Solution: lines(
			fmt.Sprintf("Combine the %s terms: %d + %d + %s = %d", v, c1, c2, paren(c3), total),
			fmt.Sprintf("The constant stays %d.", k),
			fmt.Sprintf("Result: %s", result),
		),
	}
}

func oneStepEquation(s *sampler.Sampler) Problem {
	v := sampler.MustChoice(s, variables)

	switch s.Int(0, 3) {
	case 0:
		a := nonZero(s, -20, 20)
		b := s.Int(-20, 20)
		x := b - a
		return Problem{
			Question: fmt.Sprintf("Solve for %s: %s %s = %d", v, v, signed(a), b),
			Answer:   Number(float64(x)),
			Hint:     undoHint(a),
			Solution: lines(
				fmt.Sprintf("%s %s = %d", v, signed(a), b),
				fmt.Sprintf("%s = %d %s", v, b, signed(-a)),
				fmt.Sprintf("%s = %d", v, x),
			),
		}
	case 1:
		a := s.Int(1, 20)
		b := s.Int(-20, 20)
		x := b + a
		return Problem{
			Question: fmt.Sprintf("Solve for %s: %s - %d = %d", v, v, a, b),
			Answer:   Number(float64(x)),
			Hint:     fmt.Sprintf("Undo the subtraction by adding %d to both sides.", a),
			Solution: lines(
				fmt.Sprintf("%s - %d = %d", v, a, b),
				fmt.Sprintf("%s = %d + %d", v, b, a),
				fmt.Sprintf("%s = %d", v, x),
			),
		}
	case 2:
		a := s.Int(2, 12)
		x := s.Int(-10, 10)
		b := a * x
		return Problem{
			Question: fmt.Sprintf("Solve for %s: %d%s = %d", v, a, v, b),
			Answer:   Number(float64(x)),
			Hint:     fmt.Sprintf("Undo the multiplication by dividing both sides by %d.", a),
			Solution: lines(
				fmt.Sprintf("%d%s = %d", a, v, b),
				fmt.Sprintf("%s = %d ÷ %d", v, b, a),
				fmt.Sprintf("%s = %d", v, x),
			),
		}
	default:
		a := s.Int(2, 12)
		b := s.Int(-10, 10)
		x := a * b
		return Problem{
			Question: fmt.Sprintf("Solve for %s: %s/%d = %d", v, v, a, b),
			Answer:   Number(float64(x)),
			Hint:     fmt.Sprintf("Undo the division by multiplying both sides by %d.", a),
			Solution: lines(
				fmt.Sprintf("%s/%d = %d", v, a, b),
				fmt.Sprintf("%s = %s × %d", v, paren(b), a),
				fmt.Sprintf("%s = %d", v, x),
			),
		}
	}
}

func twoStepEquation(s *sampler.Sampler) Problem {
	v := sampler.MustChoice(s, variables)
	a := s.Int(2, 9)
	b := nonZero(s, -15, 15)
	x := s.Int(-10, 10)
	result := a*x + b
	rhs := result - b

	return Problem{
		Question: fmt.Sprintf("Solve for %s: %d%s %s = %d", v, a, v, signed(b), result),
		Answer:   Number(float64(x)),
		Hint:     "First undo the addition or subtraction, then undo the multiplication.",
		Solution: lines(
			fmt.Sprintf("%d%s %s = %d", a, v, signed(b), result),
			fmt.Sprintf("%d%s = %d %s", a, v, result, signed(-b)),
			fmt.Sprintf("%d%s = %d", a, v, rhs),
			fmt.Sprintf("%s = %d ÷ %d", v, rhs, a),
			fmt.Sprintf("%s = %d", v, x),
		),
	}
}

// undoHint names the inverse step for "v + a": subtract a when a is
// positive, add |a| when it is negative.
func undoHint(a int) string {
	if a < 0 {
		return fmt.Sprintf("Undo the subtraction by adding %d to both sides.", absInt(a))
	}
	return fmt.Sprintf("Undo the addition by subtracting %d from both sides.", a)
}

var inequalitySymbols = []string{"<", ">", "≤", "≥"}

func oneStepInequality(s *sampler.Sampler) Problem {
	v := sampler.MustChoice(s, variables)
	sym := sampler.MustChoice(s, inequalitySymbols)
	a := nonZero(s, -10, 10)
	b := s.Int(-20, 20)
	bound := b - a
	result := fmt.Sprintf("%s %s %d", v, sym, bound)

	return Problem{
		Question: fmt.Sprintf("Solve the inequality: %s %s %s %d", v, signed(a), sym, b),
		Answer:   Text(result),
		Hint:     "Solve it like an equation. Adding or subtracting does not flip the inequality sign.",
		Solution: lines(
			fmt.Sprintf("%s %s %s %d", v, signed(a), sym, b),
			fmt.Sprintf("%s %s %d %s", v, sym, b, signed(-a)),
			result,
		),
	}
}
