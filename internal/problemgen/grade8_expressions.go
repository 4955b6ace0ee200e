package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade8Expressions = TopicSet{
	Title: "Expressions & Equations",
	Generators: []Generator{
		variablesBothSides,
		systemBySubstitution,
		systemByElimination,
		evaluatePowers,
	},
}

func variablesBothSides(s *sampler.Sampler) Problem {
	a, c := 5, 2
	for i := 0; i < maxResample; i++ {
		ta, tc := s.Int(2, 6), s.Int(2, 6)
		if ta != tc {
			a, c = ta, tc
			break
		}
	}
	b := s.Int(-10, 10)
	x := s.Int(-5, 5)
	d := a*x + b - c*x

	left := linear(a, "x", b)
	right := linear(c, "x", d)
	coef := a - c
	rhs := d - b

	return Problem{
		Question: fmt.Sprintf("Solve for x: %s = %s", left, right),
		Answer:   Number(float64(x)),
		Hint:     "Collect the x terms on one side and the constants on the other.",
		Solution: lines(
			fmt.Sprintf("%s = %s", left, right),
			fmt.Sprintf("%dx - %dx = %d - %s", a, c, d, paren(b)),
			fmt.Sprintf("%s = %d", coefTerm(coef, "x"), rhs),
			fmt.Sprintf("x = %d ÷ %s", rhs, paren(coef)),
			fmt.Sprintf("x = %d", x),
		),
	}
}

func systemBySubstitution(s *sampler.Sampler) Problem {
	a := s.Int(1, 4)
	b := nonZero(s, -5, 5)
	x := s.Int(-3, 3)
	y := a*x + b
	sum := x + y
	result := fmt.Sprintf("x = %d, y = %d", x, y)

	return Problem{
		Question: fmt.Sprintf("Solve the system: y = %s and x + y = %d", linear(a, "x", b), sum),
		Answer:   Text(result),
		Hint:     "Replace y in the second equation with the expression from the first.",
		Solution: lines(
			fmt.Sprintf("Substitute y = %s into x + y = %d:", linear(a, "x", b), sum),
			fmt.Sprintf("x + (%s) = %d", linear(a, "x", b), sum),
			fmt.Sprintf("%s = %d", linear(a+1, "x", b), sum),
			fmt.Sprintf("%dx = %d", a+1, sum-b),
			fmt.Sprintf("x = %d", x),
			fmt.Sprintf("y = %d%s %s = %d", a, paren2(x), signed(b), y),
			"Solution: "+result,
		),
	}
}

func systemByElimination(s *sampler.Sampler) Problem {
	x := s.Int(-3, 3)
	y := s.Int(-3, 3)
	a1, b1, a2 := s.Int(1, 3), s.Int(1, 3), s.Int(1, 3)
	b2 := -b1
	c1 := a1*x + b1*y
	c2 := a2*x + b2*y
	result := fmt.Sprintf("x = %d, y = %d", x, y)

	eq1 := fmt.Sprintf("%s %s = %d", coefTerm(a1, "x"), signedTerm(b1, "y"), c1)
	eq2 := fmt.Sprintf("%s %s = %d", coefTerm(a2, "x"), signedTerm(b2, "y"), c2)

	return Problem{
		Question: fmt.Sprintf("Solve the system: %s and %s", eq1, eq2),
		Answer:   Text(result),
		Hint:     "The y terms are opposites. Add the equations to eliminate y.",
		Solution: lines(
			"Add the two equations to eliminate y:",
			fmt.Sprintf("%dx = %d", a1+a2, c1+c2),
			fmt.Sprintf("x = %d", x),
			fmt.Sprintf("Substitute into %s:", eq1),
			fmt.Sprintf("%s = %d - %s", coefTerm(b1, "y"), c1, paren(a1*x)),
			fmt.Sprintf("y = %d", y),
			"Solution: "+result,
		),
	}
}

func evaluatePowers(s *sampler.Sampler) Problem {
	x := s.Int(2, 5)
	a := s.Int(2, 4)
	b := s.Int(2, 4)
	pa, pb := ipow(x, a), ipow(x, b)
	result := pa + pb

	return Problem{
		Question: fmt.Sprintf("Evaluate x^%d + x^%d when x = %d", a, b, x),
		Answer:   Number(float64(result)),
		Hint:     "Substitute the value of x, evaluate each power, then add.",
		Solution: lines(
			fmt.Sprintf("%d^%d + %d^%d", x, a, x, b),
			fmt.Sprintf("= %d + %d", pa, pb),
			fmt.Sprintf("= %d", result),
		),
	}
}

// paren2 renders n inside parentheses for substitution: (3), (-3).
func paren2(n int) string {
	return fmt.Sprintf("(%d)", n)
}

// signedTerm renders coef·v as a trailing term: "+ 2y", "- y".
func signedTerm(coef int, v string) string {
	if coef < 0 {
		return "- " + coefTerm(-coef, v)
	}
	return "+ " + coefTerm(coef, v)
}

func ipow(base, exp int) int {
	r := 1
	for range exp {
		r *= base
	}
	return r
}
