package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade8Functions = TopicSet{
	Title: "Functions",
	Generators: []Generator{
		evaluateFunction,
		slopeFromPoints,
		yIntercept,
		linearCostModel,
		functionTable,
	},
}

func evaluateFunction(s *sampler.Sampler) Problem {
	m := nonZero(s, -5, 5)
	b := s.Int(-10, 10)
	x := s.Int(-5, 5)
	mx := m * x
	y := mx + b

	return Problem{
		Question: fmt.Sprintf("If f(x) = %s, find f(%d).", linear(m, "x", b), x),
		Answer:   Number(float64(y)),
		Hint:     "Substitute the input value for x and simplify.",
		Solution: lines(
			fmt.Sprintf("f(%d) = %d(%d) %s", x, m, x, signed(b)),
			fmt.Sprintf("= %d %s", mx, signed(b)),
			fmt.Sprintf("= %d", y),
		),
	}
}

func slopeFromPoints(s *sampler.Sampler) Problem {
	x1, y1, x2, y2 := 0, 0, 1, 2
	for i := 0; i < maxResample; i++ {
		tx1, tx2 := s.Int(-5, 5), s.Int(-5, 5)
		if tx1 != tx2 {
			x1, y1, x2, y2 = tx1, s.Int(-5, 5), tx2, s.Int(-5, 5)
			break
		}
	}
	rise, run := y2-y1, x2-x1
	n, d := reduce(rise, run)

	var ans Answer
	if d == 1 {
		ans = Number(float64(n))
	} else {
		ans = Text(fraction(n, d))
	}

	return Problem{
		Question: fmt.Sprintf("Find the slope of the line through (%d, %d) and (%d, %d). Give a fraction in simplest form if the slope is not a whole number.",
			x1, y1, x2, y2),
		Answer: ans,
		Hint:   "Slope = (y₂ - y₁) ÷ (x₂ - x₁), the rise over the run.",
		Solution: lines(
			"m = (y₂ - y₁) / (x₂ - x₁)",
			fmt.Sprintf("m = (%d - %s) / (%d - %s)", y2, paren(y1), x2, paren(x1)),
			"m = "+fractionSteps(rise, run),
		),
	}
}

func yIntercept(s *sampler.Sampler) Problem {
	m := nonZero(s, -5, 5)
	b := s.Int(-10, 10)

	return Problem{
		Question: fmt.Sprintf("What is the y-intercept of the line y = %s?", linear(m, "x", b)),
		Answer:   Number(float64(b)),
		Hint:     "In y = mx + b, b is the y-intercept.",
		Solution: lines(
			"The equation is in y = mx + b form.",
			fmt.Sprintf("m = %d is the slope and b = %d is the y-intercept.", m, b),
			fmt.Sprintf("The line crosses the y-axis at (0, %d)", b),
		),
	}
}

type costScenario struct {
	setup string
	input string
	v     string
}

var costScenarios = []costScenario{
	{setup: "A taxi charges a $%s base fee plus $%s per mile.", input: "miles", v: "m"},
	{setup: "A gym charges a $%s sign-up fee plus $%s per month.", input: "months", v: "m"},
	{setup: "A plumber charges a $%s call-out fee plus $%s per hour.", input: "hours", v: "h"},
}

func linearCostModel(s *sampler.Sampler) Problem {
	sc := sampler.MustChoice(s, costScenarios)
	var fixedFee int
	var rate float64
	if sc.input == "miles" {
		fixedFee = s.Int(3, 5)
		rate = 1.5 + 0.25*float64(s.Int(0, 6))
	} else {
		fixedFee = s.Int(20, 50)
		rate = float64(s.Int(25, 40))
	}
	model := fmt.Sprintf("C(%s) = %s%s + %d", sc.v, num(rate), sc.v, fixedFee)

	return Problem{
		Question: fmt.Sprintf(sc.setup, fmt.Sprint(fixedFee), num(rate)) +
			fmt.Sprintf(" Write a function C(%s) for the total cost after %s %s.", sc.v, sc.v, sc.input),
		Answer: Text(model),
		Hint:   "The per-unit charge is the slope and the one-time fee is the y-intercept.",
		Solution: lines(
			fmt.Sprintf("The rate of change is $%s per unit, so the slope is %s.", num(rate), num(rate)),
			fmt.Sprintf("The one-time fee is $%d, so the y-intercept is %d.", fixedFee, fixedFee),
			"Function: "+model,
		),
	}
}

func functionTable(s *sampler.Sampler) Problem {
	m := s.Int(2, 5)
	b := s.Int(-5, 5)
	xs := []int{0, 1, 2, 3}
	missing := s.Int(1, 3)

	cells := make([]string, len(xs))
	for i, x := range xs {
		if i == missing {
			cells[i] = fmt.Sprintf("x = %d: y = ?", x)
			continue
		}
		cells[i] = fmt.Sprintf("x = %d: y = %d", x, m*x+b)
	}
	x := xs[missing]
	y := m*x + b

	return Problem{
		Question: fmt.Sprintf("The table shows a linear function y = %s. Find the missing value. %s",
			linear(m, "x", b), strings.Join(cells, "; ")),
		Answer: Number(float64(y)),
		Hint:   "Substitute the x value into the rule.",
		Solution: lines(
			fmt.Sprintf("The rule is y = %s.", linear(m, "x", b)),
			fmt.Sprintf("When x = %d: y = %d(%d) %s = %d", x, m, x, signed(b), y),
		),
	}
}
