package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/answer"
	"github.com/abhisek/middlemath/internal/sampler"
)

var grade7Ratios = TopicSet{
	Title: "Ratios & Proportional Relationships",
	Generators: []Generator{
		simplifyRatio,
		unitRate,
		proportion,
		recipeScaling,
		percentOf,
	},
}

func simplifyRatio(s *sampler.Sampler) Problem {
	factor := s.Int(2, 12)
	a := s.Int(2, 8) * factor
	b := s.Int(2, 8) * factor
	g := int(answer.GCD(int64(a), int64(b)))
	ra, rb := a/g, b/g

	return Problem{
		Question: fmt.Sprintf("Simplify the ratio %d:%d", a, b),
		Answer:   Text(fmt.Sprintf("%d:%d", ra, rb)),
		Hint:     "Find the greatest common factor (GCF) of both numbers and divide each by it.",
		Solution: lines(
			fmt.Sprintf("The GCF of %d and %d is %d.", a, b, g),
			fmt.Sprintf("%d ÷ %d = %d", a, g, ra),
			fmt.Sprintf("%d ÷ %d = %d", b, g, rb),
			fmt.Sprintf("Therefore, %d:%d = %d:%d", a, b, ra, rb),
		),
	}
}

type rateScenario struct {
	// setup takes the total and the number of units, in that order.
	setup     string
	item, per string
}

var rateScenarios = []rateScenario{
	{setup: "A car travels %d miles in %d hours.", item: "miles", per: "hour"},
	{setup: "Maya reads %d pages in %d minutes.", item: "pages", per: "minute"},
	{setup: "A machine fills %d bottles in %d minutes.", item: "bottles", per: "minute"},
	{setup: "A typist writes %d words in %d minutes.", item: "words", per: "minute"},
}

func unitRate(s *sampler.Sampler) Problem {
	sc := sampler.MustChoice(s, rateScenarios)
	units := s.Int(2, 10)
	// total stays in [20, 200] and divides evenly
	rate := s.Int((20+units-1)/units, 200/units)
	total := rate * units

	return Problem{
		Question: fmt.Sprintf(sc.setup, total, units) +
			fmt.Sprintf(" What is the unit rate in %s per %s?", sc.item, sc.per),
		Answer: Number(float64(rate)),
		Hint:   fmt.Sprintf("Divide the total number of %s by the number of %ss.", sc.item, sc.per),
		Solution: lines(
			fmt.Sprintf("Unit rate = %s ÷ %ss", sc.item, sc.per),
			fmt.Sprintf("Unit rate = %d ÷ %d", total, units),
			fmt.Sprintf("Unit rate = %d %s per %s", rate, sc.item, sc.per),
		),
	}
}

func proportion(s *sampler.Sampler) Problem {
	a, b, c := 2, 4, 3
	for i := 0; i < maxResample; i++ {
		ta, tb, tc := s.Int(2, 10), s.Int(2, 10), s.Int(2, 10)
		if (tb*tc)%ta == 0 {
			a, b, c = ta, tb, tc
			break
		}
	}
	x := b * c / a

	return Problem{
		Question: fmt.Sprintf("Solve the proportion: %d/%d = %d/x", a, b, c),
		Answer:   Number(float64(x)),
		Hint:     "Cross multiply and solve for x.",
		Solution: lines(
			"Cross multiply:",
			fmt.Sprintf("%d × x = %d × %d", a, b, c),
			fmt.Sprintf("%dx = %d", a, b*c),
			fmt.Sprintf("x = %d ÷ %d", b*c, a),
			fmt.Sprintf("x = %d", x),
		),
	}
}

type amount struct {
	text  string
	value float64
}

var recipeAmounts = []amount{
	{"1/4", 0.25}, {"1/2", 0.5}, {"3/4", 0.75}, {"1", 1},
	{"1.5", 1.5}, {"2", 2}, {"2.5", 2.5},
}

var recipeScales = []float64{1.5, 2, 2.5, 3, 0.5}

var ingredients = []string{"flour", "sugar", "milk", "butter", "oats"}

func recipeScaling(s *sampler.Sampler) Problem {
	amt := sampler.MustChoice(s, recipeAmounts)
	scale := sampler.MustChoice(s, recipeScales)
	ingredient := sampler.MustChoice(s, ingredients)
	result := amt.value * scale

	verb := "scale it"
	switch {
	case scale > 1:
		verb = fmt.Sprintf("make %s times the recipe", num(scale))
	case scale < 1:
		verb = "make half the recipe"
	}

	return Problem{
		Question: fmt.Sprintf("A recipe calls for %s cups of %s. If you want to %s, how many cups of %s do you need?",
			amt.text, ingredient, verb, ingredient),
		Answer: Number(result),
		Hint:   "Multiply the original amount by the scale factor.",
		Solution: lines(
			fmt.Sprintf("Original amount: %s cups", amt.text),
			fmt.Sprintf("Scale factor: %s", num(scale)),
			fmt.Sprintf("New amount = %s × %s = %s cups", amt.text, num(scale), num(result)),
		),
	}
}

var percents = []int{10, 15, 20, 25, 30, 40, 50, 60, 75}

func percentOf(s *sampler.Sampler) Problem {
	original := s.Int(20, 200) * 5
	pct := sampler.MustChoice(s, percents)
	part := float64(original*pct) / 100
	rate := num(float64(pct) / 100)

	if s.Bool() {
		return Problem{
			Question: fmt.Sprintf("What is %d%% of %d?", pct, original),
			Answer:   Number(part),
			Hint:     "Convert the percent to a decimal and multiply.",
			Solution: lines(
				fmt.Sprintf("%d%% = %s", pct, rate),
				fmt.Sprintf("%d%% of %d = %s × %d = %s", pct, original, rate, original, num(part)),
			),
		}
	}
	return Problem{
		Question: fmt.Sprintf("A $%d item is on sale for %d%% off. What is the discount amount in dollars?", original, pct),
		Answer:   Number(part),
		Hint:     "Multiply the original price by the discount percent as a decimal.",
		Solution: lines(
			fmt.Sprintf("%d%% = %s", pct, rate),
			fmt.Sprintf("Discount = %s × $%d = $%s", rate, original, num(part)),
		),
	}
}
