package problemgen

import (
	"fmt"
	"math"
	"slices"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade7Statistics = TopicSet{
	Title: "Statistics & Probability",
	Generators: []Generator{
		sampleProportion,
		meanOfSet,
		medianOfSet,
		simpleProbability,
	},
}

// sample sizes only have the prime factors 2 and 5, so proportions are
// terminating decimals
var sampleSizes = []int{20, 25, 40, 50, 100}

var populations = []int{200, 300, 400, 500, 600, 800, 1000}

var preferences = []string{"pizza", "soccer", "summer", "dogs", "science"}

func sampleProportion(s *sampler.Sampler) Problem {
	n := sampler.MustChoice(s, sampleSizes)
	pop := sampler.MustChoice(s, populations)
	topic := sampler.MustChoice(s, preferences)
	favorable := s.Int(n/10, n*9/10)

	share := float64(favorable) / float64(n)
	exact := float64(favorable*pop) / float64(n)
	estimate := math.Round(exact)

	last := fmt.Sprintf("Estimated total = %s × %d = %s students", num(share), pop, num(estimate))
	if exact != estimate {
		last = fmt.Sprintf("Estimated total = %s × %d = %s ≈ %s students", num(share), pop, num(exact), num(estimate))
	}

	return Problem{
		Question: fmt.Sprintf("In a random sample of %d students, %d said they prefer %s. Estimate how many of the %d students in the school prefer %s. Round to the nearest whole student.",
			n, favorable, topic, pop, topic),
		Answer: Number(estimate),
		Hint:   "Find the proportion in the sample, then apply it to the whole population.",
		Solution: lines(
			fmt.Sprintf("Sample proportion = %d/%d = %s", favorable, n, num(share)),
			last,
		),
	}
}

func meanOfSet(s *sampler.Sampler) Problem {
	count := s.Int(5, 8)
	values := make([]int, count)
	sum := 0
	for i := range values {
		values[i] = s.Int(10, 50)
		sum += values[i]
	}
	exact := float64(sum) / float64(count)
	mean := sampler.Round(exact, 1)

	question := fmt.Sprintf("Find the mean of: %s", joinInts(values, ", "))
	last := fmt.Sprintf("Mean = %d ÷ %d = %s", sum, count, num(mean))
	if exact != mean {
		question += ". Round to the nearest tenth."
		last = fmt.Sprintf("Mean = %d ÷ %d ≈ %s", sum, count, num(mean))
	}

	return Problem{
		Question: question,
		Answer:   Number(mean),
		Hint:     "Add all the numbers, then divide by how many numbers there are.",
		Solution: lines(
			fmt.Sprintf("Sum = %s = %d", joinInts(values, " + "), sum),
			fmt.Sprintf("Count = %d", count),
			last,
		),
	}
}

var medianCounts = []int{5, 6, 7}

func medianOfSet(s *sampler.Sampler) Problem {
	count := sampler.MustChoice(s, medianCounts)
	values := make([]int, count)
	for i := range values {
		values[i] = s.Int(10, 90)
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := count / 2
	var median float64
	var last string
	if count%2 == 1 {
		median = float64(sorted[mid])
		last = fmt.Sprintf("The middle value (position %d) is %d", mid+1, sorted[mid])
	} else {
		median = float64(sorted[mid-1]+sorted[mid]) / 2
		last = fmt.Sprintf("Median = (%d + %d) ÷ 2 = %s", sorted[mid-1], sorted[mid], num(median))
	}

	return Problem{
		Question: fmt.Sprintf("Find the median of: %s", joinInts(values, ", ")),
		Answer:   Number(median),
		Hint:     "Put the numbers in order, then find the middle. With two middle values, average them.",
		Solution: lines(
			fmt.Sprintf("In order: %s", joinInts(sorted, ", ")),
			last,
		),
	}
}

type dieEvent struct {
	desc     string
	outcomes []int
}

var dieEvents = []dieEvent{
	{"an even number", []int{2, 4, 6}},
	{"a number greater than 4", []int{5, 6}},
	{"a 6", []int{6}},
	{"a number less than 3", []int{1, 2}},
	{"a multiple of 3", []int{3, 6}},
}

var suits = []string{"heart", "diamond", "club", "spade"}

func simpleProbability(s *sampler.Sampler) Problem {
	var question, setup string
	var favorable, total int

	switch s.Int(0, 2) {
	case 0:
		ev := sampler.MustChoice(s, dieEvents)
		favorable, total = len(ev.outcomes), 6
		question = fmt.Sprintf("What is the probability of rolling %s on a standard six-sided die?", ev.desc)
		setup = fmt.Sprintf("Favorable outcomes: %s", joinInts(ev.outcomes, ", "))
	case 1:
		suit := sampler.MustChoice(s, suits)
		favorable, total = 13, 52
		question = fmt.Sprintf("What is the probability of drawing a %s from a standard 52-card deck?", suit)
		setup = fmt.Sprintf("There are 13 %ss in the deck.", suit)
	default:
		red, blue := s.Int(2, 6), s.Int(2, 6)
		favorable, total = red, red+blue
		question = fmt.Sprintf("A bag has %d red marbles and %d blue marbles. What is the probability of picking a red marble?", red, blue)
		setup = fmt.Sprintf("Red marbles: %d, total marbles: %d + %d = %d", red, red, blue, total)
	}

	return Problem{
		Question: question + " Write your answer as a fraction.",
		Answer:   Text(fraction(favorable, total)),
		Hint:     "Probability = favorable outcomes ÷ total possible outcomes.",
		Solution: lines(
			setup,
			fmt.Sprintf("Total possible outcomes = %d", total),
			"P = "+fractionSteps(favorable, total),
		),
	}
}
