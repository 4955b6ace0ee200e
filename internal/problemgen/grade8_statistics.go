package problemgen

import (
	"fmt"
	"math"

	"github.com/abhisek/middlemath/internal/sampler"
)

var grade8Statistics = TopicSet{
	Title: "Statistics & Probability",
	Generators: []Generator{
		scatterAssociation,
		lineOfBestFit,
		twoWayTable,
		relativeFrequency,
	},
}

type pairing struct {
	x, y        string
	association string
}

var pairings = []pairing{
	{"hours spent studying", "test scores", "positive"},
	{"outside temperature", "ice cream sales", "positive"},
	{"height of a plant", "days since planting", "positive"},
	{"outside temperature", "hot chocolate sales", "negative"},
	{"age of a car", "its resale value", "negative"},
	{"hours of video games per night", "hours of sleep", "negative"},
	{"shoe size", "favorite number", "none"},
	{"birthday month", "height", "none"},
}

func scatterAssociation(s *sampler.Sampler) Problem {
	p := sampler.MustChoice(s, pairings)

	var reason string
	switch p.association {
	case "positive":
		reason = fmt.Sprintf("As %s increases, %s tends to increase.", p.x, p.y)
	case "negative":
		reason = fmt.Sprintf("As %s increases, %s tends to decrease.", p.x, p.y)
	default:
		reason = fmt.Sprintf("Changes in %s tell us nothing about %s.", p.x, p.y)
	}

	return Problem{
		Question: fmt.Sprintf("A scatter plot compares %s and %s. What type of association would you expect: positive, negative, or none?", p.x, p.y),
		Answer:   Text(p.association),
		Hint:     "Think about whether one quantity tends to rise, fall, or do neither as the other rises.",
		Solution: lines(
			reason,
			"Association: "+p.association,
		),
	}
}

func lineOfBestFit(s *sampler.Sampler) Problem {
	m := s.Int(2, 6)
	b := s.Int(10, 50)
	x := s.Int(5, 15)
	y := m*x + b

	return Problem{
		Question: fmt.Sprintf("The line of best fit for a scatter plot is y = %s. Predict y when x = %d.", linear(m, "x", b), x),
		Answer:   Number(float64(y)),
		Hint:     "Substitute the x value into the equation of the line.",
		Solution: lines(
			fmt.Sprintf("y = %d(%d) + %d", m, x, b),
			fmt.Sprintf("y = %d + %d", m*x, b),
			fmt.Sprintf("y = %d", y),
		),
	}
}

func twoWayTable(s *sampler.Sampler) Problem {
	boys := s.Int(20, 40)
	girls := s.Int(20, 40)
	share := s.Float(0.3, 0.7, 2)
	boysPlay := int(math.Round(float64(boys) * share))
	girlsPlay := int(math.Round(float64(girls) * (1 - share)))
	total := boys + girls
	play := boysPlay + girlsPlay

	table := fmt.Sprintf("Boys: %d play sports, %d do not. Girls: %d play sports, %d do not.",
		boysPlay, boys-boysPlay, girlsPlay, girls-girlsPlay)

	switch s.Int(0, 2) {
	case 0:
		return Problem{
			Question: "A survey asked students whether they play sports. " + table + " How many students were surveyed in total?",
			Answer:   Number(float64(total)),
			Hint:     "Add every cell in the table.",
			Solution: lines(
				fmt.Sprintf("Boys: %d + %d = %d", boysPlay, boys-boysPlay, boys),
				fmt.Sprintf("Girls: %d + %d = %d", girlsPlay, girls-girlsPlay, girls),
				fmt.Sprintf("Total = %d + %d = %d", boys, girls, total),
			),
		}
	case 1:
		return Problem{
			Question: "A survey asked students whether they play sports. " + table + " How many students play sports?",
			Answer:   Number(float64(play)),
			Hint:     "Add the boys and girls who play sports.",
			Solution: lines(
				fmt.Sprintf("Boys who play: %d", boysPlay),
				fmt.Sprintf("Girls who play: %d", girlsPlay),
				fmt.Sprintf("Total who play = %d + %d = %d", boysPlay, girlsPlay, play),
			),
		}
	default:
		return Problem{
			Question: "A survey asked students whether they play sports. " + table + " What fraction of all students play sports? Write it in simplest form.",
			Answer:   Text(fraction(play, total)),
			Hint:     "Divide the number who play sports by the total number surveyed.",
			Solution: lines(
				fmt.Sprintf("Play sports: %d + %d = %d", boysPlay, girlsPlay, play),
				fmt.Sprintf("Total: %d + %d = %d", boys, girls, total),
				"Fraction = "+fractionSteps(play, total),
			),
		}
	}
}

var trialCounts = []int{50, 100, 200}

var frequencyEvents = []string{
	"a coin landed heads",
	"a spinner landed on blue",
	"a free throw went in",
	"a seed sprouted",
}

func relativeFrequency(s *sampler.Sampler) Problem {
	total := sampler.MustChoice(s, trialCounts)
	event := sampler.MustChoice(s, frequencyEvents)
	favorable := s.Int(total/10, total*9/10)
	setup := fmt.Sprintf("In %d trials, %s %d times.", total, event, favorable)

	if s.Bool() {
		pct := num(float64(favorable*100) / float64(total))
		result := pct + "%"
		return Problem{
			Question: setup + " What is the relative frequency as a percent?",
			Answer:   Text(result),
			Hint:     "Divide the number of times the event happened by the number of trials, then multiply by 100.",
			Solution: lines(
				fmt.Sprintf("Relative frequency = %d/%d", favorable, total),
				fmt.Sprintf("%d/%d × 100 = %s", favorable, total, result),
			),
		}
	}
	return Problem{
		Question: setup + " What is the relative frequency as a fraction in simplest form?",
		Answer:   Text(fraction(favorable, total)),
		Hint:     "Divide the number of times the event happened by the number of trials.",
		Solution: "Relative frequency = " + fractionSteps(favorable, total),
	}
}
