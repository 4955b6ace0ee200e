package practice

import (
	"strconv"
	"time"

	"github.com/abhisek/middlemath/internal/problemgen"
)

// Summary holds the running or final score of a session.
type Summary struct {
	SessionID string
	Grade     problemgen.Grade
	Topic     problemgen.TopicID
	Served    int // problems answered
	Correct   int
	Hints     int
	Duration  time.Duration
}

// Accuracy returns the fraction answered correctly, or 0 before any answer.
func (s Summary) Accuracy() float64 {
	if s.Served == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Served)
}

// Score renders the score as "7/10".
func (s Summary) Score() string {
	return strconv.Itoa(s.Correct) + "/" + strconv.Itoa(s.Served)
}
