package problemgen

import "github.com/abhisek/middlemath/internal/sampler"

// Problem is one generated practice problem. It is a plain value owned by
// the caller; nothing in this package retains it.
type Problem struct {
	// Question is the prompt shown to the learner, with the sampled
	// parameters filled in.
	Question string `json:"question"`

	// Answer is the canonical answer user input is graded against.
	Answer Answer `json:"answer"`

	// Hint is a short strategy hint. It is never graded.
	Hint string `json:"hint"`

	// Solution is the worked solution. Its last line ends with the same
	// value as Answer.
	Solution string `json:"solution"`
}

// Generator produces one randomized problem. Generators keep no state
// between calls; any resampling happens inside the call.
type Generator func(s *sampler.Sampler) Problem

// TopicSet is the named collection of generators for one grade and topic.
type TopicSet struct {
	Title      string
	Generators []Generator
}

// Grade is a supported grade level.
type Grade int

const (
	Grade7 Grade = 7
	Grade8 Grade = 8
)

// Grades returns the supported grades in display order.
func Grades() []Grade {
	return []Grade{Grade7, Grade8}
}

// TopicID identifies a topic within a grade.
type TopicID string

const (
	TopicRatios      TopicID = "ratios"
	TopicNumbers     TopicID = "numbers"
	TopicExpressions TopicID = "expressions"
	TopicGeometry    TopicID = "geometry"
	TopicStatistics  TopicID = "statistics"
	TopicFunctions   TopicID = "functions"
)

// Topic is the public listing of a registered topic.
type Topic struct {
	ID    TopicID `json:"id"`
	Title string  `json:"title"`
}
