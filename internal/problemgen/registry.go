package problemgen

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/abhisek/middlemath/internal/sampler"
)

var (
	// ErrUnknownGrade matches any *UnknownGradeError via errors.Is.
	ErrUnknownGrade = errors.New("unknown grade")

	// ErrUnknownTopic matches any *UnknownTopicError via errors.Is.
	ErrUnknownTopic = errors.New("unknown topic")
)

// UnknownGradeError is returned when a grade has no registered topics.
type UnknownGradeError struct {
	Grade Grade
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("grade %d is not supported", e.Grade)
}

func (e *UnknownGradeError) Is(target error) bool {
	return target == ErrUnknownGrade
}

// UnknownTopicError is returned when a topic is not registered for a grade,
// or is registered without generators.
type UnknownTopicError struct {
	Grade Grade
	Topic TopicID
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("topic %q is not available for grade %d", e.Topic, e.Grade)
}

func (e *UnknownTopicError) Is(target error) bool {
	return target == ErrUnknownTopic
}

// Entry binds a topic set to a grade and topic ID.
type Entry struct {
	Grade Grade
	Topic TopicID
	Set   TopicSet
}

type gradeTopics struct {
	order []TopicID
	sets  map[TopicID]TopicSet
}

// Registry maps (grade, topic) to a topic set. It is read-only after
// construction except through Register, and safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	grades  map[Grade]*gradeTopics
	sampler *sampler.Sampler
}

// NewRegistry builds a registry from entries, validating all of them and
// reporting every problem found.
func NewRegistry(entries ...Entry) (*Registry, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	r := &Registry{
		grades:  make(map[Grade]*gradeTopics),
		sampler: sampler.Default(),
	}
	for _, e := range entries {
		r.add(e)
	}
	return r, nil
}

// WithSampler returns a copy of the registry that draws from s.
func (r *Registry) WithSampler(s *sampler.Sampler) *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{grades: make(map[Grade]*gradeTopics, len(r.grades)), sampler: s}
	for g, gt := range r.grades {
		c.grades[g] = &gradeTopics{order: slices.Clone(gt.order), sets: maps.Clone(gt.sets)}
	}
	return c
}

// Register adds one entry. It fails if the entry is invalid or the topic
// is already registered for that grade.
func (r *Registry) Register(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if errs := validateEntry(e); len(errs) > 0 {
		return fmt.Errorf("invalid entry: %s", strings.Join(errs, "; "))
	}
	if gt, ok := r.grades[e.Grade]; ok {
		if _, dup := gt.sets[e.Topic]; dup {
			return fmt.Errorf("grade %d topic %q is already registered", e.Grade, e.Topic)
		}
	}
	r.add(e)
	return nil
}

func (r *Registry) add(e Entry) {
	gt, ok := r.grades[e.Grade]
	if !ok {
		gt = &gradeTopics{sets: make(map[TopicID]TopicSet)}
		r.grades[e.Grade] = gt
	}
	gt.order = append(gt.order, e.Topic)
	gt.sets[e.Topic] = e.Set
}

// Grades returns the grades with at least one registered topic, ascending.
func (r *Registry) Grades() []Grade {
	r.mu.RLock()
	defer r.mu.RUnlock()
	grades := make([]Grade, 0, len(r.grades))
	for g := range r.grades {
		grades = append(grades, g)
	}
	slices.Sort(grades)
	return grades
}

// Topics lists the topics of a grade in registration order.
func (r *Registry) Topics(grade Grade) ([]Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gt, ok := r.grades[grade]
	if !ok {
		return nil, &UnknownGradeError{Grade: grade}
	}
	topics := make([]Topic, 0, len(gt.order))
	for _, id := range gt.order {
		topics = append(topics, Topic{ID: id, Title: gt.sets[id].Title})
	}
	return topics, nil
}

// Lookup returns the topic set registered for grade and topic.
func (r *Registry) Lookup(grade Grade, topic TopicID) (TopicSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gt, ok := r.grades[grade]
	if !ok {
		return TopicSet{}, &UnknownGradeError{Grade: grade}
	}
	set, ok := gt.sets[topic]
	if !ok || len(set.Generators) == 0 {
		return TopicSet{}, &UnknownTopicError{Grade: grade, Topic: topic}
	}
	return set, nil
}

// Generate produces one problem for grade and topic using the registry's
// sampler.
func (r *Registry) Generate(grade Grade, topic TopicID) (Problem, error) {
	return r.GenerateWith(r.sampler, grade, topic)
}

// GenerateWith produces one problem drawing all randomness from s. The
// generator is chosen uniformly from the topic set.
func (r *Registry) GenerateWith(s *sampler.Sampler, grade Grade, topic TopicID) (Problem, error) {
	set, err := r.Lookup(grade, topic)
	if err != nil {
		return Problem{}, err
	}
	gen := sampler.MustChoice(s, set.Generators)
	return gen(s), nil
}

// ParseGrade converts a raw grade number.
func (r *Registry) ParseGrade(n int) (Grade, error) {
	g := Grade(n)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.grades[g]; !ok {
		return 0, &UnknownGradeError{Grade: g}
	}
	return g, nil
}

// ParseTopicID converts a raw topic name for grade. Matching ignores case
// and surrounding whitespace.
func (r *Registry) ParseTopicID(grade Grade, raw string) (TopicID, error) {
	id := TopicID(strings.ToLower(strings.TrimSpace(raw)))
	if _, err := r.Lookup(grade, id); err != nil {
		return "", err
	}
	return id, nil
}

func validateEntries(entries []Entry) error {
	var errs []string

	seen := make(map[Grade]map[TopicID]bool)
	for _, e := range entries {
		errs = append(errs, validateEntry(e)...)
		if seen[e.Grade] == nil {
			seen[e.Grade] = make(map[TopicID]bool)
		}
		if seen[e.Grade][e.Topic] {
			errs = append(errs, fmt.Sprintf("duplicate entry for grade %d topic %q", e.Grade, e.Topic))
		}
		seen[e.Grade][e.Topic] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateEntry(e Entry) []string {
	var errs []string
	prefix := fmt.Sprintf("grade %d topic %q", e.Grade, e.Topic)
	if !slices.Contains(Grades(), e.Grade) {
		errs = append(errs, fmt.Sprintf("%s: unsupported grade", prefix))
	}
	if e.Topic == "" {
		errs = append(errs, fmt.Sprintf("%s: empty topic ID", prefix))
	}
	if strings.TrimSpace(e.Set.Title) == "" {
		errs = append(errs, fmt.Sprintf("%s: empty title", prefix))
	}
	if len(e.Set.Generators) == 0 {
		errs = append(errs, fmt.Sprintf("%s: no generators", prefix))
	}
	for i, gen := range e.Set.Generators {
		if gen == nil {
			errs = append(errs, fmt.Sprintf("%s: generator %d is nil", prefix, i))
		}
	}
	return errs
}
