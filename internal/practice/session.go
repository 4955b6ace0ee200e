// Package practice runs an endless or fixed-length practice session over
// one grade and topic: serve a problem, take an answer, grade it, and keep
// a running score.
package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/store"
)

var (
	// ErrNoProblem is returned when answering or asking for a hint before a
	// problem has been served.
	ErrNoProblem = errors.New("no problem in progress")

	// ErrSessionOver is returned when the session has served its last
	// problem or has been ended.
	ErrSessionOver = errors.New("session is over")
)

// ProblemSource produces problems. *problemgen.Registry satisfies it.
type ProblemSource interface {
	GenerateWith(s *sampler.Sampler, grade problemgen.Grade, topic problemgen.TopicID) (problemgen.Problem, error)
}

// Recorder persists practice events. store.EventRepo satisfies it.
type Recorder interface {
	AppendAttempt(ctx context.Context, data store.AttemptData) error
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
}

// Phase is the current phase of a session.
type Phase int

const (
	PhaseReady    Phase = iota // waiting for Next
	PhaseAnswering             // a problem is being answered
	PhaseFeedback              // the last answer has been graded
	PhaseDone                  // no more problems
)

// Config configures a session.
type Config struct {
	Grade problemgen.Grade
	Topic problemgen.TopicID

	// Count is the number of problems to serve. 0 means endless.
	Count int

	// MaxPriorQuestions is how many recent questions are remembered to
	// avoid serving the same question twice in a row.
	MaxPriorQuestions int

	// Sampler defaults to sampler.Default().
	Sampler *sampler.Sampler

	// Recorder is optional. Recording failures are logged, not returned.
	Recorder Recorder

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Result is the outcome of one answer.
type Result struct {
	Correct  bool
	Answer   string // canonical answer with any alternate form, e.g. "0.5 or 1/2"
	Solution string
}

// Session is one practice session. It is not safe for concurrent use.
type Session struct {
	ID string

	cfg     Config
	src     ProblemSource
	log     *slog.Logger
	phase   Phase
	current *problemgen.Problem
	prior   []string

	served   int
	answered int
	correct  int
	hints    int
	hintUsed bool
	ended    bool

	started       time.Time
	questionStart time.Time
}

// New starts a session and records its start event.
func New(ctx context.Context, src ProblemSource, cfg Config) *Session {
	if cfg.Sampler == nil {
		cfg.Sampler = sampler.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxPriorQuestions <= 0 {
		cfg.MaxPriorQuestions = 8
	}

	s := &Session{
		ID:      uuid.NewString(),
		cfg:     cfg,
		src:     src,
		started: cfg.Now(),
	}
	s.log = cfg.Logger.With("session_id", s.ID, "grade", int(cfg.Grade), "topic", string(cfg.Topic))

	s.record(ctx, func(r Recorder) error {
		return r.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.ID,
			Action:    store.SessionStart,
			Grade:     int(cfg.Grade),
			Topic:     string(cfg.Topic),
		})
	})
	s.log.Debug("practice session started", "count", cfg.Count)
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Current returns the problem being answered, or nil.
func (s *Session) Current() *problemgen.Problem { return s.current }

// Next serves the next problem.
func (s *Session) Next() (problemgen.Problem, error) {
	if s.ended || s.phase == PhaseDone || (s.cfg.Count > 0 && s.served >= s.cfg.Count) {
		s.phase = PhaseDone
		return problemgen.Problem{}, ErrSessionOver
	}

	p, err := s.generateFresh()
	if err != nil {
		return problemgen.Problem{}, err
	}

	s.current = &p
	s.served++
	s.hintUsed = false
	s.phase = PhaseAnswering
	s.questionStart = s.cfg.Now()
	s.remember(p.Question)
	return p, nil
}

// generateFresh retries a few times to avoid repeating a recent question.
func (s *Session) generateFresh() (problemgen.Problem, error) {
	const maxAttempts = 5
	var p problemgen.Problem
	for i := 0; i < maxAttempts; i++ {
		var err error
		p, err = s.src.GenerateWith(s.cfg.Sampler, s.cfg.Grade, s.cfg.Topic)
		if err != nil {
			return problemgen.Problem{}, fmt.Errorf("generate problem: %w", err)
		}
		if !s.seen(p.Question) {
			return p, nil
		}
	}
	return p, nil
}

func (s *Session) seen(q string) bool {
	for _, prior := range s.prior {
		if prior == q {
			return true
		}
	}
	return false
}

func (s *Session) remember(q string) {
	s.prior = append(s.prior, q)
	if len(s.prior) > s.cfg.MaxPriorQuestions {
		s.prior = s.prior[len(s.prior)-s.cfg.MaxPriorQuestions:]
	}
}

// Hint returns the current problem's hint. Asking for a hint is recorded
// with the attempt.
func (s *Session) Hint() (string, error) {
	if s.phase != PhaseAnswering || s.current == nil {
		return "", ErrNoProblem
	}
	if !s.hintUsed {
		s.hintUsed = true
		s.hints++
	}
	return s.current.Hint, nil
}

// Submit grades an answer to the current problem.
func (s *Session) Submit(ctx context.Context, userAnswer string) (Result, error) {
	if s.phase != PhaseAnswering || s.current == nil {
		return Result{}, ErrNoProblem
	}
	p := s.current
	correct := p.Answer.Matches(userAnswer)
	s.answered++
	if correct {
		s.correct++
	}
	elapsed := s.cfg.Now().Sub(s.questionStart)

	s.record(ctx, func(r Recorder) error {
		return r.AppendAttempt(ctx, store.AttemptData{
			SessionID: s.ID,
			Grade:     int(s.cfg.Grade),
			Topic:     string(s.cfg.Topic),
			Correct:   correct,
			HintUsed:  s.hintUsed,
			TimeMs:    elapsed.Milliseconds(),
		})
	})

	s.phase = PhaseFeedback
	if s.cfg.Count > 0 && s.served >= s.cfg.Count {
		s.phase = PhaseDone
	}

	return Result{
		Correct:  correct,
		Answer:   p.Answer.Display(),
		Solution: p.Solution,
	}, nil
}

// Summary returns the running score.
func (s *Session) Summary() Summary {
	return Summary{
		SessionID: s.ID,
		Grade:     s.cfg.Grade,
		Topic:     s.cfg.Topic,
		Served:    s.answered,
		Correct:   s.correct,
		Hints:     s.hints,
		Duration:  s.cfg.Now().Sub(s.started),
	}
}

// End finishes the session and records its end event. Calling End again
// returns the same summary without recording anything.
func (s *Session) End(ctx context.Context) Summary {
	sum := s.Summary()
	if !s.ended {
		s.ended = true
		s.record(ctx, func(r Recorder) error {
			return r.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:    s.ID,
				Action:       store.SessionEnd,
				Grade:        int(s.cfg.Grade),
				Topic:        string(s.cfg.Topic),
				Served:       sum.Served,
				Correct:      sum.Correct,
				DurationSecs: int(sum.Duration.Seconds()),
			})
		})
	}
	s.phase = PhaseDone
	s.current = nil
	s.log.Info("practice session ended", "served", sum.Served, "correct", sum.Correct)
	return sum
}

func (s *Session) record(ctx context.Context, fn func(Recorder) error) {
	if s.cfg.Recorder == nil {
		return
	}
	if err := fn(s.cfg.Recorder); err != nil {
		s.log.WarnContext(ctx, "failed to record practice event", "error", err)
	}
}
