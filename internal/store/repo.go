package store

import (
	"context"
	"time"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Grade  int       // 0 = any grade
	Topic  string    // "" = any topic
	Newest bool      // newest first instead of oldest first
}

// AttemptData captures one graded answer. The problem text is not stored.
type AttemptData struct {
	SessionID string
	Grade     int
	Topic     string
	Correct   bool
	HintUsed  bool
	TimeMs    int64
}

// Attempt is a stored AttemptData with its ordering metadata.
type Attempt struct {
	AttemptData
	Sequence  int64
	Timestamp time.Time
}

// Session event actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData captures the start or end of a practice session.
type SessionEventData struct {
	SessionID    string
	Action       string // SessionStart or SessionEnd
	Grade        int
	Topic        string
	Served       int
	Correct      int
	DurationSecs int
}

// SessionSummary is one finished practice session.
type SessionSummary struct {
	SessionID    string
	Timestamp    time.Time
	Grade        int
	Topic        string
	Served       int
	Correct      int
	DurationSecs int
}

// TopicAccuracy aggregates attempts for one grade and topic.
type TopicAccuracy struct {
	Grade    int
	Topic    string
	Attempts int
	Correct  int
}

// Accuracy returns the fraction of correct attempts, or 0 with no attempts.
func (t TopicAccuracy) Accuracy() float64 {
	if t.Attempts == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Attempts)
}

// EventRepo provides append and query access to practice events.
type EventRepo interface {
	// AppendAttempt records one graded answer.
	AppendAttempt(ctx context.Context, data AttemptData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// Attempts returns attempts matching opts, ordered by sequence.
	Attempts(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// TopicAccuracy aggregates all attempts per grade and topic.
	TopicAccuracy(ctx context.Context) ([]TopicAccuracy, error)

	// RecentSessions returns the most recent finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)
}
