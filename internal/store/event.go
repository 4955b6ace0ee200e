package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// attempts and session events. Each event type lives in its own table, so
// per-table auto-increment IDs can't order one against the other. The mutex
// serializes within the process; the RETURNING clause makes the increment
// atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with ent's SQL builders.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// builder returns a statement builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(attemptsTable.Name).
		Columns("sequence", "timestamp", "session_id", "grade", "topic", "correct", "hint_used", "time_ms").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Grade, data.Topic, data.Correct, data.HintUsed, data.TimeMs).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.Action != SessionStart && data.Action != SessionEnd {
		return fmt.Errorf("invalid session action %q", data.Action)
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(sessionEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "action", "grade", "topic", "served", "correct", "duration_secs").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Action, data.Grade, data.Topic, data.Served, data.Correct, data.DurationSecs).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) Attempts(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	b := builder()
	t := b.Table(attemptsTable.Name)
	sel := b.Select(
		t.C("sequence"), t.C("timestamp"), t.C("session_id"), t.C("grade"),
		t.C("topic"), t.C("correct"), t.C("hint_used"), t.C("time_ms"),
	).From(t)

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT(t.C("sequence"), opts.After))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(t.C("timestamp"), opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(t.C("timestamp"), opts.To.UTC()))
	}
	if opts.Grade != 0 {
		preds = append(preds, entsql.EQ(t.C("grade"), opts.Grade))
	}
	if opts.Topic != "" {
		preds = append(preds, entsql.EQ(t.C("topic"), opts.Topic))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Newest {
		sel.OrderBy(entsql.Desc(t.C("sequence")))
	} else {
		sel.OrderBy(t.C("sequence"))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.Sequence, &a.Timestamp, &a.SessionID, &a.Grade,
			&a.Topic, &a.Correct, &a.HintUsed, &a.TimeMs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) TopicAccuracy(ctx context.Context) ([]TopicAccuracy, error) {
	b := builder()
	t := b.Table(attemptsTable.Name)
	query, args := b.Select(
		t.C("grade"), t.C("topic"),
		entsql.As(entsql.Count("*"), "attempts"),
		entsql.As(entsql.Sum(t.C("correct")), "correct"),
	).
		From(t).
		GroupBy(t.C("grade"), t.C("topic")).
		OrderBy(t.C("grade"), t.C("topic")).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	var out []TopicAccuracy
	for rows.Next() {
		var ta TopicAccuracy
		if err := rows.Scan(&ta.Grade, &ta.Topic, &ta.Attempts, &ta.Correct); err != nil {
			return nil, fmt.Errorf("scan topic accuracy: %w", err)
		}
		out = append(out, ta)
	}
	return out, rows.Err()
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	b := builder()
	t := b.Table(sessionEventsTable.Name)
	sel := b.Select(
		t.C("session_id"), t.C("timestamp"), t.C("grade"), t.C("topic"),
		t.C("served"), t.C("correct"), t.C("duration_secs"),
	).
		From(t).
		Where(entsql.EQ(t.C("action"), SessionEnd)).
		OrderBy(entsql.Desc(t.C("sequence")))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.SessionID, &s.Timestamp, &s.Grade, &s.Topic,
			&s.Served, &s.Correct, &s.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
