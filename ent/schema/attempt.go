package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one graded answer in a practice session.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("grade").
			Comment("7 or 8"),
		field.String("topic").
			NotEmpty().
			Comment("Topic ID within the grade"),
		field.Bool("correct"),
		field.Bool("hint_used").
			Default(false),
		field.Int64("time_ms").
			Comment("Milliseconds from problem shown to answer submitted"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grade", "topic"),
		index.Fields("session_id"),
	}
}
