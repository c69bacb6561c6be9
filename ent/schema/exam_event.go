package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records a completed mock exam.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("leg").
			NotEmpty().
			Comment("Exam leg identifier"),
		field.Int("total").
			Comment("Questions in the exam"),
		field.Int("correct").
			Comment("Correct answers"),
		field.Float("percentage").
			Comment("Score as 0-100"),
		field.Bool("passed").
			Comment("Whether the 75% threshold was met"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("leg"),
	}
}
