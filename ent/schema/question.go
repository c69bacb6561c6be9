package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a multiple-choice question belonging to one category.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable question identifier from the question bank"),
		field.String("category_id").
			NotEmpty().
			Comment("Owning category"),
		field.String("text").
			NotEmpty().
			Comment("Question text"),
		field.Strings("choices").
			Comment("Answer choices in display order"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The correct choice, matched exactly during scoring"),
		field.String("explanation").
			Optional().
			Comment("Shown after answering"),
		field.Bool("mock_only").
			Default(false).
			Comment("Reserved for mock exams, excluded from practice sampling"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("category_id", "mock_only"),
	}
}
