package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledCard is the spaced repetition state for one question. The
// entity id is the question id; a card is created lazily on the first
// answer.
type ScheduledCard struct {
	ent.Schema
}

func (ScheduledCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Question id this card schedules"),
		field.Int("box").
			Default(0).
			Comment("Leitner stage 0-5"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Interval growth multiplier, 1.3-3.0"),
		field.Int("interval_days").
			Default(1).
			Comment("Days until next scheduled review"),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive correct answers since last reset"),
		field.Time("next_review").
			Comment("Card is due when now >= next_review"),
	}
}

func (ScheduledCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
	}
}
