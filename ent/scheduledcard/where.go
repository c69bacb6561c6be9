// Code generated by ent, DO NOT EDIT.

package scheduledcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tkoehler/skyprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldContainsFold(FieldID, id))
}

// Box applies equality check predicate on the "box" field. It's identical to BoxEQ.
func Box(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldBox, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldRepetitions, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldNextReview, v))
}

// BoxEQ applies the EQ predicate on the "box" field.
func BoxEQ(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldBox, v))
}

// BoxNEQ applies the NEQ predicate on the "box" field.
func BoxNEQ(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNEQ(FieldBox, v))
}

// BoxIn applies the In predicate on the "box" field.
func BoxIn(vs ...int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldIn(FieldBox, vs...))
}

// BoxNotIn applies the NotIn predicate on the "box" field.
func BoxNotIn(vs ...int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNotIn(FieldBox, vs...))
}

// BoxGT applies the GT predicate on the "box" field.
func BoxGT(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGT(FieldBox, v))
}

// BoxGTE applies the GTE predicate on the "box" field.
func BoxGTE(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGTE(FieldBox, v))
}

// BoxLT applies the LT predicate on the "box" field.
func BoxLT(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLT(FieldBox, v))
}

// BoxLTE applies the LTE predicate on the "box" field.
func BoxLTE(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLTE(FieldBox, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLTE(FieldRepetitions, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.FieldLTE(FieldNextReview, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledCard) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledCard) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledCard) predicate.ScheduledCard {
	return predicate.ScheduledCard(sql.NotPredicates(p))
}
