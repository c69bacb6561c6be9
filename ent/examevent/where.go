// Code generated by ent, DO NOT EDIT.

package examevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tkoehler/skyprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Leg applies equality check predicate on the "leg" field. It's identical to LegEQ.
func Leg(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldLeg, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTotal, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldCorrect, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPercentage, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPassed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LegEQ applies the EQ predicate on the "leg" field.
func LegEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldLeg, v))
}

// LegNEQ applies the NEQ predicate on the "leg" field.
func LegNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldLeg, v))
}

// LegIn applies the In predicate on the "leg" field.
func LegIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldLeg, vs...))
}

// LegNotIn applies the NotIn predicate on the "leg" field.
func LegNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldLeg, vs...))
}

// LegGT applies the GT predicate on the "leg" field.
func LegGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldLeg, v))
}

// LegGTE applies the GTE predicate on the "leg" field.
func LegGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldLeg, v))
}

// LegLT applies the LT predicate on the "leg" field.
func LegLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldLeg, v))
}

// LegLTE applies the LTE predicate on the "leg" field.
func LegLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldLeg, v))
}

// LegContains applies the Contains predicate on the "leg" field.
func LegContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldLeg, v))
}

// LegHasPrefix applies the HasPrefix predicate on the "leg" field.
func LegHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldLeg, v))
}

// LegHasSuffix applies the HasSuffix predicate on the "leg" field.
func LegHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldLeg, v))
}

// LegEqualFold applies the EqualFold predicate on the "leg" field.
func LegEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldLeg, v))
}

// LegContainsFold applies the ContainsFold predicate on the "leg" field.
func LegContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldLeg, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTotal, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldCorrect, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldPercentage, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldPassed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.NotPredicates(p))
}
