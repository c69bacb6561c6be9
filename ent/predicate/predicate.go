// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// ExamEvent is the predicate function for examevent builders.
type ExamEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// ScheduledCard is the predicate function for scheduledcard builders.
type ScheduledCard func(*sql.Selector)
