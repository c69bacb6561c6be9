// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tkoehler/skyprep/ent/scheduledcard"
)

// ScheduledCard is the model entity for the ScheduledCard schema.
type ScheduledCard struct {
	config `json:"-"`
	// ID of the ent.
	// Question id this card schedules
	ID string `json:"id,omitempty"`
	// Leitner stage 0-5
	Box int `json:"box,omitempty"`
	// Interval growth multiplier, 1.3-3.0
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Days until next scheduled review
	IntervalDays int `json:"interval_days,omitempty"`
	// Consecutive correct answers since last reset
	Repetitions int `json:"repetitions,omitempty"`
	// Card is due when now >= next_review
	NextReview   time.Time `json:"next_review,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledcard.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case scheduledcard.FieldBox, scheduledcard.FieldIntervalDays, scheduledcard.FieldRepetitions:
			values[i] = new(sql.NullInt64)
		case scheduledcard.FieldID:
			values[i] = new(sql.NullString)
		case scheduledcard.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledCard fields.
func (_m *ScheduledCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledcard.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledcard.FieldBox:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box", values[i])
			} else if value.Valid {
				_m.Box = int(value.Int64)
			}
		case scheduledcard.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case scheduledcard.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case scheduledcard.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case scheduledcard.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledCard.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledCard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledCard.
// Note that you need to call ScheduledCard.Unwrap() before calling this method if this ScheduledCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledCard) Update() *ScheduledCardUpdateOne {
	return NewScheduledCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledCard) Unwrap() *ScheduledCard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledCard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledCard) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("box=")
	builder.WriteString(fmt.Sprintf("%v", _m.Box))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledCards is a parsable slice of ScheduledCard.
type ScheduledCards []*ScheduledCard
