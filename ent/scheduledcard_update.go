// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tkoehler/skyprep/ent/predicate"
	"github.com/tkoehler/skyprep/ent/scheduledcard"
)

// ScheduledCardUpdate is the builder for updating ScheduledCard entities.
type ScheduledCardUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledCardMutation
}

// Where appends a list predicates to the ScheduledCardUpdate builder.
func (_u *ScheduledCardUpdate) Where(ps ...predicate.ScheduledCard) *ScheduledCardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBox sets the "box" field.
func (_u *ScheduledCardUpdate) SetBox(v int) *ScheduledCardUpdate {
	_u.mutation.ResetBox()
	_u.mutation.SetBox(v)
	return _u
}

// SetNillableBox sets the "box" field if the given value is not nil.
func (_u *ScheduledCardUpdate) SetNillableBox(v *int) *ScheduledCardUpdate {
	if v != nil {
		_u.SetBox(*v)
	}
	return _u
}

// AddBox adds value to the "box" field.
func (_u *ScheduledCardUpdate) AddBox(v int) *ScheduledCardUpdate {
	_u.mutation.AddBox(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ScheduledCardUpdate) SetEaseFactor(v float64) *ScheduledCardUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ScheduledCardUpdate) SetNillableEaseFactor(v *float64) *ScheduledCardUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ScheduledCardUpdate) AddEaseFactor(v float64) *ScheduledCardUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ScheduledCardUpdate) SetIntervalDays(v int) *ScheduledCardUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ScheduledCardUpdate) SetNillableIntervalDays(v *int) *ScheduledCardUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ScheduledCardUpdate) AddIntervalDays(v int) *ScheduledCardUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ScheduledCardUpdate) SetRepetitions(v int) *ScheduledCardUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ScheduledCardUpdate) SetNillableRepetitions(v *int) *ScheduledCardUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ScheduledCardUpdate) AddRepetitions(v int) *ScheduledCardUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ScheduledCardUpdate) SetNextReview(v time.Time) *ScheduledCardUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ScheduledCardUpdate) SetNillableNextReview(v *time.Time) *ScheduledCardUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// Mutation returns the ScheduledCardMutation object of the builder.
func (_u *ScheduledCardUpdate) Mutation() *ScheduledCardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledCardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledCardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledCardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledCardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduledCardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduledcard.Table, scheduledcard.Columns, sqlgraph.NewFieldSpec(scheduledcard.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Box(); ok {
		_spec.SetField(scheduledcard.FieldBox, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBox(); ok {
		_spec.AddField(scheduledcard.FieldBox, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(scheduledcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(scheduledcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(scheduledcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(scheduledcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(scheduledcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(scheduledcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(scheduledcard.FieldNextReview, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledCardUpdateOne is the builder for updating a single ScheduledCard entity.
type ScheduledCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledCardMutation
}

// SetBox sets the "box" field.
func (_u *ScheduledCardUpdateOne) SetBox(v int) *ScheduledCardUpdateOne {
	_u.mutation.ResetBox()
	_u.mutation.SetBox(v)
	return _u
}

// SetNillableBox sets the "box" field if the given value is not nil.
func (_u *ScheduledCardUpdateOne) SetNillableBox(v *int) *ScheduledCardUpdateOne {
	if v != nil {
		_u.SetBox(*v)
	}
	return _u
}

// AddBox adds value to the "box" field.
func (_u *ScheduledCardUpdateOne) AddBox(v int) *ScheduledCardUpdateOne {
	_u.mutation.AddBox(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ScheduledCardUpdateOne) SetEaseFactor(v float64) *ScheduledCardUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ScheduledCardUpdateOne) SetNillableEaseFactor(v *float64) *ScheduledCardUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ScheduledCardUpdateOne) AddEaseFactor(v float64) *ScheduledCardUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ScheduledCardUpdateOne) SetIntervalDays(v int) *ScheduledCardUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ScheduledCardUpdateOne) SetNillableIntervalDays(v *int) *ScheduledCardUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ScheduledCardUpdateOne) AddIntervalDays(v int) *ScheduledCardUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ScheduledCardUpdateOne) SetRepetitions(v int) *ScheduledCardUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ScheduledCardUpdateOne) SetNillableRepetitions(v *int) *ScheduledCardUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ScheduledCardUpdateOne) AddRepetitions(v int) *ScheduledCardUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ScheduledCardUpdateOne) SetNextReview(v time.Time) *ScheduledCardUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ScheduledCardUpdateOne) SetNillableNextReview(v *time.Time) *ScheduledCardUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// Mutation returns the ScheduledCardMutation object of the builder.
func (_u *ScheduledCardUpdateOne) Mutation() *ScheduledCardMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledCardUpdate builder.
func (_u *ScheduledCardUpdateOne) Where(ps ...predicate.ScheduledCard) *ScheduledCardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledCardUpdateOne) Select(field string, fields ...string) *ScheduledCardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledCard entity.
func (_u *ScheduledCardUpdateOne) Save(ctx context.Context) (*ScheduledCard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledCardUpdateOne) SaveX(ctx context.Context) *ScheduledCard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledCardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledCardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduledCardUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledCard, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduledcard.Table, scheduledcard.Columns, sqlgraph.NewFieldSpec(scheduledcard.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledcard.FieldID)
		for _, f := range fields {
			if !scheduledcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Box(); ok {
		_spec.SetField(scheduledcard.FieldBox, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBox(); ok {
		_spec.AddField(scheduledcard.FieldBox, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(scheduledcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(scheduledcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(scheduledcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(scheduledcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(scheduledcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(scheduledcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(scheduledcard.FieldNextReview, field.TypeTime, value)
	}
	_node = &ScheduledCard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
