// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tkoehler/skyprep/ent/examevent"
	"github.com/tkoehler/skyprep/ent/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeg sets the "leg" field.
func (_u *ExamEventUpdate) SetLeg(v string) *ExamEventUpdate {
	_u.mutation.SetLeg(v)
	return _u
}

// SetNillableLeg sets the "leg" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableLeg(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetLeg(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamEventUpdate) SetTotal(v int) *ExamEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTotal(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamEventUpdate) AddTotal(v int) *ExamEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamEventUpdate) SetCorrect(v int) *ExamEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableCorrect(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ExamEventUpdate) AddCorrect(v int) *ExamEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ExamEventUpdate) SetPercentage(v float64) *ExamEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePercentage(v *float64) *ExamEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ExamEventUpdate) AddPercentage(v float64) *ExamEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdate) SetPassed(v bool) *ExamEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePassed(v *bool) *ExamEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.Leg(); ok {
		if err := examevent.LegValidator(v); err != nil {
			return &ValidationError{Name: "leg", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.leg": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Leg(); ok {
		_spec.SetField(examevent.FieldLeg, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(examevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetLeg sets the "leg" field.
func (_u *ExamEventUpdateOne) SetLeg(v string) *ExamEventUpdateOne {
	_u.mutation.SetLeg(v)
	return _u
}

// SetNillableLeg sets the "leg" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableLeg(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetLeg(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamEventUpdateOne) SetTotal(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTotal(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamEventUpdateOne) AddTotal(v int) *ExamEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamEventUpdateOne) SetCorrect(v int) *ExamEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableCorrect(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ExamEventUpdateOne) AddCorrect(v int) *ExamEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *ExamEventUpdateOne) SetPercentage(v float64) *ExamEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePercentage(v *float64) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *ExamEventUpdateOne) AddPercentage(v float64) *ExamEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdateOne) SetPassed(v bool) *ExamEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePassed(v *bool) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.Leg(); ok {
		if err := examevent.LegValidator(v); err != nil {
			return &ValidationError{Name: "leg", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.leg": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.Leg(); ok {
		_spec.SetField(examevent.FieldLeg, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(examevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(examevent.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
