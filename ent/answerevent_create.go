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
	"github.com/tkoehler/skyprep/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerEventCreate) SetQuestionID(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *AnswerEventCreate) SetCategoryID(v string) *AnswerEventCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *AnswerEventCreate) SetMode(v string) *AnswerEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AnswerEventCreate) SetTimeMs(v int) *AnswerEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimeMs(v *int) *AnswerEventCreate {
	if v != nil {
		_c.SetTimeMs(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := answerevent.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "AnswerEvent.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := answerevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "AnswerEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := answerevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AnswerEvent.time_ms"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(answerevent.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerEventCreate) OnConflict(opts ...sql.ConflictOption) *AnswerEventUpsertOne {
	_c.conflict = opts
	return &AnswerEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerEventCreate) OnConflictColumns(columns ...string) *AnswerEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerEventUpsertOne{
		create: _c,
	}
}

type (
	// AnswerEventUpsertOne is the builder for "upsert"-ing
	//  one AnswerEvent node.
	AnswerEventUpsertOne struct {
		create *AnswerEventCreate
	}

	// AnswerEventUpsert is the "OnConflict" setter.
	AnswerEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *AnswerEventUpsert) SetQuestionID(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateQuestionID() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldQuestionID)
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *AnswerEventUpsert) SetCategoryID(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateCategoryID() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldCategoryID)
	return u
}

// SetMode sets the "mode" field.
func (u *AnswerEventUpsert) SetMode(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateMode() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldMode)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsert) SetCorrect(v bool) *AnswerEventUpsert {
	u.Set(answerevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateCorrect() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldCorrect)
	return u
}

// SetTimeMs sets the "time_ms" field.
func (u *AnswerEventUpsert) SetTimeMs(v int) *AnswerEventUpsert {
	u.Set(answerevent.FieldTimeMs, v)
	return u
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateTimeMs() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldTimeMs)
	return u
}

// AddTimeMs adds v to the "time_ms" field.
func (u *AnswerEventUpsert) AddTimeMs(v int) *AnswerEventUpsert {
	u.Add(answerevent.FieldTimeMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerEventUpsertOne) UpdateNewValues() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(answerevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(answerevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerEventUpsertOne) Ignore() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerEventUpsertOne) DoNothing() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerEventCreate.OnConflict
// documentation for more info.
func (u *AnswerEventUpsertOne) Update(set func(*AnswerEventUpsert)) *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerEventUpsertOne) SetQuestionID(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateQuestionID() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *AnswerEventUpsertOne) SetCategoryID(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateCategoryID() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCategoryID()
	})
}

// SetMode sets the "mode" field.
func (u *AnswerEventUpsertOne) SetMode(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateMode() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateMode()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsertOne) SetCorrect(v bool) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateCorrect() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeMs sets the "time_ms" field.
func (u *AnswerEventUpsertOne) SetTimeMs(v int) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetTimeMs(v)
	})
}

// AddTimeMs adds v to the "time_ms" field.
func (u *AnswerEventUpsertOne) AddTimeMs(v int) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddTimeMs(v)
	})
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateTimeMs() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateTimeMs()
	})
}

// Exec executes the query.
func (u *AnswerEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerEventUpsertBulk {
	_c.conflict = opts
	return &AnswerEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerEventCreateBulk) OnConflictColumns(columns ...string) *AnswerEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerEventUpsertBulk{
		create: _c,
	}
}

// AnswerEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AnswerEvent nodes.
type AnswerEventUpsertBulk struct {
	create *AnswerEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerEventUpsertBulk) UpdateNewValues() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(answerevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(answerevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerEventUpsertBulk) Ignore() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerEventUpsertBulk) DoNothing() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerEventCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerEventUpsertBulk) Update(set func(*AnswerEventUpsert)) *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *AnswerEventUpsertBulk) SetQuestionID(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateQuestionID() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *AnswerEventUpsertBulk) SetCategoryID(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateCategoryID() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCategoryID()
	})
}

// SetMode sets the "mode" field.
func (u *AnswerEventUpsertBulk) SetMode(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateMode() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateMode()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsertBulk) SetCorrect(v bool) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateCorrect() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeMs sets the "time_ms" field.
func (u *AnswerEventUpsertBulk) SetTimeMs(v int) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetTimeMs(v)
	})
}

// AddTimeMs adds v to the "time_ms" field.
func (u *AnswerEventUpsertBulk) AddTimeMs(v int) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddTimeMs(v)
	})
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateTimeMs() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateTimeMs()
	})
}

// Exec executes the query.
func (u *AnswerEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnswerEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
