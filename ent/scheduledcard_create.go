// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tkoehler/skyprep/ent/scheduledcard"
)

// ScheduledCardCreate is the builder for creating a ScheduledCard entity.
type ScheduledCardCreate struct {
	config
	mutation *ScheduledCardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBox sets the "box" field.
func (_c *ScheduledCardCreate) SetBox(v int) *ScheduledCardCreate {
	_c.mutation.SetBox(v)
	return _c
}

// SetNillableBox sets the "box" field if the given value is not nil.
func (_c *ScheduledCardCreate) SetNillableBox(v *int) *ScheduledCardCreate {
	if v != nil {
		_c.SetBox(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ScheduledCardCreate) SetEaseFactor(v float64) *ScheduledCardCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ScheduledCardCreate) SetNillableEaseFactor(v *float64) *ScheduledCardCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ScheduledCardCreate) SetIntervalDays(v int) *ScheduledCardCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ScheduledCardCreate) SetNillableIntervalDays(v *int) *ScheduledCardCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ScheduledCardCreate) SetRepetitions(v int) *ScheduledCardCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ScheduledCardCreate) SetNillableRepetitions(v *int) *ScheduledCardCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *ScheduledCardCreate) SetNextReview(v time.Time) *ScheduledCardCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledCardCreate) SetID(v string) *ScheduledCardCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledCardMutation object of the builder.
func (_c *ScheduledCardCreate) Mutation() *ScheduledCardMutation {
	return _c.mutation
}

// Save creates the ScheduledCard in the database.
func (_c *ScheduledCardCreate) Save(ctx context.Context) (*ScheduledCard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledCardCreate) SaveX(ctx context.Context) *ScheduledCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledCardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledCardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledCardCreate) defaults() {
	if _, ok := _c.mutation.Box(); !ok {
		v := scheduledcard.DefaultBox
		_c.mutation.SetBox(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := scheduledcard.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := scheduledcard.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := scheduledcard.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledCardCreate) check() error {
	if _, ok := _c.mutation.Box(); !ok {
		return &ValidationError{Name: "box", err: errors.New(`ent: missing required field "ScheduledCard.box"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ScheduledCard.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ScheduledCard.interval_days"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ScheduledCard.repetitions"`)}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "ScheduledCard.next_review"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := scheduledcard.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ScheduledCard.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ScheduledCardCreate) sqlSave(ctx context.Context) (*ScheduledCard, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledCard.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledCardCreate) createSpec() (*ScheduledCard, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledCard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledcard.Table, sqlgraph.NewFieldSpec(scheduledcard.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Box(); ok {
		_spec.SetField(scheduledcard.FieldBox, field.TypeInt, value)
		_node.Box = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(scheduledcard.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(scheduledcard.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(scheduledcard.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(scheduledcard.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledCard.Create().
//		SetBox(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledCardUpsert) {
//			SetBox(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledCardCreate) OnConflict(opts ...sql.ConflictOption) *ScheduledCardUpsertOne {
	_c.conflict = opts
	return &ScheduledCardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledCard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledCardCreate) OnConflictColumns(columns ...string) *ScheduledCardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledCardUpsertOne{
		create: _c,
	}
}

type (
	// ScheduledCardUpsertOne is the builder for "upsert"-ing
	//  one ScheduledCard node.
	ScheduledCardUpsertOne struct {
		create *ScheduledCardCreate
	}

	// ScheduledCardUpsert is the "OnConflict" setter.
	ScheduledCardUpsert struct {
		*sql.UpdateSet
	}
)

// SetBox sets the "box" field.
func (u *ScheduledCardUpsert) SetBox(v int) *ScheduledCardUpsert {
	u.Set(scheduledcard.FieldBox, v)
	return u
}

// UpdateBox sets the "box" field to the value that was provided on create.
func (u *ScheduledCardUpsert) UpdateBox() *ScheduledCardUpsert {
	u.SetExcluded(scheduledcard.FieldBox)
	return u
}

// AddBox adds v to the "box" field.
func (u *ScheduledCardUpsert) AddBox(v int) *ScheduledCardUpsert {
	u.Add(scheduledcard.FieldBox, v)
	return u
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ScheduledCardUpsert) SetEaseFactor(v float64) *ScheduledCardUpsert {
	u.Set(scheduledcard.FieldEaseFactor, v)
	return u
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ScheduledCardUpsert) UpdateEaseFactor() *ScheduledCardUpsert {
	u.SetExcluded(scheduledcard.FieldEaseFactor)
	return u
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ScheduledCardUpsert) AddEaseFactor(v float64) *ScheduledCardUpsert {
	u.Add(scheduledcard.FieldEaseFactor, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *ScheduledCardUpsert) SetIntervalDays(v int) *ScheduledCardUpsert {
	u.Set(scheduledcard.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ScheduledCardUpsert) UpdateIntervalDays() *ScheduledCardUpsert {
	u.SetExcluded(scheduledcard.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ScheduledCardUpsert) AddIntervalDays(v int) *ScheduledCardUpsert {
	u.Add(scheduledcard.FieldIntervalDays, v)
	return u
}

// SetRepetitions sets the "repetitions" field.
func (u *ScheduledCardUpsert) SetRepetitions(v int) *ScheduledCardUpsert {
	u.Set(scheduledcard.FieldRepetitions, v)
	return u
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ScheduledCardUpsert) UpdateRepetitions() *ScheduledCardUpsert {
	u.SetExcluded(scheduledcard.FieldRepetitions)
	return u
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ScheduledCardUpsert) AddRepetitions(v int) *ScheduledCardUpsert {
	u.Add(scheduledcard.FieldRepetitions, v)
	return u
}

// SetNextReview sets the "next_review" field.
func (u *ScheduledCardUpsert) SetNextReview(v time.Time) *ScheduledCardUpsert {
	u.Set(scheduledcard.FieldNextReview, v)
	return u
}

// UpdateNextReview sets the "next_review" field to the value that was provided on create.
func (u *ScheduledCardUpsert) UpdateNextReview() *ScheduledCardUpsert {
	u.SetExcluded(scheduledcard.FieldNextReview)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScheduledCard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledcard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledCardUpsertOne) UpdateNewValues() *ScheduledCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scheduledcard.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledCard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduledCardUpsertOne) Ignore() *ScheduledCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledCardUpsertOne) DoNothing() *ScheduledCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledCardCreate.OnConflict
// documentation for more info.
func (u *ScheduledCardUpsertOne) Update(set func(*ScheduledCardUpsert)) *ScheduledCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledCardUpsert{UpdateSet: update})
	}))
	return u
}

// SetBox sets the "box" field.
func (u *ScheduledCardUpsertOne) SetBox(v int) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetBox(v)
	})
}

// AddBox adds v to the "box" field.
func (u *ScheduledCardUpsertOne) AddBox(v int) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddBox(v)
	})
}

// UpdateBox sets the "box" field to the value that was provided on create.
func (u *ScheduledCardUpsertOne) UpdateBox() *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateBox()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ScheduledCardUpsertOne) SetEaseFactor(v float64) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ScheduledCardUpsertOne) AddEaseFactor(v float64) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ScheduledCardUpsertOne) UpdateEaseFactor() *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ScheduledCardUpsertOne) SetIntervalDays(v int) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ScheduledCardUpsertOne) AddIntervalDays(v int) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ScheduledCardUpsertOne) UpdateIntervalDays() *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ScheduledCardUpsertOne) SetRepetitions(v int) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ScheduledCardUpsertOne) AddRepetitions(v int) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ScheduledCardUpsertOne) UpdateRepetitions() *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateRepetitions()
	})
}

// SetNextReview sets the "next_review" field.
func (u *ScheduledCardUpsertOne) SetNextReview(v time.Time) *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetNextReview(v)
	})
}

// UpdateNextReview sets the "next_review" field to the value that was provided on create.
func (u *ScheduledCardUpsertOne) UpdateNextReview() *ScheduledCardUpsertOne {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateNextReview()
	})
}

// Exec executes the query.
func (u *ScheduledCardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledCardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledCardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduledCardUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduledCardUpsertOne.ID is not supported by MySQL driver. Use ScheduledCardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduledCardUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduledCardCreateBulk is the builder for creating many ScheduledCard entities in bulk.
type ScheduledCardCreateBulk struct {
	config
	err      error
	builders []*ScheduledCardCreate
	conflict []sql.ConflictOption
}

// Save creates the ScheduledCard entities in the database.
func (_c *ScheduledCardCreateBulk) Save(ctx context.Context) ([]*ScheduledCard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledCard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledCardMutation)
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
func (_c *ScheduledCardCreateBulk) SaveX(ctx context.Context) []*ScheduledCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledCardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledCardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledCard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledCardUpsert) {
//			SetBox(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledCardCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduledCardUpsertBulk {
	_c.conflict = opts
	return &ScheduledCardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledCard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledCardCreateBulk) OnConflictColumns(columns ...string) *ScheduledCardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledCardUpsertBulk{
		create: _c,
	}
}

// ScheduledCardUpsertBulk is the builder for "upsert"-ing
// a bulk of ScheduledCard nodes.
type ScheduledCardUpsertBulk struct {
	create *ScheduledCardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScheduledCard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledcard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledCardUpsertBulk) UpdateNewValues() *ScheduledCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scheduledcard.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledCard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduledCardUpsertBulk) Ignore() *ScheduledCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledCardUpsertBulk) DoNothing() *ScheduledCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledCardCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduledCardUpsertBulk) Update(set func(*ScheduledCardUpsert)) *ScheduledCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledCardUpsert{UpdateSet: update})
	}))
	return u
}

// SetBox sets the "box" field.
func (u *ScheduledCardUpsertBulk) SetBox(v int) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetBox(v)
	})
}

// AddBox adds v to the "box" field.
func (u *ScheduledCardUpsertBulk) AddBox(v int) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddBox(v)
	})
}

// UpdateBox sets the "box" field to the value that was provided on create.
func (u *ScheduledCardUpsertBulk) UpdateBox() *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateBox()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *ScheduledCardUpsertBulk) SetEaseFactor(v float64) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *ScheduledCardUpsertBulk) AddEaseFactor(v float64) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *ScheduledCardUpsertBulk) UpdateEaseFactor() *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *ScheduledCardUpsertBulk) SetIntervalDays(v int) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *ScheduledCardUpsertBulk) AddIntervalDays(v int) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *ScheduledCardUpsertBulk) UpdateIntervalDays() *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *ScheduledCardUpsertBulk) SetRepetitions(v int) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *ScheduledCardUpsertBulk) AddRepetitions(v int) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *ScheduledCardUpsertBulk) UpdateRepetitions() *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateRepetitions()
	})
}

// SetNextReview sets the "next_review" field.
func (u *ScheduledCardUpsertBulk) SetNextReview(v time.Time) *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.SetNextReview(v)
	})
}

// UpdateNextReview sets the "next_review" field to the value that was provided on create.
func (u *ScheduledCardUpsertBulk) UpdateNextReview() *ScheduledCardUpsertBulk {
	return u.Update(func(s *ScheduledCardUpsert) {
		s.UpdateNextReview()
	})
}

// Exec executes the query.
func (u *ScheduledCardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduledCardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledCardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledCardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
