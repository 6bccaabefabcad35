// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bondten/ent/attemptevent"
	"github.com/abhisek/bondten/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemKey sets the "problem_key" field.
func (_u *AttemptEventUpdate) SetProblemKey(v string) *AttemptEventUpdate {
	_u.mutation.SetProblemKey(v)
	return _u
}

// SetNillableProblemKey sets the "problem_key" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableProblemKey(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetProblemKey(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AttemptEventUpdate) SetOperation(v string) *AttemptEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperation(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AttemptEventUpdate) SetStrategy(v string) *AttemptEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStrategy(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdate) SetLevel(v int) *AttemptEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLevel(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdate) AddLevel(v int) *AttemptEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetWrongGuesses sets the "wrong_guesses" field.
func (_u *AttemptEventUpdate) SetWrongGuesses(v int) *AttemptEventUpdate {
	_u.mutation.ResetWrongGuesses()
	_u.mutation.SetWrongGuesses(v)
	return _u
}

// SetNillableWrongGuesses sets the "wrong_guesses" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWrongGuesses(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetWrongGuesses(*v)
	}
	return _u
}

// AddWrongGuesses adds value to the "wrong_guesses" field.
func (_u *AttemptEventUpdate) AddWrongGuesses(v int) *AttemptEventUpdate {
	_u.mutation.AddWrongGuesses(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdate) SetTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdate) AddTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetSlip sets the "slip" field.
func (_u *AttemptEventUpdate) SetSlip(v string) *AttemptEventUpdate {
	_u.mutation.SetSlip(v)
	return _u
}

// SetNillableSlip sets the "slip" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSlip(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSlip(*v)
	}
	return _u
}

// ClearSlip clears the value of the "slip" field.
func (_u *AttemptEventUpdate) ClearSlip() *AttemptEventUpdate {
	_u.mutation.ClearSlip()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemKey(); ok {
		if err := attemptevent.ProblemKeyValidator(v); err != nil {
			return &ValidationError{Name: "problem_key", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := attemptevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemKey(); ok {
		_spec.SetField(attemptevent.FieldProblemKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(attemptevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WrongGuesses(); ok {
		_spec.SetField(attemptevent.FieldWrongGuesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongGuesses(); ok {
		_spec.AddField(attemptevent.FieldWrongGuesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Slip(); ok {
		_spec.SetField(attemptevent.FieldSlip, field.TypeString, value)
	}
	if _u.mutation.SlipCleared() {
		_spec.ClearField(attemptevent.FieldSlip, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemKey sets the "problem_key" field.
func (_u *AttemptEventUpdateOne) SetProblemKey(v string) *AttemptEventUpdateOne {
	_u.mutation.SetProblemKey(v)
	return _u
}

// SetNillableProblemKey sets the "problem_key" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableProblemKey(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetProblemKey(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AttemptEventUpdateOne) SetOperation(v string) *AttemptEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperation(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AttemptEventUpdateOne) SetStrategy(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStrategy(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdateOne) SetLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLevel(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdateOne) AddLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetWrongGuesses sets the "wrong_guesses" field.
func (_u *AttemptEventUpdateOne) SetWrongGuesses(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetWrongGuesses()
	_u.mutation.SetWrongGuesses(v)
	return _u
}

// SetNillableWrongGuesses sets the "wrong_guesses" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWrongGuesses(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWrongGuesses(*v)
	}
	return _u
}

// AddWrongGuesses adds value to the "wrong_guesses" field.
func (_u *AttemptEventUpdateOne) AddWrongGuesses(v int) *AttemptEventUpdateOne {
	_u.mutation.AddWrongGuesses(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetSlip sets the "slip" field.
func (_u *AttemptEventUpdateOne) SetSlip(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSlip(v)
	return _u
}

// SetNillableSlip sets the "slip" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSlip(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSlip(*v)
	}
	return _u
}

// ClearSlip clears the value of the "slip" field.
func (_u *AttemptEventUpdateOne) ClearSlip() *AttemptEventUpdateOne {
	_u.mutation.ClearSlip()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemKey(); ok {
		if err := attemptevent.ProblemKeyValidator(v); err != nil {
			return &ValidationError{Name: "problem_key", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.problem_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := attemptevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemKey(); ok {
		_spec.SetField(attemptevent.FieldProblemKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(attemptevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WrongGuesses(); ok {
		_spec.SetField(attemptevent.FieldWrongGuesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongGuesses(); ok {
		_spec.AddField(attemptevent.FieldWrongGuesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Slip(); ok {
		_spec.SetField(attemptevent.FieldSlip, field.TypeString, value)
	}
	if _u.mutation.SlipCleared() {
		_spec.ClearField(attemptevent.FieldSlip, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
