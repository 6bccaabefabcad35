// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bondten/ent/defectevent"
	"github.com/abhisek/bondten/ent/predicate"
)

// DefectEventUpdate is the builder for updating DefectEvent entities.
type DefectEventUpdate struct {
	config
	hooks    []Hook
	mutation *DefectEventMutation
}

// Where appends a list predicates to the DefectEventUpdate builder.
func (_u *DefectEventUpdate) Where(ps ...predicate.DefectEvent) *DefectEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *DefectEventUpdate) SetSource(v string) *DefectEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DefectEventUpdate) SetNillableSource(v *string) *DefectEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *DefectEventUpdate) SetMessage(v string) *DefectEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DefectEventUpdate) SetNillableMessage(v *string) *DefectEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DefectEventUpdate) SetSessionID(v string) *DefectEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DefectEventUpdate) SetNillableSessionID(v *string) *DefectEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *DefectEventUpdate) ClearSessionID() *DefectEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetLevel sets the "level" field.
func (_u *DefectEventUpdate) SetLevel(v int) *DefectEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DefectEventUpdate) SetNillableLevel(v *int) *DefectEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *DefectEventUpdate) AddLevel(v int) *DefectEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *DefectEventUpdate) ClearLevel() *DefectEventUpdate {
	_u.mutation.ClearLevel()
	return _u
}

// Mutation returns the DefectEventMutation object of the builder.
func (_u *DefectEventUpdate) Mutation() *DefectEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DefectEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DefectEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DefectEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DefectEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DefectEventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := defectevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DefectEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := defectevent.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "DefectEvent.message": %w`, err)}
		}
	}
	return nil
}

func (_u *DefectEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(defectevent.Table, defectevent.Columns, sqlgraph.NewFieldSpec(defectevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(defectevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(defectevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(defectevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(defectevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(defectevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(defectevent.FieldLevel, field.TypeInt, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(defectevent.FieldLevel, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{defectevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DefectEventUpdateOne is the builder for updating a single DefectEvent entity.
type DefectEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DefectEventMutation
}

// SetSource sets the "source" field.
func (_u *DefectEventUpdateOne) SetSource(v string) *DefectEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DefectEventUpdateOne) SetNillableSource(v *string) *DefectEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *DefectEventUpdateOne) SetMessage(v string) *DefectEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *DefectEventUpdateOne) SetNillableMessage(v *string) *DefectEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DefectEventUpdateOne) SetSessionID(v string) *DefectEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DefectEventUpdateOne) SetNillableSessionID(v *string) *DefectEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *DefectEventUpdateOne) ClearSessionID() *DefectEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetLevel sets the "level" field.
func (_u *DefectEventUpdateOne) SetLevel(v int) *DefectEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DefectEventUpdateOne) SetNillableLevel(v *int) *DefectEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *DefectEventUpdateOne) AddLevel(v int) *DefectEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *DefectEventUpdateOne) ClearLevel() *DefectEventUpdateOne {
	_u.mutation.ClearLevel()
	return _u
}

// Mutation returns the DefectEventMutation object of the builder.
func (_u *DefectEventUpdateOne) Mutation() *DefectEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DefectEventUpdate builder.
func (_u *DefectEventUpdateOne) Where(ps ...predicate.DefectEvent) *DefectEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DefectEventUpdateOne) Select(field string, fields ...string) *DefectEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DefectEvent entity.
func (_u *DefectEventUpdateOne) Save(ctx context.Context) (*DefectEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DefectEventUpdateOne) SaveX(ctx context.Context) *DefectEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DefectEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DefectEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DefectEventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := defectevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DefectEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := defectevent.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "DefectEvent.message": %w`, err)}
		}
	}
	return nil
}

func (_u *DefectEventUpdateOne) sqlSave(ctx context.Context) (_node *DefectEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(defectevent.Table, defectevent.Columns, sqlgraph.NewFieldSpec(defectevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DefectEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, defectevent.FieldID)
		for _, f := range fields {
			if !defectevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != defectevent.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(defectevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(defectevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(defectevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(defectevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(defectevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(defectevent.FieldLevel, field.TypeInt, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(defectevent.FieldLevel, field.TypeInt)
	}
	_node = &DefectEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{defectevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
