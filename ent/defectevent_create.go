// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bondten/ent/defectevent"
)

// DefectEventCreate is the builder for creating a DefectEvent entity.
type DefectEventCreate struct {
	config
	mutation *DefectEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DefectEventCreate) SetSequence(v int64) *DefectEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DefectEventCreate) SetTimestamp(v time.Time) *DefectEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DefectEventCreate) SetNillableTimestamp(v *time.Time) *DefectEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *DefectEventCreate) SetSource(v string) *DefectEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *DefectEventCreate) SetMessage(v string) *DefectEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DefectEventCreate) SetSessionID(v string) *DefectEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *DefectEventCreate) SetNillableSessionID(v *string) *DefectEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *DefectEventCreate) SetLevel(v int) *DefectEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *DefectEventCreate) SetNillableLevel(v *int) *DefectEventCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// Mutation returns the DefectEventMutation object of the builder.
func (_c *DefectEventCreate) Mutation() *DefectEventMutation {
	return _c.mutation
}

// Save creates the DefectEvent in the database.
func (_c *DefectEventCreate) Save(ctx context.Context) (*DefectEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DefectEventCreate) SaveX(ctx context.Context) *DefectEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DefectEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DefectEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DefectEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := defectevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DefectEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DefectEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DefectEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DefectEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := defectevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DefectEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "DefectEvent.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := defectevent.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "DefectEvent.message": %w`, err)}
		}
	}
	return nil
}

func (_c *DefectEventCreate) sqlSave(ctx context.Context) (*DefectEvent, error) {
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

func (_c *DefectEventCreate) createSpec() (*DefectEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DefectEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(defectevent.Table, sqlgraph.NewFieldSpec(defectevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(defectevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(defectevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(defectevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(defectevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(defectevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(defectevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	return _node, _spec
}

// DefectEventCreateBulk is the builder for creating many DefectEvent entities in bulk.
type DefectEventCreateBulk struct {
	config
	err      error
	builders []*DefectEventCreate
}

// Save creates the DefectEvent entities in the database.
func (_c *DefectEventCreateBulk) Save(ctx context.Context) ([]*DefectEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DefectEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DefectEventMutation)
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
func (_c *DefectEventCreateBulk) SaveX(ctx context.Context) []*DefectEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DefectEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DefectEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
