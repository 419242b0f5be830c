// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-ai/conclave/ent/providerkey"
)

// ProviderKeyCreate is the builder for creating a ProviderKey entity.
type ProviderKeyCreate struct {
	config
	mutation *ProviderKeyMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProviderKeyCreate) SetUserID(v string) *ProviderKeyCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ProviderKeyCreate) SetNillableUserID(v *string) *ProviderKeyCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProviderKeyCreate) SetProvider(v string) *ProviderKeyCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetKeyEncrypted sets the "key_encrypted" field.
func (_c *ProviderKeyCreate) SetKeyEncrypted(v string) *ProviderKeyCreate {
	_c.mutation.SetKeyEncrypted(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderKeyCreate) SetCreatedAt(v time.Time) *ProviderKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderKeyCreate) SetNillableCreatedAt(v *time.Time) *ProviderKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderKeyCreate) SetID(v string) *ProviderKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderKeyMutation object of the builder.
func (_c *ProviderKeyCreate) Mutation() *ProviderKeyMutation {
	return _c.mutation
}

// Save creates the ProviderKey in the database.
func (_c *ProviderKeyCreate) Save(ctx context.Context) (*ProviderKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderKeyCreate) SaveX(ctx context.Context) *ProviderKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := providerkey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderKeyCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderKey.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := providerkey.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ProviderKey.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyEncrypted(); !ok {
		return &ValidationError{Name: "key_encrypted", err: errors.New(`ent: missing required field "ProviderKey.key_encrypted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderKey.created_at"`)}
	}
	return nil
}

func (_c *ProviderKeyCreate) sqlSave(ctx context.Context) (*ProviderKey, error) {
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
			return nil, fmt.Errorf("unexpected ProviderKey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderKeyCreate) createSpec() (*ProviderKey, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providerkey.Table, sqlgraph.NewFieldSpec(providerkey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(providerkey.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(providerkey.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.KeyEncrypted(); ok {
		_spec.SetField(providerkey.FieldKeyEncrypted, field.TypeString, value)
		_node.KeyEncrypted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(providerkey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProviderKeyCreateBulk is the builder for creating many ProviderKey entities in bulk.
type ProviderKeyCreateBulk struct {
	config
	err      error
	builders []*ProviderKeyCreate
}

// Save creates the ProviderKey entities in the database.
func (_c *ProviderKeyCreateBulk) Save(ctx context.Context) ([]*ProviderKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderKeyMutation)
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
func (_c *ProviderKeyCreateBulk) SaveX(ctx context.Context) []*ProviderKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
