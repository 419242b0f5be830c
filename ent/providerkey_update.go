// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-ai/conclave/ent/predicate"
	"github.com/conclave-ai/conclave/ent/providerkey"
)

// ProviderKeyUpdate is the builder for updating ProviderKey entities.
type ProviderKeyUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderKeyMutation
}

// Where appends a list predicates to the ProviderKeyUpdate builder.
func (_u *ProviderKeyUpdate) Where(ps ...predicate.ProviderKey) *ProviderKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProviderKeyUpdate) SetUserID(v string) *ProviderKeyUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProviderKeyUpdate) SetNillableUserID(v *string) *ProviderKeyUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ProviderKeyUpdate) ClearUserID() *ProviderKeyUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderKeyUpdate) SetProvider(v string) *ProviderKeyUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderKeyUpdate) SetNillableProvider(v *string) *ProviderKeyUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetKeyEncrypted sets the "key_encrypted" field.
func (_u *ProviderKeyUpdate) SetKeyEncrypted(v string) *ProviderKeyUpdate {
	_u.mutation.SetKeyEncrypted(v)
	return _u
}

// SetNillableKeyEncrypted sets the "key_encrypted" field if the given value is not nil.
func (_u *ProviderKeyUpdate) SetNillableKeyEncrypted(v *string) *ProviderKeyUpdate {
	if v != nil {
		_u.SetKeyEncrypted(*v)
	}
	return _u
}

// Mutation returns the ProviderKeyMutation object of the builder.
func (_u *ProviderKeyUpdate) Mutation() *ProviderKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderKeyUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := providerkey.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ProviderKey.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerkey.Table, providerkey.Columns, sqlgraph.NewFieldSpec(providerkey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(providerkey.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(providerkey.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providerkey.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyEncrypted(); ok {
		_spec.SetField(providerkey.FieldKeyEncrypted, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderKeyUpdateOne is the builder for updating a single ProviderKey entity.
type ProviderKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderKeyMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProviderKeyUpdateOne) SetUserID(v string) *ProviderKeyUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProviderKeyUpdateOne) SetNillableUserID(v *string) *ProviderKeyUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ProviderKeyUpdateOne) ClearUserID() *ProviderKeyUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderKeyUpdateOne) SetProvider(v string) *ProviderKeyUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderKeyUpdateOne) SetNillableProvider(v *string) *ProviderKeyUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetKeyEncrypted sets the "key_encrypted" field.
func (_u *ProviderKeyUpdateOne) SetKeyEncrypted(v string) *ProviderKeyUpdateOne {
	_u.mutation.SetKeyEncrypted(v)
	return _u
}

// SetNillableKeyEncrypted sets the "key_encrypted" field if the given value is not nil.
func (_u *ProviderKeyUpdateOne) SetNillableKeyEncrypted(v *string) *ProviderKeyUpdateOne {
	if v != nil {
		_u.SetKeyEncrypted(*v)
	}
	return _u
}

// Mutation returns the ProviderKeyMutation object of the builder.
func (_u *ProviderKeyUpdateOne) Mutation() *ProviderKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderKeyUpdate builder.
func (_u *ProviderKeyUpdateOne) Where(ps ...predicate.ProviderKey) *ProviderKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderKeyUpdateOne) Select(field string, fields ...string) *ProviderKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderKey entity.
func (_u *ProviderKeyUpdateOne) Save(ctx context.Context) (*ProviderKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderKeyUpdateOne) SaveX(ctx context.Context) *ProviderKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderKeyUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := providerkey.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ProviderKey.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderKeyUpdateOne) sqlSave(ctx context.Context) (_node *ProviderKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerkey.Table, providerkey.Columns, sqlgraph.NewFieldSpec(providerkey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerkey.FieldID)
		for _, f := range fields {
			if !providerkey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providerkey.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(providerkey.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(providerkey.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providerkey.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyEncrypted(); ok {
		_spec.SetField(providerkey.FieldKeyEncrypted, field.TypeString, value)
	}
	_node = &ProviderKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerkey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
