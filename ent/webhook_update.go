// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conclave-ai/conclave/ent/predicate"
	"github.com/conclave-ai/conclave/ent/webhook"
)

// WebhookUpdate is the builder for updating Webhook entities.
type WebhookUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookMutation
}

// Where appends a list predicates to the WebhookUpdate builder.
func (_u *WebhookUpdate) Where(ps ...predicate.Webhook) *WebhookUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookUpdate) SetURL(v string) *WebhookUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableURL(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookUpdate) SetEvents(v []string) *WebhookUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookUpdate) AppendEvents(v []string) *WebhookUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookUpdate) SetActive(v bool) *WebhookUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableActive(v *bool) *WebhookUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookUpdate) SetSecretEncrypted(v string) *WebhookUpdate {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookUpdate) SetNillableSecretEncrypted(v *string) *WebhookUpdate {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (_u *WebhookUpdate) ClearSecretEncrypted() *WebhookUpdate {
	_u.mutation.ClearSecretEncrypted()
	return _u
}

// Mutation returns the WebhookMutation object of the builder.
func (_u *WebhookUpdate) Mutation() *WebhookMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := webhook.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Webhook.url": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhook.Table, webhook.Columns, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhook.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhook.FieldEvents, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhook.FieldSecretEncrypted, field.TypeString, value)
	}
	if _u.mutation.SecretEncryptedCleared() {
		_spec.ClearField(webhook.FieldSecretEncrypted, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookUpdateOne is the builder for updating a single Webhook entity.
type WebhookUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookMutation
}

// SetURL sets the "url" field.
func (_u *WebhookUpdateOne) SetURL(v string) *WebhookUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableURL(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookUpdateOne) SetEvents(v []string) *WebhookUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookUpdateOne) AppendEvents(v []string) *WebhookUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookUpdateOne) SetActive(v bool) *WebhookUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableActive(v *bool) *WebhookUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (_u *WebhookUpdateOne) SetSecretEncrypted(v string) *WebhookUpdateOne {
	_u.mutation.SetSecretEncrypted(v)
	return _u
}

// SetNillableSecretEncrypted sets the "secret_encrypted" field if the given value is not nil.
func (_u *WebhookUpdateOne) SetNillableSecretEncrypted(v *string) *WebhookUpdateOne {
	if v != nil {
		_u.SetSecretEncrypted(*v)
	}
	return _u
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (_u *WebhookUpdateOne) ClearSecretEncrypted() *WebhookUpdateOne {
	_u.mutation.ClearSecretEncrypted()
	return _u
}

// Mutation returns the WebhookMutation object of the builder.
func (_u *WebhookUpdateOne) Mutation() *WebhookMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookUpdate builder.
func (_u *WebhookUpdateOne) Where(ps ...predicate.Webhook) *WebhookUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookUpdateOne) Select(field string, fields ...string) *WebhookUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Webhook entity.
func (_u *WebhookUpdateOne) Save(ctx context.Context) (*Webhook, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookUpdateOne) SaveX(ctx context.Context) *Webhook {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := webhook.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Webhook.url": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookUpdateOne) sqlSave(ctx context.Context) (_node *Webhook, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhook.Table, webhook.Columns, sqlgraph.NewFieldSpec(webhook.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Webhook.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhook.FieldID)
		for _, f := range fields {
			if !webhook.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhook.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhook.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhook.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhook.FieldEvents, value)
		})
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhook.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SecretEncrypted(); ok {
		_spec.SetField(webhook.FieldSecretEncrypted, field.TypeString, value)
	}
	if _u.mutation.SecretEncryptedCleared() {
		_spec.ClearField(webhook.FieldSecretEncrypted, field.TypeString)
	}
	_node = &Webhook{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
