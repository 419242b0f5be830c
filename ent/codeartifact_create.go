// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/ent/meeting"
)

// CodeArtifactCreate is the builder for creating a CodeArtifact entity.
type CodeArtifactCreate struct {
	config
	mutation *CodeArtifactMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *CodeArtifactCreate) SetMeetingID(v string) *CodeArtifactCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *CodeArtifactCreate) SetFilename(v string) *CodeArtifactCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CodeArtifactCreate) SetLanguage(v string) *CodeArtifactCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CodeArtifactCreate) SetContent(v string) *CodeArtifactCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CodeArtifactCreate) SetDescription(v string) *CodeArtifactCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CodeArtifactCreate) SetNillableDescription(v *string) *CodeArtifactCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CodeArtifactCreate) SetVersion(v int) *CodeArtifactCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CodeArtifactCreate) SetNillableVersion(v *int) *CodeArtifactCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetSourceAgent sets the "source_agent" field.
func (_c *CodeArtifactCreate) SetSourceAgent(v string) *CodeArtifactCreate {
	_c.mutation.SetSourceAgent(v)
	return _c
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_c *CodeArtifactCreate) SetNillableSourceAgent(v *string) *CodeArtifactCreate {
	if v != nil {
		_c.SetSourceAgent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodeArtifactCreate) SetCreatedAt(v time.Time) *CodeArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodeArtifactCreate) SetNillableCreatedAt(v *time.Time) *CodeArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CodeArtifactCreate) SetUpdatedAt(v time.Time) *CodeArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CodeArtifactCreate) SetNillableUpdatedAt(v *time.Time) *CodeArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CodeArtifactCreate) SetID(v string) *CodeArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_c *CodeArtifactCreate) SetMeeting(v *Meeting) *CodeArtifactCreate {
	return _c.SetMeetingID(v.ID)
}

// Mutation returns the CodeArtifactMutation object of the builder.
func (_c *CodeArtifactCreate) Mutation() *CodeArtifactMutation {
	return _c.mutation
}

// Save creates the CodeArtifact in the database.
func (_c *CodeArtifactCreate) Save(ctx context.Context) (*CodeArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeArtifactCreate) SaveX(ctx context.Context) *CodeArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodeArtifactCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := codeartifact.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codeartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := codeartifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeArtifactCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "CodeArtifact.meeting_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "CodeArtifact.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := codeartifact.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "CodeArtifact.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "CodeArtifact.language"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CodeArtifact.content"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CodeArtifact.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := codeartifact.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CodeArtifact.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodeArtifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CodeArtifact.updated_at"`)}
	}
	if len(_c.mutation.MeetingIDs()) == 0 {
		return &ValidationError{Name: "meeting", err: errors.New(`ent: missing required edge "CodeArtifact.meeting"`)}
	}
	return nil
}

func (_c *CodeArtifactCreate) sqlSave(ctx context.Context) (*CodeArtifact, error) {
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
			return nil, fmt.Errorf("unexpected CodeArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CodeArtifactCreate) createSpec() (*CodeArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codeartifact.Table, sqlgraph.NewFieldSpec(codeartifact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(codeartifact.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(codeartifact.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(codeartifact.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(codeartifact.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(codeartifact.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.SourceAgent(); ok {
		_spec.SetField(codeartifact.FieldSourceAgent, field.TypeString, value)
		_node.SourceAgent = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codeartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(codeartifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MeetingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   codeartifact.MeetingTable,
			Columns: []string{codeartifact.MeetingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MeetingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CodeArtifactCreateBulk is the builder for creating many CodeArtifact entities in bulk.
type CodeArtifactCreateBulk struct {
	config
	err      error
	builders []*CodeArtifactCreate
}

// Save creates the CodeArtifact entities in the database.
func (_c *CodeArtifactCreateBulk) Save(ctx context.Context) ([]*CodeArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeArtifactMutation)
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
func (_c *CodeArtifactCreateBulk) SaveX(ctx context.Context) []*CodeArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
