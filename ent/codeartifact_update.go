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
	"github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/ent/meeting"
	"github.com/conclave-ai/conclave/ent/predicate"
)

// CodeArtifactUpdate is the builder for updating CodeArtifact entities.
type CodeArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *CodeArtifactMutation
}

// Where appends a list predicates to the CodeArtifactUpdate builder.
func (_u *CodeArtifactUpdate) Where(ps ...predicate.CodeArtifact) *CodeArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *CodeArtifactUpdate) SetMeetingID(v string) *CodeArtifactUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableMeetingID(v *string) *CodeArtifactUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *CodeArtifactUpdate) SetFilename(v string) *CodeArtifactUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableFilename(v *string) *CodeArtifactUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CodeArtifactUpdate) SetLanguage(v string) *CodeArtifactUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableLanguage(v *string) *CodeArtifactUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CodeArtifactUpdate) SetContent(v string) *CodeArtifactUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableContent(v *string) *CodeArtifactUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CodeArtifactUpdate) SetDescription(v string) *CodeArtifactUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableDescription(v *string) *CodeArtifactUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CodeArtifactUpdate) ClearDescription() *CodeArtifactUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CodeArtifactUpdate) SetVersion(v int) *CodeArtifactUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableVersion(v *int) *CodeArtifactUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CodeArtifactUpdate) AddVersion(v int) *CodeArtifactUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *CodeArtifactUpdate) SetSourceAgent(v string) *CodeArtifactUpdate {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *CodeArtifactUpdate) SetNillableSourceAgent(v *string) *CodeArtifactUpdate {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (_u *CodeArtifactUpdate) ClearSourceAgent() *CodeArtifactUpdate {
	_u.mutation.ClearSourceAgent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CodeArtifactUpdate) SetUpdatedAt(v time.Time) *CodeArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_u *CodeArtifactUpdate) SetMeeting(v *Meeting) *CodeArtifactUpdate {
	return _u.SetMeetingID(v.ID)
}

// Mutation returns the CodeArtifactMutation object of the builder.
func (_u *CodeArtifactUpdate) Mutation() *CodeArtifactMutation {
	return _u.mutation
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (_u *CodeArtifactUpdate) ClearMeeting() *CodeArtifactUpdate {
	_u.mutation.ClearMeeting()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeArtifactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CodeArtifactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := codeartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeArtifactUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := codeartifact.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "CodeArtifact.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := codeartifact.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CodeArtifact.version": %w`, err)}
		}
	}
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeArtifact.meeting"`)
	}
	return nil
}

func (_u *CodeArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codeartifact.Table, codeartifact.Columns, sqlgraph.NewFieldSpec(codeartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(codeartifact.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(codeartifact.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(codeartifact.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(codeartifact.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(codeartifact.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(codeartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(codeartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(codeartifact.FieldSourceAgent, field.TypeString, value)
	}
	if _u.mutation.SourceAgentCleared() {
		_spec.ClearField(codeartifact.FieldSourceAgent, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(codeartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MeetingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codeartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeArtifactUpdateOne is the builder for updating a single CodeArtifact entity.
type CodeArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeArtifactMutation
}

// SetMeetingID sets the "meeting_id" field.
func (_u *CodeArtifactUpdateOne) SetMeetingID(v string) *CodeArtifactUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableMeetingID(v *string) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *CodeArtifactUpdateOne) SetFilename(v string) *CodeArtifactUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableFilename(v *string) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CodeArtifactUpdateOne) SetLanguage(v string) *CodeArtifactUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableLanguage(v *string) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CodeArtifactUpdateOne) SetContent(v string) *CodeArtifactUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableContent(v *string) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CodeArtifactUpdateOne) SetDescription(v string) *CodeArtifactUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableDescription(v *string) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CodeArtifactUpdateOne) ClearDescription() *CodeArtifactUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CodeArtifactUpdateOne) SetVersion(v int) *CodeArtifactUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableVersion(v *int) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CodeArtifactUpdateOne) AddVersion(v int) *CodeArtifactUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSourceAgent sets the "source_agent" field.
func (_u *CodeArtifactUpdateOne) SetSourceAgent(v string) *CodeArtifactUpdateOne {
	_u.mutation.SetSourceAgent(v)
	return _u
}

// SetNillableSourceAgent sets the "source_agent" field if the given value is not nil.
func (_u *CodeArtifactUpdateOne) SetNillableSourceAgent(v *string) *CodeArtifactUpdateOne {
	if v != nil {
		_u.SetSourceAgent(*v)
	}
	return _u
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (_u *CodeArtifactUpdateOne) ClearSourceAgent() *CodeArtifactUpdateOne {
	_u.mutation.ClearSourceAgent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CodeArtifactUpdateOne) SetUpdatedAt(v time.Time) *CodeArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_u *CodeArtifactUpdateOne) SetMeeting(v *Meeting) *CodeArtifactUpdateOne {
	return _u.SetMeetingID(v.ID)
}

// Mutation returns the CodeArtifactMutation object of the builder.
func (_u *CodeArtifactUpdateOne) Mutation() *CodeArtifactMutation {
	return _u.mutation
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (_u *CodeArtifactUpdateOne) ClearMeeting() *CodeArtifactUpdateOne {
	_u.mutation.ClearMeeting()
	return _u
}

// Where appends a list predicates to the CodeArtifactUpdate builder.
func (_u *CodeArtifactUpdateOne) Where(ps ...predicate.CodeArtifact) *CodeArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeArtifactUpdateOne) Select(field string, fields ...string) *CodeArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeArtifact entity.
func (_u *CodeArtifactUpdateOne) Save(ctx context.Context) (*CodeArtifact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeArtifactUpdateOne) SaveX(ctx context.Context) *CodeArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CodeArtifactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := codeartifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := codeartifact.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "CodeArtifact.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := codeartifact.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CodeArtifact.version": %w`, err)}
		}
	}
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeArtifact.meeting"`)
	}
	return nil
}

func (_u *CodeArtifactUpdateOne) sqlSave(ctx context.Context) (_node *CodeArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codeartifact.Table, codeartifact.Columns, sqlgraph.NewFieldSpec(codeartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codeartifact.FieldID)
		for _, f := range fields {
			if !codeartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codeartifact.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(codeartifact.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(codeartifact.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(codeartifact.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(codeartifact.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(codeartifact.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(codeartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(codeartifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceAgent(); ok {
		_spec.SetField(codeartifact.FieldSourceAgent, field.TypeString, value)
	}
	if _u.mutation.SourceAgentCleared() {
		_spec.ClearField(codeartifact.FieldSourceAgent, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(codeartifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MeetingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeetingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CodeArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codeartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
