// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-ai/conclave/ent/meeting"
	"github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *MessageUpdate) SetMeetingID(v string) *MessageUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMeetingID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *MessageUpdate) SetRole(v message.Role) *MessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRole(v *message.Role) *MessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MessageUpdate) SetAgentID(v string) *MessageUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAgentID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *MessageUpdate) ClearAgentID() *MessageUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *MessageUpdate) SetAgentName(v string) *MessageUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAgentName(v *string) *MessageUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *MessageUpdate) ClearAgentName() *MessageUpdate {
	_u.mutation.ClearAgentName()
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRoundNumber sets the "round_number" field.
func (_u *MessageUpdate) SetRoundNumber(v int) *MessageUpdate {
	_u.mutation.ResetRoundNumber()
	_u.mutation.SetRoundNumber(v)
	return _u
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRoundNumber(v *int) *MessageUpdate {
	if v != nil {
		_u.SetRoundNumber(*v)
	}
	return _u
}

// AddRoundNumber adds value to the "round_number" field.
func (_u *MessageUpdate) AddRoundNumber(v int) *MessageUpdate {
	_u.mutation.AddRoundNumber(v)
	return _u
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_u *MessageUpdate) SetMeeting(v *Meeting) *MessageUpdate {
	return _u.SetMeetingID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (_u *MessageUpdate) ClearMeeting() *MessageUpdate {
	_u.mutation.ClearMeeting()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundNumber(); ok {
		if err := message.RoundNumberValidator(v); err != nil {
			return &ValidationError{Name: "round_number", err: fmt.Errorf(`ent: validator failed for field "Message.round_number": %w`, err)}
		}
	}
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.meeting"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(message.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(message.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(message.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(message.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundNumber(); ok {
		_spec.SetField(message.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNumber(); ok {
		_spec.AddField(message.FieldRoundNumber, field.TypeInt, value)
	}
	if _u.mutation.MeetingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.MeetingTable,
			Columns: []string{message.MeetingColumn},
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
			Table:   message.MeetingTable,
			Columns: []string{message.MeetingColumn},
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
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetMeetingID sets the "meeting_id" field.
func (_u *MessageUpdateOne) SetMeetingID(v string) *MessageUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMeetingID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *MessageUpdateOne) SetRole(v message.Role) *MessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRole(v *message.Role) *MessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MessageUpdateOne) SetAgentID(v string) *MessageUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAgentID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *MessageUpdateOne) ClearAgentID() *MessageUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *MessageUpdateOne) SetAgentName(v string) *MessageUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAgentName(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// ClearAgentName clears the value of the "agent_name" field.
func (_u *MessageUpdateOne) ClearAgentName() *MessageUpdateOne {
	_u.mutation.ClearAgentName()
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRoundNumber sets the "round_number" field.
func (_u *MessageUpdateOne) SetRoundNumber(v int) *MessageUpdateOne {
	_u.mutation.ResetRoundNumber()
	_u.mutation.SetRoundNumber(v)
	return _u
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRoundNumber(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetRoundNumber(*v)
	}
	return _u
}

// AddRoundNumber adds value to the "round_number" field.
func (_u *MessageUpdateOne) AddRoundNumber(v int) *MessageUpdateOne {
	_u.mutation.AddRoundNumber(v)
	return _u
}

// SetMeeting sets the "meeting" edge to the Meeting entity.
func (_u *MessageUpdateOne) SetMeeting(v *Meeting) *MessageUpdateOne {
	return _u.SetMeetingID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (_u *MessageUpdateOne) ClearMeeting() *MessageUpdateOne {
	_u.mutation.ClearMeeting()
	return _u
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundNumber(); ok {
		if err := message.RoundNumberValidator(v); err != nil {
			return &ValidationError{Name: "round_number", err: fmt.Errorf(`ent: validator failed for field "Message.round_number": %w`, err)}
		}
	}
	if _u.mutation.MeetingCleared() && len(_u.mutation.MeetingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.meeting"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(message.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(message.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(message.FieldAgentName, field.TypeString, value)
	}
	if _u.mutation.AgentNameCleared() {
		_spec.ClearField(message.FieldAgentName, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundNumber(); ok {
		_spec.SetField(message.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNumber(); ok {
		_spec.AddField(message.FieldRoundNumber, field.TypeInt, value)
	}
	if _u.mutation.MeetingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.MeetingTable,
			Columns: []string{message.MeetingColumn},
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
			Table:   message.MeetingTable,
			Columns: []string{message.MeetingColumn},
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
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
