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
	"github.com/conclave-ai/conclave/ent/agent"
	"github.com/conclave-ai/conclave/ent/predicate"
	"github.com/conclave-ai/conclave/ent/team"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *AgentUpdate) SetTeamID(v string) *AgentUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTeamID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AgentUpdate) SetTitle(v string) *AgentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTitle(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AgentUpdate) ClearTitle() *AgentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetExpertise sets the "expertise" field.
func (_u *AgentUpdate) SetExpertise(v string) *AgentUpdate {
	_u.mutation.SetExpertise(v)
	return _u
}

// SetNillableExpertise sets the "expertise" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableExpertise(v *string) *AgentUpdate {
	if v != nil {
		_u.SetExpertise(*v)
	}
	return _u
}

// ClearExpertise clears the value of the "expertise" field.
func (_u *AgentUpdate) ClearExpertise() *AgentUpdate {
	_u.mutation.ClearExpertise()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *AgentUpdate) SetGoal(v string) *AgentUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableGoal(v *string) *AgentUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *AgentUpdate) ClearGoal() *AgentUpdate {
	_u.mutation.ClearGoal()
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdate) SetRole(v string) *AgentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRole(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AgentUpdate) ClearRole() *AgentUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdate) SetModel(v string) *AgentUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *AgentUpdate) SetModelParams(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *AgentUpdate) ClearModelParams() *AgentUpdate {
	_u.mutation.ClearModelParams()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdate) SetSystemPrompt(v string) *AgentUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSystemPrompt(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *AgentUpdate) ClearSystemPrompt() *AgentUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetIsMirror sets the "is_mirror" field.
func (_u *AgentUpdate) SetIsMirror(v bool) *AgentUpdate {
	_u.mutation.SetIsMirror(v)
	return _u
}

// SetNillableIsMirror sets the "is_mirror" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableIsMirror(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetIsMirror(*v)
	}
	return _u
}

// SetPrimaryAgentID sets the "primary_agent_id" field.
func (_u *AgentUpdate) SetPrimaryAgentID(v string) *AgentUpdate {
	_u.mutation.SetPrimaryAgentID(v)
	return _u
}

// SetNillablePrimaryAgentID sets the "primary_agent_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePrimaryAgentID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPrimaryAgentID(*v)
	}
	return _u
}

// ClearPrimaryAgentID clears the value of the "primary_agent_id" field.
func (_u *AgentUpdate) ClearPrimaryAgentID() *AgentUpdate {
	_u.mutation.ClearPrimaryAgentID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *AgentUpdate) SetTeam(v *Team) *AgentUpdate {
	return _u.SetTeamID(v.ID)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *AgentUpdate) ClearTeam() *AgentUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.team"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(agent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(agent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Expertise(); ok {
		_spec.SetField(agent.FieldExpertise, field.TypeString, value)
	}
	if _u.mutation.ExpertiseCleared() {
		_spec.ClearField(agent.FieldExpertise, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(agent.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(agent.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(agent.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(agent.FieldModelParams, field.TypeJSON, value)
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(agent.FieldModelParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(agent.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.IsMirror(); ok {
		_spec.SetField(agent.FieldIsMirror, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PrimaryAgentID(); ok {
		_spec.SetField(agent.FieldPrimaryAgentID, field.TypeString, value)
	}
	if _u.mutation.PrimaryAgentIDCleared() {
		_spec.ClearField(agent.FieldPrimaryAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TeamTable,
			Columns: []string{agent.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TeamTable,
			Columns: []string{agent.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetTeamID sets the "team_id" field.
func (_u *AgentUpdateOne) SetTeamID(v string) *AgentUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTeamID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AgentUpdateOne) SetTitle(v string) *AgentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTitle(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AgentUpdateOne) ClearTitle() *AgentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetExpertise sets the "expertise" field.
func (_u *AgentUpdateOne) SetExpertise(v string) *AgentUpdateOne {
	_u.mutation.SetExpertise(v)
	return _u
}

// SetNillableExpertise sets the "expertise" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableExpertise(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetExpertise(*v)
	}
	return _u
}

// ClearExpertise clears the value of the "expertise" field.
func (_u *AgentUpdateOne) ClearExpertise() *AgentUpdateOne {
	_u.mutation.ClearExpertise()
	return _u
}

// SetGoal sets the "goal" field.
func (_u *AgentUpdateOne) SetGoal(v string) *AgentUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableGoal(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// ClearGoal clears the value of the "goal" field.
func (_u *AgentUpdateOne) ClearGoal() *AgentUpdateOne {
	_u.mutation.ClearGoal()
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdateOne) SetRole(v string) *AgentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRole(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AgentUpdateOne) ClearRole() *AgentUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdateOne) SetModel(v string) *AgentUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetModelParams sets the "model_params" field.
func (_u *AgentUpdateOne) SetModelParams(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetModelParams(v)
	return _u
}

// ClearModelParams clears the value of the "model_params" field.
func (_u *AgentUpdateOne) ClearModelParams() *AgentUpdateOne {
	_u.mutation.ClearModelParams()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdateOne) SetSystemPrompt(v string) *AgentUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSystemPrompt(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *AgentUpdateOne) ClearSystemPrompt() *AgentUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetIsMirror sets the "is_mirror" field.
func (_u *AgentUpdateOne) SetIsMirror(v bool) *AgentUpdateOne {
	_u.mutation.SetIsMirror(v)
	return _u
}

// SetNillableIsMirror sets the "is_mirror" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableIsMirror(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetIsMirror(*v)
	}
	return _u
}

// SetPrimaryAgentID sets the "primary_agent_id" field.
func (_u *AgentUpdateOne) SetPrimaryAgentID(v string) *AgentUpdateOne {
	_u.mutation.SetPrimaryAgentID(v)
	return _u
}

// SetNillablePrimaryAgentID sets the "primary_agent_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePrimaryAgentID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPrimaryAgentID(*v)
	}
	return _u
}

// ClearPrimaryAgentID clears the value of the "primary_agent_id" field.
func (_u *AgentUpdateOne) ClearPrimaryAgentID() *AgentUpdateOne {
	_u.mutation.ClearPrimaryAgentID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *AgentUpdateOne) SetTeam(v *Team) *AgentUpdateOne {
	return _u.SetTeamID(v.ID)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *AgentUpdateOne) ClearTeam() *AgentUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.team"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(agent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(agent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Expertise(); ok {
		_spec.SetField(agent.FieldExpertise, field.TypeString, value)
	}
	if _u.mutation.ExpertiseCleared() {
		_spec.ClearField(agent.FieldExpertise, field.TypeString)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(agent.FieldGoal, field.TypeString, value)
	}
	if _u.mutation.GoalCleared() {
		_spec.ClearField(agent.FieldGoal, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(agent.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelParams(); ok {
		_spec.SetField(agent.FieldModelParams, field.TypeJSON, value)
	}
	if _u.mutation.ModelParamsCleared() {
		_spec.ClearField(agent.FieldModelParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(agent.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.IsMirror(); ok {
		_spec.SetField(agent.FieldIsMirror, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PrimaryAgentID(); ok {
		_spec.SetField(agent.FieldPrimaryAgentID, field.TypeString, value)
	}
	if _u.mutation.PrimaryAgentIDCleared() {
		_spec.ClearField(agent.FieldPrimaryAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TeamTable,
			Columns: []string{agent.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TeamTable,
			Columns: []string{agent.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
