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
	"github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/ent/team"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *MeetingCreate) SetTeamID(v string) *MeetingCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MeetingCreate) SetTitle(v string) *MeetingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAgenda sets the "agenda" field.
func (_c *MeetingCreate) SetAgenda(v string) *MeetingCreate {
	_c.mutation.SetAgenda(v)
	return _c
}

// SetNillableAgenda sets the "agenda" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableAgenda(v *string) *MeetingCreate {
	if v != nil {
		_c.SetAgenda(*v)
	}
	return _c
}

// SetAgendaQuestions sets the "agenda_questions" field.
func (_c *MeetingCreate) SetAgendaQuestions(v []string) *MeetingCreate {
	_c.mutation.SetAgendaQuestions(v)
	return _c
}

// SetAgendaRules sets the "agenda_rules" field.
func (_c *MeetingCreate) SetAgendaRules(v []string) *MeetingCreate {
	_c.mutation.SetAgendaRules(v)
	return _c
}

// SetOutputType sets the "output_type" field.
func (_c *MeetingCreate) SetOutputType(v meeting.OutputType) *MeetingCreate {
	_c.mutation.SetOutputType(v)
	return _c
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableOutputType(v *meeting.OutputType) *MeetingCreate {
	if v != nil {
		_c.SetOutputType(*v)
	}
	return _c
}

// SetMeetingType sets the "meeting_type" field.
func (_c *MeetingCreate) SetMeetingType(v meeting.MeetingType) *MeetingCreate {
	_c.mutation.SetMeetingType(v)
	return _c
}

// SetNillableMeetingType sets the "meeting_type" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableMeetingType(v *meeting.MeetingType) *MeetingCreate {
	if v != nil {
		_c.SetMeetingType(*v)
	}
	return _c
}

// SetMaxRounds sets the "max_rounds" field.
func (_c *MeetingCreate) SetMaxRounds(v int) *MeetingCreate {
	_c.mutation.SetMaxRounds(v)
	return _c
}

// SetNillableMaxRounds sets the "max_rounds" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableMaxRounds(v *int) *MeetingCreate {
	if v != nil {
		_c.SetMaxRounds(*v)
	}
	return _c
}

// SetCurrentRound sets the "current_round" field.
func (_c *MeetingCreate) SetCurrentRound(v int) *MeetingCreate {
	_c.mutation.SetCurrentRound(v)
	return _c
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCurrentRound(v *int) *MeetingCreate {
	if v != nil {
		_c.SetCurrentRound(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MeetingCreate) SetStatus(v meeting.Status) *MeetingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableStatus(v *meeting.Status) *MeetingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParticipantAgentIds sets the "participant_agent_ids" field.
func (_c *MeetingCreate) SetParticipantAgentIds(v []string) *MeetingCreate {
	_c.mutation.SetParticipantAgentIds(v)
	return _c
}

// SetIndividualAgentID sets the "individual_agent_id" field.
func (_c *MeetingCreate) SetIndividualAgentID(v string) *MeetingCreate {
	_c.mutation.SetIndividualAgentID(v)
	return _c
}

// SetNillableIndividualAgentID sets the "individual_agent_id" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableIndividualAgentID(v *string) *MeetingCreate {
	if v != nil {
		_c.SetIndividualAgentID(*v)
	}
	return _c
}

// SetSourceMeetingIds sets the "source_meeting_ids" field.
func (_c *MeetingCreate) SetSourceMeetingIds(v []string) *MeetingCreate {
	_c.mutation.SetSourceMeetingIds(v)
	return _c
}

// SetContextMeetingIds sets the "context_meeting_ids" field.
func (_c *MeetingCreate) SetContextMeetingIds(v []string) *MeetingCreate {
	_c.mutation.SetContextMeetingIds(v)
	return _c
}

// SetParentMeetingID sets the "parent_meeting_id" field.
func (_c *MeetingCreate) SetParentMeetingID(v string) *MeetingCreate {
	_c.mutation.SetParentMeetingID(v)
	return _c
}

// SetNillableParentMeetingID sets the "parent_meeting_id" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableParentMeetingID(v *string) *MeetingCreate {
	if v != nil {
		_c.SetParentMeetingID(*v)
	}
	return _c
}

// SetRewriteFeedback sets the "rewrite_feedback" field.
func (_c *MeetingCreate) SetRewriteFeedback(v string) *MeetingCreate {
	_c.mutation.SetRewriteFeedback(v)
	return _c
}

// SetNillableRewriteFeedback sets the "rewrite_feedback" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableRewriteFeedback(v *string) *MeetingCreate {
	if v != nil {
		_c.SetRewriteFeedback(*v)
	}
	return _c
}

// SetAgendaStrategy sets the "agenda_strategy" field.
func (_c *MeetingCreate) SetAgendaStrategy(v meeting.AgendaStrategy) *MeetingCreate {
	_c.mutation.SetAgendaStrategy(v)
	return _c
}

// SetNillableAgendaStrategy sets the "agenda_strategy" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableAgendaStrategy(v *meeting.AgendaStrategy) *MeetingCreate {
	if v != nil {
		_c.SetAgendaStrategy(*v)
	}
	return _c
}

// SetRoundPlan sets the "round_plan" field.
func (_c *MeetingCreate) SetRoundPlan(v []string) *MeetingCreate {
	_c.mutation.SetRoundPlan(v)
	return _c
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_c *MeetingCreate) SetPreferredLanguage(v string) *MeetingCreate {
	_c.mutation.SetPreferredLanguage(v)
	return _c
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_c *MeetingCreate) SetNillablePreferredLanguage(v *string) *MeetingCreate {
	if v != nil {
		_c.SetPreferredLanguage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MeetingCreate) SetErrorMessage(v string) *MeetingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableErrorMessage(v *string) *MeetingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingCreate) SetCreatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCreatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MeetingCreate) SetUpdatedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableUpdatedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MeetingCreate) SetCompletedAt(v time.Time) *MeetingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MeetingCreate) SetNillableCompletedAt(v *time.Time) *MeetingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingCreate) SetID(v string) *MeetingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTeam sets the "team" edge to the Team entity.
func (_c *MeetingCreate) SetTeam(v *Team) *MeetingCreate {
	return _c.SetTeamID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *MeetingCreate) AddMessageIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *MeetingCreate) AddMessages(v ...*Message) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the CodeArtifact entity by IDs.
func (_c *MeetingCreate) AddArtifactIDs(ids ...string) *MeetingCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the CodeArtifact entity.
func (_c *MeetingCreate) AddArtifacts(v ...*CodeArtifact) *MeetingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_c *MeetingCreate) Mutation() *MeetingMutation {
	return _c.mutation
}

// Save creates the Meeting in the database.
func (_c *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingCreate) defaults() {
	if _, ok := _c.mutation.OutputType(); !ok {
		v := meeting.DefaultOutputType
		_c.mutation.SetOutputType(v)
	}
	if _, ok := _c.mutation.MeetingType(); !ok {
		v := meeting.DefaultMeetingType
		_c.mutation.SetMeetingType(v)
	}
	if _, ok := _c.mutation.MaxRounds(); !ok {
		v := meeting.DefaultMaxRounds
		_c.mutation.SetMaxRounds(v)
	}
	if _, ok := _c.mutation.CurrentRound(); !ok {
		v := meeting.DefaultCurrentRound
		_c.mutation.SetCurrentRound(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := meeting.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AgendaStrategy(); !ok {
		v := meeting.DefaultAgendaStrategy
		_c.mutation.SetAgendaStrategy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := meeting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Meeting.team_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Meeting.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := meeting.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Meeting.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputType(); !ok {
		return &ValidationError{Name: "output_type", err: errors.New(`ent: missing required field "Meeting.output_type"`)}
	}
	if v, ok := _c.mutation.OutputType(); ok {
		if err := meeting.OutputTypeValidator(v); err != nil {
			return &ValidationError{Name: "output_type", err: fmt.Errorf(`ent: validator failed for field "Meeting.output_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MeetingType(); !ok {
		return &ValidationError{Name: "meeting_type", err: errors.New(`ent: missing required field "Meeting.meeting_type"`)}
	}
	if v, ok := _c.mutation.MeetingType(); ok {
		if err := meeting.MeetingTypeValidator(v); err != nil {
			return &ValidationError{Name: "meeting_type", err: fmt.Errorf(`ent: validator failed for field "Meeting.meeting_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRounds(); !ok {
		return &ValidationError{Name: "max_rounds", err: errors.New(`ent: missing required field "Meeting.max_rounds"`)}
	}
	if v, ok := _c.mutation.MaxRounds(); ok {
		if err := meeting.MaxRoundsValidator(v); err != nil {
			return &ValidationError{Name: "max_rounds", err: fmt.Errorf(`ent: validator failed for field "Meeting.max_rounds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentRound(); !ok {
		return &ValidationError{Name: "current_round", err: errors.New(`ent: missing required field "Meeting.current_round"`)}
	}
	if v, ok := _c.mutation.CurrentRound(); ok {
		if err := meeting.CurrentRoundValidator(v); err != nil {
			return &ValidationError{Name: "current_round", err: fmt.Errorf(`ent: validator failed for field "Meeting.current_round": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Meeting.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgendaStrategy(); !ok {
		return &ValidationError{Name: "agenda_strategy", err: errors.New(`ent: missing required field "Meeting.agenda_strategy"`)}
	}
	if v, ok := _c.mutation.AgendaStrategy(); ok {
		if err := meeting.AgendaStrategyValidator(v); err != nil {
			return &ValidationError{Name: "agenda_strategy", err: fmt.Errorf(`ent: validator failed for field "Meeting.agenda_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Meeting.updated_at"`)}
	}
	if len(_c.mutation.TeamIDs()) == 0 {
		return &ValidationError{Name: "team", err: errors.New(`ent: missing required edge "Meeting.team"`)}
	}
	return nil
}

func (_c *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
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
			return nil, fmt.Errorf("unexpected Meeting.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Agenda(); ok {
		_spec.SetField(meeting.FieldAgenda, field.TypeString, value)
		_node.Agenda = value
	}
	if value, ok := _c.mutation.AgendaQuestions(); ok {
		_spec.SetField(meeting.FieldAgendaQuestions, field.TypeJSON, value)
		_node.AgendaQuestions = value
	}
	if value, ok := _c.mutation.AgendaRules(); ok {
		_spec.SetField(meeting.FieldAgendaRules, field.TypeJSON, value)
		_node.AgendaRules = value
	}
	if value, ok := _c.mutation.OutputType(); ok {
		_spec.SetField(meeting.FieldOutputType, field.TypeEnum, value)
		_node.OutputType = value
	}
	if value, ok := _c.mutation.MeetingType(); ok {
		_spec.SetField(meeting.FieldMeetingType, field.TypeEnum, value)
		_node.MeetingType = value
	}
	if value, ok := _c.mutation.MaxRounds(); ok {
		_spec.SetField(meeting.FieldMaxRounds, field.TypeInt, value)
		_node.MaxRounds = value
	}
	if value, ok := _c.mutation.CurrentRound(); ok {
		_spec.SetField(meeting.FieldCurrentRound, field.TypeInt, value)
		_node.CurrentRound = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParticipantAgentIds(); ok {
		_spec.SetField(meeting.FieldParticipantAgentIds, field.TypeJSON, value)
		_node.ParticipantAgentIds = value
	}
	if value, ok := _c.mutation.IndividualAgentID(); ok {
		_spec.SetField(meeting.FieldIndividualAgentID, field.TypeString, value)
		_node.IndividualAgentID = &value
	}
	if value, ok := _c.mutation.SourceMeetingIds(); ok {
		_spec.SetField(meeting.FieldSourceMeetingIds, field.TypeJSON, value)
		_node.SourceMeetingIds = value
	}
	if value, ok := _c.mutation.ContextMeetingIds(); ok {
		_spec.SetField(meeting.FieldContextMeetingIds, field.TypeJSON, value)
		_node.ContextMeetingIds = value
	}
	if value, ok := _c.mutation.ParentMeetingID(); ok {
		_spec.SetField(meeting.FieldParentMeetingID, field.TypeString, value)
		_node.ParentMeetingID = &value
	}
	if value, ok := _c.mutation.RewriteFeedback(); ok {
		_spec.SetField(meeting.FieldRewriteFeedback, field.TypeString, value)
		_node.RewriteFeedback = value
	}
	if value, ok := _c.mutation.AgendaStrategy(); ok {
		_spec.SetField(meeting.FieldAgendaStrategy, field.TypeEnum, value)
		_node.AgendaStrategy = value
	}
	if value, ok := _c.mutation.RoundPlan(); ok {
		_spec.SetField(meeting.FieldRoundPlan, field.TypeJSON, value)
		_node.RoundPlan = value
	}
	if value, ok := _c.mutation.PreferredLanguage(); ok {
		_spec.SetField(meeting.FieldPreferredLanguage, field.TypeString, value)
		_node.PreferredLanguage = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(meeting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(meeting.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   meeting.TeamTable,
			Columns: []string{meeting.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TeamID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.MessagesTable,
			Columns: []string{meeting.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   meeting.ArtifactsTable,
			Columns: []string{meeting.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codeartifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
}

// Save creates the Meeting entities in the database.
func (_c *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Meeting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
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
func (_c *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
