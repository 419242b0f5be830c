// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/ent/meeting"
	"github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/ent/predicate"
	"github.com/conclave-ai/conclave/ent/team"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *MeetingUpdate) SetTeamID(v string) *MeetingUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableTeamID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdate) SetTitle(v string) *MeetingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableTitle(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAgenda sets the "agenda" field.
func (_u *MeetingUpdate) SetAgenda(v string) *MeetingUpdate {
	_u.mutation.SetAgenda(v)
	return _u
}

// SetNillableAgenda sets the "agenda" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableAgenda(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetAgenda(*v)
	}
	return _u
}

// ClearAgenda clears the value of the "agenda" field.
func (_u *MeetingUpdate) ClearAgenda() *MeetingUpdate {
	_u.mutation.ClearAgenda()
	return _u
}

// SetAgendaQuestions sets the "agenda_questions" field.
func (_u *MeetingUpdate) SetAgendaQuestions(v []string) *MeetingUpdate {
	_u.mutation.SetAgendaQuestions(v)
	return _u
}

// AppendAgendaQuestions appends value to the "agenda_questions" field.
func (_u *MeetingUpdate) AppendAgendaQuestions(v []string) *MeetingUpdate {
	_u.mutation.AppendAgendaQuestions(v)
	return _u
}

// ClearAgendaQuestions clears the value of the "agenda_questions" field.
func (_u *MeetingUpdate) ClearAgendaQuestions() *MeetingUpdate {
	_u.mutation.ClearAgendaQuestions()
	return _u
}

// SetAgendaRules sets the "agenda_rules" field.
func (_u *MeetingUpdate) SetAgendaRules(v []string) *MeetingUpdate {
	_u.mutation.SetAgendaRules(v)
	return _u
}

// AppendAgendaRules appends value to the "agenda_rules" field.
func (_u *MeetingUpdate) AppendAgendaRules(v []string) *MeetingUpdate {
	_u.mutation.AppendAgendaRules(v)
	return _u
}

// ClearAgendaRules clears the value of the "agenda_rules" field.
func (_u *MeetingUpdate) ClearAgendaRules() *MeetingUpdate {
	_u.mutation.ClearAgendaRules()
	return _u
}

// SetOutputType sets the "output_type" field.
func (_u *MeetingUpdate) SetOutputType(v meeting.OutputType) *MeetingUpdate {
	_u.mutation.SetOutputType(v)
	return _u
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableOutputType(v *meeting.OutputType) *MeetingUpdate {
	if v != nil {
		_u.SetOutputType(*v)
	}
	return _u
}

// SetMeetingType sets the "meeting_type" field.
func (_u *MeetingUpdate) SetMeetingType(v meeting.MeetingType) *MeetingUpdate {
	_u.mutation.SetMeetingType(v)
	return _u
}

// SetNillableMeetingType sets the "meeting_type" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableMeetingType(v *meeting.MeetingType) *MeetingUpdate {
	if v != nil {
		_u.SetMeetingType(*v)
	}
	return _u
}

// SetMaxRounds sets the "max_rounds" field.
func (_u *MeetingUpdate) SetMaxRounds(v int) *MeetingUpdate {
	_u.mutation.ResetMaxRounds()
	_u.mutation.SetMaxRounds(v)
	return _u
}

// SetNillableMaxRounds sets the "max_rounds" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableMaxRounds(v *int) *MeetingUpdate {
	if v != nil {
		_u.SetMaxRounds(*v)
	}
	return _u
}

// AddMaxRounds adds value to the "max_rounds" field.
func (_u *MeetingUpdate) AddMaxRounds(v int) *MeetingUpdate {
	_u.mutation.AddMaxRounds(v)
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *MeetingUpdate) SetCurrentRound(v int) *MeetingUpdate {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableCurrentRound(v *int) *MeetingUpdate {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *MeetingUpdate) AddCurrentRound(v int) *MeetingUpdate {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeetingUpdate) SetStatus(v meeting.Status) *MeetingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableStatus(v *meeting.Status) *MeetingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParticipantAgentIds sets the "participant_agent_ids" field.
func (_u *MeetingUpdate) SetParticipantAgentIds(v []string) *MeetingUpdate {
	_u.mutation.SetParticipantAgentIds(v)
	return _u
}

// AppendParticipantAgentIds appends value to the "participant_agent_ids" field.
func (_u *MeetingUpdate) AppendParticipantAgentIds(v []string) *MeetingUpdate {
	_u.mutation.AppendParticipantAgentIds(v)
	return _u
}

// ClearParticipantAgentIds clears the value of the "participant_agent_ids" field.
func (_u *MeetingUpdate) ClearParticipantAgentIds() *MeetingUpdate {
	_u.mutation.ClearParticipantAgentIds()
	return _u
}

// SetIndividualAgentID sets the "individual_agent_id" field.
func (_u *MeetingUpdate) SetIndividualAgentID(v string) *MeetingUpdate {
	_u.mutation.SetIndividualAgentID(v)
	return _u
}

// SetNillableIndividualAgentID sets the "individual_agent_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableIndividualAgentID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetIndividualAgentID(*v)
	}
	return _u
}

// ClearIndividualAgentID clears the value of the "individual_agent_id" field.
func (_u *MeetingUpdate) ClearIndividualAgentID() *MeetingUpdate {
	_u.mutation.ClearIndividualAgentID()
	return _u
}

// SetSourceMeetingIds sets the "source_meeting_ids" field.
func (_u *MeetingUpdate) SetSourceMeetingIds(v []string) *MeetingUpdate {
	_u.mutation.SetSourceMeetingIds(v)
	return _u
}

// AppendSourceMeetingIds appends value to the "source_meeting_ids" field.
func (_u *MeetingUpdate) AppendSourceMeetingIds(v []string) *MeetingUpdate {
	_u.mutation.AppendSourceMeetingIds(v)
	return _u
}

// ClearSourceMeetingIds clears the value of the "source_meeting_ids" field.
func (_u *MeetingUpdate) ClearSourceMeetingIds() *MeetingUpdate {
	_u.mutation.ClearSourceMeetingIds()
	return _u
}

// SetContextMeetingIds sets the "context_meeting_ids" field.
func (_u *MeetingUpdate) SetContextMeetingIds(v []string) *MeetingUpdate {
	_u.mutation.SetContextMeetingIds(v)
	return _u
}

// AppendContextMeetingIds appends value to the "context_meeting_ids" field.
func (_u *MeetingUpdate) AppendContextMeetingIds(v []string) *MeetingUpdate {
	_u.mutation.AppendContextMeetingIds(v)
	return _u
}

// ClearContextMeetingIds clears the value of the "context_meeting_ids" field.
func (_u *MeetingUpdate) ClearContextMeetingIds() *MeetingUpdate {
	_u.mutation.ClearContextMeetingIds()
	return _u
}

// SetParentMeetingID sets the "parent_meeting_id" field.
func (_u *MeetingUpdate) SetParentMeetingID(v string) *MeetingUpdate {
	_u.mutation.SetParentMeetingID(v)
	return _u
}

// SetNillableParentMeetingID sets the "parent_meeting_id" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableParentMeetingID(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetParentMeetingID(*v)
	}
	return _u
}

// ClearParentMeetingID clears the value of the "parent_meeting_id" field.
func (_u *MeetingUpdate) ClearParentMeetingID() *MeetingUpdate {
	_u.mutation.ClearParentMeetingID()
	return _u
}

// SetRewriteFeedback sets the "rewrite_feedback" field.
func (_u *MeetingUpdate) SetRewriteFeedback(v string) *MeetingUpdate {
	_u.mutation.SetRewriteFeedback(v)
	return _u
}

// SetNillableRewriteFeedback sets the "rewrite_feedback" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableRewriteFeedback(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetRewriteFeedback(*v)
	}
	return _u
}

// ClearRewriteFeedback clears the value of the "rewrite_feedback" field.
func (_u *MeetingUpdate) ClearRewriteFeedback() *MeetingUpdate {
	_u.mutation.ClearRewriteFeedback()
	return _u
}

// SetAgendaStrategy sets the "agenda_strategy" field.
func (_u *MeetingUpdate) SetAgendaStrategy(v meeting.AgendaStrategy) *MeetingUpdate {
	_u.mutation.SetAgendaStrategy(v)
	return _u
}

// SetNillableAgendaStrategy sets the "agenda_strategy" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableAgendaStrategy(v *meeting.AgendaStrategy) *MeetingUpdate {
	if v != nil {
		_u.SetAgendaStrategy(*v)
	}
	return _u
}

// SetRoundPlan sets the "round_plan" field.
func (_u *MeetingUpdate) SetRoundPlan(v []string) *MeetingUpdate {
	_u.mutation.SetRoundPlan(v)
	return _u
}

// AppendRoundPlan appends value to the "round_plan" field.
func (_u *MeetingUpdate) AppendRoundPlan(v []string) *MeetingUpdate {
	_u.mutation.AppendRoundPlan(v)
	return _u
}

// ClearRoundPlan clears the value of the "round_plan" field.
func (_u *MeetingUpdate) ClearRoundPlan() *MeetingUpdate {
	_u.mutation.ClearRoundPlan()
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *MeetingUpdate) SetPreferredLanguage(v string) *MeetingUpdate {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillablePreferredLanguage(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// ClearPreferredLanguage clears the value of the "preferred_language" field.
func (_u *MeetingUpdate) ClearPreferredLanguage() *MeetingUpdate {
	_u.mutation.ClearPreferredLanguage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MeetingUpdate) SetErrorMessage(v string) *MeetingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableErrorMessage(v *string) *MeetingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MeetingUpdate) ClearErrorMessage() *MeetingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeetingUpdate) SetUpdatedAt(v time.Time) *MeetingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MeetingUpdate) SetCompletedAt(v time.Time) *MeetingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MeetingUpdate) SetNillableCompletedAt(v *time.Time) *MeetingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MeetingUpdate) ClearCompletedAt() *MeetingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *MeetingUpdate) SetTeam(v *Team) *MeetingUpdate {
	return _u.SetTeamID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *MeetingUpdate) AddMessageIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *MeetingUpdate) AddMessages(v ...*Message) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the CodeArtifact entity by IDs.
func (_u *MeetingUpdate) AddArtifactIDs(ids ...string) *MeetingUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the CodeArtifact entity.
func (_u *MeetingUpdate) AddArtifacts(v ...*CodeArtifact) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdate) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *MeetingUpdate) ClearTeam() *MeetingUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *MeetingUpdate) ClearMessages() *MeetingUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *MeetingUpdate) RemoveMessageIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *MeetingUpdate) RemoveMessages(v ...*Message) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the CodeArtifact entity.
func (_u *MeetingUpdate) ClearArtifacts() *MeetingUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to CodeArtifact entities by IDs.
func (_u *MeetingUpdate) RemoveArtifactIDs(ids ...string) *MeetingUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to CodeArtifact entities.
func (_u *MeetingUpdate) RemoveArtifacts(v ...*CodeArtifact) *MeetingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeetingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := meeting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := meeting.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Meeting.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputType(); ok {
		if err := meeting.OutputTypeValidator(v); err != nil {
			return &ValidationError{Name: "output_type", err: fmt.Errorf(`ent: validator failed for field "Meeting.output_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingType(); ok {
		if err := meeting.MeetingTypeValidator(v); err != nil {
			return &ValidationError{Name: "meeting_type", err: fmt.Errorf(`ent: validator failed for field "Meeting.meeting_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRounds(); ok {
		if err := meeting.MaxRoundsValidator(v); err != nil {
			return &ValidationError{Name: "max_rounds", err: fmt.Errorf(`ent: validator failed for field "Meeting.max_rounds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentRound(); ok {
		if err := meeting.CurrentRoundValidator(v); err != nil {
			return &ValidationError{Name: "current_round", err: fmt.Errorf(`ent: validator failed for field "Meeting.current_round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgendaStrategy(); ok {
		if err := meeting.AgendaStrategyValidator(v); err != nil {
			return &ValidationError{Name: "agenda_strategy", err: fmt.Errorf(`ent: validator failed for field "Meeting.agenda_strategy": %w`, err)}
		}
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Meeting.team"`)
	}
	return nil
}

func (_u *MeetingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agenda(); ok {
		_spec.SetField(meeting.FieldAgenda, field.TypeString, value)
	}
	if _u.mutation.AgendaCleared() {
		_spec.ClearField(meeting.FieldAgenda, field.TypeString)
	}
	if value, ok := _u.mutation.AgendaQuestions(); ok {
		_spec.SetField(meeting.FieldAgendaQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgendaQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldAgendaQuestions, value)
		})
	}
	if _u.mutation.AgendaQuestionsCleared() {
		_spec.ClearField(meeting.FieldAgendaQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgendaRules(); ok {
		_spec.SetField(meeting.FieldAgendaRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgendaRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldAgendaRules, value)
		})
	}
	if _u.mutation.AgendaRulesCleared() {
		_spec.ClearField(meeting.FieldAgendaRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputType(); ok {
		_spec.SetField(meeting.FieldOutputType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MeetingType(); ok {
		_spec.SetField(meeting.FieldMeetingType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxRounds(); ok {
		_spec.SetField(meeting.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRounds(); ok {
		_spec.AddField(meeting.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(meeting.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(meeting.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParticipantAgentIds(); ok {
		_spec.SetField(meeting.FieldParticipantAgentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantAgentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldParticipantAgentIds, value)
		})
	}
	if _u.mutation.ParticipantAgentIdsCleared() {
		_spec.ClearField(meeting.FieldParticipantAgentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndividualAgentID(); ok {
		_spec.SetField(meeting.FieldIndividualAgentID, field.TypeString, value)
	}
	if _u.mutation.IndividualAgentIDCleared() {
		_spec.ClearField(meeting.FieldIndividualAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceMeetingIds(); ok {
		_spec.SetField(meeting.FieldSourceMeetingIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceMeetingIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldSourceMeetingIds, value)
		})
	}
	if _u.mutation.SourceMeetingIdsCleared() {
		_spec.ClearField(meeting.FieldSourceMeetingIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContextMeetingIds(); ok {
		_spec.SetField(meeting.FieldContextMeetingIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextMeetingIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldContextMeetingIds, value)
		})
	}
	if _u.mutation.ContextMeetingIdsCleared() {
		_spec.ClearField(meeting.FieldContextMeetingIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentMeetingID(); ok {
		_spec.SetField(meeting.FieldParentMeetingID, field.TypeString, value)
	}
	if _u.mutation.ParentMeetingIDCleared() {
		_spec.ClearField(meeting.FieldParentMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.RewriteFeedback(); ok {
		_spec.SetField(meeting.FieldRewriteFeedback, field.TypeString, value)
	}
	if _u.mutation.RewriteFeedbackCleared() {
		_spec.ClearField(meeting.FieldRewriteFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AgendaStrategy(); ok {
		_spec.SetField(meeting.FieldAgendaStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoundPlan(); ok {
		_spec.SetField(meeting.FieldRoundPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoundPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldRoundPlan, value)
		})
	}
	if _u.mutation.RoundPlanCleared() {
		_spec.ClearField(meeting.FieldRoundPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(meeting.FieldPreferredLanguage, field.TypeString, value)
	}
	if _u.mutation.PreferredLanguageCleared() {
		_spec.ClearField(meeting.FieldPreferredLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(meeting.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(meeting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(meeting.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(meeting.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TeamCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetTeamID sets the "team_id" field.
func (_u *MeetingUpdateOne) SetTeamID(v string) *MeetingUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableTeamID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MeetingUpdateOne) SetTitle(v string) *MeetingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableTitle(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAgenda sets the "agenda" field.
func (_u *MeetingUpdateOne) SetAgenda(v string) *MeetingUpdateOne {
	_u.mutation.SetAgenda(v)
	return _u
}

// SetNillableAgenda sets the "agenda" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableAgenda(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetAgenda(*v)
	}
	return _u
}

// ClearAgenda clears the value of the "agenda" field.
func (_u *MeetingUpdateOne) ClearAgenda() *MeetingUpdateOne {
	_u.mutation.ClearAgenda()
	return _u
}

// SetAgendaQuestions sets the "agenda_questions" field.
func (_u *MeetingUpdateOne) SetAgendaQuestions(v []string) *MeetingUpdateOne {
	_u.mutation.SetAgendaQuestions(v)
	return _u
}

// AppendAgendaQuestions appends value to the "agenda_questions" field.
func (_u *MeetingUpdateOne) AppendAgendaQuestions(v []string) *MeetingUpdateOne {
	_u.mutation.AppendAgendaQuestions(v)
	return _u
}

// ClearAgendaQuestions clears the value of the "agenda_questions" field.
func (_u *MeetingUpdateOne) ClearAgendaQuestions() *MeetingUpdateOne {
	_u.mutation.ClearAgendaQuestions()
	return _u
}

// SetAgendaRules sets the "agenda_rules" field.
func (_u *MeetingUpdateOne) SetAgendaRules(v []string) *MeetingUpdateOne {
	_u.mutation.SetAgendaRules(v)
	return _u
}

// AppendAgendaRules appends value to the "agenda_rules" field.
func (_u *MeetingUpdateOne) AppendAgendaRules(v []string) *MeetingUpdateOne {
	_u.mutation.AppendAgendaRules(v)
	return _u
}

// ClearAgendaRules clears the value of the "agenda_rules" field.
func (_u *MeetingUpdateOne) ClearAgendaRules() *MeetingUpdateOne {
	_u.mutation.ClearAgendaRules()
	return _u
}

// SetOutputType sets the "output_type" field.
func (_u *MeetingUpdateOne) SetOutputType(v meeting.OutputType) *MeetingUpdateOne {
	_u.mutation.SetOutputType(v)
	return _u
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableOutputType(v *meeting.OutputType) *MeetingUpdateOne {
	if v != nil {
		_u.SetOutputType(*v)
	}
	return _u
}

// SetMeetingType sets the "meeting_type" field.
func (_u *MeetingUpdateOne) SetMeetingType(v meeting.MeetingType) *MeetingUpdateOne {
	_u.mutation.SetMeetingType(v)
	return _u
}

// SetNillableMeetingType sets the "meeting_type" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableMeetingType(v *meeting.MeetingType) *MeetingUpdateOne {
	if v != nil {
		_u.SetMeetingType(*v)
	}
	return _u
}

// SetMaxRounds sets the "max_rounds" field.
func (_u *MeetingUpdateOne) SetMaxRounds(v int) *MeetingUpdateOne {
	_u.mutation.ResetMaxRounds()
	_u.mutation.SetMaxRounds(v)
	return _u
}

// SetNillableMaxRounds sets the "max_rounds" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableMaxRounds(v *int) *MeetingUpdateOne {
	if v != nil {
		_u.SetMaxRounds(*v)
	}
	return _u
}

// AddMaxRounds adds value to the "max_rounds" field.
func (_u *MeetingUpdateOne) AddMaxRounds(v int) *MeetingUpdateOne {
	_u.mutation.AddMaxRounds(v)
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *MeetingUpdateOne) SetCurrentRound(v int) *MeetingUpdateOne {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableCurrentRound(v *int) *MeetingUpdateOne {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *MeetingUpdateOne) AddCurrentRound(v int) *MeetingUpdateOne {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MeetingUpdateOne) SetStatus(v meeting.Status) *MeetingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableStatus(v *meeting.Status) *MeetingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParticipantAgentIds sets the "participant_agent_ids" field.
func (_u *MeetingUpdateOne) SetParticipantAgentIds(v []string) *MeetingUpdateOne {
	_u.mutation.SetParticipantAgentIds(v)
	return _u
}

// AppendParticipantAgentIds appends value to the "participant_agent_ids" field.
func (_u *MeetingUpdateOne) AppendParticipantAgentIds(v []string) *MeetingUpdateOne {
	_u.mutation.AppendParticipantAgentIds(v)
	return _u
}

// ClearParticipantAgentIds clears the value of the "participant_agent_ids" field.
func (_u *MeetingUpdateOne) ClearParticipantAgentIds() *MeetingUpdateOne {
	_u.mutation.ClearParticipantAgentIds()
	return _u
}

// SetIndividualAgentID sets the "individual_agent_id" field.
func (_u *MeetingUpdateOne) SetIndividualAgentID(v string) *MeetingUpdateOne {
	_u.mutation.SetIndividualAgentID(v)
	return _u
}

// SetNillableIndividualAgentID sets the "individual_agent_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableIndividualAgentID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetIndividualAgentID(*v)
	}
	return _u
}

// ClearIndividualAgentID clears the value of the "individual_agent_id" field.
func (_u *MeetingUpdateOne) ClearIndividualAgentID() *MeetingUpdateOne {
	_u.mutation.ClearIndividualAgentID()
	return _u
}

// SetSourceMeetingIds sets the "source_meeting_ids" field.
func (_u *MeetingUpdateOne) SetSourceMeetingIds(v []string) *MeetingUpdateOne {
	_u.mutation.SetSourceMeetingIds(v)
	return _u
}

// AppendSourceMeetingIds appends value to the "source_meeting_ids" field.
func (_u *MeetingUpdateOne) AppendSourceMeetingIds(v []string) *MeetingUpdateOne {
	_u.mutation.AppendSourceMeetingIds(v)
	return _u
}

// ClearSourceMeetingIds clears the value of the "source_meeting_ids" field.
func (_u *MeetingUpdateOne) ClearSourceMeetingIds() *MeetingUpdateOne {
	_u.mutation.ClearSourceMeetingIds()
	return _u
}

// SetContextMeetingIds sets the "context_meeting_ids" field.
func (_u *MeetingUpdateOne) SetContextMeetingIds(v []string) *MeetingUpdateOne {
	_u.mutation.SetContextMeetingIds(v)
	return _u
}

// AppendContextMeetingIds appends value to the "context_meeting_ids" field.
func (_u *MeetingUpdateOne) AppendContextMeetingIds(v []string) *MeetingUpdateOne {
	_u.mutation.AppendContextMeetingIds(v)
	return _u
}

// ClearContextMeetingIds clears the value of the "context_meeting_ids" field.
func (_u *MeetingUpdateOne) ClearContextMeetingIds() *MeetingUpdateOne {
	_u.mutation.ClearContextMeetingIds()
	return _u
}

// SetParentMeetingID sets the "parent_meeting_id" field.
func (_u *MeetingUpdateOne) SetParentMeetingID(v string) *MeetingUpdateOne {
	_u.mutation.SetParentMeetingID(v)
	return _u
}

// SetNillableParentMeetingID sets the "parent_meeting_id" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableParentMeetingID(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetParentMeetingID(*v)
	}
	return _u
}

// ClearParentMeetingID clears the value of the "parent_meeting_id" field.
func (_u *MeetingUpdateOne) ClearParentMeetingID() *MeetingUpdateOne {
	_u.mutation.ClearParentMeetingID()
	return _u
}

// SetRewriteFeedback sets the "rewrite_feedback" field.
func (_u *MeetingUpdateOne) SetRewriteFeedback(v string) *MeetingUpdateOne {
	_u.mutation.SetRewriteFeedback(v)
	return _u
}

// SetNillableRewriteFeedback sets the "rewrite_feedback" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableRewriteFeedback(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetRewriteFeedback(*v)
	}
	return _u
}

// ClearRewriteFeedback clears the value of the "rewrite_feedback" field.
func (_u *MeetingUpdateOne) ClearRewriteFeedback() *MeetingUpdateOne {
	_u.mutation.ClearRewriteFeedback()
	return _u
}

// SetAgendaStrategy sets the "agenda_strategy" field.
func (_u *MeetingUpdateOne) SetAgendaStrategy(v meeting.AgendaStrategy) *MeetingUpdateOne {
	_u.mutation.SetAgendaStrategy(v)
	return _u
}

// SetNillableAgendaStrategy sets the "agenda_strategy" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableAgendaStrategy(v *meeting.AgendaStrategy) *MeetingUpdateOne {
	if v != nil {
		_u.SetAgendaStrategy(*v)
	}
	return _u
}

// SetRoundPlan sets the "round_plan" field.
func (_u *MeetingUpdateOne) SetRoundPlan(v []string) *MeetingUpdateOne {
	_u.mutation.SetRoundPlan(v)
	return _u
}

// AppendRoundPlan appends value to the "round_plan" field.
func (_u *MeetingUpdateOne) AppendRoundPlan(v []string) *MeetingUpdateOne {
	_u.mutation.AppendRoundPlan(v)
	return _u
}

// ClearRoundPlan clears the value of the "round_plan" field.
func (_u *MeetingUpdateOne) ClearRoundPlan() *MeetingUpdateOne {
	_u.mutation.ClearRoundPlan()
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *MeetingUpdateOne) SetPreferredLanguage(v string) *MeetingUpdateOne {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillablePreferredLanguage(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// ClearPreferredLanguage clears the value of the "preferred_language" field.
func (_u *MeetingUpdateOne) ClearPreferredLanguage() *MeetingUpdateOne {
	_u.mutation.ClearPreferredLanguage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MeetingUpdateOne) SetErrorMessage(v string) *MeetingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableErrorMessage(v *string) *MeetingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MeetingUpdateOne) ClearErrorMessage() *MeetingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MeetingUpdateOne) SetUpdatedAt(v time.Time) *MeetingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MeetingUpdateOne) SetCompletedAt(v time.Time) *MeetingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MeetingUpdateOne) SetNillableCompletedAt(v *time.Time) *MeetingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MeetingUpdateOne) ClearCompletedAt() *MeetingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *MeetingUpdateOne) SetTeam(v *Team) *MeetingUpdateOne {
	return _u.SetTeamID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *MeetingUpdateOne) AddMessageIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *MeetingUpdateOne) AddMessages(v ...*Message) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the CodeArtifact entity by IDs.
func (_u *MeetingUpdateOne) AddArtifactIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the CodeArtifact entity.
func (_u *MeetingUpdateOne) AddArtifacts(v ...*CodeArtifact) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the MeetingMutation object of the builder.
func (_u *MeetingUpdateOne) Mutation() *MeetingMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *MeetingUpdateOne) ClearTeam() *MeetingUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *MeetingUpdateOne) ClearMessages() *MeetingUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *MeetingUpdateOne) RemoveMessageIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *MeetingUpdateOne) RemoveMessages(v ...*Message) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the CodeArtifact entity.
func (_u *MeetingUpdateOne) ClearArtifacts() *MeetingUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to CodeArtifact entities by IDs.
func (_u *MeetingUpdateOne) RemoveArtifactIDs(ids ...string) *MeetingUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to CodeArtifact entities.
func (_u *MeetingUpdateOne) RemoveArtifacts(v ...*CodeArtifact) *MeetingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Where appends a list predicates to the MeetingUpdate builder.
func (_u *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Meeting entity.
func (_u *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MeetingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := meeting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeetingUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := meeting.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Meeting.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputType(); ok {
		if err := meeting.OutputTypeValidator(v); err != nil {
			return &ValidationError{Name: "output_type", err: fmt.Errorf(`ent: validator failed for field "Meeting.output_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingType(); ok {
		if err := meeting.MeetingTypeValidator(v); err != nil {
			return &ValidationError{Name: "meeting_type", err: fmt.Errorf(`ent: validator failed for field "Meeting.meeting_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRounds(); ok {
		if err := meeting.MaxRoundsValidator(v); err != nil {
			return &ValidationError{Name: "max_rounds", err: fmt.Errorf(`ent: validator failed for field "Meeting.max_rounds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentRound(); ok {
		if err := meeting.CurrentRoundValidator(v); err != nil {
			return &ValidationError{Name: "current_round", err: fmt.Errorf(`ent: validator failed for field "Meeting.current_round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgendaStrategy(); ok {
		if err := meeting.AgendaStrategyValidator(v); err != nil {
			return &ValidationError{Name: "agenda_strategy", err: fmt.Errorf(`ent: validator failed for field "Meeting.agenda_strategy": %w`, err)}
		}
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Meeting.team"`)
	}
	return nil
}

func (_u *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agenda(); ok {
		_spec.SetField(meeting.FieldAgenda, field.TypeString, value)
	}
	if _u.mutation.AgendaCleared() {
		_spec.ClearField(meeting.FieldAgenda, field.TypeString)
	}
	if value, ok := _u.mutation.AgendaQuestions(); ok {
		_spec.SetField(meeting.FieldAgendaQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgendaQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldAgendaQuestions, value)
		})
	}
	if _u.mutation.AgendaQuestionsCleared() {
		_spec.ClearField(meeting.FieldAgendaQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgendaRules(); ok {
		_spec.SetField(meeting.FieldAgendaRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgendaRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldAgendaRules, value)
		})
	}
	if _u.mutation.AgendaRulesCleared() {
		_spec.ClearField(meeting.FieldAgendaRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputType(); ok {
		_spec.SetField(meeting.FieldOutputType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MeetingType(); ok {
		_spec.SetField(meeting.FieldMeetingType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxRounds(); ok {
		_spec.SetField(meeting.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRounds(); ok {
		_spec.AddField(meeting.FieldMaxRounds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(meeting.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(meeting.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParticipantAgentIds(); ok {
		_spec.SetField(meeting.FieldParticipantAgentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantAgentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldParticipantAgentIds, value)
		})
	}
	if _u.mutation.ParticipantAgentIdsCleared() {
		_spec.ClearField(meeting.FieldParticipantAgentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndividualAgentID(); ok {
		_spec.SetField(meeting.FieldIndividualAgentID, field.TypeString, value)
	}
	if _u.mutation.IndividualAgentIDCleared() {
		_spec.ClearField(meeting.FieldIndividualAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceMeetingIds(); ok {
		_spec.SetField(meeting.FieldSourceMeetingIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceMeetingIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldSourceMeetingIds, value)
		})
	}
	if _u.mutation.SourceMeetingIdsCleared() {
		_spec.ClearField(meeting.FieldSourceMeetingIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContextMeetingIds(); ok {
		_spec.SetField(meeting.FieldContextMeetingIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContextMeetingIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldContextMeetingIds, value)
		})
	}
	if _u.mutation.ContextMeetingIdsCleared() {
		_spec.ClearField(meeting.FieldContextMeetingIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentMeetingID(); ok {
		_spec.SetField(meeting.FieldParentMeetingID, field.TypeString, value)
	}
	if _u.mutation.ParentMeetingIDCleared() {
		_spec.ClearField(meeting.FieldParentMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.RewriteFeedback(); ok {
		_spec.SetField(meeting.FieldRewriteFeedback, field.TypeString, value)
	}
	if _u.mutation.RewriteFeedbackCleared() {
		_spec.ClearField(meeting.FieldRewriteFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AgendaStrategy(); ok {
		_spec.SetField(meeting.FieldAgendaStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoundPlan(); ok {
		_spec.SetField(meeting.FieldRoundPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoundPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldRoundPlan, value)
		})
	}
	if _u.mutation.RoundPlanCleared() {
		_spec.ClearField(meeting.FieldRoundPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(meeting.FieldPreferredLanguage, field.TypeString, value)
	}
	if _u.mutation.PreferredLanguageCleared() {
		_spec.ClearField(meeting.FieldPreferredLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(meeting.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(meeting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(meeting.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(meeting.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TeamCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Meeting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
