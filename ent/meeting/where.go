// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-ai/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTeamID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// Agenda applies equality check predicate on the "agenda" field. It's identical to AgendaEQ.
func Agenda(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAgenda, v))
}

// MaxRounds applies equality check predicate on the "max_rounds" field. It's identical to MaxRoundsEQ.
func MaxRounds(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldMaxRounds, v))
}

// CurrentRound applies equality check predicate on the "current_round" field. It's identical to CurrentRoundEQ.
func CurrentRound(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCurrentRound, v))
}

// IndividualAgentID applies equality check predicate on the "individual_agent_id" field. It's identical to IndividualAgentIDEQ.
func IndividualAgentID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldIndividualAgentID, v))
}

// ParentMeetingID applies equality check predicate on the "parent_meeting_id" field. It's identical to ParentMeetingIDEQ.
func ParentMeetingID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldParentMeetingID, v))
}

// RewriteFeedback applies equality check predicate on the "rewrite_feedback" field. It's identical to RewriteFeedbackEQ.
func RewriteFeedback(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldRewriteFeedback, v))
}

// PreferredLanguage applies equality check predicate on the "preferred_language" field. It's identical to PreferredLanguageEQ.
func PreferredLanguage(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldPreferredLanguage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCompletedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTeamID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTitle, v))
}

// AgendaEQ applies the EQ predicate on the "agenda" field.
func AgendaEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAgenda, v))
}

// AgendaNEQ applies the NEQ predicate on the "agenda" field.
func AgendaNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAgenda, v))
}

// AgendaIn applies the In predicate on the "agenda" field.
func AgendaIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAgenda, vs...))
}

// AgendaNotIn applies the NotIn predicate on the "agenda" field.
func AgendaNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAgenda, vs...))
}

// AgendaGT applies the GT predicate on the "agenda" field.
func AgendaGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldAgenda, v))
}

// AgendaGTE applies the GTE predicate on the "agenda" field.
func AgendaGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldAgenda, v))
}

// AgendaLT applies the LT predicate on the "agenda" field.
func AgendaLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldAgenda, v))
}

// AgendaLTE applies the LTE predicate on the "agenda" field.
func AgendaLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldAgenda, v))
}

// AgendaContains applies the Contains predicate on the "agenda" field.
func AgendaContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldAgenda, v))
}

// AgendaHasPrefix applies the HasPrefix predicate on the "agenda" field.
func AgendaHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldAgenda, v))
}

// AgendaHasSuffix applies the HasSuffix predicate on the "agenda" field.
func AgendaHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldAgenda, v))
}

// AgendaIsNil applies the IsNil predicate on the "agenda" field.
func AgendaIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldAgenda))
}

// AgendaNotNil applies the NotNil predicate on the "agenda" field.
func AgendaNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldAgenda))
}

// AgendaEqualFold applies the EqualFold predicate on the "agenda" field.
func AgendaEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldAgenda, v))
}

// AgendaContainsFold applies the ContainsFold predicate on the "agenda" field.
func AgendaContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldAgenda, v))
}

// AgendaQuestionsIsNil applies the IsNil predicate on the "agenda_questions" field.
func AgendaQuestionsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldAgendaQuestions))
}

// AgendaQuestionsNotNil applies the NotNil predicate on the "agenda_questions" field.
func AgendaQuestionsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldAgendaQuestions))
}

// AgendaRulesIsNil applies the IsNil predicate on the "agenda_rules" field.
func AgendaRulesIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldAgendaRules))
}

// AgendaRulesNotNil applies the NotNil predicate on the "agenda_rules" field.
func AgendaRulesNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldAgendaRules))
}

// OutputTypeEQ applies the EQ predicate on the "output_type" field.
func OutputTypeEQ(v OutputType) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldOutputType, v))
}

// OutputTypeNEQ applies the NEQ predicate on the "output_type" field.
func OutputTypeNEQ(v OutputType) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldOutputType, v))
}

// OutputTypeIn applies the In predicate on the "output_type" field.
func OutputTypeIn(vs ...OutputType) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldOutputType, vs...))
}

// OutputTypeNotIn applies the NotIn predicate on the "output_type" field.
func OutputTypeNotIn(vs ...OutputType) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldOutputType, vs...))
}

// MeetingTypeEQ applies the EQ predicate on the "meeting_type" field.
func MeetingTypeEQ(v MeetingType) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldMeetingType, v))
}

// MeetingTypeNEQ applies the NEQ predicate on the "meeting_type" field.
func MeetingTypeNEQ(v MeetingType) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldMeetingType, v))
}

// MeetingTypeIn applies the In predicate on the "meeting_type" field.
func MeetingTypeIn(vs ...MeetingType) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldMeetingType, vs...))
}

// MeetingTypeNotIn applies the NotIn predicate on the "meeting_type" field.
func MeetingTypeNotIn(vs ...MeetingType) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldMeetingType, vs...))
}

// MaxRoundsEQ applies the EQ predicate on the "max_rounds" field.
func MaxRoundsEQ(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldMaxRounds, v))
}

// MaxRoundsNEQ applies the NEQ predicate on the "max_rounds" field.
func MaxRoundsNEQ(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldMaxRounds, v))
}

// MaxRoundsIn applies the In predicate on the "max_rounds" field.
func MaxRoundsIn(vs ...int) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldMaxRounds, vs...))
}

// MaxRoundsNotIn applies the NotIn predicate on the "max_rounds" field.
func MaxRoundsNotIn(vs ...int) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldMaxRounds, vs...))
}

// MaxRoundsGT applies the GT predicate on the "max_rounds" field.
func MaxRoundsGT(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldMaxRounds, v))
}

// MaxRoundsGTE applies the GTE predicate on the "max_rounds" field.
func MaxRoundsGTE(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldMaxRounds, v))
}

// MaxRoundsLT applies the LT predicate on the "max_rounds" field.
func MaxRoundsLT(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldMaxRounds, v))
}

// MaxRoundsLTE applies the LTE predicate on the "max_rounds" field.
func MaxRoundsLTE(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldMaxRounds, v))
}

// CurrentRoundEQ applies the EQ predicate on the "current_round" field.
func CurrentRoundEQ(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCurrentRound, v))
}

// CurrentRoundNEQ applies the NEQ predicate on the "current_round" field.
func CurrentRoundNEQ(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCurrentRound, v))
}

// CurrentRoundIn applies the In predicate on the "current_round" field.
func CurrentRoundIn(vs ...int) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCurrentRound, vs...))
}

// CurrentRoundNotIn applies the NotIn predicate on the "current_round" field.
func CurrentRoundNotIn(vs ...int) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCurrentRound, vs...))
}

// CurrentRoundGT applies the GT predicate on the "current_round" field.
func CurrentRoundGT(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCurrentRound, v))
}

// CurrentRoundGTE applies the GTE predicate on the "current_round" field.
func CurrentRoundGTE(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCurrentRound, v))
}

// CurrentRoundLT applies the LT predicate on the "current_round" field.
func CurrentRoundLT(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCurrentRound, v))
}

// CurrentRoundLTE applies the LTE predicate on the "current_round" field.
func CurrentRoundLTE(v int) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCurrentRound, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldStatus, vs...))
}

// ParticipantAgentIdsIsNil applies the IsNil predicate on the "participant_agent_ids" field.
func ParticipantAgentIdsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldParticipantAgentIds))
}

// ParticipantAgentIdsNotNil applies the NotNil predicate on the "participant_agent_ids" field.
func ParticipantAgentIdsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldParticipantAgentIds))
}

// IndividualAgentIDEQ applies the EQ predicate on the "individual_agent_id" field.
func IndividualAgentIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldIndividualAgentID, v))
}

// IndividualAgentIDNEQ applies the NEQ predicate on the "individual_agent_id" field.
func IndividualAgentIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldIndividualAgentID, v))
}

// IndividualAgentIDIn applies the In predicate on the "individual_agent_id" field.
func IndividualAgentIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldIndividualAgentID, vs...))
}

// IndividualAgentIDNotIn applies the NotIn predicate on the "individual_agent_id" field.
func IndividualAgentIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldIndividualAgentID, vs...))
}

// IndividualAgentIDGT applies the GT predicate on the "individual_agent_id" field.
func IndividualAgentIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldIndividualAgentID, v))
}

// IndividualAgentIDGTE applies the GTE predicate on the "individual_agent_id" field.
func IndividualAgentIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldIndividualAgentID, v))
}

// IndividualAgentIDLT applies the LT predicate on the "individual_agent_id" field.
func IndividualAgentIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldIndividualAgentID, v))
}

// IndividualAgentIDLTE applies the LTE predicate on the "individual_agent_id" field.
func IndividualAgentIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldIndividualAgentID, v))
}

// IndividualAgentIDContains applies the Contains predicate on the "individual_agent_id" field.
func IndividualAgentIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldIndividualAgentID, v))
}

// IndividualAgentIDHasPrefix applies the HasPrefix predicate on the "individual_agent_id" field.
func IndividualAgentIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldIndividualAgentID, v))
}

// IndividualAgentIDHasSuffix applies the HasSuffix predicate on the "individual_agent_id" field.
func IndividualAgentIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldIndividualAgentID, v))
}

// IndividualAgentIDIsNil applies the IsNil predicate on the "individual_agent_id" field.
func IndividualAgentIDIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldIndividualAgentID))
}

// IndividualAgentIDNotNil applies the NotNil predicate on the "individual_agent_id" field.
func IndividualAgentIDNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldIndividualAgentID))
}

// IndividualAgentIDEqualFold applies the EqualFold predicate on the "individual_agent_id" field.
func IndividualAgentIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldIndividualAgentID, v))
}

// IndividualAgentIDContainsFold applies the ContainsFold predicate on the "individual_agent_id" field.
func IndividualAgentIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldIndividualAgentID, v))
}

// SourceMeetingIdsIsNil applies the IsNil predicate on the "source_meeting_ids" field.
func SourceMeetingIdsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldSourceMeetingIds))
}

// SourceMeetingIdsNotNil applies the NotNil predicate on the "source_meeting_ids" field.
func SourceMeetingIdsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldSourceMeetingIds))
}

// ContextMeetingIdsIsNil applies the IsNil predicate on the "context_meeting_ids" field.
func ContextMeetingIdsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldContextMeetingIds))
}

// ContextMeetingIdsNotNil applies the NotNil predicate on the "context_meeting_ids" field.
func ContextMeetingIdsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldContextMeetingIds))
}

// ParentMeetingIDEQ applies the EQ predicate on the "parent_meeting_id" field.
func ParentMeetingIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldParentMeetingID, v))
}

// ParentMeetingIDNEQ applies the NEQ predicate on the "parent_meeting_id" field.
func ParentMeetingIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldParentMeetingID, v))
}

// ParentMeetingIDIn applies the In predicate on the "parent_meeting_id" field.
func ParentMeetingIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldParentMeetingID, vs...))
}

// ParentMeetingIDNotIn applies the NotIn predicate on the "parent_meeting_id" field.
func ParentMeetingIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldParentMeetingID, vs...))
}

// ParentMeetingIDGT applies the GT predicate on the "parent_meeting_id" field.
func ParentMeetingIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldParentMeetingID, v))
}

// ParentMeetingIDGTE applies the GTE predicate on the "parent_meeting_id" field.
func ParentMeetingIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldParentMeetingID, v))
}

// ParentMeetingIDLT applies the LT predicate on the "parent_meeting_id" field.
func ParentMeetingIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldParentMeetingID, v))
}

// ParentMeetingIDLTE applies the LTE predicate on the "parent_meeting_id" field.
func ParentMeetingIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldParentMeetingID, v))
}

// ParentMeetingIDContains applies the Contains predicate on the "parent_meeting_id" field.
func ParentMeetingIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldParentMeetingID, v))
}

// ParentMeetingIDHasPrefix applies the HasPrefix predicate on the "parent_meeting_id" field.
func ParentMeetingIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldParentMeetingID, v))
}

// ParentMeetingIDHasSuffix applies the HasSuffix predicate on the "parent_meeting_id" field.
func ParentMeetingIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldParentMeetingID, v))
}

// ParentMeetingIDIsNil applies the IsNil predicate on the "parent_meeting_id" field.
func ParentMeetingIDIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldParentMeetingID))
}

// ParentMeetingIDNotNil applies the NotNil predicate on the "parent_meeting_id" field.
func ParentMeetingIDNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldParentMeetingID))
}

// ParentMeetingIDEqualFold applies the EqualFold predicate on the "parent_meeting_id" field.
func ParentMeetingIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldParentMeetingID, v))
}

// ParentMeetingIDContainsFold applies the ContainsFold predicate on the "parent_meeting_id" field.
func ParentMeetingIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldParentMeetingID, v))
}

// RewriteFeedbackEQ applies the EQ predicate on the "rewrite_feedback" field.
func RewriteFeedbackEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldRewriteFeedback, v))
}

// RewriteFeedbackNEQ applies the NEQ predicate on the "rewrite_feedback" field.
func RewriteFeedbackNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldRewriteFeedback, v))
}

// RewriteFeedbackIn applies the In predicate on the "rewrite_feedback" field.
func RewriteFeedbackIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldRewriteFeedback, vs...))
}

// RewriteFeedbackNotIn applies the NotIn predicate on the "rewrite_feedback" field.
func RewriteFeedbackNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldRewriteFeedback, vs...))
}

// RewriteFeedbackGT applies the GT predicate on the "rewrite_feedback" field.
func RewriteFeedbackGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldRewriteFeedback, v))
}

// RewriteFeedbackGTE applies the GTE predicate on the "rewrite_feedback" field.
func RewriteFeedbackGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldRewriteFeedback, v))
}

// RewriteFeedbackLT applies the LT predicate on the "rewrite_feedback" field.
func RewriteFeedbackLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldRewriteFeedback, v))
}

// RewriteFeedbackLTE applies the LTE predicate on the "rewrite_feedback" field.
func RewriteFeedbackLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldRewriteFeedback, v))
}

// RewriteFeedbackContains applies the Contains predicate on the "rewrite_feedback" field.
func RewriteFeedbackContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldRewriteFeedback, v))
}

// RewriteFeedbackHasPrefix applies the HasPrefix predicate on the "rewrite_feedback" field.
func RewriteFeedbackHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldRewriteFeedback, v))
}

// RewriteFeedbackHasSuffix applies the HasSuffix predicate on the "rewrite_feedback" field.
func RewriteFeedbackHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldRewriteFeedback, v))
}

// RewriteFeedbackIsNil applies the IsNil predicate on the "rewrite_feedback" field.
func RewriteFeedbackIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldRewriteFeedback))
}

// RewriteFeedbackNotNil applies the NotNil predicate on the "rewrite_feedback" field.
func RewriteFeedbackNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldRewriteFeedback))
}

// RewriteFeedbackEqualFold applies the EqualFold predicate on the "rewrite_feedback" field.
func RewriteFeedbackEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldRewriteFeedback, v))
}

// RewriteFeedbackContainsFold applies the ContainsFold predicate on the "rewrite_feedback" field.
func RewriteFeedbackContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldRewriteFeedback, v))
}

// AgendaStrategyEQ applies the EQ predicate on the "agenda_strategy" field.
func AgendaStrategyEQ(v AgendaStrategy) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAgendaStrategy, v))
}

// AgendaStrategyNEQ applies the NEQ predicate on the "agenda_strategy" field.
func AgendaStrategyNEQ(v AgendaStrategy) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAgendaStrategy, v))
}

// AgendaStrategyIn applies the In predicate on the "agenda_strategy" field.
func AgendaStrategyIn(vs ...AgendaStrategy) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAgendaStrategy, vs...))
}

// AgendaStrategyNotIn applies the NotIn predicate on the "agenda_strategy" field.
func AgendaStrategyNotIn(vs ...AgendaStrategy) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAgendaStrategy, vs...))
}

// RoundPlanIsNil applies the IsNil predicate on the "round_plan" field.
func RoundPlanIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldRoundPlan))
}

// RoundPlanNotNil applies the NotNil predicate on the "round_plan" field.
func RoundPlanNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldRoundPlan))
}

// PreferredLanguageEQ applies the EQ predicate on the "preferred_language" field.
func PreferredLanguageEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageNEQ applies the NEQ predicate on the "preferred_language" field.
func PreferredLanguageNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageIn applies the In predicate on the "preferred_language" field.
func PreferredLanguageIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageNotIn applies the NotIn predicate on the "preferred_language" field.
func PreferredLanguageNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageGT applies the GT predicate on the "preferred_language" field.
func PreferredLanguageGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldPreferredLanguage, v))
}

// PreferredLanguageGTE applies the GTE predicate on the "preferred_language" field.
func PreferredLanguageGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldPreferredLanguage, v))
}

// PreferredLanguageLT applies the LT predicate on the "preferred_language" field.
func PreferredLanguageLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldPreferredLanguage, v))
}

// PreferredLanguageLTE applies the LTE predicate on the "preferred_language" field.
func PreferredLanguageLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldPreferredLanguage, v))
}

// PreferredLanguageContains applies the Contains predicate on the "preferred_language" field.
func PreferredLanguageContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldPreferredLanguage, v))
}

// PreferredLanguageHasPrefix applies the HasPrefix predicate on the "preferred_language" field.
func PreferredLanguageHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldPreferredLanguage, v))
}

// PreferredLanguageHasSuffix applies the HasSuffix predicate on the "preferred_language" field.
func PreferredLanguageHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldPreferredLanguage, v))
}

// PreferredLanguageIsNil applies the IsNil predicate on the "preferred_language" field.
func PreferredLanguageIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldPreferredLanguage))
}

// PreferredLanguageNotNil applies the NotNil predicate on the "preferred_language" field.
func PreferredLanguageNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldPreferredLanguage))
}

// PreferredLanguageEqualFold applies the EqualFold predicate on the "preferred_language" field.
func PreferredLanguageEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldPreferredLanguage, v))
}

// PreferredLanguageContainsFold applies the ContainsFold predicate on the "preferred_language" field.
func PreferredLanguageContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldPreferredLanguage, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldCompletedAt))
}

// HasTeam applies the HasEdge predicate on the "team" edge.
func HasTeam() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamWith applies the HasEdge predicate on the "team" edge with a given conditions (other predicates).
func HasTeamWith(preds ...predicate.Team) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newTeamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.CodeArtifact) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.NotPredicates(p))
}
