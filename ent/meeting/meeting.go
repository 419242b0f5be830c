// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the meeting type in the database.
	Label = "meeting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "meeting_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAgenda holds the string denoting the agenda field in the database.
	FieldAgenda = "agenda"
	// FieldAgendaQuestions holds the string denoting the agenda_questions field in the database.
	FieldAgendaQuestions = "agenda_questions"
	// FieldAgendaRules holds the string denoting the agenda_rules field in the database.
	FieldAgendaRules = "agenda_rules"
	// FieldOutputType holds the string denoting the output_type field in the database.
	FieldOutputType = "output_type"
	// FieldMeetingType holds the string denoting the meeting_type field in the database.
	FieldMeetingType = "meeting_type"
	// FieldMaxRounds holds the string denoting the max_rounds field in the database.
	FieldMaxRounds = "max_rounds"
	// FieldCurrentRound holds the string denoting the current_round field in the database.
	FieldCurrentRound = "current_round"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParticipantAgentIds holds the string denoting the participant_agent_ids field in the database.
	FieldParticipantAgentIds = "participant_agent_ids"
	// FieldIndividualAgentID holds the string denoting the individual_agent_id field in the database.
	FieldIndividualAgentID = "individual_agent_id"
	// FieldSourceMeetingIds holds the string denoting the source_meeting_ids field in the database.
	FieldSourceMeetingIds = "source_meeting_ids"
	// FieldContextMeetingIds holds the string denoting the context_meeting_ids field in the database.
	FieldContextMeetingIds = "context_meeting_ids"
	// FieldParentMeetingID holds the string denoting the parent_meeting_id field in the database.
	FieldParentMeetingID = "parent_meeting_id"
	// FieldRewriteFeedback holds the string denoting the rewrite_feedback field in the database.
	FieldRewriteFeedback = "rewrite_feedback"
	// FieldAgendaStrategy holds the string denoting the agenda_strategy field in the database.
	FieldAgendaStrategy = "agenda_strategy"
	// FieldRoundPlan holds the string denoting the round_plan field in the database.
	FieldRoundPlan = "round_plan"
	// FieldPreferredLanguage holds the string denoting the preferred_language field in the database.
	FieldPreferredLanguage = "preferred_language"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeTeam holds the string denoting the team edge name in mutations.
	EdgeTeam = "team"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// TeamFieldID holds the string denoting the ID field of the Team.
	TeamFieldID = "team_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// CodeArtifactFieldID holds the string denoting the ID field of the CodeArtifact.
	CodeArtifactFieldID = "artifact_id"
	// Table holds the table name of the meeting in the database.
	Table = "meetings"
	// TeamTable is the table that holds the team relation/edge.
	TeamTable = "meetings"
	// TeamInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamInverseTable = "teams"
	// TeamColumn is the table column denoting the team relation/edge.
	TeamColumn = "team_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "meeting_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "code_artifacts"
	// ArtifactsInverseTable is the table name for the CodeArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "codeartifact" package.
	ArtifactsInverseTable = "code_artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "meeting_id"
)

// Columns holds all SQL columns for meeting fields.
var Columns = []string{
	FieldID,
	FieldTeamID,
	FieldTitle,
	FieldAgenda,
	FieldAgendaQuestions,
	FieldAgendaRules,
	FieldOutputType,
	FieldMeetingType,
	FieldMaxRounds,
	FieldCurrentRound,
	FieldStatus,
	FieldParticipantAgentIds,
	FieldIndividualAgentID,
	FieldSourceMeetingIds,
	FieldContextMeetingIds,
	FieldParentMeetingID,
	FieldRewriteFeedback,
	FieldAgendaStrategy,
	FieldRoundPlan,
	FieldPreferredLanguage,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultMaxRounds holds the default value on creation for the "max_rounds" field.
	DefaultMaxRounds int
	// MaxRoundsValidator is a validator for the "max_rounds" field. It is called by the builders before save.
	MaxRoundsValidator func(int) error
	// DefaultCurrentRound holds the default value on creation for the "current_round" field.
	DefaultCurrentRound int
	// CurrentRoundValidator is a validator for the "current_round" field. It is called by the builders before save.
	CurrentRoundValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OutputType defines the type for the "output_type" enum field.
type OutputType string

// OutputTypeReport is the default value of the OutputType enum.
const DefaultOutputType = OutputTypeReport

// OutputType values.
const (
	OutputTypeCode   OutputType = "code"
	OutputTypeReport OutputType = "report"
	OutputTypePaper  OutputType = "paper"
)

func (ot OutputType) String() string {
	return string(ot)
}

// OutputTypeValidator is a validator for the "output_type" field enum values. It is called by the builders before save.
func OutputTypeValidator(ot OutputType) error {
	switch ot {
	case OutputTypeCode, OutputTypeReport, OutputTypePaper:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for output_type field: %q", ot)
	}
}

// MeetingType defines the type for the "meeting_type" enum field.
type MeetingType string

// MeetingTypeTeam is the default value of the MeetingType enum.
const DefaultMeetingType = MeetingTypeTeam

// MeetingType values.
const (
	MeetingTypeTeam       MeetingType = "team"
	MeetingTypeIndividual MeetingType = "individual"
	MeetingTypeMerge      MeetingType = "merge"
)

func (mt MeetingType) String() string {
	return string(mt)
}

// MeetingTypeValidator is a validator for the "meeting_type" field enum values. It is called by the builders before save.
func MeetingTypeValidator(mt MeetingType) error {
	switch mt {
	case MeetingTypeTeam, MeetingTypeIndividual, MeetingTypeMerge:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for meeting_type field: %q", mt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for status field: %q", s)
	}
}

// AgendaStrategy defines the type for the "agenda_strategy" enum field.
type AgendaStrategy string

// AgendaStrategyManual is the default value of the AgendaStrategy enum.
const DefaultAgendaStrategy = AgendaStrategyManual

// AgendaStrategy values.
const (
	AgendaStrategyManual      AgendaStrategy = "manual"
	AgendaStrategyAiAuto      AgendaStrategy = "ai_auto"
	AgendaStrategyAgentVoting AgendaStrategy = "agent_voting"
	AgendaStrategyChain       AgendaStrategy = "chain"
)

func (as AgendaStrategy) String() string {
	return string(as)
}

// AgendaStrategyValidator is a validator for the "agenda_strategy" field enum values. It is called by the builders before save.
func AgendaStrategyValidator(as AgendaStrategy) error {
	switch as {
	case AgendaStrategyManual, AgendaStrategyAiAuto, AgendaStrategyAgentVoting, AgendaStrategyChain:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for agenda_strategy field: %q", as)
	}
}

// OrderOption defines the ordering options for the Meeting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAgenda orders the results by the agenda field.
func ByAgenda(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgenda, opts...).ToFunc()
}

// ByOutputType orders the results by the output_type field.
func ByOutputType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputType, opts...).ToFunc()
}

// ByMeetingType orders the results by the meeting_type field.
func ByMeetingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingType, opts...).ToFunc()
}

// ByMaxRounds orders the results by the max_rounds field.
func ByMaxRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRounds, opts...).ToFunc()
}

// ByCurrentRound orders the results by the current_round field.
func ByCurrentRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentRound, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIndividualAgentID orders the results by the individual_agent_id field.
func ByIndividualAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndividualAgentID, opts...).ToFunc()
}

// ByParentMeetingID orders the results by the parent_meeting_id field.
func ByParentMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentMeetingID, opts...).ToFunc()
}

// ByRewriteFeedback orders the results by the rewrite_feedback field.
func ByRewriteFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewriteFeedback, opts...).ToFunc()
}

// ByAgendaStrategy orders the results by the agenda_strategy field.
func ByAgendaStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgendaStrategy, opts...).ToFunc()
}

// ByPreferredLanguage orders the results by the preferred_language field.
func ByPreferredLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredLanguage, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTeamField orders the results by team field.
func ByTeamField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTeamStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamInverseTable, TeamFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, CodeArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
