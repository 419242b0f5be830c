// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-ai/conclave/ent/meeting"
	"github.com/conclave-ai/conclave/ent/team"
)

// Meeting is the model entity for the Meeting schema.
type Meeting struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Free-text agenda; empty selects the legacy round-robin flow
	Agenda string `json:"agenda,omitempty"`
	// AgendaQuestions holds the value of the "agenda_questions" field.
	AgendaQuestions []string `json:"agenda_questions,omitempty"`
	// AgendaRules holds the value of the "agenda_rules" field.
	AgendaRules []string `json:"agenda_rules,omitempty"`
	// OutputType holds the value of the "output_type" field.
	OutputType meeting.OutputType `json:"output_type,omitempty"`
	// MeetingType holds the value of the "meeting_type" field.
	MeetingType meeting.MeetingType `json:"meeting_type,omitempty"`
	// MaxRounds holds the value of the "max_rounds" field.
	MaxRounds int `json:"max_rounds,omitempty"`
	// CurrentRound holds the value of the "current_round" field.
	CurrentRound int `json:"current_round,omitempty"`
	// Status holds the value of the "status" field.
	Status meeting.Status `json:"status,omitempty"`
	// Empty = all non-mirror agents of the team
	ParticipantAgentIds []string `json:"participant_agent_ids,omitempty"`
	// IndividualAgentID holds the value of the "individual_agent_id" field.
	IndividualAgentID *string `json:"individual_agent_id,omitempty"`
	// Merge meetings synthesize these
	SourceMeetingIds []string `json:"source_meeting_ids,omitempty"`
	// Chain meetings seed context from these
	ContextMeetingIds []string `json:"context_meeting_ids,omitempty"`
	// ParentMeetingID holds the value of the "parent_meeting_id" field.
	ParentMeetingID *string `json:"parent_meeting_id,omitempty"`
	// RewriteFeedback holds the value of the "rewrite_feedback" field.
	RewriteFeedback string `json:"rewrite_feedback,omitempty"`
	// AgendaStrategy holds the value of the "agenda_strategy" field.
	AgendaStrategy meeting.AgendaStrategy `json:"agenda_strategy,omitempty"`
	// Optional per-round focus plan
	RoundPlan []string `json:"round_plan,omitempty"`
	// PreferredLanguage holds the value of the "preferred_language" field.
	PreferredLanguage *string `json:"preferred_language,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MeetingQuery when eager-loading is set.
	Edges        MeetingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MeetingEdges holds the relations/edges for other nodes in the graph.
type MeetingEdges struct {
	// Team holds the value of the team edge.
	Team *Team `json:"team,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*CodeArtifact `json:"artifacts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MeetingEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) ArtifactsOrErr() ([]*CodeArtifact, error) {
	if e.loadedTypes[2] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Meeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meeting.FieldAgendaQuestions, meeting.FieldAgendaRules, meeting.FieldParticipantAgentIds, meeting.FieldSourceMeetingIds, meeting.FieldContextMeetingIds, meeting.FieldRoundPlan:
			values[i] = new([]byte)
		case meeting.FieldMaxRounds, meeting.FieldCurrentRound:
			values[i] = new(sql.NullInt64)
		case meeting.FieldID, meeting.FieldTeamID, meeting.FieldTitle, meeting.FieldAgenda, meeting.FieldOutputType, meeting.FieldMeetingType, meeting.FieldStatus, meeting.FieldIndividualAgentID, meeting.FieldParentMeetingID, meeting.FieldRewriteFeedback, meeting.FieldAgendaStrategy, meeting.FieldPreferredLanguage, meeting.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case meeting.FieldCreatedAt, meeting.FieldUpdatedAt, meeting.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Meeting fields.
func (_m *Meeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case meeting.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case meeting.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case meeting.FieldAgenda:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agenda", values[i])
			} else if value.Valid {
				_m.Agenda = value.String
			}
		case meeting.FieldAgendaQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agenda_questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgendaQuestions); err != nil {
					return fmt.Errorf("unmarshal field agenda_questions: %w", err)
				}
			}
		case meeting.FieldAgendaRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agenda_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgendaRules); err != nil {
					return fmt.Errorf("unmarshal field agenda_rules: %w", err)
				}
			}
		case meeting.FieldOutputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_type", values[i])
			} else if value.Valid {
				_m.OutputType = meeting.OutputType(value.String)
			}
		case meeting.FieldMeetingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_type", values[i])
			} else if value.Valid {
				_m.MeetingType = meeting.MeetingType(value.String)
			}
		case meeting.FieldMaxRounds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_rounds", values[i])
			} else if value.Valid {
				_m.MaxRounds = int(value.Int64)
			}
		case meeting.FieldCurrentRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_round", values[i])
			} else if value.Valid {
				_m.CurrentRound = int(value.Int64)
			}
		case meeting.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = meeting.Status(value.String)
			}
		case meeting.FieldParticipantAgentIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participant_agent_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParticipantAgentIds); err != nil {
					return fmt.Errorf("unmarshal field participant_agent_ids: %w", err)
				}
			}
		case meeting.FieldIndividualAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field individual_agent_id", values[i])
			} else if value.Valid {
				_m.IndividualAgentID = new(string)
				*_m.IndividualAgentID = value.String
			}
		case meeting.FieldSourceMeetingIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_meeting_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceMeetingIds); err != nil {
					return fmt.Errorf("unmarshal field source_meeting_ids: %w", err)
				}
			}
		case meeting.FieldContextMeetingIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_meeting_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextMeetingIds); err != nil {
					return fmt.Errorf("unmarshal field context_meeting_ids: %w", err)
				}
			}
		case meeting.FieldParentMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_meeting_id", values[i])
			} else if value.Valid {
				_m.ParentMeetingID = new(string)
				*_m.ParentMeetingID = value.String
			}
		case meeting.FieldRewriteFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rewrite_feedback", values[i])
			} else if value.Valid {
				_m.RewriteFeedback = value.String
			}
		case meeting.FieldAgendaStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agenda_strategy", values[i])
			} else if value.Valid {
				_m.AgendaStrategy = meeting.AgendaStrategy(value.String)
			}
		case meeting.FieldRoundPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field round_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RoundPlan); err != nil {
					return fmt.Errorf("unmarshal field round_plan: %w", err)
				}
			}
		case meeting.FieldPreferredLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_language", values[i])
			} else if value.Valid {
				_m.PreferredLanguage = new(string)
				*_m.PreferredLanguage = value.String
			}
		case meeting.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case meeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case meeting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case meeting.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Meeting.
// This includes values selected through modifiers, order, etc.
func (_m *Meeting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTeam queries the "team" edge of the Meeting entity.
func (_m *Meeting) QueryTeam() *TeamQuery {
	return NewMeetingClient(_m.config).QueryTeam(_m)
}

// QueryMessages queries the "messages" edge of the Meeting entity.
func (_m *Meeting) QueryMessages() *MessageQuery {
	return NewMeetingClient(_m.config).QueryMessages(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Meeting entity.
func (_m *Meeting) QueryArtifacts() *CodeArtifactQuery {
	return NewMeetingClient(_m.config).QueryArtifacts(_m)
}

// Update returns a builder for updating this Meeting.
// Note that you need to call Meeting.Unwrap() before calling this method if this Meeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Meeting) Update() *MeetingUpdateOne {
	return NewMeetingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Meeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Meeting) Unwrap() *Meeting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Meeting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Meeting) String() string {
	var builder strings.Builder
	builder.WriteString("Meeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("agenda=")
	builder.WriteString(_m.Agenda)
	builder.WriteString(", ")
	builder.WriteString("agenda_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgendaQuestions))
	builder.WriteString(", ")
	builder.WriteString("agenda_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgendaRules))
	builder.WriteString(", ")
	builder.WriteString("output_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputType))
	builder.WriteString(", ")
	builder.WriteString("meeting_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeetingType))
	builder.WriteString(", ")
	builder.WriteString("max_rounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRounds))
	builder.WriteString(", ")
	builder.WriteString("current_round=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentRound))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("participant_agent_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantAgentIds))
	builder.WriteString(", ")
	if v := _m.IndividualAgentID; v != nil {
		builder.WriteString("individual_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_meeting_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceMeetingIds))
	builder.WriteString(", ")
	builder.WriteString("context_meeting_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextMeetingIds))
	builder.WriteString(", ")
	if v := _m.ParentMeetingID; v != nil {
		builder.WriteString("parent_meeting_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rewrite_feedback=")
	builder.WriteString(_m.RewriteFeedback)
	builder.WriteString(", ")
	builder.WriteString("agenda_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgendaStrategy))
	builder.WriteString(", ")
	builder.WriteString("round_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundPlan))
	builder.WriteString(", ")
	if v := _m.PreferredLanguage; v != nil {
		builder.WriteString("preferred_language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Meetings is a parsable slice of Meeting.
type Meetings []*Meeting
