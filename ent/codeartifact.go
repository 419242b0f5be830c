// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/ent/meeting"
)

// CodeArtifact is the model entity for the CodeArtifact schema.
type CodeArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// Relative path including extension
	Filename string `json:"filename,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Bumped whenever content changes for the same filename
	Version int `json:"version,omitempty"`
	// SourceAgent holds the value of the "source_agent" field.
	SourceAgent *string `json:"source_agent,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CodeArtifactQuery when eager-loading is set.
	Edges        CodeArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CodeArtifactEdges holds the relations/edges for other nodes in the graph.
type CodeArtifactEdges struct {
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CodeArtifactEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codeartifact.FieldVersion:
			values[i] = new(sql.NullInt64)
		case codeartifact.FieldID, codeartifact.FieldMeetingID, codeartifact.FieldFilename, codeartifact.FieldLanguage, codeartifact.FieldContent, codeartifact.FieldDescription, codeartifact.FieldSourceAgent:
			values[i] = new(sql.NullString)
		case codeartifact.FieldCreatedAt, codeartifact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeArtifact fields.
func (_m *CodeArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codeartifact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case codeartifact.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case codeartifact.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case codeartifact.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case codeartifact.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case codeartifact.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case codeartifact.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case codeartifact.FieldSourceAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_agent", values[i])
			} else if value.Valid {
				_m.SourceAgent = new(string)
				*_m.SourceAgent = value.String
			}
		case codeartifact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case codeartifact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CodeArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *CodeArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeeting queries the "meeting" edge of the CodeArtifact entity.
func (_m *CodeArtifact) QueryMeeting() *MeetingQuery {
	return NewCodeArtifactClient(_m.config).QueryMeeting(_m)
}

// Update returns a builder for updating this CodeArtifact.
// Note that you need to call CodeArtifact.Unwrap() before calling this method if this CodeArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeArtifact) Update() *CodeArtifactUpdateOne {
	return NewCodeArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeArtifact) Unwrap() *CodeArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("CodeArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.SourceAgent; v != nil {
		builder.WriteString("source_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CodeArtifacts is a parsable slice of CodeArtifact.
type CodeArtifacts []*CodeArtifact
