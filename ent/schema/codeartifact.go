package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CodeArtifact holds the schema definition for a file extracted from a
// completed meeting transcript.
type CodeArtifact struct {
	ent.Schema
}

// Fields of the CodeArtifact.
func (CodeArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("meeting_id"),
		field.String("filename").
			NotEmpty().
			Comment("Relative path including extension"),
		field.String("language"),
		field.Text("content"),
		field.Text("description").
			Optional(),
		field.Int("version").
			Default(1).
			Min(1).
			Comment("Bumped whenever content changes for the same filename"),
		field.String("source_agent").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CodeArtifact.
func (CodeArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("artifacts").
			Field("meeting_id").
			Unique().
			Required(),
	}
}

// Indexes of the CodeArtifact.
func (CodeArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id", "filename").
			Unique(),
	}
}
