package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Meeting holds the schema definition for the Meeting entity.
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("meeting_id").
			Unique().
			Immutable(),
		field.String("team_id"),
		field.String("title").
			NotEmpty(),
		field.Text("agenda").
			Optional().
			Comment("Free-text agenda; empty selects the legacy round-robin flow"),
		field.JSON("agenda_questions", []string{}).
			Optional(),
		field.JSON("agenda_rules", []string{}).
			Optional(),
		field.Enum("output_type").
			Values("code", "report", "paper").
			Default("report"),
		field.Enum("meeting_type").
			Values("team", "individual", "merge").
			Default("team"),
		field.Int("max_rounds").
			Default(3).
			Min(1).
			Max(20),
		field.Int("current_round").
			Default(0).
			Min(0),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.JSON("participant_agent_ids", []string{}).
			Optional().
			Comment("Empty = all non-mirror agents of the team"),
		field.String("individual_agent_id").
			Optional().
			Nillable(),
		field.JSON("source_meeting_ids", []string{}).
			Optional().
			Comment("Merge meetings synthesize these"),
		field.JSON("context_meeting_ids", []string{}).
			Optional().
			Comment("Chain meetings seed context from these"),
		field.String("parent_meeting_id").
			Optional().
			Nillable(),
		field.Text("rewrite_feedback").
			Optional(),
		field.Enum("agenda_strategy").
			Values("manual", "ai_auto", "agent_voting", "chain").
			Default("manual"),
		field.JSON("round_plan", []string{}).
			Optional().
			Comment("Optional per-round focus plan"),
		field.String("preferred_language").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Meeting.
func (Meeting) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("meetings").
			Field("team_id").
			Unique().
			Required(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", CodeArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Meeting.
func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
		index.Fields("status"),
	}
}
