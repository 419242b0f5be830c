package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("team_id"),
		field.String("name").
			NotEmpty(),
		field.String("title").
			Optional(),
		field.Text("expertise").
			Optional(),
		field.Text("goal").
			Optional(),
		field.String("role").
			Optional(),
		field.String("model").
			Default("gpt-4o").
			Comment("Provider model identifier, e.g. gpt-4o or claude-sonnet-4-5"),
		field.JSON("model_params", map[string]any{}).
			Optional(),
		field.Text("system_prompt").
			Optional().
			Comment("Derived from name/title/expertise/goal/role; regenerated on any source field change"),
		field.Bool("is_mirror").
			Default(false),
		field.String("primary_agent_id").
			Optional().
			Nillable().
			Comment("Weak back-reference to the primary agent; nulled when the primary is deleted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("agents").
			Field("team_id").
			Unique().
			Required(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id"),
	}
}
