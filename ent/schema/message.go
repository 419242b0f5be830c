package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for a meeting transcript message.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("meeting_id"),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Null for user-injected messages; nulled (not cascaded) when the agent is deleted"),
		field.String("agent_name").
			Optional().
			Nillable(),
		field.Text("content"),
		field.Int("round_number").
			Default(0).
			Min(0).
			Comment("0 for pre-round injections"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("meeting", Meeting.Type).
			Ref("messages").
			Field("meeting_id").
			Unique().
			Required(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id", "round_number", "created_at"),
	}
}
