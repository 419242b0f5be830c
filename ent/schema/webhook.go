package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Webhook holds the schema definition for an outbound webhook config.
type Webhook struct {
	ent.Schema
}

// Fields of the Webhook.
func (Webhook) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_id").
			Unique().
			Immutable(),
		field.String("url").
			NotEmpty(),
		field.JSON("events", []string{}).
			Comment("Event types this webhook receives, e.g. meeting_complete"),
		field.Bool("active").
			Default(true),
		field.Text("secret_encrypted").
			Optional().
			Comment("AES-GCM encrypted HMAC secret"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
