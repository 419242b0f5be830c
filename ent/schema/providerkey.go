package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProviderKey holds an encrypted per-user LLM provider API key.
// Environment variables are the fallback when no row exists for a provider.
type ProviderKey struct {
	ent.Schema
}

// Fields of the ProviderKey.
func (ProviderKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("provider_key_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("provider").
			NotEmpty().
			Comment("openai, anthropic or deepseek"),
		field.Text("key_encrypted").
			Comment("AES-GCM encrypted API key"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProviderKey.
func (ProviderKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "user_id").
			Unique(),
	}
}
