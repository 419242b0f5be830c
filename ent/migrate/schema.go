// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "expertise", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "goal", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Default: "gpt-4o"},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_mirror", Type: field.TypeBool, Default: false},
		{Name: "primary_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_teams_agents",
				Columns:    []*schema.Column{AgentsColumns[13]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_team_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[13]},
			},
		},
	}
	// CodeArtifactsColumns holds the columns for the "code_artifacts" table.
	CodeArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "source_agent", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// CodeArtifactsTable holds the schema information for the "code_artifacts" table.
	CodeArtifactsTable = &schema.Table{
		Name:       "code_artifacts",
		Columns:    CodeArtifactsColumns,
		PrimaryKey: []*schema.Column{CodeArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "code_artifacts_meetings_artifacts",
				Columns:    []*schema.Column{CodeArtifactsColumns[9]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "codeartifact_meeting_id_filename",
				Unique:  true,
				Columns: []*schema.Column{CodeArtifactsColumns[9], CodeArtifactsColumns[1]},
			},
		},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "meeting_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "agenda", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agenda_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "agenda_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "output_type", Type: field.TypeEnum, Enums: []string{"code", "report", "paper"}, Default: "report"},
		{Name: "meeting_type", Type: field.TypeEnum, Enums: []string{"team", "individual", "merge"}, Default: "team"},
		{Name: "max_rounds", Type: field.TypeInt, Default: 3},
		{Name: "current_round", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "participant_agent_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "individual_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "source_meeting_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "context_meeting_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_meeting_id", Type: field.TypeString, Nullable: true},
		{Name: "rewrite_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agenda_strategy", Type: field.TypeEnum, Enums: []string{"manual", "ai_auto", "agent_voting", "chain"}, Default: "manual"},
		{Name: "round_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "preferred_language", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "team_id", Type: field.TypeString},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meetings_teams_meetings",
				Columns:    []*schema.Column{MeetingsColumns[23]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_team_id",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[23]},
			},
			{
				Name:    "meeting_status",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[9]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "round_number", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_meetings_messages",
				Columns:    []*schema.Column{MessagesColumns[7]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_meeting_id_round_number_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[7], MessagesColumns[5], MessagesColumns[6]},
			},
		},
	}
	// ProviderKeysColumns holds the columns for the "provider_keys" table.
	ProviderKeysColumns = []*schema.Column{
		{Name: "provider_key_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "key_encrypted", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProviderKeysTable holds the schema information for the "provider_keys" table.
	ProviderKeysTable = &schema.Table{
		Name:       "provider_keys",
		Columns:    ProviderKeysColumns,
		PrimaryKey: []*schema.Column{ProviderKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "providerkey_provider_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProviderKeysColumns[2], ProviderKeysColumns[1]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "team_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "default_language", Type: field.TypeString, Nullable: true},
		{Name: "is_public", Type: field.TypeBool, Default: false},
		{Name: "owner_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "member"}, Default: "member"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WebhooksColumns holds the columns for the "webhooks" table.
	WebhooksColumns = []*schema.Column{
		{Name: "webhook_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "events", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "secret_encrypted", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhooksTable holds the schema information for the "webhooks" table.
	WebhooksTable = &schema.Table{
		Name:       "webhooks",
		Columns:    WebhooksColumns,
		PrimaryKey: []*schema.Column{WebhooksColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		CodeArtifactsTable,
		MeetingsTable,
		MessagesTable,
		ProviderKeysTable,
		TeamsTable,
		UsersTable,
		WebhooksTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = TeamsTable
	CodeArtifactsTable.ForeignKeys[0].RefTable = MeetingsTable
	MeetingsTable.ForeignKeys[0].RefTable = TeamsTable
	MessagesTable.ForeignKeys[0].RefTable = MeetingsTable
}
