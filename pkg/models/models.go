// Package models defines the domain types shared by the engine, the
// services layer, and the HTTP surface. The services layer maps
// persistence entities into these records so the engine never depends
// on the storage schema.
package models

import "time"

// Output types.
const (
	OutputTypeCode   = "code"
	OutputTypeReport = "report"
	OutputTypePaper  = "paper"
)

// Meeting types.
const (
	MeetingTypeTeam       = "team"
	MeetingTypeIndividual = "individual"
	MeetingTypeMerge      = "merge"
)

// Meeting statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Agenda strategies.
const (
	AgendaStrategyManual      = "manual"
	AgendaStrategyAIAuto      = "ai_auto"
	AgendaStrategyAgentVoting = "agent_voting"
	AgendaStrategyChain       = "chain"
)

// Round bounds.
const (
	MinRounds     = 1
	MaxRounds     = 20
	DefaultRounds = 3
)

// Team is a container for agents and meetings.
type Team struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DefaultLanguage string    `json:"default_language,omitempty"`
	IsPublic        bool      `json:"is_public"`
	OwnerID         string    `json:"owner_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Agent is one persona on a team.
type Agent struct {
	ID             string         `json:"id"`
	TeamID         string         `json:"team_id"`
	Name           string         `json:"name"`
	Title          string         `json:"title,omitempty"`
	Expertise      string         `json:"expertise,omitempty"`
	Goal           string         `json:"goal,omitempty"`
	Role           string         `json:"role,omitempty"`
	Model          string         `json:"model"`
	ModelParams    map[string]any `json:"model_params,omitempty"`
	SystemPrompt   string         `json:"system_prompt,omitempty"`
	IsMirror       bool           `json:"is_mirror"`
	PrimaryAgentID string         `json:"primary_agent_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Meeting is a bounded multi-round conversation about an agenda.
type Meeting struct {
	ID                  string     `json:"id"`
	TeamID              string     `json:"team_id"`
	Title               string     `json:"title"`
	Agenda              string     `json:"agenda,omitempty"`
	AgendaQuestions     []string   `json:"agenda_questions,omitempty"`
	AgendaRules         []string   `json:"agenda_rules,omitempty"`
	OutputType          string     `json:"output_type"`
	MeetingType         string     `json:"meeting_type"`
	MaxRounds           int        `json:"max_rounds"`
	CurrentRound        int        `json:"current_round"`
	Status              string     `json:"status"`
	ParticipantAgentIDs []string   `json:"participant_agent_ids,omitempty"`
	IndividualAgentID   string     `json:"individual_agent_id,omitempty"`
	SourceMeetingIDs    []string   `json:"source_meeting_ids,omitempty"`
	ContextMeetingIDs   []string   `json:"context_meeting_ids,omitempty"`
	ParentMeetingID     string     `json:"parent_meeting_id,omitempty"`
	RewriteFeedback     string     `json:"rewrite_feedback,omitempty"`
	AgendaStrategy      string     `json:"agenda_strategy"`
	RoundPlan           []string   `json:"round_plan,omitempty"`
	PreferredLanguage   string     `json:"preferred_language,omitempty"`
	ErrorMessage        string     `json:"error_message,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	Messages            []Message  `json:"messages,omitempty"`
}

// Message is one transcript entry of a meeting. AgentID is empty for
// user-injected feedback and system entries.
type Message struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	Role        string    `json:"role"`
	AgentID     string    `json:"agent_id,omitempty"`
	AgentName   string    `json:"agent_name,omitempty"`
	Content     string    `json:"content"`
	RoundNumber int       `json:"round_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// CodeArtifact is one extracted file of a completed meeting.
type CodeArtifact struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	Filename    string    `json:"filename"`
	Language    string    `json:"language,omitempty"`
	Content     string    `json:"content"`
	Description string    `json:"description,omitempty"`
	Version     int       `json:"version"`
	SourceAgent string    `json:"source_agent,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Webhook is one registered event delivery target.
type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an authenticated principal when auth is enabled.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RunOptions parameterizes a meeting run.
type RunOptions struct {
	Rounds int    `json:"rounds"`
	Topic  string `json:"topic,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// MeetingStatus is the polling snapshot of a run.
type MeetingStatus struct {
	MeetingID         string `json:"meeting_id"`
	Status            string `json:"status"`
	CurrentRound      int    `json:"current_round"`
	MaxRounds         int    `json:"max_rounds"`
	MessageCount      int    `json:"message_count"`
	BackgroundRunning bool   `json:"background_running"`
}

// ContextSummary is one prior-meeting excerpt selected by the context
// extractor and injected at round 1.
type ContextSummary struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}
