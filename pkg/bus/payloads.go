// Package bus provides real-time meeting event delivery to streaming
// subscribers. Topics are meeting ids. Two backends implement the Bus
// interface: an in-process fan-out and a Redis pub/sub bridge for
// multi-replica deployments. The backend is selected once at process
// start and is immutable afterwards.
package bus

import "time"

// Event types delivered to subscribers.
const (
	EventTypeAgentSpeaking   = "agent_speaking"
	EventTypeMessage         = "message"
	EventTypeRoundComplete   = "round_complete"
	EventTypeMeetingComplete = "meeting_complete"
	EventTypeError           = "error"
)

// Payload is implemented by every event payload struct.
type Payload interface {
	EventType() string
}

// BasePayload carries the fields common to all events.
type BasePayload struct {
	Type      string `json:"type"`
	MeetingID string `json:"meeting_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

func newBase(eventType, meetingID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		MeetingID: meetingID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// AgentSpeakingPayload is published immediately before an agent's LLM call.
type AgentSpeakingPayload struct {
	BasePayload
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
}

// EventType implements Payload.
func (AgentSpeakingPayload) EventType() string { return EventTypeAgentSpeaking }

// NewAgentSpeaking builds an agent_speaking payload.
func NewAgentSpeaking(meetingID, agentID, agentName string) AgentSpeakingPayload {
	return AgentSpeakingPayload{
		BasePayload: newBase(EventTypeAgentSpeaking, meetingID),
		AgentID:     agentID,
		AgentName:   agentName,
	}
}

// MessagePayload is published after a turn's message is persisted.
type MessagePayload struct {
	BasePayload
	ID          string `json:"id"`
	AgentID     string `json:"agent_id,omitempty"`
	AgentName   string `json:"agent_name,omitempty"`
	Role        string `json:"role"`
	Content     string `json:"content"`
	RoundNumber int    `json:"round_number"`
}

// EventType implements Payload.
func (MessagePayload) EventType() string { return EventTypeMessage }

// NewMessage builds a message payload.
func NewMessage(meetingID, messageID, agentID, agentName, role, content string, round int) MessagePayload {
	return MessagePayload{
		BasePayload: newBase(EventTypeMessage, meetingID),
		ID:          messageID,
		AgentID:     agentID,
		AgentName:   agentName,
		Role:        role,
		Content:     content,
		RoundNumber: round,
	}
}

// RoundCompletePayload is published after a round is fully committed.
type RoundCompletePayload struct {
	BasePayload
	Round       int `json:"round"`
	TotalRounds int `json:"total_rounds"`
}

// EventType implements Payload.
func (RoundCompletePayload) EventType() string { return EventTypeRoundComplete }

// NewRoundComplete builds a round_complete payload.
func NewRoundComplete(meetingID string, round, total int) RoundCompletePayload {
	return RoundCompletePayload{
		BasePayload: newBase(EventTypeRoundComplete, meetingID),
		Round:       round,
		TotalRounds: total,
	}
}

// MeetingCompletePayload is published exactly once on natural completion.
type MeetingCompletePayload struct {
	BasePayload
	Status string `json:"status"`
}

// EventType implements Payload.
func (MeetingCompletePayload) EventType() string { return EventTypeMeetingComplete }

// NewMeetingComplete builds a meeting_complete payload.
func NewMeetingComplete(meetingID, status string) MeetingCompletePayload {
	return MeetingCompletePayload{
		BasePayload: newBase(EventTypeMeetingComplete, meetingID),
		Status:      status,
	}
}

// ErrorPayload is published when a run fails.
type ErrorPayload struct {
	BasePayload
	Detail   string `json:"detail"`
	Provider string `json:"provider,omitempty"`
}

// EventType implements Payload.
func (ErrorPayload) EventType() string { return EventTypeError }

// NewError builds an error payload.
func NewError(meetingID, detail, provider string) ErrorPayload {
	return ErrorPayload{
		BasePayload: newBase(EventTypeError, meetingID),
		Detail:      detail,
		Provider:    provider,
	}
}
