package api

import "github.com/conclave-ai/conclave/pkg/services"

// createAgentRequest adds the owning team to the service input.
type createAgentRequest struct {
	TeamID string `json:"team_id"`
	services.CreateAgentRequest
}

// createMeetingRequest adds the owning team to the service input.
type createMeetingRequest struct {
	TeamID string `json:"team_id"`
	services.CreateMeetingRequest
}

// runRequest is the body of the run endpoints.
type runRequest struct {
	Rounds int    `json:"rounds"`
	Topic  string `json:"topic,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// userMessageRequest is the body of POST /meetings/:id/messages.
type userMessageRequest struct {
	Content string `json:"content"`
}

// credentialsRequest is the body of the register and login endpoints.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// refreshRequest is the body of POST /auth/refresh.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// providerKeyRequest is the body of PUT /providers/:provider/key.
type providerKeyRequest struct {
	APIKey string `json:"api_key"`
}
