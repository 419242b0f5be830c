package api

// RunStartedResponse is returned by POST /meetings/:id/run-background.
type RunStartedResponse struct {
	MeetingID string `json:"meeting_id"`
	Status    string `json:"status"`
	Rounds    int    `json:"rounds"`
}

// CancelResponse is returned by POST /meetings/:id/cancel.
type CancelResponse struct {
	MeetingID string `json:"meeting_id"`
	Cancelled bool   `json:"cancelled"`
}

// TokenResponse is returned by the auth endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// ProvidersResponse is returned by GET /providers.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
