package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/meeting"
	"github.com/conclave-ai/conclave/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation error", services.NewValidationError("name", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", services.ErrNotFound), http.StatusNotFound},
		{"run conflict", services.ErrConflict, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"quota exhausted", llm.ErrQuotaExhausted, http.StatusForbidden},
		{"provider auth", llm.ErrAuth, http.StatusUnauthorized},
		{"no agents", meeting.ErrNoAgents, http.StatusBadRequest},
		{"unknown model", llm.ErrUnknownModel, http.StatusBadRequest},
		{"rate limited upstream", llm.ErrRateLimited, http.StatusBadGateway},
		{"server error upstream", llm.ErrServerError, http.StatusBadGateway},
		{"empty response", llm.ErrEmptyResponse, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestMapServiceErrorQuotaMessage(t *testing.T) {
	he := mapServiceError(fmt.Errorf("turn failed for agent %q: %w", "Dr. Smith", llm.ErrQuotaExhausted))
	assert.Equal(t, http.StatusForbidden, he.Code)
	assert.Equal(t, llm.QuotaExhaustedMessage, he.Message)
}
