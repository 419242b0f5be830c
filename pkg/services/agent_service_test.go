package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/models"
	testdb "github.com/conclave-ai/conclave/test/database"
)

func TestAgentService_CreateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("creates agent with derived system prompt", func(t *testing.T) {
		agent, err := service.CreateAgent(ctx, CreateAgentRequest{
			TeamID:    team.ID,
			Name:      "Dr. Smith",
			Title:     "Principal Investigator",
			Expertise: "structural biology",
			Goal:      "design potent nanobody candidates",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, agent.ID)
		assert.Contains(t, agent.SystemPrompt, "You are Dr. Smith, Principal Investigator")
		assert.Contains(t, agent.SystemPrompt, "structural biology")
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  CreateAgentRequest
		}{
			{"missing team_id", CreateAgentRequest{Name: "Dr. Smith"}},
			{"missing name", CreateAgentRequest{TeamID: team.ID}},
			{"mirror without primary", CreateAgentRequest{TeamID: team.ID, Name: "Mirror", IsMirror: true}},
			{"unknown team", CreateAgentRequest{TeamID: "missing", Name: "Dr. Smith"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateAgent(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestAgentService_UpdateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("persona change regenerates system prompt", func(t *testing.T) {
		agent, err := service.CreateAgent(ctx, CreateAgentRequest{
			TeamID:    team.ID,
			Name:      "Dr. Chen",
			Expertise: "immunology",
		})
		require.NoError(t, err)

		expertise := "computational immunology"
		updated, err := service.UpdateAgent(ctx, agent.ID, UpdateAgentRequest{
			Expertise: &expertise,
		})
		require.NoError(t, err)
		assert.Equal(t, "computational immunology", updated.Expertise)
		assert.Contains(t, updated.SystemPrompt, "computational immunology")
		assert.NotContains(t, updated.SystemPrompt, "Your expertise: immunology.")
	})

	t.Run("model change keeps system prompt", func(t *testing.T) {
		agent, err := service.CreateAgent(ctx, CreateAgentRequest{
			TeamID: team.ID,
			Name:   "Dr. Park",
			Goal:   "challenge assumptions",
		})
		require.NoError(t, err)

		model := "claude-sonnet-4-20250514"
		updated, err := service.UpdateAgent(ctx, agent.ID, UpdateAgentRequest{Model: &model})
		require.NoError(t, err)
		assert.Equal(t, model, updated.Model)
		assert.Equal(t, agent.SystemPrompt, updated.SystemPrompt)
	})

	t.Run("unknown agent", func(t *testing.T) {
		name := "x"
		_, err := service.UpdateAgent(ctx, "missing", UpdateAgentRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_DeleteAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("mirror agents survive primary deletion", func(t *testing.T) {
		primary, err := service.CreateAgent(ctx, CreateAgentRequest{
			TeamID: team.ID,
			Name:   "Dr. Smith",
		})
		require.NoError(t, err)
		mirror, err := service.CreateAgent(ctx, CreateAgentRequest{
			TeamID:         team.ID,
			Name:           "Dr. Smith (mirror)",
			IsMirror:       true,
			PrimaryAgentID: primary.ID,
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteAgent(ctx, primary.ID))

		survived, err := service.GetAgent(ctx, mirror.ID)
		require.NoError(t, err)
		assert.Empty(t, survived.PrimaryAgentID)
	})

	t.Run("authored messages lose the reference but survive", func(t *testing.T) {
		agent, err := service.CreateAgent(ctx, CreateAgentRequest{
			TeamID: team.ID,
			Name:   "Dr. Chen",
		})
		require.NoError(t, err)

		meetings := NewMeetingService(client.Client)
		m := createTestMeeting(t, client, team.ID, 3)
		saved, err := meetings.SaveAssistantMessage(ctx, models.Message{
			MeetingID:   m.ID,
			Role:        models.RoleAssistant,
			AgentID:     agent.ID,
			AgentName:   agent.Name,
			Content:     "The KP.3 candidates cluster into two families.",
			RoundNumber: 1,
		})
		require.NoError(t, err)
		require.Equal(t, agent.ID, saved.AgentID)

		require.NoError(t, service.DeleteAgent(ctx, agent.ID))

		messages, err := meetings.ListMessages(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Empty(t, messages[0].AgentID)
		assert.Equal(t, "Dr. Chen", messages[0].AgentName)
		assert.Equal(t, saved.Content, messages[0].Content)
	})

	t.Run("unknown agent", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteAgent(ctx, "missing"), ErrNotFound)
	})
}

func TestAgentService_ListAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	names := []string{"Dr. Smith", "Dr. Chen", "Dr. Park"}
	for _, name := range names {
		_, err := service.CreateAgent(ctx, CreateAgentRequest{TeamID: team.ID, Name: name})
		require.NoError(t, err)
	}

	agents, err := service.ListAgents(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, agents, 3)
	// Creation order is the speaking order
	for i, a := range agents {
		assert.Equal(t, names[i], a.Name)
	}
}
