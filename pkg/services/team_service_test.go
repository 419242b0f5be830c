package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/conclave-ai/conclave/test/database"
)

func TestTeamService_CreateTeam(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTeamService(client.Client)
	ctx := context.Background()

	t.Run("creates team with defaults", func(t *testing.T) {
		team, err := service.CreateTeam(ctx, CreateTeamRequest{
			Name:            "Nanobody Design Lab",
			Description:     "Antibody engineering",
			DefaultLanguage: "en",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, team.ID)
		assert.Equal(t, "Nanobody Design Lab", team.Name)
		assert.Equal(t, "en", team.DefaultLanguage)
		assert.False(t, team.IsPublic)
		assert.False(t, team.CreatedAt.IsZero())
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := service.CreateTeam(ctx, CreateTeamRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestTeamService_UpdateTeam(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTeamService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("applies partial update", func(t *testing.T) {
		name := "Renamed Lab"
		public := true
		updated, err := service.UpdateTeam(ctx, team.ID, UpdateTeamRequest{
			Name:     &name,
			IsPublic: &public,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Lab", updated.Name)
		assert.True(t, updated.IsPublic)
		// Untouched fields survive
		assert.Equal(t, team.Description, updated.Description)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		empty := ""
		_, err := service.UpdateTeam(ctx, team.ID, UpdateTeamRequest{Name: &empty})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown team", func(t *testing.T) {
		name := "x"
		_, err := service.UpdateTeam(ctx, "missing", UpdateTeamRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTeamService(client.Client)
	ctx := context.Background()

	t.Run("delete cascades to agents and meetings", func(t *testing.T) {
		team := createTestTeam(t, client)
		agentService := NewAgentService(client.Client)
		_, err := agentService.CreateAgent(ctx, CreateAgentRequest{
			TeamID: team.ID,
			Name:   "Dr. Smith",
		})
		require.NoError(t, err)
		meeting := createTestMeeting(t, client, team.ID, 3)

		require.NoError(t, service.DeleteTeam(ctx, team.ID))

		_, err = service.GetTeam(ctx, team.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		agents, err := agentService.ListAgents(ctx, team.ID)
		require.NoError(t, err)
		assert.Empty(t, agents)

		_, err = NewMeetingService(client.Client).GetMeeting(ctx, meeting.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown team", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteTeam(ctx, "missing"), ErrNotFound)
	})
}

func TestTeamService_ListTeams(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTeamService(client.Client)
	ctx := context.Background()

	createTestTeam(t, client)
	createTestTeam(t, client)

	teams, err := service.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}
