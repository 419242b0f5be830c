package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/database"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/secrets"
)

// testEncryptor returns an encryptor with a fixed test secret.
func testEncryptor(t *testing.T) *secrets.Encryptor {
	t.Helper()
	enc, err := secrets.NewEncryptor("integration-test-secret")
	require.NoError(t, err)
	return enc
}

// createTestTeam seeds a team and returns it.
func createTestTeam(t *testing.T, client *database.Client) models.Team {
	t.Helper()
	team, err := NewTeamService(client.Client).CreateTeam(context.Background(), CreateTeamRequest{
		Name:            "Nanobody Design Lab",
		Description:     "Cross-disciplinary antibody engineering team",
		DefaultLanguage: "en",
	})
	require.NoError(t, err)
	return team
}

// createTestMeeting seeds a pending team meeting with the given round budget.
func createTestMeeting(t *testing.T, client *database.Client, teamID string, maxRounds int) models.Meeting {
	t.Helper()
	m, err := NewMeetingService(client.Client).CreateMeeting(context.Background(), CreateMeetingRequest{
		TeamID:    teamID,
		Title:     "Candidate selection",
		Agenda:    "Select nanobody candidates for SARS-CoV-2 KP.3",
		MaxRounds: maxRounds,
	})
	require.NoError(t, err)
	return m
}
