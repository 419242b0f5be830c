package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/models"
	testdb "github.com/conclave-ai/conclave/test/database"
)

func TestMeetingService_CreateMeeting(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMeetingService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("creates pending meeting with defaults", func(t *testing.T) {
		m, err := service.CreateMeeting(ctx, CreateMeetingRequest{
			TeamID: team.ID,
			Title:  "Kickoff",
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, m.Status)
		assert.Equal(t, models.DefaultRounds, m.MaxRounds)
		assert.Equal(t, 0, m.CurrentRound)
		assert.Equal(t, models.MeetingTypeTeam, m.MeetingType)
		assert.Equal(t, models.OutputTypeReport, m.OutputType)
		assert.Equal(t, models.AgendaStrategyManual, m.AgendaStrategy)
	})

	t.Run("validates input", func(t *testing.T) {
		tests := []struct {
			name string
			req  CreateMeetingRequest
		}{
			{"missing team_id", CreateMeetingRequest{Title: "x"}},
			{"missing title", CreateMeetingRequest{TeamID: team.ID}},
			{"rounds above limit", CreateMeetingRequest{TeamID: team.ID, Title: "x", MaxRounds: models.MaxRounds + 1}},
			{"negative rounds", CreateMeetingRequest{TeamID: team.ID, Title: "x", MaxRounds: -1}},
			{"bad meeting type", CreateMeetingRequest{TeamID: team.ID, Title: "x", MeetingType: "panel"}},
			{"bad output type", CreateMeetingRequest{TeamID: team.ID, Title: "x", OutputType: "video"}},
			{"individual without agent", CreateMeetingRequest{TeamID: team.ID, Title: "x", MeetingType: models.MeetingTypeIndividual}},
			{"merge without sources", CreateMeetingRequest{TeamID: team.ID, Title: "x", MeetingType: models.MeetingTypeMerge}},
			{"unknown team", CreateMeetingRequest{TeamID: "missing", Title: "x"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateMeeting(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("merge meeting keeps source ids", func(t *testing.T) {
		src := createTestMeeting(t, client, team.ID, 2)
		m, err := service.CreateMeeting(ctx, CreateMeetingRequest{
			TeamID:           team.ID,
			Title:            "Merge",
			MeetingType:      models.MeetingTypeMerge,
			SourceMeetingIDs: []string{src.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{src.ID}, m.SourceMeetingIDs)
	})
}

func TestMeetingService_RunStateMachine(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMeetingService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("pending to running to pending between rounds", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 2)

		running, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRunning, running.Status)

		after, err := service.CompleteRound(ctx, m.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, after.CurrentRound)
		assert.Equal(t, models.StatusPending, after.Status)
		assert.Nil(t, after.CompletedAt)
	})

	t.Run("final round completes the meeting", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 1)

		_, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)

		done, err := service.CompleteRound(ctx, m.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, done.Status)
		require.NotNil(t, done.CompletedAt)
	})

	t.Run("running meeting refuses a second start", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 2)
		_, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)

		_, err = service.MarkRunning(ctx, m.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("completed meeting refuses restart", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 1)
		_, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)
		_, err = service.CompleteRound(ctx, m.ID, 1)
		require.NoError(t, err)

		_, err = service.MarkRunning(ctx, m.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("failed meeting can restart and clears the error", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 2)
		require.NoError(t, service.MarkFailed(ctx, m.ID, "provider authentication failed"))

		failed, err := service.GetMeeting(ctx, m.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, failed.Status)
		assert.Equal(t, "provider authentication failed", failed.ErrorMessage)

		restarted, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRunning, restarted.Status)
		assert.Empty(t, restarted.ErrorMessage)
	})

	t.Run("cancellation returns to pending without losing progress", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 3)
		_, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)
		_, err = service.CompleteRound(ctx, m.ID, 1)
		require.NoError(t, err)
		_, err = service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)

		require.NoError(t, service.MarkPending(ctx, m.ID))
		after, err := service.GetMeeting(ctx, m.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, after.Status)
		assert.Equal(t, 1, after.CurrentRound)
	})

	t.Run("exhausted rounds refuse another start", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 1)
		_, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)
		_, err = service.CompleteRound(ctx, m.ID, 1)
		require.NoError(t, err)

		_, err = service.MarkRunning(ctx, m.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMeetingService_Messages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMeetingService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("transcript ordered by round then time", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 3)

		for round := 1; round <= 2; round++ {
			for _, name := range []string{"Dr. Smith", "Dr. Chen"} {
				_, err := service.SaveAssistantMessage(ctx, models.Message{
					MeetingID:   m.ID,
					AgentName:   name,
					Content:     "contribution",
					RoundNumber: round,
				})
				require.NoError(t, err)
			}
		}

		messages, err := service.ListMessages(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, messages, 4)
		assert.Equal(t, 1, messages[0].RoundNumber)
		assert.Equal(t, "Dr. Smith", messages[0].AgentName)
		assert.Equal(t, 2, messages[3].RoundNumber)
		assert.Equal(t, "Dr. Chen", messages[3].AgentName)
	})

	t.Run("user message lands at the current round", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 3)
		_, err := service.MarkRunning(ctx, m.ID)
		require.NoError(t, err)
		_, err = service.CompleteRound(ctx, m.ID, 1)
		require.NoError(t, err)

		saved, err := service.AddUserMessage(ctx, m.ID, "Please consider stability data")
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, saved.Role)
		assert.Equal(t, 1, saved.RoundNumber)
	})

	t.Run("user message requires content", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 3)
		_, err := service.AddUserMessage(ctx, m.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("get meeting with transcript", func(t *testing.T) {
		m := createTestMeeting(t, client, team.ID, 3)
		_, err := service.SaveAssistantMessage(ctx, models.Message{
			MeetingID:   m.ID,
			AgentName:   "Dr. Smith",
			Content:     "opening remarks",
			RoundNumber: 1,
		})
		require.NoError(t, err)

		full, err := service.GetMeeting(ctx, m.ID, true)
		require.NoError(t, err)
		require.Len(t, full.Messages, 1)
		assert.Equal(t, "opening remarks", full.Messages[0].Content)
	})
}

func TestMeetingService_Status(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMeetingService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)
	m := createTestMeeting(t, client, team.ID, 3)

	_, err := service.SaveAssistantMessage(ctx, models.Message{
		MeetingID:   m.ID,
		AgentName:   "Dr. Smith",
		Content:     "x",
		RoundNumber: 1,
	})
	require.NoError(t, err)

	status, err := service.Status(ctx, m.ID, true)
	require.NoError(t, err)
	assert.Equal(t, m.ID, status.MeetingID)
	assert.Equal(t, 1, status.MessageCount)
	assert.Equal(t, 3, status.MaxRounds)
	assert.True(t, status.BackgroundRunning)
}

func TestMeetingService_ResetStaleRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMeetingService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	stale := createTestMeeting(t, client, team.ID, 3)
	live := createTestMeeting(t, client, team.ID, 3)
	for _, id := range []string{stale.ID, live.ID} {
		_, err := service.MarkRunning(ctx, id)
		require.NoError(t, err)
	}

	recovered, err := service.ResetStaleRunning(ctx, func(meetingID string) bool {
		return meetingID == live.ID
	})
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	after, err := service.GetMeeting(ctx, stale.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, after.Status)
	assert.Equal(t, "run interrupted by process restart", after.ErrorMessage)

	untouched, err := service.GetMeeting(ctx, live.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, untouched.Status)
}

func TestMeetingService_ContextTranscripts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMeetingService(client.Client)
	ctx := context.Background()
	team := createTestTeam(t, client)

	source := createTestMeeting(t, client, team.ID, 2)
	_, err := service.SaveAssistantMessage(ctx, models.Message{
		MeetingID:   source.ID,
		AgentName:   "Dr. Smith",
		Content:     "The lead candidate is Nb-21.",
		RoundNumber: 1,
	})
	require.NoError(t, err)
	_, err = service.AddUserMessage(ctx, source.ID, "noted")
	require.NoError(t, err)

	transcripts, err := service.ContextTranscripts(ctx, []string{source.ID, "missing"})
	require.NoError(t, err)
	// Unknown meetings are skipped, user messages excluded
	require.Len(t, transcripts, 1)
	assert.Equal(t, source.Title, transcripts[0].Title)
	assert.Equal(t, []string{"The lead candidate is Nb-21."}, transcripts[0].AssistantMessages)
}
