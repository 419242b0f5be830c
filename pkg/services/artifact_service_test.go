package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/models"
	testdb "github.com/conclave-ai/conclave/test/database"
)

const analysisTurn = "Here is the analysis script.\n\n" +
	"filename: analyze.py\n" +
	"```python\n" +
	"import pandas as pd\n\n" +
	"def analyze(path):\n" +
	"    return pd.read_csv(path).describe()\n" +
	"```\n"

func seedCodeMeeting(t *testing.T, meetings *MeetingService, teamID string) models.Meeting {
	t.Helper()
	m, err := meetings.CreateMeeting(context.Background(), CreateMeetingRequest{
		TeamID:     teamID,
		Title:      "Implementation review",
		OutputType: models.OutputTypeCode,
	})
	require.NoError(t, err)
	return m
}

func TestArtifactService_ExtractArtifacts(t *testing.T) {
	client := testdb.NewTestClient(t)
	meetingService := NewMeetingService(client.Client)
	service := NewArtifactService(client.Client, meetingService)
	ctx := context.Background()
	team := createTestTeam(t, client)

	t.Run("extracts fenced code with requirements", func(t *testing.T) {
		m := seedCodeMeeting(t, meetingService, team.ID)
		_, err := meetingService.SaveAssistantMessage(ctx, models.Message{
			MeetingID:   m.ID,
			AgentName:   "Dr. Smith",
			Content:     analysisTurn,
			RoundNumber: 1,
		})
		require.NoError(t, err)

		artifacts, err := service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, artifacts, 2)

		byName := make(map[string]models.CodeArtifact)
		for _, a := range artifacts {
			byName[a.Filename] = a
		}
		script, ok := byName["analyze.py"]
		require.True(t, ok)
		assert.Equal(t, "python", script.Language)
		assert.Equal(t, "Dr. Smith", script.SourceAgent)
		assert.Equal(t, 1, script.Version)
		assert.Contains(t, script.Content, "def analyze")

		reqs, ok := byName["requirements.txt"]
		require.True(t, ok)
		assert.Equal(t, "pandas\n", reqs.Content)
	})

	t.Run("re-extraction is idempotent for an unchanged transcript", func(t *testing.T) {
		m := seedCodeMeeting(t, meetingService, team.ID)
		_, err := meetingService.SaveAssistantMessage(ctx, models.Message{
			MeetingID:   m.ID,
			AgentName:   "Dr. Smith",
			Content:     analysisTurn,
			RoundNumber: 1,
		})
		require.NoError(t, err)

		first, err := service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)
		second, err := service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)
		require.Equal(t, len(first), len(second))
		for i := range second {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.Equal(t, 1, second[i].Version)
		}
	})

	t.Run("changed content bumps the version", func(t *testing.T) {
		m := seedCodeMeeting(t, meetingService, team.ID)
		_, err := meetingService.SaveAssistantMessage(ctx, models.Message{
			MeetingID:   m.ID,
			AgentName:   "Dr. Smith",
			Content:     analysisTurn,
			RoundNumber: 1,
		})
		require.NoError(t, err)
		_, err = service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)

		// A later round revises the same file
		_, err = meetingService.SaveAssistantMessage(ctx, models.Message{
			MeetingID: m.ID,
			AgentName: "Dr. Chen",
			Content: "Revised version.\n\n" +
				"filename: analyze.py\n" +
				"```python\n" +
				"import pandas as pd\n\n" +
				"def analyze(path, cutoff):\n" +
				"    frame = pd.read_csv(path)\n" +
				"    return frame[frame.score > cutoff]\n" +
				"```\n",
			RoundNumber: 2,
		})
		require.NoError(t, err)

		artifacts, err := service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)
		for _, a := range artifacts {
			if a.Filename == "analyze.py" {
				assert.Equal(t, 2, a.Version)
				assert.Contains(t, a.Content, "cutoff")
			}
		}
	})

	t.Run("no code blocks yields nothing", func(t *testing.T) {
		m := seedCodeMeeting(t, meetingService, team.ID)
		_, err := meetingService.SaveAssistantMessage(ctx, models.Message{
			MeetingID:   m.ID,
			AgentName:   "Dr. Smith",
			Content:     "We should compare binding affinities before writing code.",
			RoundNumber: 1,
		})
		require.NoError(t, err)

		artifacts, err := service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, artifacts)
	})

	t.Run("manifest wins over loose fences", func(t *testing.T) {
		m := seedCodeMeeting(t, meetingService, team.ID)
		_, err := meetingService.SaveAssistantMessage(ctx, models.Message{
			MeetingID: m.ID,
			AgentName: "Dr. Park",
			Content: "```json\n" +
				`[{"path": "pipeline/run", "language": "python", "code": "print('run')"}]` +
				"\n```\n",
			RoundNumber: 1,
		})
		require.NoError(t, err)

		artifacts, err := service.ExtractArtifacts(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		// Extension added from the manifest language
		assert.Equal(t, "pipeline/run.py", artifacts[0].Filename)
		assert.Equal(t, "Dr. Park", artifacts[0].SourceAgent)
	})
}

func TestArtifactService_ListAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	meetingService := NewMeetingService(client.Client)
	service := NewArtifactService(client.Client, meetingService)
	ctx := context.Background()
	team := createTestTeam(t, client)

	m := seedCodeMeeting(t, meetingService, team.ID)
	_, err := meetingService.SaveAssistantMessage(ctx, models.Message{
		MeetingID:   m.ID,
		AgentName:   "Dr. Smith",
		Content:     analysisTurn,
		RoundNumber: 1,
	})
	require.NoError(t, err)
	extracted, err := service.ExtractArtifacts(ctx, m.ID)
	require.NoError(t, err)
	require.NotEmpty(t, extracted)

	t.Run("listed in filename order", func(t *testing.T) {
		artifacts, err := service.ListArtifacts(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, artifacts, 2)
		assert.Equal(t, "analyze.py", artifacts[0].Filename)
		assert.Equal(t, "requirements.txt", artifacts[1].Filename)
	})

	t.Run("get by id", func(t *testing.T) {
		a, err := service.GetArtifact(ctx, extracted[0].ID)
		require.NoError(t, err)
		assert.Equal(t, extracted[0].Filename, a.Filename)
	})

	t.Run("unknown artifact", func(t *testing.T) {
		_, err := service.GetArtifact(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
