package meeting

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/prompt"
)

// recordingClient echoes a numbered reply and records every request.
type recordingClient struct {
	requests []llm.ChatRequest
}

func (c *recordingClient) Provider() string { return "fake" }

func (c *recordingClient) Chat(_ context.Context, req llm.ChatRequest) (string, error) {
	c.requests = append(c.requests, req)
	return fmt.Sprintf("reply %d", len(c.requests)), nil
}

type staticResolver struct{ client llm.Client }

func (r staticResolver) ClientForModel(string) (llm.Client, error) { return r.client, nil }

// harness wires an engine to a recording client and collects callback
// observations.
type harness struct {
	engine  *Engine
	client  *recordingClient
	starts  []string
	done    []models.Message
	rounds  []int
	nextID  int
	stopped chan struct{}
}

func newHarness() *harness {
	h := &harness{client: &recordingClient{}, stopped: make(chan struct{})}
	h.engine = NewEngine(staticResolver{client: h.client}, 0)
	return h
}

func (h *harness) callbacks() Callbacks {
	return Callbacks{
		OnAgentStart: func(_ context.Context, a models.Agent) {
			h.starts = append(h.starts, a.Name)
		},
		OnAgentDone: func(_ context.Context, msg models.Message) (models.Message, error) {
			h.nextID++
			msg.ID = fmt.Sprintf("msg-%d", h.nextID)
			h.done = append(h.done, msg)
			return msg, nil
		},
		OnRoundComplete: func(_ context.Context, round int) ([]models.Message, error) {
			h.rounds = append(h.rounds, round)
			return nil, nil
		},
	}
}

func speakerOrder(messages []models.Message) []string {
	var names []string
	for _, m := range messages {
		names = append(names, m.AgentName)
	}
	return names
}

func teamInput(m models.Meeting, agents ...models.Agent) Input {
	return Input{
		Meeting:    m,
		Agents:     agents,
		StartRound: 1,
		EndRound:   m.MaxRounds,
		MaxRounds:  m.MaxRounds,
	}
}

func TestRun_SingleRoundCodeMeeting(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m1", Agenda: "Build a parser",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeCode,
		MaxRounds:   1,
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Lead", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "Engineer", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	assert.Equal(t, []string{"Lead", "Engineer"}, speakerOrder(msgs))
	assert.Equal(t, []string{"Lead", "Engineer"}, h.starts)
	assert.Equal(t, []int{1}, h.rounds)

	// Every persisted message is an assistant turn of round 1.
	for _, msg := range h.done {
		assert.Equal(t, models.RoleAssistant, msg.Role)
		assert.Equal(t, 1, msg.RoundNumber)
		assert.NotEmpty(t, msg.ID)
	}
}

func TestRun_TwoRoundStructuredMeetingWithCritic(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m2", Agenda: "Evaluate the hypothesis",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   2,
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "Dr. Chen", Title: "Scientist", Model: "gpt-4o"},
		models.Agent{ID: "a3", Name: "Dr. Reviewer", Title: "Scientific Critic", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	// Round 1: PI, Scientist, Critic. Round 2 (final): PI only.
	assert.Equal(t, []string{"Dr. Smith", "Dr. Chen", "Dr. Reviewer", "Dr. Smith"}, speakerOrder(msgs))
	assert.Equal(t, []int{1, 2}, h.rounds)
	assert.Len(t, msgs, 4)
}

func TestRun_IndividualMeeting(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m3", Agenda: "Design the assay",
		MeetingType:       models.MeetingTypeIndividual,
		OutputType:        models.OutputTypeReport,
		MaxRounds:         3,
		IndividualAgentID: "ax",
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "ax", Name: "Dr. X", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Dr. X", "Scientific Critic",
		"Dr. X", "Scientific Critic",
		"Dr. X",
	}, speakerOrder(msgs))
	assert.Len(t, msgs, 5)
}

func TestRun_MergeMeetingInjectsSourceSummaries(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m4", Agenda: "Merge the designs",
		MeetingType: models.MeetingTypeMerge,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   1,
	}
	in := teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "Dr. Chen", Title: "Scientist", Model: "gpt-4o"},
	)
	in.ContextSummaries = []models.ContextSummary{
		{Title: "Source One", Summary: "A"},
		{Title: "Source Two", Summary: "B"},
	}

	msgs, err := h.engine.Run(context.Background(), in, h.callbacks())
	require.NoError(t, err)
	// Final (only) round: lead alone.
	assert.Equal(t, []string{"Dr. Smith"}, speakerOrder(msgs))

	// The lead's request carries both summaries with their markers.
	require.Len(t, h.client.requests, 1)
	joined := joinedContents(h.client.requests[0])
	assert.Contains(t, joined, "[begin summary 1]")
	assert.Contains(t, joined, "A")
	assert.Contains(t, joined, "[end summary 1]")
	assert.Contains(t, joined, "[begin summary 2]")
	assert.Contains(t, joined, "B")
	assert.Contains(t, joined, "[end summary 2]")
}

func TestRun_LegacyRoundRobinWhenAgendaEmpty(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID:          "m5",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   2,
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "A", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "B", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A", "B"}, speakerOrder(msgs))
}

func TestRun_LeadOnlyTeam(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m6", Agenda: "Solo planning",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   2,
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Smith", "Dr. Smith"}, speakerOrder(msgs))
}

func TestRun_CriticOnlyTeamActsAsLead(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m7", Agenda: "Review everything",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   1,
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Rev", Title: "Scientific Critic", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	assert.Equal(t, []string{"Rev"}, speakerOrder(msgs))
}

func TestRun_ParticipantRestriction(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m8", Agenda: "Subset discussion",
		MeetingType:         models.MeetingTypeTeam,
		OutputType:          models.OutputTypeReport,
		MaxRounds:           1,
		ParticipantAgentIDs: []string{"a1", "a3"},
	}
	msgs, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "Excluded", Model: "gpt-4o"},
		models.Agent{ID: "a3", Name: "Dr. Chen", Model: "gpt-4o"},
	), h.callbacks())

	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Smith", "Dr. Chen"}, speakerOrder(msgs))
}

func TestRun_NoAgents(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m9", Agenda: "Empty",
		MeetingType: models.MeetingTypeTeam,
		MaxRounds:   1,
	}
	_, err := h.engine.Run(context.Background(), teamInput(m), h.callbacks())
	require.ErrorIs(t, err, ErrNoAgents)
}

func TestRun_HumanFeedbackPrefixedInPrompts(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m10", Agenda: "Iterate on the design",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   1,
	}
	in := teamInput(m, models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"})
	in.History = []models.Message{
		{MeetingID: "m10", Role: models.RoleUser, Content: "Please focus on latency."},
	}

	_, err := h.engine.Run(context.Background(), in, h.callbacks())
	require.NoError(t, err)

	require.Len(t, h.client.requests, 1)
	joined := joinedContents(h.client.requests[0])
	assert.Contains(t, joined, prompt.HumanFeedbackPrefix+"Please focus on latency.")
}

func TestRun_FeedbackDuringRunReachesNextRound(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m16", Agenda: "Select candidates",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   2,
	}
	in := teamInput(m, models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"})

	// The round-1 commit hands back feedback persisted while the round
	// ran, the way the runner does.
	cb := h.callbacks()
	inner := cb.OnRoundComplete
	cb.OnRoundComplete = func(ctx context.Context, round int) ([]models.Message, error) {
		if _, err := inner(ctx, round); err != nil {
			return nil, err
		}
		if round == 1 {
			return []models.Message{{
				MeetingID: "m16", Role: models.RoleUser,
				Content: "Drop the second candidate.", RoundNumber: 1,
			}}, nil
		}
		return nil, nil
	}

	_, err := h.engine.Run(context.Background(), in, cb)
	require.NoError(t, err)

	require.Len(t, h.client.requests, 2)
	assert.NotContains(t, joinedContents(h.client.requests[0]), prompt.HumanFeedbackPrefix)
	assert.Contains(t, joinedContents(h.client.requests[1]),
		prompt.HumanFeedbackPrefix+"Drop the second candidate.")
}

func TestRun_TranscriptVisibleToLaterSpeakers(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m11", Agenda: "Build a parser",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   1,
	}
	_, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "Dr. Chen", Model: "gpt-4o"},
	), h.callbacks())
	require.NoError(t, err)

	// The second speaker's request contains the first speaker's reply
	// in "[speaker]: content" form.
	require.Len(t, h.client.requests, 2)
	assert.Contains(t, joinedContents(h.client.requests[1]), "[Dr. Smith]: reply 1")
}

func TestRun_StopAtTurnBoundary(t *testing.T) {
	h := newHarness()
	stop := make(chan struct{})
	m := models.Meeting{
		ID: "m12", Agenda: "Long discussion",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   3,
	}
	in := teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
		models.Agent{ID: "a2", Name: "Dr. Chen", Model: "gpt-4o"},
	)
	in.Stop = stop

	// Signal stop after the first persisted turn.
	cb := h.callbacks()
	inner := cb.OnAgentDone
	cb.OnAgentDone = func(ctx context.Context, msg models.Message) (models.Message, error) {
		close(stop)
		return inner(ctx, msg)
	}

	msgs, err := h.engine.Run(context.Background(), in, cb)
	require.ErrorIs(t, err, ErrStopped)
	// The in-flight turn completed and was persisted; nothing after it.
	assert.Equal(t, []string{"Dr. Smith"}, speakerOrder(msgs))
	assert.Len(t, h.done, 1)
}

func TestRun_PhaseTemperatures(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m13", Agenda: "Phased work",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   3,
	}
	_, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"},
	), h.callbacks())
	require.NoError(t, err)

	require.Len(t, h.client.requests, 3)
	assert.Equal(t, 0.8, h.client.requests[0].Temperature)
	assert.Equal(t, 0.4, h.client.requests[1].Temperature)
	assert.Equal(t, 0.2, h.client.requests[2].Temperature)
}

func TestRun_AgentTemperatureOverride(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m14", Agenda: "Override check",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   1,
	}
	_, err := h.engine.Run(context.Background(), teamInput(m,
		models.Agent{
			ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o",
			ModelParams: map[string]any{"temperature": 0.1},
		},
	), h.callbacks())
	require.NoError(t, err)

	require.Len(t, h.client.requests, 1)
	assert.Equal(t, 0.1, h.client.requests[0].Temperature)
}

func TestRun_ResumeSkipsOpeningInjection(t *testing.T) {
	h := newHarness()
	m := models.Meeting{
		ID: "m15", Agenda: "Resume work",
		MeetingType: models.MeetingTypeTeam,
		OutputType:  models.OutputTypeReport,
		MaxRounds:   3,
	}
	in := teamInput(m, models.Agent{ID: "a1", Name: "Dr. Smith", Title: "PI", Model: "gpt-4o"})
	in.StartRound = 3
	in.EndRound = 3

	msgs, err := h.engine.Run(context.Background(), in, h.callbacks())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, 3, msgs[0].RoundNumber)
	// No meeting-start context on resumed runs.
	assert.NotContains(t, joinedContents(h.client.requests[0]), "start of a team meeting")
}

func joinedContents(req llm.ChatRequest) string {
	var sb strings.Builder
	for _, m := range req.Messages {
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
