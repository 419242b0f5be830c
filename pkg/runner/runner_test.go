package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/bus"
	"github.com/conclave-ai/conclave/pkg/extract"
	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/meeting"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/prompt"
	"github.com/conclave-ai/conclave/pkg/services"
	"github.com/conclave-ai/conclave/pkg/webhook"
)

type fakeLLM struct {
	mu       sync.Mutex
	calls    int
	requests []llm.ChatRequest
	block    chan struct{}
	err      error
}

func (f *fakeLLM) Provider() string { return "fake" }

func (f *fakeLLM) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("reply %d", n), nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeLLM) recorded() []llm.ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.ChatRequest(nil), f.requests...)
}

type fakeResolver struct{ client llm.Client }

func (f *fakeResolver) ClientForModel(model string) (llm.Client, error) { return f.client, nil }

// fakeStore mirrors the store's state machine in memory.
type fakeStore struct {
	mu          sync.Mutex
	meeting     models.Meeting
	messages    []models.Message
	transcripts []extract.Transcript
	nextID      int
	pendings    int
	// feedbackAt simulates a user message persisted by another
	// connection while the given round ran.
	feedbackAt func(round int) *models.Message
}

func (s *fakeStore) GetMeeting(ctx context.Context, meetingID string, withMessages bool) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if meetingID != s.meeting.ID {
		return models.Meeting{}, services.ErrNotFound
	}
	m := s.meeting
	if withMessages {
		m.Messages = append([]models.Message(nil), s.messages...)
	}
	return m, nil
}

func (s *fakeStore) ListMessages(ctx context.Context, meetingID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...), nil
}

func (s *fakeStore) SaveAssistantMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	msg.ID = fmt.Sprintf("msg-%d", s.nextID)
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *fakeStore) MarkRunning(ctx context.Context, meetingID string) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.meeting.Status == models.StatusCompleted:
		return models.Meeting{}, services.NewValidationError("status", "meeting is already completed")
	case s.meeting.CurrentRound >= s.meeting.MaxRounds:
		return models.Meeting{}, services.NewValidationError("max_rounds", "no rounds remaining")
	case s.meeting.Status == models.StatusRunning:
		return models.Meeting{}, services.ErrConflict
	}
	s.meeting.Status = models.StatusRunning
	s.meeting.ErrorMessage = ""
	return s.meeting, nil
}

func (s *fakeStore) CompleteRound(ctx context.Context, meetingID string, round int) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedbackAt != nil {
		if msg := s.feedbackAt(round); msg != nil {
			s.nextID++
			msg.ID = fmt.Sprintf("msg-%d", s.nextID)
			s.messages = append(s.messages, *msg)
		}
	}
	s.meeting.CurrentRound = round
	if round >= s.meeting.MaxRounds {
		s.meeting.Status = models.StatusCompleted
		now := time.Now()
		s.meeting.CompletedAt = &now
	} else {
		s.meeting.Status = models.StatusPending
	}
	return s.meeting, nil
}

func (s *fakeStore) MarkPending(ctx context.Context, meetingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meeting.Status = models.StatusPending
	s.pendings++
	return nil
}

func (s *fakeStore) MarkFailed(ctx context.Context, meetingID, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meeting.Status = models.StatusFailed
	s.meeting.ErrorMessage = errorMessage
	return nil
}

func (s *fakeStore) ResetStaleRunning(ctx context.Context, isLive func(string) bool) (int, error) {
	s.mu.Lock()
	stale := s.meeting.Status == models.StatusRunning
	id := s.meeting.ID
	s.mu.Unlock()
	if !stale || (isLive != nil && isLive(id)) {
		return 0, nil
	}
	if err := s.MarkFailed(ctx, id, "run interrupted by process restart"); err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *fakeStore) ContextTranscripts(ctx context.Context, meetingIDs []string) ([]extract.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcripts, nil
}

func (s *fakeStore) status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meeting.Status
}

func (s *fakeStore) errorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meeting.ErrorMessage
}

func (s *fakeStore) messageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

type fakeAgents struct{ agents []models.Agent }

func (f *fakeAgents) ListAgents(ctx context.Context, teamID string) ([]models.Agent, error) {
	return f.agents, nil
}

type fakeTeams struct{ team models.Team }

func (f *fakeTeams) GetTeam(ctx context.Context, teamID string) (models.Team, error) {
	return f.team, nil
}

type fakeExtractor struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeExtractor) ExtractBestEffort(ctx context.Context, meetingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, meetingID)
}

func (f *fakeExtractor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeNotifier struct{ targets []webhook.Target }

func (f *fakeNotifier) ActiveTargets(ctx context.Context) ([]webhook.Target, error) {
	return f.targets, nil
}

type harness struct {
	runner    *Runner
	store     *fakeStore
	extractor *fakeExtractor
	bus       *bus.MemoryBus
	client    *fakeLLM
}

func newHarness(t *testing.T, m models.Meeting, agents []models.Agent, client *fakeLLM) *harness {
	t.Helper()
	store := &fakeStore{meeting: m}
	extractor := &fakeExtractor{}
	memBus := bus.NewMemoryBus(0)
	t.Cleanup(func() { _ = memBus.Close(context.Background()) })

	engine := meeting.NewEngine(&fakeResolver{client: client}, time.Second)
	r := New(engine, store, &fakeAgents{agents: agents}, &fakeTeams{team: models.Team{ID: m.TeamID}},
		extractor, nil, memBus, Config{MeetingTimeout: 5 * time.Second, ShutdownTimeout: 2 * time.Second})
	return &harness{runner: r, store: store, extractor: extractor, bus: memBus, client: client}
}

func teamMeeting(rounds int) models.Meeting {
	return models.Meeting{
		ID:          "meet-1",
		TeamID:      "team-1",
		Title:       "Antibody design kickoff",
		Agenda:      "Design nanobody candidates for the new variant",
		OutputType:  models.OutputTypeReport,
		MeetingType: models.MeetingTypeTeam,
		MaxRounds:   rounds,
		Status:      models.StatusPending,
	}
}

func testAgents() []models.Agent {
	return []models.Agent{
		{ID: "a1", Name: "Dr. Smith", Title: "Principal Investigator", Model: "gpt-4o"},
		{ID: "a2", Name: "Dr. Chen", Title: "Computational Biologist", Model: "gpt-4o"},
	}
}

func waitIdle(t *testing.T, r *Runner, meetingID string) {
	t.Helper()
	require.Eventually(t, func() bool { return !r.IsRunning(meetingID) },
		3*time.Second, 10*time.Millisecond)
}

func eventTypes(sub *bus.Subscription, want int, timeout time.Duration) []string {
	var types []string
	deadline := time.After(timeout)
	for len(types) < want {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return types
			}
			types = append(types, ev.Type)
		case <-deadline:
			return types
		}
	}
	return types
}

func TestStartBackgroundRunsToCompletion(t *testing.T) {
	h := newHarness(t, teamMeeting(1), testAgents(), &fakeLLM{})
	sub, err := h.bus.Subscribe(context.Background(), "meet-1")
	require.NoError(t, err)
	defer h.bus.Unsubscribe(sub)

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)
	waitIdle(t, h.runner, "meet-1")

	assert.Equal(t, models.StatusCompleted, h.store.status())
	assert.Equal(t, 2, h.store.messageCount())
	assert.Equal(t, 1, h.extractor.count())

	// Lead and member each announce then persist, then the round and the
	// meeting close.
	types := eventTypes(sub, 6, 2*time.Second)
	assert.Equal(t, []string{
		bus.EventTypeAgentSpeaking, bus.EventTypeMessage,
		bus.EventTypeAgentSpeaking, bus.EventTypeMessage,
		bus.EventTypeRoundComplete, bus.EventTypeMeetingComplete,
	}, types)
}

func TestStartBackgroundSingleFlight(t *testing.T) {
	client := &fakeLLM{block: make(chan struct{})}
	h := newHarness(t, teamMeeting(1), testAgents(), client)

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)

	again, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	assert.False(t, again)

	close(client.block)
	waitIdle(t, h.runner, "meet-1")
	assert.Equal(t, models.StatusCompleted, h.store.status())
}

func TestStartBackgroundStoreConflict(t *testing.T) {
	m := teamMeeting(3)
	m.Status = models.StatusRunning // held by another replica
	h := newHarness(t, m, testAgents(), &fakeLLM{})

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	assert.False(t, started)
}

func TestStartBackgroundCompletedMeeting(t *testing.T) {
	m := teamMeeting(1)
	m.Status = models.StatusCompleted
	m.CurrentRound = 1
	h := newHarness(t, m, testAgents(), &fakeLLM{})

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.False(t, started)
}

func TestCancelReturnsMeetingToPending(t *testing.T) {
	client := &fakeLLM{block: make(chan struct{})}
	h := newHarness(t, teamMeeting(3), testAgents(), client)
	sub, err := h.bus.Subscribe(context.Background(), "meet-1")
	require.NoError(t, err)
	defer h.bus.Unsubscribe(sub)

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)

	require.True(t, h.runner.Cancel("meet-1"))
	close(client.block) // let the in-flight turn finish
	waitIdle(t, h.runner, "meet-1")

	assert.Equal(t, models.StatusPending, h.store.status())
	// The in-flight turn is persisted; no terminal event follows.
	for _, typ := range eventTypes(sub, 10, 200*time.Millisecond) {
		assert.NotEqual(t, bus.EventTypeMeetingComplete, typ)
		assert.NotEqual(t, bus.EventTypeError, typ)
	}
	assert.GreaterOrEqual(t, h.store.messageCount(), 1)
}

func TestQuotaFailureFailsMeetingWithGuidance(t *testing.T) {
	client := &fakeLLM{err: fmt.Errorf("%w: openai", llm.ErrQuotaExhausted)}
	h := newHarness(t, teamMeeting(2), testAgents(), client)
	sub, err := h.bus.Subscribe(context.Background(), "meet-1")
	require.NoError(t, err)
	defer h.bus.Unsubscribe(sub)

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)
	waitIdle(t, h.runner, "meet-1")

	assert.Equal(t, models.StatusFailed, h.store.status())
	assert.Equal(t, llm.QuotaExhaustedMessage, h.store.errorMessage())

	types := eventTypes(sub, 2, 2*time.Second)
	require.Contains(t, types, bus.EventTypeError)
	var errEvent bus.Event
	// Drain what Subscribe replayed to find the error payload.
	replaySub, err := h.bus.Subscribe(context.Background(), "meet-1")
	require.NoError(t, err)
	defer h.bus.Unsubscribe(replaySub)
	for ev := range replaySub.C {
		if ev.Type == bus.EventTypeError {
			errEvent = ev
			break
		}
	}
	var payload bus.ErrorPayload
	require.NoError(t, json.Unmarshal(errEvent.Data, &payload))
	assert.Equal(t, llm.QuotaExhaustedMessage, payload.Detail)
	assert.Equal(t, llm.ProviderOpenAI, payload.Provider)
}

func TestRunSyncReturnsFullTranscript(t *testing.T) {
	h := newHarness(t, teamMeeting(1), testAgents(), &fakeLLM{})

	got, err := h.runner.RunSync(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Len(t, got.Messages, 2)
	assert.False(t, h.runner.IsRunning("meet-1"))
}

func TestRunSyncConflictsWithLiveWorker(t *testing.T) {
	client := &fakeLLM{block: make(chan struct{})}
	h := newHarness(t, teamMeeting(1), testAgents(), client)

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)

	_, err = h.runner.RunSync(context.Background(), "meet-1", models.RunOptions{})
	assert.ErrorIs(t, err, services.ErrConflict)

	close(client.block)
	waitIdle(t, h.runner, "meet-1")
}

func TestFeedbackDuringRunEntersNextRound(t *testing.T) {
	client := &fakeLLM{}
	lead := []models.Agent{{ID: "a1", Name: "Dr. Smith", Title: "Principal Investigator", Model: "gpt-4o"}}
	h := newHarness(t, teamMeeting(2), lead, client)
	h.store.feedbackAt = func(round int) *models.Message {
		if round != 1 {
			return nil
		}
		return &models.Message{
			MeetingID: "meet-1", Role: models.RoleUser,
			Content: "Prioritize stability over binding affinity.", RoundNumber: 1,
		}
	}

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)
	waitIdle(t, h.runner, "meet-1")

	assert.Equal(t, models.StatusCompleted, h.store.status())

	// Lead only, so one request per round. The feedback persisted at the
	// round-1 boundary is in the round-2 prompt of the same run.
	requests := client.recorded()
	require.Len(t, requests, 2)
	var round2 strings.Builder
	for _, msg := range requests[1].Messages {
		round2.WriteString(msg.Content)
		round2.WriteString("\n")
	}
	assert.Contains(t, round2.String(),
		prompt.HumanFeedbackPrefix+"Prioritize stability over binding affinity.")
}

func TestRunSyncCancelReturnsPartialState(t *testing.T) {
	client := &fakeLLM{block: make(chan struct{})}
	h := newHarness(t, teamMeeting(3), testAgents(), client)

	type result struct {
		m   models.Meeting
		err error
	}
	results := make(chan result, 1)
	go func() {
		m, err := h.runner.RunSync(context.Background(), "meet-1", models.RunOptions{})
		results <- result{m, err}
	}()

	// Cancel once the first turn is in flight, then let it finish.
	require.Eventually(t, func() bool { return client.callCount() >= 1 },
		time.Second, 5*time.Millisecond)
	require.True(t, h.runner.Cancel("meet-1"))
	close(client.block)

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.Equal(t, models.StatusPending, res.m.Status)
		assert.NotEmpty(t, res.m.Messages)
	case <-time.After(2 * time.Second):
		t.Fatal("synchronous run did not return after cancellation")
	}
}

func TestRunWindowHonorsRequestedRounds(t *testing.T) {
	h := newHarness(t, teamMeeting(5), testAgents(), &fakeLLM{})

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{Rounds: 2})
	require.NoError(t, err)
	require.True(t, started)
	waitIdle(t, h.runner, "meet-1")

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	assert.Equal(t, 2, h.store.meeting.CurrentRound)
	assert.Equal(t, models.StatusPending, h.store.meeting.Status)
}

func TestTopicFillsEmptyAgenda(t *testing.T) {
	m := teamMeeting(1)
	m.Agenda = ""
	h := newHarness(t, m, testAgents(), &fakeLLM{})

	started, err := h.runner.StartBackground(context.Background(), "meet-1",
		models.RunOptions{Topic: "Evaluate the new assay pipeline"})
	require.NoError(t, err)
	require.True(t, started)
	waitIdle(t, h.runner, "meet-1")

	// A topic promotes the run to a structured meeting: lead plus member.
	assert.Equal(t, models.StatusCompleted, h.store.status())
	assert.Equal(t, 2, h.store.messageCount())
}

func TestRecoverOrphans(t *testing.T) {
	m := teamMeeting(3)
	m.Status = models.StatusRunning
	h := newHarness(t, m, testAgents(), &fakeLLM{})

	recovered, err := h.runner.RecoverOrphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
	assert.Equal(t, models.StatusFailed, h.store.status())
	assert.Equal(t, "run interrupted by process restart", h.store.errorMessage())
}

func TestShutdownStopsLiveWorkers(t *testing.T) {
	client := &fakeLLM{block: make(chan struct{})}
	h := newHarness(t, teamMeeting(3), testAgents(), client)

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)

	// Release the in-flight turn only after shutdown has signaled stop,
	// so the worker parks at the next turn boundary.
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(client.block)
	}()
	require.NoError(t, h.runner.Shutdown(context.Background()))
	assert.Equal(t, models.StatusPending, h.store.status())

	_, err = h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestWebhookDeliveryOnCompletion(t *testing.T) {
	received := make(chan []byte, 1)
	var gotSig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotSig = r.Header.Get(webhook.SignatureHeader)
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	h := newHarness(t, teamMeeting(1), testAgents(), &fakeLLM{})
	h.runner.webhooks = &fakeNotifier{targets: []webhook.Target{{
		URL:    srv.URL,
		Events: []string{bus.EventTypeMeetingComplete},
		Secret: "s3cret",
	}}}

	started, err := h.runner.StartBackground(context.Background(), "meet-1", models.RunOptions{})
	require.NoError(t, err)
	require.True(t, started)
	waitIdle(t, h.runner, "meet-1")

	select {
	case body := <-received:
		var payload bus.MeetingCompletePayload
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, bus.EventTypeMeetingComplete, payload.Type)
		assert.Equal(t, models.StatusCompleted, payload.Status)
		assert.True(t, webhook.VerifySignature("s3cret", body, gotSig))
	case <-time.After(2 * time.Second):
		t.Fatal("webhook delivery not observed")
	}
}
