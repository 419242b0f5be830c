package meeting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/prompt"
)

// Sentinel errors surfaced to the runner.
var (
	// ErrStopped reports a cooperative cancellation observed at a turn
	// boundary. The current turn is already persisted.
	ErrStopped = errors.New("meeting run stopped")
	// ErrNoAgents reports an empty speaker pool after filtering.
	ErrNoAgents = errors.New("no agents available for meeting")
)

// ModelResolver maps a model identifier to a ready client.
type ModelResolver interface {
	ClientForModel(model string) (llm.Client, error)
}

// Callbacks let the caller observe and persist engine progress. The
// engine never talks to the store or the event bus directly.
type Callbacks struct {
	// OnAgentStart fires immediately before the agent's LLM call.
	OnAgentStart func(ctx context.Context, agent models.Agent)
	// OnAgentDone persists the produced message and returns it with its
	// assigned id and timestamp. A persistence error aborts the run.
	OnAgentDone func(ctx context.Context, msg models.Message) (models.Message, error)
	// OnRoundComplete commits round state after the round's last turn.
	// Messages it returns (human feedback persisted while the round ran)
	// are appended to the live transcript before the next round.
	OnRoundComplete func(ctx context.Context, round int) ([]models.Message, error)
}

// Input carries everything one run needs. StartRound..EndRound are the
// rounds this run executes; MaxRounds determines phase boundaries (the
// final-output phase happens only in round MaxRounds).
type Input struct {
	Meeting          models.Meeting
	Agents           []models.Agent
	History          []models.Message
	ContextSummaries []models.ContextSummary
	Language         string
	StartRound       int
	EndRound         int
	MaxRounds        int
	// Stop requests cooperative cancellation, observed at turn
	// boundaries only.
	Stop <-chan struct{}
}

// Engine runs meetings. It is stateless across runs and safe for
// concurrent use by independent meetings.
type Engine struct {
	resolver    ModelResolver
	callTimeout time.Duration
}

// NewEngine creates an engine. callTimeout bounds each LLM call.
func NewEngine(resolver ModelResolver, callTimeout time.Duration) *Engine {
	if callTimeout <= 0 {
		callTimeout = 2 * time.Minute
	}
	return &Engine{resolver: resolver, callTimeout: callTimeout}
}

// turn is one scheduled speaker with their composed prompt.
type turn struct {
	agent     models.Agent
	prompt    string
	emitsCode bool
}

// runState is the evolving in-memory transcript of one run.
type runState struct {
	in      Input
	history []models.Message
}

// Run dispatches on the meeting type. Team meetings with an empty
// agenda fall back to the legacy round-robin.
func (e *Engine) Run(ctx context.Context, in Input, cb Callbacks) ([]models.Message, error) {
	switch in.Meeting.MeetingType {
	case models.MeetingTypeIndividual:
		return e.RunIndividualMeeting(ctx, in, cb)
	case models.MeetingTypeMerge:
		return e.RunMergeMeeting(ctx, in, cb)
	default:
		if strings.TrimSpace(in.Meeting.Agenda) == "" {
			return e.RunMeeting(ctx, in, cb)
		}
		return e.RunStructuredMeeting(ctx, in, cb)
	}
}

// RunStructuredMeeting executes a phase-aware team meeting: the lead
// opens or synthesizes each round, members contribute in classification
// order, the critic (when present) closes the round, and the last round
// is the lead's final deliverable.
func (e *Engine) RunStructuredMeeting(ctx context.Context, in Input, cb Callbacks) ([]models.Message, error) {
	pool := FilterParticipants(in.Agents, in.Meeting.ParticipantAgentIDs)
	if len(pool) == 0 {
		return nil, ErrNoAgents
	}
	assignment := SortAgentsForMeeting(pool)

	st := &runState{in: in, history: in.History}
	if in.StartRound <= 1 {
		criticName := ""
		if assignment.Critic != nil {
			criticName = assignment.Critic.Name
		}
		opening := prompt.MeetingStartPrompt(
			assignment.Lead.Name, memberNames(assignment.Members),
			in.Meeting.Agenda, in.Meeting.AgendaQuestions,
			prompt.RulesFor(in.Meeting.OutputType, in.Meeting.AgendaRules),
			in.MaxRounds, in.Language, criticName)
		st.injectContext(opening, in)
	}

	return e.runRounds(ctx, st, cb, func(round int) []turn {
		return e.structuredTurns(assignment, in.Meeting, round, in.MaxRounds)
	})
}

// RunIndividualMeeting executes a session between the chosen agent and
// a synthetic scientific critic. Non-final rounds are agent then
// critic; the final round is the agent alone.
func (e *Engine) RunIndividualMeeting(ctx context.Context, in Input, cb Callbacks) ([]models.Message, error) {
	agent, ok := findAgent(in.Agents, in.Meeting.IndividualAgentID)
	if !ok {
		return nil, fmt.Errorf("%w: individual agent %q not found", ErrNoAgents, in.Meeting.IndividualAgentID)
	}
	critic := syntheticCritic(agent)

	st := &runState{in: in, history: in.History}
	if in.StartRound <= 1 {
		opening := prompt.IndividualMeetingStartPrompt(
			agent.Name, in.Meeting.Agenda, in.Meeting.AgendaQuestions,
			prompt.RulesFor(in.Meeting.OutputType, in.Meeting.AgendaRules),
			in.MaxRounds, in.Language)
		st.injectContext(opening, in)
	}

	outputType := in.Meeting.OutputType
	emitsCode := outputType == models.OutputTypeCode
	return e.runRounds(ctx, st, cb, func(round int) []turn {
		if round >= in.MaxRounds {
			return []turn{{agent: agent, prompt: prompt.LeadFinalPrompt(agent.Name, outputType), emitsCode: emitsCode}}
		}
		return []turn{
			{agent: agent, prompt: prompt.MemberPrompt(agent.Name, round, in.MaxRounds), emitsCode: emitsCode},
			{agent: critic, prompt: prompt.CriticPrompt(critic.Name, round, in.MaxRounds)},
		}
	})
}

// RunMergeMeeting synthesizes the source-meeting summaries (provided as
// context summaries) into one output. Members may comment in non-final
// rounds; the final round is the lead alone.
func (e *Engine) RunMergeMeeting(ctx context.Context, in Input, cb Callbacks) ([]models.Message, error) {
	pool := FilterParticipants(in.Agents, in.Meeting.ParticipantAgentIDs)
	if len(pool) == 0 {
		return nil, ErrNoAgents
	}
	assignment := SortAgentsForMeeting(pool)

	st := &runState{in: in, history: in.History}
	if in.StartRound <= 1 {
		criticName := ""
		if assignment.Critic != nil {
			criticName = assignment.Critic.Name
		}
		opening := prompt.MeetingStartPrompt(
			assignment.Lead.Name, memberNames(assignment.Members),
			in.Meeting.Agenda, in.Meeting.AgendaQuestions,
			prompt.RulesFor(in.Meeting.OutputType, in.Meeting.AgendaRules),
			in.MaxRounds, in.Language, criticName)
		st.injectContext(opening, in)
	}

	numSources := len(in.ContextSummaries)
	leadEmitsCode := in.Meeting.OutputType == models.OutputTypeCode
	return e.runRounds(ctx, st, cb, func(round int) []turn {
		turns := []turn{{
			agent:     assignment.Lead,
			prompt:    prompt.MergePrompt(assignment.Lead.Name, numSources),
			emitsCode: leadEmitsCode,
		}}
		if round < in.MaxRounds {
			for _, m := range assignment.Members {
				turns = append(turns, turn{
					agent:     m,
					prompt:    prompt.MemberPrompt(m.Name, round, in.MaxRounds),
					emitsCode: leadEmitsCode && IsCodingAgent(m),
				})
			}
		}
		return turns
	})
}

// RunMeeting is the legacy round-robin used when the agenda is empty:
// every agent speaks every round in pool order.
func (e *Engine) RunMeeting(ctx context.Context, in Input, cb Callbacks) ([]models.Message, error) {
	pool := FilterParticipants(in.Agents, in.Meeting.ParticipantAgentIDs)
	if len(pool) == 0 {
		return nil, ErrNoAgents
	}

	st := &runState{in: in, history: in.History}
	emitsCode := in.Meeting.OutputType == models.OutputTypeCode
	return e.runRounds(ctx, st, cb, func(round int) []turn {
		turns := make([]turn, 0, len(pool))
		for _, a := range pool {
			turns = append(turns, turn{
				agent:     a,
				prompt:    prompt.MemberPrompt(a.Name, round, in.MaxRounds),
				emitsCode: emitsCode && IsCodingAgent(a),
			})
		}
		return turns
	})
}

// structuredTurns schedules one round of a structured team meeting.
func (e *Engine) structuredTurns(a Assignment, m models.Meeting, round, maxRounds int) []turn {
	isCode := m.OutputType == models.OutputTypeCode

	if round >= maxRounds && maxRounds > 1 {
		// Final round: the lead alone produces the deliverable. Code
		// meetings get an integration pass first when the integrator is
		// a distinct agent.
		var turns []turn
		if isCode && a.Integrator.ID != a.Lead.ID {
			turns = append(turns, turn{
				agent:     a.Integrator,
				prompt:    prompt.IntegratorPrompt(a.Integrator.Name),
				emitsCode: true,
			})
		}
		return append(turns, turn{
			agent:     a.Lead,
			prompt:    prompt.LeadFinalPrompt(a.Lead.Name, m.OutputType),
			emitsCode: isCode,
		})
	}

	leadPrompt := prompt.LeadInitialPrompt(a.Lead.Name, m.Agenda)
	if round > 1 {
		leadPrompt = prompt.LeadSynthesisPrompt(a.Lead.Name, round, maxRounds)
	}
	turns := []turn{{agent: a.Lead, prompt: leadPrompt, emitsCode: isCode}}
	for _, member := range a.Members {
		turns = append(turns, turn{
			agent:     member,
			prompt:    prompt.MemberPrompt(member.Name, round, maxRounds),
			emitsCode: isCode && (IsCodingAgent(member) || member.ID == a.Integrator.ID),
		})
	}
	if a.Critic != nil {
		turns = append(turns, turn{
			agent:  *a.Critic,
			prompt: prompt.CriticPrompt(a.Critic.Name, round, maxRounds),
		})
	}
	return turns
}

// runRounds drives StartRound..EndRound through the schedule function,
// committing each round before the next begins. Feedback returned by
// the commit joins the transcript, so it reaches the next round's
// prompts within the same run.
func (e *Engine) runRounds(ctx context.Context, st *runState, cb Callbacks, schedule func(round int) []turn) ([]models.Message, error) {
	var all []models.Message
	for round := st.in.StartRound; round <= st.in.EndRound; round++ {
		msgs, err := e.runRound(ctx, st, schedule(round), round, cb)
		all = append(all, msgs...)
		if err != nil {
			return all, err
		}
		if cb.OnRoundComplete != nil {
			injected, err := cb.OnRoundComplete(ctx, round)
			if err != nil {
				return all, fmt.Errorf("failed to commit round %d: %w", round, err)
			}
			st.history = append(st.history, injected...)
		}
	}
	return all, nil
}

// runRound executes the scheduled turns of one round. Cancellation is
// observed between turns only, so a signaled stop never leaves a
// half-persisted turn.
func (e *Engine) runRound(ctx context.Context, st *runState, turns []turn, round int, cb Callbacks) ([]models.Message, error) {
	var produced []models.Message
	for _, t := range turns {
		select {
		case <-st.in.Stop:
			return produced, ErrStopped
		default:
		}
		if err := ctx.Err(); err != nil {
			return produced, err
		}

		if cb.OnAgentStart != nil {
			cb.OnAgentStart(ctx, t.agent)
		}

		content, err := e.callModel(ctx, st, t, round)
		if err != nil {
			return produced, fmt.Errorf("turn failed for agent %q: %w", t.agent.Name, err)
		}

		msg := models.Message{
			MeetingID:   st.in.Meeting.ID,
			Role:        models.RoleAssistant,
			AgentID:     t.agent.ID,
			AgentName:   t.agent.Name,
			Content:     content,
			RoundNumber: round,
			CreatedAt:   time.Now(),
		}
		if cb.OnAgentDone != nil {
			msg, err = cb.OnAgentDone(ctx, msg)
			if err != nil {
				return produced, fmt.Errorf("failed to persist turn for agent %q: %w", t.agent.Name, err)
			}
		}

		st.history = append(st.history, msg)
		produced = append(produced, msg)
	}
	return produced, nil
}

// callModel composes the request and performs the bounded LLM call.
func (e *Engine) callModel(ctx context.Context, st *runState, t turn, round int) (string, error) {
	client, err := e.resolver.ClientForModel(t.agent.Model)
	if err != nil {
		return "", err
	}

	messages := renderHistory(st.history)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: t.prompt})

	temperature := prompt.PhaseTemperature(round, st.in.MaxRounds)
	if override, ok := temperatureOverride(t.agent); ok {
		temperature = override
	}

	slog.Debug("Dispatching turn",
		"meeting_id", st.in.Meeting.ID,
		"agent", t.agent.Name,
		"model", t.agent.Model,
		"round", round,
		"temperature", temperature)

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()
	return client.Chat(callCtx, llm.ChatRequest{
		Model:       t.agent.Model,
		System:      prompt.SystemPromptFor(t.agent, st.in.Meeting.OutputType, t.emitsCode),
		Messages:    messages,
		Temperature: temperature,
	})
}

// injectContext prepends the opening prompt, prior-meeting context, and
// rewrite feedback as pre-round system entries of the in-memory
// transcript.
func (st *runState) injectContext(opening string, in Input) {
	inject := func(content string) {
		st.history = append(st.history, models.Message{
			MeetingID: in.Meeting.ID,
			Role:      models.RoleSystem,
			Content:   content,
		})
	}
	inject(opening)
	if block := prompt.FormatContextSummaries(in.ContextSummaries); block != "" {
		inject(block)
	}
	if in.Meeting.RewriteFeedback != "" {
		inject(prompt.RewritePrompt(in.Meeting.RewriteFeedback))
	}
}

// renderHistory flattens the transcript into user-role entries so every
// speaker sees the full conversation. Assistant entries are labeled
// "[speaker]: content"; agent-less user entries carry the
// human-feedback prefix.
func renderHistory(history []models.Message) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, m := range history {
		var content string
		switch {
		case m.Role == models.RoleAssistant && m.AgentName != "":
			content = "[" + m.AgentName + "]: " + m.Content
		case m.Role == models.RoleUser && m.AgentID == "":
			content = prompt.HumanFeedbackPrefix + m.Content
		default:
			content = m.Content
		}
		out = append(out, llm.Message{Role: llm.RoleUser, Content: content})
	}
	return out
}

func temperatureOverride(agent models.Agent) (float64, bool) {
	raw, ok := agent.ModelParams["temperature"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func memberNames(members []models.Agent) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}

func findAgent(agents []models.Agent, id string) (models.Agent, bool) {
	for _, a := range agents {
		if a.ID == id {
			return a, true
		}
	}
	return models.Agent{}, false
}

// syntheticCritic builds the ephemeral critic persona for individual
// meetings. It reuses the chosen agent's model and is never persisted.
func syntheticCritic(agent models.Agent) models.Agent {
	return models.Agent{
		Name:      "Scientific Critic",
		Title:     "Scientific Critic",
		Expertise: "critical evaluation of scientific and technical work",
		Goal:      "identify weaknesses, unstated assumptions, and gaps",
		Model:     agent.Model,
	}
}
