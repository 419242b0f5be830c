package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conclave-ai/conclave/pkg/bus"
	"github.com/conclave-ai/conclave/pkg/extract"
	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/meeting"
	"github.com/conclave-ai/conclave/pkg/models"
)

// run executes the rounds of one started meeting, persists progress
// through engine callbacks, and settles the terminal state. The meeting
// is already marked running when run is called.
func (r *Runner) run(ctx context.Context, m models.Meeting, opts models.RunOptions, stop <-chan struct{}) error {
	in, err := r.buildInput(ctx, m, opts, stop)
	if err != nil {
		r.settleFailure(ctx, m.ID, err, "")
		return err
	}

	// Tracks the model of the turn in flight so provider attribution on
	// failure points at the right backend.
	var lastModel string
	// Message ids already in the live transcript. Feedback persisted
	// outside the run is picked up at round boundaries exactly once.
	known := make(map[string]struct{}, len(in.History))
	for _, msg := range in.History {
		known[msg.ID] = struct{}{}
	}
	cb := meeting.Callbacks{
		OnAgentStart: func(ctx context.Context, agent models.Agent) {
			lastModel = agent.Model
			r.publish(ctx, m.ID, bus.NewAgentSpeaking(m.ID, agent.ID, agent.Name))
		},
		OnAgentDone: func(ctx context.Context, msg models.Message) (models.Message, error) {
			saved, err := r.meetings.SaveAssistantMessage(ctx, msg)
			if err != nil {
				return models.Message{}, err
			}
			known[saved.ID] = struct{}{}
			r.publish(ctx, m.ID, bus.NewMessage(
				m.ID, saved.ID, saved.AgentID, saved.AgentName,
				saved.Role, saved.Content, saved.RoundNumber))
			return saved, nil
		},
		OnRoundComplete: func(ctx context.Context, round int) ([]models.Message, error) {
			updated, err := r.meetings.CompleteRound(ctx, m.ID, round)
			if err != nil {
				return nil, err
			}
			m = updated
			r.publish(ctx, m.ID, bus.NewRoundComplete(m.ID, round, m.MaxRounds))

			feedback, err := r.freshFeedback(ctx, m.ID, known)
			if err != nil {
				slog.Warn("Failed to load mid-run feedback",
					"meeting_id", m.ID, "round", round, "error", err)
				return nil, nil
			}
			return feedback, nil
		},
	}

	if _, err := r.engine.Run(ctx, in, cb); err != nil {
		if errors.Is(err, meeting.ErrStopped) {
			// The in-flight turn is already persisted; the meeting can
			// resume later. No terminal event.
			if perr := r.meetings.MarkPending(ctx, m.ID); perr != nil {
				slog.Error("Failed to mark stopped meeting pending",
					"meeting_id", m.ID, "error", perr)
			}
			slog.Info("Meeting run stopped", "meeting_id", m.ID, "current_round", m.CurrentRound)
			return err
		}
		r.settleFailure(ctx, m.ID, err, providerFor(lastModel))
		return err
	}

	if m.Status == models.StatusCompleted {
		r.artifacts.ExtractBestEffort(ctx, m.ID)
		r.publish(ctx, m.ID, bus.NewMeetingComplete(m.ID, m.Status))
		r.notifyWebhooks(ctx, bus.NewMeetingComplete(m.ID, m.Status))
		slog.Info("Meeting completed", "meeting_id", m.ID, "rounds", m.CurrentRound)
	}
	return nil
}

// buildInput assembles the engine input: speaker pool, resolved
// language, prior transcript, context summaries, and round window.
func (r *Runner) buildInput(ctx context.Context, m models.Meeting, opts models.RunOptions, stop <-chan struct{}) (meeting.Input, error) {
	if strings.TrimSpace(m.Agenda) == "" && opts.Topic != "" {
		m.Agenda = opts.Topic
	}

	agents, err := r.agents.ListAgents(ctx, m.TeamID)
	if err != nil {
		return meeting.Input{}, fmt.Errorf("failed to load agents: %w", err)
	}

	language, err := r.resolveLanguage(ctx, m, opts)
	if err != nil {
		return meeting.Input{}, err
	}

	history, err := r.meetings.ListMessages(ctx, m.ID)
	if err != nil {
		return meeting.Input{}, fmt.Errorf("failed to load transcript: %w", err)
	}

	summaries, err := r.contextSummaries(ctx, m)
	if err != nil {
		return meeting.Input{}, err
	}

	start := m.CurrentRound + 1
	end := m.MaxRounds
	if opts.Rounds > 0 && m.CurrentRound+opts.Rounds < end {
		end = m.CurrentRound + opts.Rounds
	}

	return meeting.Input{
		Meeting:          m,
		Agents:           agents,
		History:          history,
		ContextSummaries: summaries,
		Language:         language,
		StartRound:       start,
		EndRound:         end,
		MaxRounds:        m.MaxRounds,
		Stop:             stop,
	}, nil
}

// freshFeedback returns user messages persisted since the transcript
// was last seen, so feedback injected while a round runs reaches the
// following round of the same run.
func (r *Runner) freshFeedback(ctx context.Context, meetingID string, known map[string]struct{}) ([]models.Message, error) {
	all, err := r.meetings.ListMessages(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	var fresh []models.Message
	for _, msg := range all {
		if _, seen := known[msg.ID]; seen {
			continue
		}
		known[msg.ID] = struct{}{}
		if msg.Role != models.RoleUser {
			continue
		}
		fresh = append(fresh, msg)
	}
	return fresh, nil
}

// resolveLanguage applies the priority chain: meeting preference, run
// locale, team default.
func (r *Runner) resolveLanguage(ctx context.Context, m models.Meeting, opts models.RunOptions) (string, error) {
	if m.PreferredLanguage != "" {
		return m.PreferredLanguage, nil
	}
	if opts.Locale != "" {
		return opts.Locale, nil
	}
	team, err := r.teams.GetTeam(ctx, m.TeamID)
	if err != nil {
		return "", fmt.Errorf("failed to load team: %w", err)
	}
	return team.DefaultLanguage, nil
}

// contextSummaries loads prior-meeting transcripts and runs the context
// extractor. Merge meetings draw on their source meetings; every
// meeting type may additionally name context meetings.
func (r *Runner) contextSummaries(ctx context.Context, m models.Meeting) ([]models.ContextSummary, error) {
	var ids []string
	if m.MeetingType == models.MeetingTypeMerge {
		ids = append(ids, m.SourceMeetingIDs...)
	}
	ids = append(ids, m.ContextMeetingIDs...)
	if len(ids) == 0 {
		return nil, nil
	}

	transcripts, err := r.meetings.ContextTranscripts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load context transcripts: %w", err)
	}
	return extract.BuildContext(transcripts, m.Agenda, m.AgendaQuestions, r.cfg.ContextBudget), nil
}

// settleFailure marks the meeting failed and publishes the error event.
func (r *Runner) settleFailure(ctx context.Context, meetingID string, runErr error, provider string) {
	detail := userFacingError(runErr)
	if err := r.meetings.MarkFailed(ctx, meetingID, detail); err != nil {
		slog.Error("Failed to mark meeting failed", "meeting_id", meetingID, "error", err)
	}
	payload := bus.NewError(meetingID, detail, provider)
	r.publish(ctx, meetingID, payload)
	r.notifyWebhooks(ctx, payload)
	slog.Error("Meeting run failed", "meeting_id", meetingID, "error", runErr)
}

// userFacingError maps run errors to the detail shown to clients. Quota
// failures carry the fixed guidance message.
func userFacingError(err error) string {
	switch {
	case errors.Is(err, llm.ErrQuotaExhausted):
		return llm.QuotaExhaustedMessage
	case errors.Is(err, llm.ErrAuth):
		return "provider authentication failed; check the configured API key"
	case errors.Is(err, meeting.ErrNoAgents):
		return "no agents available for this meeting"
	default:
		return err.Error()
	}
}

// providerFor maps the failing turn's model to its provider. Empty when
// no turn was dispatched or the model is unknown.
func providerFor(model string) string {
	if model == "" {
		return ""
	}
	provider, err := llm.ProviderForModel(model)
	if err != nil {
		return ""
	}
	return provider
}

func (r *Runner) publish(ctx context.Context, meetingID string, payload bus.Payload) {
	if err := r.bus.Publish(ctx, meetingID, payload); err != nil {
		slog.Warn("Failed to publish event",
			"meeting_id", meetingID,
			"event", payload.EventType(),
			"error", err)
	}
}

// notifyWebhooks delivers terminal events to registered endpoints.
// Delivery is best-effort and never affects run state.
func (r *Runner) notifyWebhooks(ctx context.Context, payload bus.Payload) {
	if r.webhooks == nil {
		return
	}
	targets, err := r.webhooks.ActiveTargets(ctx)
	if err != nil {
		slog.Warn("Failed to load webhook targets", "error", err)
		return
	}
	if len(targets) == 0 {
		return
	}
	r.dispatcher.Dispatch(ctx, targets, payload.EventType(), payload)
}
