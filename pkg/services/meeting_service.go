package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conclave-ai/conclave/ent"
	meetingent "github.com/conclave-ai/conclave/ent/meeting"
	messageent "github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/pkg/extract"
	"github.com/conclave-ai/conclave/pkg/models"
)

// MeetingService manages meeting lifecycle and transcript persistence
type MeetingService struct {
	client *ent.Client
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(client *ent.Client) *MeetingService {
	return &MeetingService{client: client}
}

// CreateMeetingRequest carries the meeting creation input
type CreateMeetingRequest struct {
	TeamID              string   `json:"-"`
	Title               string   `json:"title"`
	Agenda              string   `json:"agenda"`
	AgendaQuestions     []string `json:"agenda_questions"`
	AgendaRules         []string `json:"agenda_rules"`
	OutputType          string   `json:"output_type"`
	MeetingType         string   `json:"meeting_type"`
	MaxRounds           int      `json:"max_rounds"`
	ParticipantAgentIDs []string `json:"participant_agent_ids"`
	IndividualAgentID   string   `json:"individual_agent_id"`
	SourceMeetingIDs    []string `json:"source_meeting_ids"`
	ContextMeetingIDs   []string `json:"context_meeting_ids"`
	ParentMeetingID     string   `json:"parent_meeting_id"`
	RewriteFeedback     string   `json:"rewrite_feedback"`
	AgendaStrategy      string   `json:"agenda_strategy"`
	RoundPlan           []string `json:"round_plan"`
	PreferredLanguage   string   `json:"preferred_language"`
}

// CreateMeeting creates a new meeting in pending state
func (s *MeetingService) CreateMeeting(ctx context.Context, req CreateMeetingRequest) (models.Meeting, error) {
	if req.TeamID == "" {
		return models.Meeting{}, NewValidationError("team_id", "required")
	}
	if req.Title == "" {
		return models.Meeting{}, NewValidationError("title", "required")
	}
	if req.MaxRounds == 0 {
		req.MaxRounds = models.DefaultRounds
	}
	if req.MaxRounds < models.MinRounds || req.MaxRounds > models.MaxRounds {
		return models.Meeting{}, NewValidationError("max_rounds",
			fmt.Sprintf("must be between %d and %d", models.MinRounds, models.MaxRounds))
	}
	if req.MeetingType == "" {
		req.MeetingType = models.MeetingTypeTeam
	}
	switch req.MeetingType {
	case models.MeetingTypeTeam:
	case models.MeetingTypeIndividual:
		if req.IndividualAgentID == "" {
			return models.Meeting{}, NewValidationError("individual_agent_id", "required for individual meetings")
		}
	case models.MeetingTypeMerge:
		if len(req.SourceMeetingIDs) == 0 {
			return models.Meeting{}, NewValidationError("source_meeting_ids", "required for merge meetings")
		}
	default:
		return models.Meeting{}, NewValidationError("meeting_type", "must be team, individual, or merge")
	}
	if req.OutputType == "" {
		req.OutputType = models.OutputTypeReport
	}
	switch req.OutputType {
	case models.OutputTypeCode, models.OutputTypeReport, models.OutputTypePaper:
	default:
		return models.Meeting{}, NewValidationError("output_type", "must be code, report, or paper")
	}
	if req.AgendaStrategy == "" {
		req.AgendaStrategy = models.AgendaStrategyManual
	}

	builder := s.client.Meeting.Create().
		SetID(uuid.New().String()).
		SetTeamID(req.TeamID).
		SetTitle(req.Title).
		SetAgenda(req.Agenda).
		SetOutputType(meetingent.OutputType(req.OutputType)).
		SetMeetingType(meetingent.MeetingType(req.MeetingType)).
		SetMaxRounds(req.MaxRounds).
		SetStatus(meetingent.StatusPending).
		SetAgendaStrategy(meetingent.AgendaStrategy(req.AgendaStrategy)).
		SetRewriteFeedback(req.RewriteFeedback)
	if req.AgendaQuestions != nil {
		builder.SetAgendaQuestions(req.AgendaQuestions)
	}
	if req.AgendaRules != nil {
		builder.SetAgendaRules(req.AgendaRules)
	}
	if req.ParticipantAgentIDs != nil {
		builder.SetParticipantAgentIds(req.ParticipantAgentIDs)
	}
	if req.IndividualAgentID != "" {
		builder.SetIndividualAgentID(req.IndividualAgentID)
	}
	if req.SourceMeetingIDs != nil {
		builder.SetSourceMeetingIds(req.SourceMeetingIDs)
	}
	if req.ContextMeetingIDs != nil {
		builder.SetContextMeetingIds(req.ContextMeetingIDs)
	}
	if req.ParentMeetingID != "" {
		builder.SetParentMeetingID(req.ParentMeetingID)
	}
	if req.RoundPlan != nil {
		builder.SetRoundPlan(req.RoundPlan)
	}
	if req.PreferredLanguage != "" {
		builder.SetPreferredLanguage(req.PreferredLanguage)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return models.Meeting{}, NewValidationError("team_id", "team does not exist")
		}
		return models.Meeting{}, fmt.Errorf("failed to create meeting: %w", err)
	}
	return toMeeting(created), nil
}

// GetMeeting retrieves a meeting, optionally with its ordered messages
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID string, withMessages bool) (models.Meeting, error) {
	query := s.client.Meeting.Query().Where(meetingent.IDEQ(meetingID))
	if withMessages {
		query = query.WithMessages(func(q *ent.MessageQuery) {
			q.Order(ent.Asc(messageent.FieldRoundNumber), ent.Asc(messageent.FieldCreatedAt))
		})
	}

	found, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Meeting{}, ErrNotFound
		}
		return models.Meeting{}, fmt.Errorf("failed to get meeting: %w", err)
	}
	return toMeeting(found), nil
}

// ListMeetings lists a team's meetings, newest first
func (s *MeetingService) ListMeetings(ctx context.Context, teamID string) ([]models.Meeting, error) {
	found, err := s.client.Meeting.Query().
		Where(meetingent.TeamIDEQ(teamID)).
		Order(ent.Desc(meetingent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	meetings := make([]models.Meeting, 0, len(found))
	for _, m := range found {
		meetings = append(meetings, toMeeting(m))
	}
	return meetings, nil
}

// DeleteMeeting removes a meeting. Messages and artifacts cascade.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID string) error {
	if err := s.client.Meeting.DeleteOneID(meetingID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// ListMessages returns the ordered transcript of a meeting
func (s *MeetingService) ListMessages(ctx context.Context, meetingID string) ([]models.Message, error) {
	found, err := s.client.Message.Query().
		Where(messageent.MeetingIDEQ(meetingID)).
		Order(ent.Asc(messageent.FieldRoundNumber), ent.Asc(messageent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	messages := make([]models.Message, 0, len(found))
	for _, m := range found {
		messages = append(messages, toMessage(m))
	}
	return messages, nil
}

// SaveAssistantMessage persists one agent turn and returns it with its
// assigned id and timestamp.
func (s *MeetingService) SaveAssistantMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetMeetingID(msg.MeetingID).
		SetRole(messageent.RoleAssistant).
		SetContent(msg.Content).
		SetRoundNumber(msg.RoundNumber)
	if msg.AgentID != "" {
		builder.SetAgentID(msg.AgentID)
	}
	if msg.AgentName != "" {
		builder.SetAgentName(msg.AgentName)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to save message: %w", err)
	}
	return toMessage(created), nil
}

// AddUserMessage persists injected human feedback at the meeting's
// current round.
func (s *MeetingService) AddUserMessage(ctx context.Context, meetingID, content string) (models.Message, error) {
	if content == "" {
		return models.Message{}, NewValidationError("content", "required")
	}
	m, err := s.GetMeeting(ctx, meetingID, false)
	if err != nil {
		return models.Message{}, err
	}

	created, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetMeetingID(meetingID).
		SetRole(messageent.RoleUser).
		SetContent(content).
		SetRoundNumber(m.CurrentRound).
		Save(ctx)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to save user message: %w", err)
	}
	return toMessage(created), nil
}

// MarkRunning performs the gated pending -> running transition. It is
// the database half of the single-flight guarantee: a meeting already
// running (or finished) refuses a second start.
func (s *MeetingService) MarkRunning(ctx context.Context, meetingID string) (models.Meeting, error) {
	m, err := s.GetMeeting(ctx, meetingID, false)
	if err != nil {
		return models.Meeting{}, err
	}
	if m.Status == models.StatusCompleted {
		return models.Meeting{}, NewValidationError("status", "meeting is already completed")
	}
	if m.CurrentRound >= m.MaxRounds {
		return models.Meeting{}, NewValidationError("max_rounds", "no rounds remaining")
	}

	n, err := s.client.Meeting.Update().
		Where(
			meetingent.IDEQ(meetingID),
			meetingent.StatusIn(meetingent.StatusPending, meetingent.StatusFailed),
		).
		SetStatus(meetingent.StatusRunning).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("failed to mark meeting running: %w", err)
	}
	if n == 0 {
		return models.Meeting{}, ErrConflict
	}
	return s.GetMeeting(ctx, meetingID, false)
}

// CompleteRound commits round state after the round's last turn: the
// advanced current_round plus the follow-up status (pending while
// rounds remain, completed on the last).
func (s *MeetingService) CompleteRound(ctx context.Context, meetingID string, round int) (models.Meeting, error) {
	m, err := s.GetMeeting(ctx, meetingID, false)
	if err != nil {
		return models.Meeting{}, err
	}

	builder := s.client.Meeting.UpdateOneID(meetingID).
		SetCurrentRound(round)
	if round >= m.MaxRounds {
		builder.SetStatus(meetingent.StatusCompleted).
			SetCompletedAt(time.Now())
	} else {
		builder.SetStatus(meetingent.StatusPending)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("failed to commit round %d: %w", round, err)
	}
	return toMeeting(updated), nil
}

// MarkPending returns an interrupted meeting to pending without
// touching current_round. Used on cooperative cancellation.
func (s *MeetingService) MarkPending(ctx context.Context, meetingID string) error {
	if err := s.client.Meeting.UpdateOneID(meetingID).
		SetStatus(meetingent.StatusPending).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark meeting pending: %w", err)
	}
	return nil
}

// MarkFailed records a fatal run error
func (s *MeetingService) MarkFailed(ctx context.Context, meetingID, errorMessage string) error {
	if err := s.client.Meeting.UpdateOneID(meetingID).
		SetStatus(meetingent.StatusFailed).
		SetErrorMessage(errorMessage).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark meeting failed: %w", err)
	}
	return nil
}

// Status returns the polling snapshot for a meeting
func (s *MeetingService) Status(ctx context.Context, meetingID string, backgroundRunning bool) (models.MeetingStatus, error) {
	m, err := s.GetMeeting(ctx, meetingID, false)
	if err != nil {
		return models.MeetingStatus{}, err
	}
	count, err := s.client.Message.Query().
		Where(messageent.MeetingIDEQ(meetingID)).
		Count(ctx)
	if err != nil {
		return models.MeetingStatus{}, fmt.Errorf("failed to count messages: %w", err)
	}
	return models.MeetingStatus{
		MeetingID:         m.ID,
		Status:            m.Status,
		CurrentRound:      m.CurrentRound,
		MaxRounds:         m.MaxRounds,
		MessageCount:      count,
		BackgroundRunning: backgroundRunning,
	}, nil
}

// ResetStaleRunning fails every meeting stuck in running with no live
// worker. Called once at startup; each reset is logged as a structured
// warning and the count is returned for observability.
func (s *MeetingService) ResetStaleRunning(ctx context.Context, isLive func(meetingID string) bool) (int, error) {
	stale, err := s.client.Meeting.Query().
		Where(meetingent.StatusEQ(meetingent.StatusRunning)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query running meetings: %w", err)
	}

	recovered := 0
	for _, m := range stale {
		if isLive != nil && isLive(m.ID) {
			continue
		}
		if err := s.MarkFailed(ctx, m.ID, "run interrupted by process restart"); err != nil {
			slog.Warn("Failed to reset stale running meeting",
				"meeting_id", m.ID,
				"error", err)
			continue
		}
		slog.Warn("Reset stale running meeting to failed",
			"meeting_id", m.ID,
			"current_round", m.CurrentRound,
			"max_rounds", m.MaxRounds)
		recovered++
	}
	return recovered, nil
}

// ContextTranscripts loads the inputs the context extractor needs from
// prior meetings: title plus ordered assistant message contents.
func (s *MeetingService) ContextTranscripts(ctx context.Context, meetingIDs []string) ([]extract.Transcript, error) {
	transcripts := make([]extract.Transcript, 0, len(meetingIDs))
	for _, id := range meetingIDs {
		m, err := s.GetMeeting(ctx, id, false)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				slog.Warn("Context meeting not found, skipping", "meeting_id", id)
				continue
			}
			return nil, err
		}
		found, err := s.client.Message.Query().
			Where(
				messageent.MeetingIDEQ(id),
				messageent.RoleEQ(messageent.RoleAssistant),
			).
			Order(ent.Asc(messageent.FieldRoundNumber), ent.Asc(messageent.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load transcript for meeting %s: %w", id, err)
		}
		contents := make([]string, 0, len(found))
		for _, msg := range found {
			contents = append(contents, msg.Content)
		}
		transcripts = append(transcripts, extract.Transcript{Title: m.Title, AssistantMessages: contents})
	}
	return transcripts, nil
}
