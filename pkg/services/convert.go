package services

import (
	"github.com/conclave-ai/conclave/ent"
	"github.com/conclave-ai/conclave/pkg/models"
)

func toTeam(e *ent.Team) models.Team {
	t := models.Team{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		IsPublic:    e.IsPublic,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.DefaultLanguage != nil {
		t.DefaultLanguage = *e.DefaultLanguage
	}
	if e.OwnerID != nil {
		t.OwnerID = *e.OwnerID
	}
	return t
}

func toAgent(e *ent.Agent) models.Agent {
	a := models.Agent{
		ID:           e.ID,
		TeamID:       e.TeamID,
		Name:         e.Name,
		Title:        e.Title,
		Expertise:    e.Expertise,
		Goal:         e.Goal,
		Role:         e.Role,
		Model:        e.Model,
		ModelParams:  e.ModelParams,
		SystemPrompt: e.SystemPrompt,
		IsMirror:     e.IsMirror,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.PrimaryAgentID != nil {
		a.PrimaryAgentID = *e.PrimaryAgentID
	}
	return a
}

func toMeeting(e *ent.Meeting) models.Meeting {
	m := models.Meeting{
		ID:                  e.ID,
		TeamID:              e.TeamID,
		Title:               e.Title,
		Agenda:              e.Agenda,
		AgendaQuestions:     e.AgendaQuestions,
		AgendaRules:         e.AgendaRules,
		OutputType:          string(e.OutputType),
		MeetingType:         string(e.MeetingType),
		MaxRounds:           e.MaxRounds,
		CurrentRound:        e.CurrentRound,
		Status:              string(e.Status),
		ParticipantAgentIDs: e.ParticipantAgentIds,
		SourceMeetingIDs:    e.SourceMeetingIds,
		ContextMeetingIDs:   e.ContextMeetingIds,
		RewriteFeedback:     e.RewriteFeedback,
		AgendaStrategy:      string(e.AgendaStrategy),
		RoundPlan:           e.RoundPlan,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		CompletedAt:         e.CompletedAt,
	}
	if e.IndividualAgentID != nil {
		m.IndividualAgentID = *e.IndividualAgentID
	}
	if e.ParentMeetingID != nil {
		m.ParentMeetingID = *e.ParentMeetingID
	}
	if e.PreferredLanguage != nil {
		m.PreferredLanguage = *e.PreferredLanguage
	}
	if e.ErrorMessage != nil {
		m.ErrorMessage = *e.ErrorMessage
	}
	if e.Edges.Messages != nil {
		m.Messages = make([]models.Message, 0, len(e.Edges.Messages))
		for _, msg := range e.Edges.Messages {
			m.Messages = append(m.Messages, toMessage(msg))
		}
	}
	return m
}

func toMessage(e *ent.Message) models.Message {
	m := models.Message{
		ID:          e.ID,
		MeetingID:   e.MeetingID,
		Role:        string(e.Role),
		Content:     e.Content,
		RoundNumber: e.RoundNumber,
		CreatedAt:   e.CreatedAt,
	}
	if e.AgentID != nil {
		m.AgentID = *e.AgentID
	}
	if e.AgentName != nil {
		m.AgentName = *e.AgentName
	}
	return m
}

func toArtifact(e *ent.CodeArtifact) models.CodeArtifact {
	a := models.CodeArtifact{
		ID:          e.ID,
		MeetingID:   e.MeetingID,
		Filename:    e.Filename,
		Language:    e.Language,
		Content:     e.Content,
		Description: e.Description,
		Version:     e.Version,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.SourceAgent != nil {
		a.SourceAgent = *e.SourceAgent
	}
	return a
}
