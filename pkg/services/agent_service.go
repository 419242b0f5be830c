package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/conclave-ai/conclave/ent"
	agentent "github.com/conclave-ai/conclave/ent/agent"
	messageent "github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/prompt"
)

// AgentService manages agent lifecycle
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgentRequest carries the agent creation input
type CreateAgentRequest struct {
	TeamID         string         `json:"-"`
	Name           string         `json:"name"`
	Title          string         `json:"title"`
	Expertise      string         `json:"expertise"`
	Goal           string         `json:"goal"`
	Role           string         `json:"role"`
	Model          string         `json:"model"`
	ModelParams    map[string]any `json:"model_params"`
	IsMirror       bool           `json:"is_mirror"`
	PrimaryAgentID string         `json:"primary_agent_id"`
}

// CreateAgent creates a new agent on a team. The stored system prompt
// is derived from the persona fields at commit time.
func (s *AgentService) CreateAgent(ctx context.Context, req CreateAgentRequest) (models.Agent, error) {
	if req.TeamID == "" {
		return models.Agent{}, NewValidationError("team_id", "required")
	}
	if req.Name == "" {
		return models.Agent{}, NewValidationError("name", "required")
	}
	if req.IsMirror && req.PrimaryAgentID == "" {
		return models.Agent{}, NewValidationError("primary_agent_id", "required for mirror agents")
	}

	persona := models.Agent{
		Name:      req.Name,
		Title:     req.Title,
		Expertise: req.Expertise,
		Goal:      req.Goal,
		Role:      req.Role,
	}

	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetTeamID(req.TeamID).
		SetName(req.Name).
		SetTitle(req.Title).
		SetExpertise(req.Expertise).
		SetGoal(req.Goal).
		SetRole(req.Role).
		SetSystemPrompt(prompt.SystemPromptFor(persona, models.OutputTypeReport, false)).
		SetIsMirror(req.IsMirror)
	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if req.ModelParams != nil {
		builder.SetModelParams(req.ModelParams)
	}
	if req.PrimaryAgentID != "" {
		builder.SetPrimaryAgentID(req.PrimaryAgentID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return models.Agent{}, NewValidationError("team_id", "team does not exist")
		}
		return models.Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}
	return toAgent(created), nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (models.Agent, error) {
	found, err := s.client.Agent.Query().
		Where(agentent.IDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Agent{}, ErrNotFound
		}
		return models.Agent{}, fmt.Errorf("failed to get agent: %w", err)
	}
	return toAgent(found), nil
}

// ListAgents lists a team's agents in creation order
func (s *AgentService) ListAgents(ctx context.Context, teamID string) ([]models.Agent, error) {
	found, err := s.client.Agent.Query().
		Where(agentent.TeamIDEQ(teamID)).
		Order(ent.Asc(agentent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	agents := make([]models.Agent, 0, len(found))
	for _, a := range found {
		agents = append(agents, toAgent(a))
	}
	return agents, nil
}

// UpdateAgentRequest carries partial agent updates
type UpdateAgentRequest struct {
	Name        *string         `json:"name"`
	Title       *string         `json:"title"`
	Expertise   *string         `json:"expertise"`
	Goal        *string         `json:"goal"`
	Role        *string         `json:"role"`
	Model       *string         `json:"model"`
	ModelParams *map[string]any `json:"model_params"`
}

// UpdateAgent applies a partial update. When any persona source field
// changes, the stored system prompt is regenerated so it stays
// consistent with its sources.
func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, req UpdateAgentRequest) (models.Agent, error) {
	if req.Name != nil && *req.Name == "" {
		return models.Agent{}, NewValidationError("name", "must not be empty")
	}

	current, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return models.Agent{}, err
	}

	apply := func(dst *string, src *string) bool {
		if src == nil {
			return false
		}
		*dst = *src
		return true
	}
	personaChanged := false
	personaChanged = apply(&current.Name, req.Name) || personaChanged
	personaChanged = apply(&current.Title, req.Title) || personaChanged
	personaChanged = apply(&current.Expertise, req.Expertise) || personaChanged
	personaChanged = apply(&current.Goal, req.Goal) || personaChanged
	personaChanged = apply(&current.Role, req.Role) || personaChanged

	builder := s.client.Agent.UpdateOneID(agentID).
		SetName(current.Name).
		SetTitle(current.Title).
		SetExpertise(current.Expertise).
		SetGoal(current.Goal).
		SetRole(current.Role)
	if personaChanged {
		builder.SetSystemPrompt(prompt.SystemPromptFor(current, models.OutputTypeReport, false))
	}
	if req.Model != nil {
		builder.SetModel(*req.Model)
	}
	if req.ModelParams != nil {
		builder.SetModelParams(*req.ModelParams)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Agent{}, ErrNotFound
		}
		return models.Agent{}, fmt.Errorf("failed to update agent: %w", err)
	}
	return toAgent(updated), nil
}

// DeleteAgent removes an agent. Mirror agents pointing at it and
// transcript messages it authored keep existing but lose the reference
// (null-out, not cascade).
func (s *AgentService) DeleteAgent(ctx context.Context, agentID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Agent.Update().
		Where(agentent.PrimaryAgentIDEQ(agentID)).
		ClearPrimaryAgentID().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to detach mirror agents: %w", err)
	}

	if _, err := tx.Message.Update().
		Where(messageent.AgentIDEQ(agentID)).
		ClearAgentID().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to detach agent messages: %w", err)
	}

	if err := tx.Agent.DeleteOneID(agentID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
