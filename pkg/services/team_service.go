// Package services implements the repository gateway: typed read/write
// operations over the persistence layer, with input validation and
// sentinel errors the HTTP surface maps to status codes.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/conclave-ai/conclave/ent"
	"github.com/conclave-ai/conclave/ent/team"
	"github.com/conclave-ai/conclave/pkg/models"
)

// TeamService manages team lifecycle
type TeamService struct {
	client *ent.Client
}

// NewTeamService creates a new TeamService
func NewTeamService(client *ent.Client) *TeamService {
	return &TeamService{client: client}
}

// CreateTeamRequest carries the team creation input
type CreateTeamRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DefaultLanguage string `json:"default_language"`
	IsPublic        bool   `json:"is_public"`
	OwnerID         string `json:"-"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(ctx context.Context, req CreateTeamRequest) (models.Team, error) {
	if req.Name == "" {
		return models.Team{}, NewValidationError("name", "required")
	}

	builder := s.client.Team.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetIsPublic(req.IsPublic)
	if req.DefaultLanguage != "" {
		builder.SetDefaultLanguage(req.DefaultLanguage)
	}
	if req.OwnerID != "" {
		builder.SetOwnerID(req.OwnerID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return models.Team{}, ErrAlreadyExists
		}
		return models.Team{}, fmt.Errorf("failed to create team: %w", err)
	}
	return toTeam(created), nil
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (models.Team, error) {
	found, err := s.client.Team.Query().
		Where(team.IDEQ(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Team{}, ErrNotFound
		}
		return models.Team{}, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeam(found), nil
}

// ListTeams lists all teams, newest first
func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	found, err := s.client.Team.Query().
		Order(ent.Desc(team.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	teams := make([]models.Team, 0, len(found))
	for _, t := range found {
		teams = append(teams, toTeam(t))
	}
	return teams, nil
}

// UpdateTeamRequest carries partial team updates
type UpdateTeamRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DefaultLanguage *string `json:"default_language"`
	IsPublic        *bool   `json:"is_public"`
}

// UpdateTeam applies a partial update to a team
func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, req UpdateTeamRequest) (models.Team, error) {
	if req.Name != nil && *req.Name == "" {
		return models.Team{}, NewValidationError("name", "must not be empty")
	}

	builder := s.client.Team.UpdateOneID(teamID)
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.DefaultLanguage != nil {
		if *req.DefaultLanguage == "" {
			builder.ClearDefaultLanguage()
		} else {
			builder.SetDefaultLanguage(*req.DefaultLanguage)
		}
	}
	if req.IsPublic != nil {
		builder.SetIsPublic(*req.IsPublic)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Team{}, ErrNotFound
		}
		return models.Team{}, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeam(updated), nil
}

// DeleteTeam removes a team. Agents and meetings cascade in the store.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	if err := s.client.Team.DeleteOneID(teamID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
