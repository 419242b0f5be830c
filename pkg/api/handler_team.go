package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/services"
)

// createTeamHandler handles POST /teams.
func (s *Server) createTeamHandler(c *echo.Context) error {
	var req services.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.OwnerID = currentUserID(c)

	team, err := s.teams.CreateTeam(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, team)
}

// listTeamsHandler handles GET /teams.
func (s *Server) listTeamsHandler(c *echo.Context) error {
	teams, err := s.teams.ListTeams(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, teams)
}

// getTeamHandler handles GET /teams/:id.
func (s *Server) getTeamHandler(c *echo.Context) error {
	teamID := c.Param("id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team id is required")
	}
	team, err := s.teams.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, team)
}

// updateTeamHandler handles PATCH /teams/:id.
func (s *Server) updateTeamHandler(c *echo.Context) error {
	teamID := c.Param("id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team id is required")
	}
	var req services.UpdateTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	team, err := s.teams.UpdateTeam(c.Request().Context(), teamID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, team)
}

// deleteTeamHandler handles DELETE /teams/:id.
func (s *Server) deleteTeamHandler(c *echo.Context) error {
	teamID := c.Param("id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team id is required")
	}
	if err := s.teams.DeleteTeam(c.Request().Context(), teamID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
