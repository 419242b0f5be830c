package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/services"
)

// createAgentHandler handles POST /agents.
func (s *Server) createAgentHandler(c *echo.Context) error {
	var req createAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input := req.CreateAgentRequest
	input.TeamID = req.TeamID

	agent, err := s.agents.CreateAgent(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, agent)
}

// listAgentsHandler handles GET /teams/:id/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	teamID := c.Param("id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team id is required")
	}
	agents, err := s.agents.ListAgents(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agents)
}

// getAgentHandler handles GET /agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	agent, err := s.agents.GetAgent(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

// updateAgentHandler handles PATCH /agents/:id.
func (s *Server) updateAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	var req services.UpdateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	agent, err := s.agents.UpdateAgent(c.Request().Context(), agentID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

// deleteAgentHandler handles DELETE /agents/:id.
func (s *Server) deleteAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if err := s.agents.DeleteAgent(c.Request().Context(), agentID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
