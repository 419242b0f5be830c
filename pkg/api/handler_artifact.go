package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/models"
)

// listArtifactsHandler handles GET /meetings/:id/artifacts.
func (s *Server) listArtifactsHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	artifacts, err := s.artifacts.ListArtifacts(c.Request().Context(), meetingID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, artifacts)
}

// extractArtifactsHandler handles POST /meetings/:id/artifacts/extract:
// on-demand re-extraction over the current transcript. Idempotent for
// an unchanged transcript.
func (s *Server) extractArtifactsHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	if _, err := s.meetings.GetMeeting(c.Request().Context(), meetingID, false); err != nil {
		return mapServiceError(err)
	}

	artifacts, err := s.artifacts.ExtractArtifacts(c.Request().Context(), meetingID)
	if err != nil {
		return mapServiceError(err)
	}
	if artifacts == nil {
		artifacts = []models.CodeArtifact{}
	}
	return c.JSON(http.StatusOK, artifacts)
}

// getArtifactHandler handles GET /artifacts/:id.
func (s *Server) getArtifactHandler(c *echo.Context) error {
	artifactID := c.Param("id")
	if artifactID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "artifact id is required")
	}
	artifact, err := s.artifacts.GetArtifact(c.Request().Context(), artifactID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, artifact)
}
