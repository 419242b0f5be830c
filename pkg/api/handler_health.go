package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/database"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	if s.db == nil {
		return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := database.Health(ctx, s.db.DB()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Database: "unreachable",
		})
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "ok",
		Database: "reachable",
	})
}
