package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/services"
)

// createWebhookHandler handles POST /webhooks.
func (s *Server) createWebhookHandler(c *echo.Context) error {
	var req services.CreateWebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := s.webhookSvc.CreateWebhook(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// listWebhooksHandler handles GET /webhooks.
func (s *Server) listWebhooksHandler(c *echo.Context) error {
	webhooks, err := s.webhookSvc.ListWebhooks(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, webhooks)
}

// deleteWebhookHandler handles DELETE /webhooks/:id.
func (s *Server) deleteWebhookHandler(c *echo.Context) error {
	webhookID := c.Param("id")
	if webhookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "webhook id is required")
	}
	if err := s.webhookSvc.DeleteWebhook(c.Request().Context(), webhookID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
