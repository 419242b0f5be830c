package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/meeting"
	"github.com/conclave-ai/conclave/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, "a run is already in flight for this meeting")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	// Run-path errors surfaced through the synchronous endpoint.
	if errors.Is(err, llm.ErrQuotaExhausted) {
		return echo.NewHTTPError(http.StatusForbidden, llm.QuotaExhaustedMessage)
	}
	if errors.Is(err, llm.ErrAuth) {
		return echo.NewHTTPError(http.StatusUnauthorized, "provider authentication failed")
	}
	if errors.Is(err, meeting.ErrNoAgents) {
		return echo.NewHTTPError(http.StatusBadRequest, "no agents available for this meeting")
	}
	if errors.Is(err, llm.ErrUnknownModel) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown model")
	}
	if errors.Is(err, llm.ErrRateLimited) || errors.Is(err, llm.ErrServerError) ||
		errors.Is(err, llm.ErrEmptyResponse) {
		return echo.NewHTTPError(http.StatusBadGateway, "LLM provider request failed")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
