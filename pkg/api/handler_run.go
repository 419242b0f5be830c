package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/models"
)

// runMeetingHandler handles POST /meetings/:id/run. The call blocks
// until the requested rounds finish and returns the meeting with its
// full transcript.
func (s *Server) runMeetingHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	var req runRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Rounds < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "rounds must not be negative")
	}

	m, err := s.runner.RunSync(c.Request().Context(), meetingID, models.RunOptions{
		Rounds: req.Rounds,
		Topic:  req.Topic,
		Locale: req.Locale,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, m)
}

// runBackgroundHandler handles POST /meetings/:id/run-background.
// Returns 409 when a run is already in flight.
func (s *Server) runBackgroundHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	var req runRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Rounds < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "rounds must not be negative")
	}

	started, err := s.runner.StartBackground(c.Request().Context(), meetingID, models.RunOptions{
		Rounds: req.Rounds,
		Topic:  req.Topic,
		Locale: req.Locale,
	})
	if err != nil {
		return mapServiceError(err)
	}
	if !started {
		return echo.NewHTTPError(http.StatusConflict, "a run is already in flight for this meeting")
	}
	return c.JSON(http.StatusOK, &RunStartedResponse{
		MeetingID: meetingID,
		Status:    "started",
		Rounds:    req.Rounds,
	})
}

// cancelMeetingHandler handles POST /meetings/:id/cancel. The worker
// stops at the next turn boundary and the meeting reverts to pending.
func (s *Server) cancelMeetingHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	cancelled := s.runner.Cancel(meetingID)
	return c.JSON(http.StatusOK, &CancelResponse{
		MeetingID: meetingID,
		Cancelled: cancelled,
	})
}

// meetingStatusHandler handles GET /meetings/:id/status.
func (s *Server) meetingStatusHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	status, err := s.meetings.Status(c.Request().Context(), meetingID, s.runner.IsRunning(meetingID))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
