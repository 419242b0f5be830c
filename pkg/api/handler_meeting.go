package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// createMeetingHandler handles POST /meetings.
func (s *Server) createMeetingHandler(c *echo.Context) error {
	var req createMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input := req.CreateMeetingRequest
	input.TeamID = req.TeamID

	m, err := s.meetings.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

// listMeetingsHandler handles GET /teams/:id/meetings.
func (s *Server) listMeetingsHandler(c *echo.Context) error {
	teamID := c.Param("id")
	if teamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "team id is required")
	}
	meetings, err := s.meetings.ListMeetings(c.Request().Context(), teamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, meetings)
}

// getMeetingHandler handles GET /meetings/:id.
func (s *Server) getMeetingHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	m, err := s.meetings.GetMeeting(c.Request().Context(), meetingID, true)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, m)
}

// deleteMeetingHandler handles DELETE /meetings/:id.
func (s *Server) deleteMeetingHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	if err := s.meetings.DeleteMeeting(c.Request().Context(), meetingID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listMessagesHandler handles GET /meetings/:id/messages.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	messages, err := s.meetings.ListMessages(c.Request().Context(), meetingID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// addUserMessageHandler handles POST /meetings/:id/messages. The
// feedback lands at the meeting's current round and is surfaced to
// agents on the next run.
func (s *Server) addUserMessageHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	var req userMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	msg, err := s.meetings.AddUserMessage(c.Request().Context(), meetingID, req.Content)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}
