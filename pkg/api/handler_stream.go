package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// streamHandler handles GET /meetings/:id/stream: a server-sent-events
// feed of the meeting's bus events, one event per SSE frame. Buffered
// events from the current run are replayed to late subscribers.
func (s *Server) streamHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	if _, err := s.meetings.GetMeeting(c.Request().Context(), meetingID, false); err != nil {
		return mapServiceError(err)
	}

	sub, err := s.eventBus.Subscribe(c.Request().Context(), meetingID)
	if err != nil {
		return mapServiceError(err)
	}
	defer s.eventBus.Unsubscribe(sub)

	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().(http.Flusher).Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.C:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", ev.Type, ev.Data); err != nil {
				return nil
			}
			c.Response().(http.Flusher).Flush()
		}
	}
}
