package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/models"
)

const wsWriteTimeout = 10 * time.Second

// wsClientFrame is a client-to-server WebSocket message.
type wsClientFrame struct {
	Type    string `json:"type"`
	Rounds  int    `json:"rounds,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Content string `json:"content,omitempty"`
}

// wsAckFrame is a server-to-client acknowledgment frame.
type wsAckFrame struct {
	Type    string          `json:"type"`
	Detail  string          `json:"detail,omitempty"`
	Message *models.Message `json:"message,omitempty"`
}

// wsHandler handles GET /ws/meetings/:id. The connection receives every
// bus event of the meeting and accepts start_round and user_message
// commands.
func (s *Server) wsHandler(c *echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}
	if _, err := s.meetings.GetMeeting(c.Request().Context(), meetingID, false); err != nil {
		return mapServiceError(err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), s.wsAcceptOptions())
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusInternalError, "connection closed")

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	sub, err := s.eventBus.Subscribe(ctx, meetingID)
	if err != nil {
		conn.Close(websocket.StatusInternalError, "subscription failed")
		return nil
	}
	defer s.eventBus.Unsubscribe(sub)

	// All writes funnel through one goroutine; the socket allows a
	// single concurrent writer.
	outbound := make(chan any, 32)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-outbound:
				if !ok {
					return
				}
				writeCtx, cancelWrite := context.WithTimeout(ctx, wsWriteTimeout)
				err := wsjson.Write(writeCtx, conn, msg)
				cancelWrite()
				if err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// Bus events pass through verbatim.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				select {
				case outbound <- json.RawMessage(ev.Data):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	for {
		var frame wsClientFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			conn.Close(websocket.StatusNormalClosure, "")
			return nil
		}
		s.handleWSFrame(ctx, meetingID, frame, outbound)
	}
}

// handleWSFrame dispatches one client command.
func (s *Server) handleWSFrame(ctx context.Context, meetingID string, frame wsClientFrame, outbound chan<- any) {
	switch frame.Type {
	case "start_round":
		started, err := s.runner.StartBackground(ctx, meetingID, models.RunOptions{
			Rounds: frame.Rounds,
			Topic:  frame.Topic,
		})
		if err != nil {
			sendAck(ctx, outbound, wsAckFrame{Type: "error", Detail: err.Error()})
			return
		}
		if !started {
			sendAck(ctx, outbound, wsAckFrame{Type: "error", Detail: "a run is already in flight for this meeting"})
		}

	case "user_message":
		if frame.Content == "" {
			sendAck(ctx, outbound, wsAckFrame{Type: "error", Detail: "content is required"})
			return
		}
		saved, err := s.meetings.AddUserMessage(ctx, meetingID, frame.Content)
		if err != nil {
			sendAck(ctx, outbound, wsAckFrame{Type: "error", Detail: err.Error()})
			return
		}
		sendAck(ctx, outbound, wsAckFrame{Type: "message_saved", Message: &saved})

	default:
		sendAck(ctx, outbound, wsAckFrame{Type: "error", Detail: "unknown message type"})
	}
}

func sendAck(ctx context.Context, outbound chan<- any, frame wsAckFrame) {
	select {
	case outbound <- frame:
	case <-ctx.Done():
	}
}

// wsAcceptOptions derives origin checking from the CORS allowlist.
func (s *Server) wsAcceptOptions() *websocket.AcceptOptions {
	for _, origin := range s.cfg.CORSOrigins {
		if origin == "*" {
			return &websocket.AcceptOptions{InsecureSkipVerify: true}
		}
	}
	return &websocket.AcceptOptions{OriginPatterns: s.cfg.CORSOrigins}
}
