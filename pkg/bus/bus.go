package bus

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultQueueSize is the per-subscriber queue capacity.
const DefaultQueueSize = 256

// replayLimit bounds the per-topic replay buffer. Subscribers that join
// between rounds receive the buffered events of the current run; the
// background runner clears the buffer before starting a fresh run.
const replayLimit = 64

// Event is the envelope delivered to subscribers. Data is the marshaled
// payload JSON (which itself contains the "type" field).
type Event struct {
	Type string
	Data []byte
}

// Subscription is a bounded FIFO queue of events for one subscriber.
// Publishers never block on it: when the queue is full the newest event
// is dropped for this subscriber only.
type Subscription struct {
	ID        string
	MeetingID string
	C         <-chan Event

	ch     chan Event
	cancel func()
}

// Bus fans meeting events out to any number of subscribers.
type Bus interface {
	// Subscribe registers a new bounded queue on the meeting topic.
	Subscribe(ctx context.Context, meetingID string) (*Subscription, error)
	// Unsubscribe removes the queue and closes its channel.
	Unsubscribe(sub *Subscription)
	// Publish delivers the payload to all current subscribers of the topic.
	// It never blocks on slow subscribers.
	Publish(ctx context.Context, meetingID string, payload Payload) error
	// ClearReplay discards any buffered events for the topic so that
	// subscribers joining after a restart do not observe a prior run.
	ClearReplay(ctx context.Context, meetingID string) error
	// Close releases backend resources.
	Close(ctx context.Context) error
}

// marshalEvent converts a typed payload into its wire envelope.
func marshalEvent(payload Payload) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", payload.EventType(), err)
	}
	return Event{Type: payload.EventType(), Data: data}, nil
}

// decodeType extracts the "type" field from raw event JSON.
func decodeType(data []byte) string {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	return envelope.Type
}

// offer attempts a non-blocking send into the subscriber queue.
// Returns false when the queue is full and the event was dropped.
func (s *Subscription) offer(evt Event) bool {
	select {
	case s.ch <- evt:
		return true
	default:
		return false
	}
}
