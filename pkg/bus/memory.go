package bus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// MemoryBus is the in-process Bus backend. It fans events out to bounded
// per-subscriber queues and keeps a small per-topic replay buffer so that
// subscribers joining mid-run see the events published so far.
type MemoryBus struct {
	mu        sync.RWMutex
	subs      map[string]map[string]*Subscription // meetingID -> subID -> sub
	replay    map[string][]Event                  // meetingID -> buffered events
	queueSize int
	closed    bool
}

// NewMemoryBus creates an in-process bus. queueSize <= 0 uses DefaultQueueSize.
func NewMemoryBus(queueSize int) *MemoryBus {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &MemoryBus{
		subs:      make(map[string]map[string]*Subscription),
		replay:    make(map[string][]Event),
		queueSize: queueSize,
	}
}

// Subscribe implements Bus. Buffered replay events are preloaded into the
// new queue before it is registered for live delivery.
func (b *MemoryBus) Subscribe(_ context.Context, meetingID string) (*Subscription, error) {
	sub := &Subscription{
		ID:        uuid.NewString(),
		MeetingID: meetingID,
		ch:        make(chan Event, b.queueSize),
	}
	sub.C = sub.ch

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.ch)
		return sub, nil
	}
	for _, evt := range b.replay[meetingID] {
		if !sub.offer(evt) {
			break
		}
	}
	if b.subs[meetingID] == nil {
		b.subs[meetingID] = make(map[string]*Subscription)
	}
	b.subs[meetingID][sub.ID] = sub

	slog.Debug("Subscriber registered",
		"meeting_id", meetingID,
		"subscription_id", sub.ID,
		"subscribers", len(b.subs[meetingID]))
	return sub, nil
}

// Unsubscribe implements Bus.
func (b *MemoryBus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	topic := b.subs[sub.MeetingID]
	if topic == nil {
		return
	}
	if _, ok := topic[sub.ID]; !ok {
		return
	}
	delete(topic, sub.ID)
	if len(topic) == 0 {
		delete(b.subs, sub.MeetingID)
	}
	close(sub.ch)
}

// Publish implements Bus. Delivery is best-effort per subscriber: a full
// queue drops the newest event for that subscriber only, and the drop is
// logged at debug level.
func (b *MemoryBus) Publish(_ context.Context, meetingID string, payload Payload) error {
	evt, err := marshalEvent(payload)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}

	buf := append(b.replay[meetingID], evt)
	if len(buf) > replayLimit {
		buf = buf[len(buf)-replayLimit:]
	}
	b.replay[meetingID] = buf

	for _, sub := range b.subs[meetingID] {
		if !sub.offer(evt) {
			slog.Debug("Subscriber queue full, dropping event",
				"meeting_id", meetingID,
				"subscription_id", sub.ID,
				"event_type", evt.Type)
		}
	}
	return nil
}

// ClearReplay implements Bus.
func (b *MemoryBus) ClearReplay(_ context.Context, meetingID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.replay, meetingID)
	return nil
}

// Close implements Bus. All subscriber channels are closed.
func (b *MemoryBus) Close(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, topic := range b.subs {
		for _, sub := range topic {
			close(sub.ch)
		}
	}
	b.subs = make(map[string]map[string]*Subscription)
	b.replay = make(map[string][]Event)
	return nil
}
