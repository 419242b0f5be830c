package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisBus bridges meeting events through Redis pub/sub so that multiple
// replicas can serve streaming subscribers for runs executing elsewhere.
// The replay buffer lives in a capped Redis list per meeting.
type RedisBus struct {
	client    *redis.Client
	queueSize int

	mu   sync.Mutex
	subs map[string]*redisSubscription // subID -> state
}

type redisSubscription struct {
	sub    *Subscription
	pubsub *redis.PubSub
	done   chan struct{}
}

// NewRedisBus connects to Redis and verifies the connection.
func NewRedisBus(ctx context.Context, redisURL string, queueSize int) (*RedisBus, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &RedisBus{
		client:    client,
		queueSize: queueSize,
		subs:      make(map[string]*redisSubscription),
	}, nil
}

func eventChannel(meetingID string) string { return "meeting:" + meetingID }
func replayKey(meetingID string) string    { return "meeting:" + meetingID + ":replay" }

// Subscribe implements Bus. Replay events stored in Redis are preloaded
// before live pub/sub delivery begins.
func (b *RedisBus) Subscribe(ctx context.Context, meetingID string) (*Subscription, error) {
	sub := &Subscription{
		ID:        uuid.NewString(),
		MeetingID: meetingID,
		ch:        make(chan Event, b.queueSize),
	}
	sub.C = sub.ch

	buffered, err := b.client.LRange(ctx, replayKey(meetingID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read replay buffer: %w", err)
	}
	for _, raw := range buffered {
		data := []byte(raw)
		if !sub.offer(Event{Type: decodeType(data), Data: data}) {
			break
		}
	}

	pubsub := b.client.Subscribe(ctx, eventChannel(meetingID))
	// Force the SUBSCRIBE round-trip so failures surface here, not later.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", eventChannel(meetingID), err)
	}

	state := &redisSubscription{sub: sub, pubsub: pubsub, done: make(chan struct{})}
	b.mu.Lock()
	b.subs[sub.ID] = state
	b.mu.Unlock()

	go b.pump(state)
	return sub, nil
}

// pump moves messages from the Redis subscription into the bounded local
// queue, dropping the newest event when the queue is full.
func (b *RedisBus) pump(state *redisSubscription) {
	defer close(state.done)
	for msg := range state.pubsub.Channel() {
		data := []byte(msg.Payload)
		evt := Event{Type: decodeType(data), Data: data}
		if !state.sub.offer(evt) {
			slog.Debug("Subscriber queue full, dropping event",
				"meeting_id", state.sub.MeetingID,
				"subscription_id", state.sub.ID,
				"event_type", evt.Type)
		}
	}
}

// Unsubscribe implements Bus.
func (b *RedisBus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	state, ok := b.subs[sub.ID]
	if ok {
		delete(b.subs, sub.ID)
	}
	b.mu.Unlock()
	if !ok {
		return
	}
	state.pubsub.Close()
	<-state.done
	close(sub.ch)
}

// Publish implements Bus. The event is appended to the capped replay list
// and broadcast to all replicas.
func (b *RedisBus) Publish(ctx context.Context, meetingID string, payload Payload) error {
	evt, err := marshalEvent(payload)
	if err != nil {
		return err
	}
	pipe := b.client.Pipeline()
	pipe.RPush(ctx, replayKey(meetingID), evt.Data)
	pipe.LTrim(ctx, replayKey(meetingID), int64(-replayLimit), -1)
	pipe.Publish(ctx, eventChannel(meetingID), evt.Data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Type, err)
	}
	return nil
}

// ClearReplay implements Bus.
func (b *RedisBus) ClearReplay(ctx context.Context, meetingID string) error {
	if err := b.client.Del(ctx, replayKey(meetingID)).Err(); err != nil {
		return fmt.Errorf("failed to clear replay buffer: %w", err)
	}
	return nil
}

// Close implements Bus. Outstanding subscriptions are torn down first.
func (b *RedisBus) Close(_ context.Context) error {
	b.mu.Lock()
	states := make([]*redisSubscription, 0, len(b.subs))
	for _, state := range b.subs {
		states = append(states, state)
	}
	b.subs = make(map[string]*redisSubscription)
	b.mu.Unlock()

	for _, state := range states {
		state.pubsub.Close()
		<-state.done
		close(state.sub.ch)
	}
	return b.client.Close()
}
