package bus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDelivery(t *testing.T) {
	b := NewMemoryBus(8)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	defer b.Unsubscribe(sub)

	require.NoError(t, b.Publish(ctx, "meeting-1", NewAgentSpeaking("meeting-1", "agent-1", "Lead")))

	evt := <-sub.C
	assert.Equal(t, EventTypeAgentSpeaking, evt.Type)

	var payload AgentSpeakingPayload
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, "Lead", payload.AgentName)
	assert.Equal(t, "agent-1", payload.AgentID)
	assert.Equal(t, "meeting-1", payload.MeetingID)
	assert.NotEmpty(t, payload.Timestamp)
}

func TestMemoryBus_TopicIsolation(t *testing.T) {
	b := NewMemoryBus(8)
	ctx := context.Background()

	subA, err := b.Subscribe(ctx, "meeting-a")
	require.NoError(t, err)
	defer b.Unsubscribe(subA)
	subB, err := b.Subscribe(ctx, "meeting-b")
	require.NoError(t, err)
	defer b.Unsubscribe(subB)

	require.NoError(t, b.Publish(ctx, "meeting-a", NewRoundComplete("meeting-a", 1, 3)))

	evt := <-subA.C
	assert.Equal(t, EventTypeRoundComplete, evt.Type)
	assert.Empty(t, subB.ch)
}

func TestMemoryBus_FullQueueDropsNewestOnly(t *testing.T) {
	b := NewMemoryBus(2)
	ctx := context.Background()

	slow, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	defer b.Unsubscribe(slow)
	fast, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	defer b.Unsubscribe(fast)

	// Fill both queues, then overflow. The publisher must not block and
	// the third event is dropped for the slow subscriber only after it
	// stops draining. Here neither drains, so both drop the overflow.
	for round := 1; round <= 3; round++ {
		require.NoError(t, b.Publish(ctx, "meeting-1", NewRoundComplete("meeting-1", round, 3)))
	}

	assert.Len(t, slow.ch, 2)
	assert.Len(t, fast.ch, 2)

	// Queued events are the oldest two, in order.
	var payload RoundCompletePayload
	evt := <-slow.C
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, 1, payload.Round)
	evt = <-slow.C
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, 2, payload.Round)
}

func TestMemoryBus_ReplayForLateSubscriber(t *testing.T) {
	b := NewMemoryBus(8)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx, "meeting-1", NewMessage("meeting-1", "msg-1", "agent-1", "Lead", "assistant", "opening", 1)))
	require.NoError(t, b.Publish(ctx, "meeting-1", NewRoundComplete("meeting-1", 1, 3)))

	late, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	defer b.Unsubscribe(late)

	require.Len(t, late.ch, 2)
	first := <-late.C
	assert.Equal(t, EventTypeMessage, first.Type)
	second := <-late.C
	assert.Equal(t, EventTypeRoundComplete, second.Type)
}

func TestMemoryBus_ClearReplay(t *testing.T) {
	b := NewMemoryBus(8)
	ctx := context.Background()

	require.NoError(t, b.Publish(ctx, "meeting-1", NewMeetingComplete("meeting-1", "completed")))
	require.NoError(t, b.ClearReplay(ctx, "meeting-1"))

	sub, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	defer b.Unsubscribe(sub)

	assert.Empty(t, sub.ch)
}

func TestMemoryBus_UnsubscribeClosesChannel(t *testing.T) {
	b := NewMemoryBus(8)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	b.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)

	// Publishing after the last subscriber left must not panic.
	require.NoError(t, b.Publish(ctx, "meeting-1", NewError("meeting-1", "boom", "openai")))

	// Double unsubscribe is a no-op.
	b.Unsubscribe(sub)
}

func TestMemoryBus_CloseTerminatesSubscribers(t *testing.T) {
	b := NewMemoryBus(8)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "meeting-1")
	require.NoError(t, err)
	require.NoError(t, b.Close(ctx))

	_, open := <-sub.C
	assert.False(t, open)

	// Operations after close are inert.
	require.NoError(t, b.Publish(ctx, "meeting-1", NewRoundComplete("meeting-1", 1, 1)))
}
