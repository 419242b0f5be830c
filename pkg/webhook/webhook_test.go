package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_SignedDelivery(t *testing.T) {
	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher()
	d.Dispatch(context.Background(), []Target{
		{URL: server.URL, Events: []string{"meeting_complete"}, Secret: "shh"},
	}, "meeting_complete", map[string]string{"meeting_id": "m1", "status": "completed"})

	require.NotEmpty(t, gotBody)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "m1", payload["meeting_id"])

	assert.True(t, VerifySignature("shh", gotBody, gotSignature))
	assert.False(t, VerifySignature("wrong", gotBody, gotSignature))
}

func TestDispatch_EventFilter(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher()
	targets := []Target{{URL: server.URL, Events: []string{"meeting_complete"}}}

	d.Dispatch(context.Background(), targets, "round_complete", map[string]int{"round": 1})
	assert.Equal(t, 0, calls)

	d.Dispatch(context.Background(), targets, "meeting_complete", map[string]string{})
	assert.Equal(t, 1, calls)
}

func TestDispatch_WildcardAndEmptyEventsMatchAll(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher()
	d.Dispatch(context.Background(), []Target{
		{URL: server.URL, Events: []string{"*"}},
		{URL: server.URL},
	}, "error", map[string]string{})
	assert.Equal(t, 2, calls)
}

func TestDispatch_FailureDoesNotPanic(t *testing.T) {
	d := NewDispatcher()
	// Unreachable endpoint: failure is logged and swallowed.
	d.Dispatch(context.Background(), []Target{
		{URL: "http://127.0.0.1:1/unreachable"},
	}, "error", map[string]string{})
}

func TestSign_Format(t *testing.T) {
	sig := Sign("secret", []byte("body"))
	assert.Regexp(t, "^sha256=[0-9a-f]{64}$", sig)
}
