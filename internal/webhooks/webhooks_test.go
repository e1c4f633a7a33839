package webhooks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_DisabledWithoutURL(t *testing.T) {
	sender := NewSender("")

	assert.False(t, sender.Enabled())

	// a disabled sender must be a no-op, not an error
	err := sender.ToolUsed(context.Background(), "title-hook", "user-1")
	assert.NoError(t, err)
}

func TestSender_DeliversEventWithTimestamp(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewSender(server.URL)
	require.True(t, sender.Enabled())

	err := sender.ToolUsed(context.Background(), "title-hook", "user-1")
	require.NoError(t, err)

	assert.Equal(t, EventToolUsed, received["event"])
	assert.Equal(t, "title-hook", received["tool"])
	assert.Equal(t, "user-1", received["user_id"])
	assert.NotEmpty(t, received["timestamp"])
}

func TestSender_ErrorStatusReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := NewSender(server.URL)

	err := sender.Send(context.Background(), EventToolUsed, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSender_UnreachableEndpointReported(t *testing.T) {
	sender := NewSender("http://127.0.0.1:1/webhook")

	err := sender.UserSignedUp(context.Background(), "user-1", "a@b.com")

	assert.Error(t, err)
}

func TestSender_EventPayloads(t *testing.T) {
	events := []map[string]any{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			events = append(events, body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewSender(server.URL)

	require.NoError(t, sender.UserSignedUp(context.Background(), "user-1", "a@b.com"))
	require.NoError(t, sender.UserUpgradedPro(context.Background(), "user-1", "a@b.com"))

	require.Len(t, events, 2)
	assert.Equal(t, EventUserSignedUp, events[0]["event"])
	assert.Equal(t, "a@b.com", events[0]["email"])
	assert.Equal(t, EventUserUpgradedPro, events[1]["event"])
	assert.Equal(t, "pro", events[1]["plan"])
}
