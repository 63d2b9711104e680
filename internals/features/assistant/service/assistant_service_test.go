package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/features/assistant/dto"
)

func newTestService(endpoint string) *AssistantService {
	return &AssistantService{
		Endpoint: endpoint,
		Model:    "test-model",
		Client:   &http.Client{Timeout: 2 * time.Second},
	}
}

func TestAsk_NotConfigured(t *testing.T) {
	svc := newTestService("")

	_, _, err := svc.Ask(context.Background(), nil, "hello")

	assert.ErrorIs(t, err, ErrAssistantNotConfigured)
}

func TestAsk_AppendsHistoryAndReturnsReply(t *testing.T) {
	var received completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "The library opens at 8am."}},
			},
		})
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	history := []dto.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello, how can I help?"},
	}

	reply, updated, err := svc.Ask(context.Background(), history, "when does the library open?")
	require.NoError(t, err)

	assert.Equal(t, "The library opens at 8am.", reply)

	// upstream request: system context, prior history, then the prompt
	require.Len(t, received.Messages, 4)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "hi", received.Messages[1].Content)
	assert.Equal(t, "when does the library open?", received.Messages[3].Content)

	// returned history: caller state grows by prompt + reply, no system turn
	require.Len(t, updated, 4)
	assert.Equal(t, "when does the library open?", updated[2].Content)
	assert.Equal(t, "assistant", updated[3].Role)
	assert.Equal(t, "The library opens at 8am.", updated[3].Content)
}

// Two calls with the same input history stay independent: the service
// keeps no state between requests.
func TestAsk_Stateless(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		calls++
		// message count must not grow between identical calls
		assert.Len(t, req.Messages, 2)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": "ok"}}},
		})
	}))
	defer server.Close()

	svc := newTestService(server.URL)

	_, _, err := svc.Ask(context.Background(), nil, "ping")
	require.NoError(t, err)
	_, _, err = svc.Ask(context.Background(), nil, "ping")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestAsk_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := newTestService(server.URL)

	_, _, err := svc.Ask(context.Background(), nil, "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
