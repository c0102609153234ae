package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeComplete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req claudeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-v1", req.Model)
		assert.Equal(t, "hello", req.Prompt)
		assert.Equal(t, claudeMaxTokens, req.MaxTokensToSample)

		_ = json.NewEncoder(w).Encode(claudeResponse{Completion: "hi there"})
	}))
	defer server.Close()

	client := NewClaudeClient(server.URL, "test-key", "claude-v1")

	text, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestClaudeComplete_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClaudeClient(server.URL, "wrong-key", "claude-v1")

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}
