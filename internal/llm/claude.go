package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const claudeMaxTokens = 1024

// ClaudeClient calls a Claude-compatible completion endpoint at a configured
// URL with a bearer key.
type ClaudeClient struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewClaudeClient creates a client for the given endpoint and model.
func NewClaudeClient(apiURL, apiKey, model string) *ClaudeClient {
	return &ClaudeClient{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

type claudeRequest struct {
	Model             string `json:"model"`
	Prompt            string `json:"prompt"`
	MaxTokensToSample int    `json:"max_tokens_to_sample"`
}

type claudeResponse struct {
	Completion string `json:"completion"`
}

func (c *ClaudeClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(claudeRequest{
		Model:             c.model,
		Prompt:            prompt,
		MaxTokensToSample: claudeMaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("claude: unexpected status %d: %s", resp.StatusCode, detail)
	}

	var parsed claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	return parsed.Completion, nil
}
