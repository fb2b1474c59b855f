// Package azureai implements the remote chat-completion backend contract
// against an Azure OpenAI deployment.
package azureai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/aigate/internal/model"
)

var _ model.CompletionBackend = (*Client)(nil)

// Client talks to the chat-completions endpoint of one deployment.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
}

// New creates a client for the given endpoint, key and deployment.
func New(endpoint, apiKey, deployment, apiVersion string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		deployment: deployment,
		apiVersion: apiVersion,
	}
}

type chatRequest struct {
	Messages    []model.ChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message model.ChatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion performs one synchronous chat-completion call.
func (c *Client) ChatCompletion(ctx context.Context, messages []model.ChatMessage, maxTokens int, temperature float64) (model.ChatResult, error) {
	body, err := json.Marshal(chatRequest{
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return model.ChatResult{}, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.ChatResult{}, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ChatResult{}, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return model.ChatResult{}, fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.ChatResult{}, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return model.ChatResult{}, fmt.Errorf("chat completion returned no choices")
	}

	return model.ChatResult{
		Content:     strings.TrimSpace(parsed.Choices[0].Message.Content),
		Model:       parsed.Model,
		TotalTokens: parsed.Usage.TotalTokens,
	}, nil
}
