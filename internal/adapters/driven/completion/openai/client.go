// Package openai implements the completion client using OpenAI's
// chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/beeflow/contentgen/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds a single completion round trip.
	DefaultTimeout = 60 * time.Second

	// EnvAPIKey is the environment variable consulted when no API key
	// is configured.
	EnvAPIKey = "OPENAI_API_KEY"
)

// Config holds configuration for the OpenAI completion client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client implements driven.CompletionClient using OpenAI's chat
// completions API. The model is chosen per request, not per client.
type Client struct {
	config     Config
	httpClient *http.Client
}

// Ensure Client implements the interface.
var _ driven.CompletionClient = (*Client)(nil)

// NewClient creates a new OpenAI completion client.
// An empty API key falls back to the OPENAI_API_KEY environment variable.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		config.APIKey = os.Getenv(EnvAPIKey)
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// chatMessage is the wire format for a single conversation message.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the request payload for the chat completions
// endpoint. MaxTokens is a pointer so an unset budget is omitted from the
// wire entirely rather than sent as zero.
type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	TopP      float64       `json:"top_p"`
	MaxTokens *int          `json:"max_tokens,omitempty"`
}

// chatCompletionResponse is the response payload from the chat
// completions endpoint.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the conversation to the chat completions endpoint and
// returns the first choice's content, trimmed. A response without choices
// yields an empty string without error.
func (c *Client) Complete(ctx context.Context, request driven.CompletionRequest) (string, error) {
	reqBody := chatCompletionRequest{
		Model:     request.Model,
		Messages:  make([]chatMessage, 0, len(request.Messages)),
		TopP:      request.TopP,
		MaxTokens: request.MaxTokens,
	}
	for _, message := range request.Messages {
		reqBody.Messages = append(reqBody.Messages, chatMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("openai error: %s", completion.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// Ping checks connectivity to the OpenAI API.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openai ping failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openai ping failed with status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources (no-op for HTTP client).
func (c *Client) Close() error {
	return nil
}
