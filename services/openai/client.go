// Package openai is a minimal client for OpenAI-compatible chat
// completion APIs. Only the chat completions endpoint is implemented;
// requests are never retried here, a failed completion surfaces to the
// caller who decides whether to resend.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// BaseURL is the default OpenAI API base URL
	BaseURL = "https://api.openai.com"
	// DefaultTimeout bounds the full request including body read
	DefaultTimeout = 60 * time.Second
	// DefaultModel is the chat completion model used unless overridden
	DefaultModel = "gpt-5"
)

// Client handles chat completion requests against an OpenAI-compatible API
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Config holds configuration for the completion client
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewClient creates a new chat completion client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Message represents a message in a chat completion request
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// CompletionRequest represents an OpenAI-compatible chat completion request
type CompletionRequest struct {
	Model               string    `json:"model"`
	Messages            []Message `json:"messages"`
	MaxCompletionTokens int       `json:"max_completion_tokens,omitempty"`
	Temperature         float64   `json:"temperature,omitempty"`
}

// CompletionChoice represents a choice in the completion response
type CompletionChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// CompletionUsage represents token usage information
type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse represents the response from the chat completions endpoint
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   CompletionUsage    `json:"usage"`
}

// ExtractContent extracts the first choice's content, or "" when the
// upstream returned no choices.
func (r *CompletionResponse) ExtractContent() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// APIError represents an error response from the completion API
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("completion API error (status %d): %s", e.StatusCode, e.Message)
}

// apiErrorBody matches the OpenAI error envelope
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Option is a function that modifies the completion request
type Option func(*CompletionRequest)

// WithMaxCompletionTokens bounds the completion length
func WithMaxCompletionTokens(tokens int) Option {
	return func(req *CompletionRequest) {
		req.MaxCompletionTokens = tokens
	}
}

// WithModel overrides the client's default model for one request
func WithModel(model string) Option {
	return func(req *CompletionRequest) {
		req.Model = model
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(temp float64) Option {
	return func(req *CompletionRequest) {
		req.Temperature = temp
	}
}

// ChatCompletion sends a chat completion request and returns the parsed
// response. The context and the client timeout both bound the call.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, options ...Option) (*CompletionResponse, error) {
	req := CompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	for _, opt := range options {
		opt(&req)
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody apiErrorBody
		if err := json.Unmarshal(respBody, &errBody); err == nil && errBody.Error.Message != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errBody.Error.Message}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var result CompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
