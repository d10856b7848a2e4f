package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/harx-dev/harx/har"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-2024-08-06"
)

// OpenAIClient implements Selector against an OpenAI-compatible chat
// completions endpoint.
type OpenAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// OpenAIOption customizes an OpenAIClient.
type OpenAIOption func(*OpenAIClient)

// WithModel overrides the default model.
func WithModel(model string) OpenAIOption {
	return func(c *OpenAIClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a different OpenAI-compatible API,
// e.g. a local proxy.
func WithBaseURL(baseURL string) OpenAIOption {
	return func(c *OpenAIClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) OpenAIOption {
	return func(c *OpenAIClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewOpenAIClient builds a client for the chat completions API.
func NewOpenAIClient(apiKey string, logger *zap.Logger, opts ...OpenAIOption) *OpenAIClient {
	client := &OpenAIClient{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type selection struct {
	Index     int    `json:"index"`
	Reasoning string `json:"reasoning"`
}

// SelectBestIndex asks the model which candidate matches the intent.
// The returned index is validated against the candidate list.
func (c *OpenAIClient) SelectBestIndex(ctx context.Context, summaries []har.Summary, intent string) (int, error) {
	if len(summaries) == 0 {
		return 0, ErrNoCandidates
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(summaries, intent)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, errors.Wrap(err, "marshaling chat completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "building chat completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("selecting best request",
		zap.Int("candidates", len(summaries)),
		zap.String("model", c.model))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "calling chat completion API")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrap(err, "reading chat completion response")
	}
	if resp.StatusCode != http.StatusOK {
		return 0, errors.Errorf("chat completion API returned status %d: %s", resp.StatusCode, data)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, errors.Wrap(err, "parsing chat completion response")
	}
	if len(parsed.Choices) == 0 {
		return 0, errors.New("chat completion response has no choices")
	}

	var result selection
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &result); err != nil {
		return 0, errors.Wrap(err, "parsing selection from model output")
	}

	if err := ValidateIndex(result.Index, len(summaries)); err != nil {
		return 0, err
	}

	c.logger.Debug("request selected",
		zap.Int("index", result.Index),
		zap.String("reasoning", result.Reasoning))

	return result.Index, nil
}
