package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	anthropicBaseURL    = "https://api.anthropic.com"
	anthropicAPIVersion = "2023-06-01"
	anthropicMaxTokens  = 1024
)

// Anthropic calls the messages endpoint
type Anthropic struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Client = &Anthropic{}

// AnthropicOption configures the Anthropic client
type AnthropicOption func(*Anthropic)

// WithAnthropicBaseURL overrides the API base URL (used by tests)
func WithAnthropicBaseURL(baseURL string) AnthropicOption {
	return func(c *Anthropic) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewAnthropic creates an Anthropic messages client
func NewAnthropic(apiKey string, opts ...AnthropicOption) *Anthropic {
	c := &Anthropic{
		baseURL:    anthropicBaseURL,
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (c *Anthropic) Generate(ctx context.Context, q Query) (*Result, error) {
	messages := make([]anthropicMessage, 0, len(q.Context)+1)
	for _, m := range q.Context {
		messages = append(messages, anthropicMessage{Role: m.Role.String(), Content: m.Content})
	}
	messages = append(messages, anthropicMessage{Role: "user", Content: q.Input})

	maxTokens := q.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicMaxTokens
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       q.Model,
		MaxTokens:   maxTokens,
		Temperature: q.Temperature,
		System:      q.System,
		Messages:    messages,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode anthropic request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build anthropic request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "anthropic request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("Anthropic API error",
			goerr.V("status", resp.Status), goerr.V("model", q.Model))
	}

	var data anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode anthropic response")
	}
	if len(data.Content) == 0 {
		return nil, goerr.New("anthropic response has no content", goerr.V("model", q.Model))
	}

	return &Result{
		Content:    data.Content[0].Text,
		TokensUsed: data.Usage.InputTokens + data.Usage.OutputTokens,
	}, nil
}
