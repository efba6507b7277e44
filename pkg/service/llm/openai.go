package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const openaiBaseURL = "https://api.openai.com"

// OpenAI calls the chat-completions endpoint
type OpenAI struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Client = &OpenAI{}

// OpenAIOption configures the OpenAI client
type OpenAIOption func(*OpenAI)

// WithOpenAIBaseURL overrides the API base URL (used by tests)
func WithOpenAIBaseURL(baseURL string) OpenAIOption {
	return func(c *OpenAI) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewOpenAI creates an OpenAI chat-completions client
func NewOpenAI(apiKey string, opts ...OpenAIOption) *OpenAI {
	c := &OpenAI{
		baseURL:    openaiBaseURL,
		apiKey:     apiKey,
		httpClient: newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *OpenAI) Generate(ctx context.Context, q Query) (*Result, error) {
	messages := make([]openaiMessage, 0, len(q.Context)+2)
	messages = append(messages, openaiMessage{Role: "system", Content: q.System})
	for _, m := range q.Context {
		messages = append(messages, openaiMessage{Role: m.Role.String(), Content: m.Content})
	}
	messages = append(messages, openaiMessage{Role: "user", Content: q.Input})

	body, err := json.Marshal(openaiRequest{
		Model:       q.Model,
		Messages:    messages,
		Temperature: q.Temperature,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode openai request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build openai request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "openai request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("OpenAI API error",
			goerr.V("status", resp.Status), goerr.V("model", q.Model))
	}

	var data openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode openai response")
	}
	if len(data.Choices) == 0 {
		return nil, goerr.New("openai response has no choices", goerr.V("model", q.Model))
	}

	return &Result{
		Content:    data.Choices[0].Message.Content,
		TokensUsed: data.Usage.TotalTokens,
	}, nil
}
