// Package llm provides thin HTTP clients for the supported model providers.
// Both clients reduce provider responses to a uniform content + token-usage
// result; request/response wire shapes are provider-defined.
package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
)

const defaultTimeout = 60 * time.Second

// Result is the uniform adapter result of one completion call
type Result struct {
	Content    string
	TokensUsed int
}

// Query is one completion request: the agent's prompt template as the
// system/role-setting content, optional prior turns, and the user input.
type Query struct {
	Model       string
	System      string
	Context     []model.ContextMessage
	Input       string
	Temperature float64
	MaxTokens   int
}

// Client generates a completion for a query
type Client interface {
	Generate(ctx context.Context, q Query) (*Result, error)
}

// ErrUnsupportedProvider indicates a provider with no client implementation
var ErrUnsupportedProvider = goerr.New("unsupported AI provider")

// NewClient returns the client for a provider with the given credential
func NewClient(provider types.Provider, apiKey string) (Client, error) {
	switch provider {
	case types.ProviderOpenAI:
		return NewOpenAI(apiKey), nil
	case types.ProviderAnthropic:
		return NewAnthropic(apiKey), nil
	default:
		return nil, goerr.Wrap(ErrUnsupportedProvider, "no client for provider",
			goerr.V("provider", provider))
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
